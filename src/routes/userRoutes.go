package routes

import (
	"github.com/SolicitudesApp/Solicitudes-Backend/src/controllers"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/middleware"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)

	// Protected routes
	user := router.Group("/")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/user", userController.GetCurrentUser)
		user.POST("/logout", userController.Logout)
	}
}
