package routes

import (
	"github.com/SolicitudesApp/Solicitudes-Backend/src/controllers"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/middleware"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupTipoEstudioRoutes(router *gin.Engine, service *services.TipoEstudioService) {
	tiposEstudioController := controllers.NewTiposEstudioController(service)

	// Protected routes
	tiposEstudio := router.Group("/tiposEstudio")
	tiposEstudio.Use(middleware.AuthMiddleware())
	{
		tiposEstudio.GET("", tiposEstudioController.GetTiposEstudio)
		tiposEstudio.POST("", tiposEstudioController.CreateTipoEstudio)
	}
}
