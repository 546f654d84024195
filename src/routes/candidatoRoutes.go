package routes

import (
	"github.com/SolicitudesApp/Solicitudes-Backend/src/controllers"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/middleware"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCandidatoRoutes(router *gin.Engine, service *services.CandidatoService) {
	candidatosController := controllers.NewCandidatosController(service)

	// Protected routes
	candidatos := router.Group("/candidatos")
	candidatos.Use(middleware.AuthMiddleware())
	{
		candidatos.GET("", candidatosController.GetCandidatos)
		candidatos.GET("/:id", candidatosController.GetCandidatoByID)
		candidatos.POST("", candidatosController.CreateCandidato)
		candidatos.PUT("/:id", candidatosController.UpdateCandidato)
		candidatos.DELETE("/:id", candidatosController.DeleteCandidato)
	}
}
