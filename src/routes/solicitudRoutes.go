package routes

import (
	"github.com/SolicitudesApp/Solicitudes-Backend/src/controllers"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/middleware"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSolicitudRoutes(router *gin.Engine, service *services.SolicitudService) {
	solicitudesController := controllers.NewSolicitudesController(service)

	// Protected routes
	solicitudes := router.Group("/solicitudes")
	solicitudes.Use(middleware.AuthMiddleware())
	{
		solicitudes.GET("", solicitudesController.GetSolicitudes)
		solicitudes.GET("/:id", solicitudesController.GetSolicitudByID)
		solicitudes.POST("", solicitudesController.CreateSolicitud)
		solicitudes.PUT("/:id", solicitudesController.UpdateSolicitud)
		solicitudes.DELETE("/:id", solicitudesController.DeleteSolicitud)
	}

	estadisticas := router.Group("/solicitudes-estadisticas")
	estadisticas.Use(middleware.AuthMiddleware())
	{
		estadisticas.GET("", solicitudesController.GetEstadisticas)
		estadisticas.GET("/export", solicitudesController.ExportEstadisticas)
	}
}
