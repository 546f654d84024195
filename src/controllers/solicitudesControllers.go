package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
	"github.com/gin-gonic/gin"
)

type SolicitudesController struct {
	service *services.SolicitudService
}

// NewSolicitudesController creates a new instance of SolicitudesController
func NewSolicitudesController(service *services.SolicitudService) *SolicitudesController {
	return &SolicitudesController{service: service}
}

// GetSolicitudes handles GET requests to list solicitudes with optional
// estado and tipo_estudio_id filters
func (c *SolicitudesController) GetSolicitudes(ctx *gin.Context) {
	fields := validation.Fields{}
	if v := ctx.Query("estado"); v != "" {
		fields["estado"] = v
	}
	if v := ctx.Query("tipo_estudio_id"); v != "" {
		fields["tipo_estudio_id"] = v
	}

	if errs := c.service.FilterRules().Validate(fields); errs != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Error en la validación de los datos",
			"errors":  errs,
			"status":  http.StatusBadRequest,
		})
		return
	}

	filtro := dtos.FiltroSolicitudDTO{}
	if fields.Has("estado") {
		estado := fields.String("estado")
		filtro.Estado = &estado
	}
	if fields.Has("tipo_estudio_id") {
		if id, ok := fields.Int("tipo_estudio_id"); ok {
			filtro.TipoEstudioId = &id
		}
	}

	solicitudes, err := c.service.GetAllSolicitudes(filtro)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener las solicitudes", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusOK, solicitudes)
}

// GetSolicitudByID handles GET requests to retrieve a solicitud by ID
func (c *SolicitudesController) GetSolicitudByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido", "status": http.StatusBadRequest})
		return
	}

	solicitud, err := c.service.GetSolicitudByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Solicitud no encontrada", "status": http.StatusNotFound})
		return
	}
	ctx.JSON(http.StatusOK, solicitud)
}

// CreateSolicitud handles POST requests to create a new solicitud
func (c *SolicitudesController) CreateSolicitud(ctx *gin.Context) {
	var fields validation.Fields
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido", "status": http.StatusBadRequest})
		return
	}

	if errs := c.service.CreateRules().Validate(fields); errs != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Error en la validación de los datos",
			"errors":  errs,
			"status":  http.StatusBadRequest,
		})
		return
	}

	candidatoId, _ := fields.Int("candidato_id")
	tipoEstudioId, _ := fields.Int("tipo_estudio_id")
	solicitud := &models.SolicitudModel{
		CandidatoId:   candidatoId,
		TipoEstudioId: tipoEstudioId,
		Estado:        fields.String("estado"),
	}

	creada, err := c.service.CreateSolicitud(solicitud)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear la solicitud", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"solicitud": creada, "status": http.StatusCreated})
}

// UpdateSolicitud handles PUT requests to update a solicitud's estado and
// fecha_completado
func (c *SolicitudesController) UpdateSolicitud(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido", "status": http.StatusBadRequest})
		return
	}

	if _, err := c.service.GetSolicitudByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Solicitud no encontrada", "status": http.StatusNotFound})
		return
	}

	// An empty body is the same no-op update as {}
	var fields validation.Fields
	if err := ctx.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido", "status": http.StatusBadRequest})
		return
	}

	if errs := c.service.UpdateRules().Validate(fields); errs != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Error en la validación de los datos",
			"errors":  errs,
			"status":  http.StatusBadRequest,
		})
		return
	}

	cambios := &dtos.SolicitudUpdateDTO{}
	if fields.Has("estado") {
		estado := fields.String("estado")
		cambios.Estado = &estado
	}
	if fields.Has("fecha_completado") {
		fecha, err := time.Parse("2006-01-02", fields.String("fecha_completado"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Error en la validación de los datos",
				"errors":  validation.Errors{"fecha_completado": {"El campo fecha_completado debe ser una fecha válida (YYYY-MM-DD)."}},
				"status":  http.StatusBadRequest,
			})
			return
		}
		cambios.FechaCompletado = &fecha
	}

	solicitud, err := c.service.UpdateSolicitud(id, cambios)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar la solicitud", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Solicitud actualizada", "solicitud": solicitud, "status": http.StatusOK})
}

// DeleteSolicitud handles DELETE requests to remove a solicitud
func (c *SolicitudesController) DeleteSolicitud(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido", "status": http.StatusBadRequest})
		return
	}

	if err := c.service.DeleteSolicitud(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Solicitud no encontrada", "status": http.StatusNotFound})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Solicitud eliminada correctamente", "status": http.StatusOK})
}

// GetEstadisticas handles GET requests for the grouped count by estado
func (c *SolicitudesController) GetEstadisticas(ctx *gin.Context) {
	conteos, err := c.service.CantidadSolicitudesPorEstado()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener las estadísticas", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusOK, conteos)
}

// ExportEstadisticas handles GET requests that download the grouped count as
// an XLSX file
func (c *SolicitudesController) ExportEstadisticas(ctx *gin.Context) {
	f, err := c.service.ExportarEstadisticas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al exportar las estadísticas", "status": http.StatusInternalServerError})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="solicitudes-estadisticas.xlsx"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al exportar las estadísticas", "status": http.StatusInternalServerError})
	}
}
