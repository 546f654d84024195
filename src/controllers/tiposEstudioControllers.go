package controllers

import (
	"net/http"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
	"github.com/gin-gonic/gin"
)

type TiposEstudioController struct {
	service *services.TipoEstudioService
}

// NewTiposEstudioController creates a new instance of TiposEstudioController
func NewTiposEstudioController(service *services.TipoEstudioService) *TiposEstudioController {
	return &TiposEstudioController{service: service}
}

// GetTiposEstudio handles GET requests to retrieve all tipo de estudio records
func (c *TiposEstudioController) GetTiposEstudio(ctx *gin.Context) {
	tiposEstudio, err := c.service.GetAllTiposEstudio()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener los tipos de estudio", "status": http.StatusInternalServerError})
		return
	}
	if len(tiposEstudio) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "No se encontraron tipos de estudio", "status": http.StatusOK})
		return
	}
	ctx.JSON(http.StatusOK, tiposEstudio)
}

// CreateTipoEstudio handles POST requests to create a new tipo de estudio
func (c *TiposEstudioController) CreateTipoEstudio(ctx *gin.Context) {
	var fields validation.Fields
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido", "status": http.StatusBadRequest})
		return
	}

	rules := validation.RuleSet{
		"nombre":      {validation.Required(), validation.Max(100)},
		"descripcion": {validation.Required(), validation.Max(500)},
		"precio":      {validation.Required(), validation.Numeric(0, 99999999.99)},
	}
	if errs := rules.Validate(fields); errs != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Error en la validación de los datos",
			"errors":  errs,
			"status":  http.StatusBadRequest,
		})
		return
	}

	precio, _ := fields.Float("precio")
	tipoEstudio := &models.TipoEstudioModel{
		Nombre:      fields.String("nombre"),
		Descripcion: fields.String("descripcion"),
		Precio:      precio,
	}

	creado, err := c.service.CreateTipoEstudio(tipoEstudio)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear el tipo de estudio", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"tipoEstudio": creado, "status": http.StatusCreated})
}
