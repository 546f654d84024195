package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
	"github.com/gin-gonic/gin"
)

type CandidatosController struct {
	service *services.CandidatoService
}

// NewCandidatosController creates a new instance of CandidatosController
func NewCandidatosController(service *services.CandidatoService) *CandidatosController {
	return &CandidatosController{service: service}
}

// GetCandidatos handles GET requests to retrieve all candidato records
func (c *CandidatosController) GetCandidatos(ctx *gin.Context) {
	candidatos, err := c.service.GetAllCandidatos()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener los candidatos", "status": http.StatusInternalServerError})
		return
	}
	if len(candidatos) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "No se encontraron candidatos", "status": http.StatusOK})
		return
	}
	ctx.JSON(http.StatusOK, candidatos)
}

// GetCandidatoByID handles GET requests to retrieve a candidato by ID
func (c *CandidatosController) GetCandidatoByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido", "status": http.StatusBadRequest})
		return
	}

	candidato, err := c.service.GetCandidatoByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Candidato no encontrado", "status": http.StatusNotFound})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"candidato": candidato, "status": http.StatusOK})
}

// CreateCandidato handles POST requests to create a new candidato record
func (c *CandidatosController) CreateCandidato(ctx *gin.Context) {
	var fields validation.Fields
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido", "status": http.StatusBadRequest})
		return
	}

	rules := c.service.CreateRules()
	if errs := rules.Validate(fields); errs != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Error en la validación de los datos",
			"errors":  errs,
			"status":  http.StatusBadRequest,
		})
		return
	}

	candidato := &models.CandidatoModel{
		Nombre:             fields.String("nombre"),
		Apellido:           fields.String("apellido"),
		DocumentoIdentidad: fields.String("documento_identidad"),
		Correo:             fields.String("correo"),
		Telefono:           fields.String("telefono"),
	}

	creado, err := c.service.CreateCandidato(candidato)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear el candidato", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"candidato": creado, "status": http.StatusCreated})
}

// UpdateCandidato handles PUT requests to partially update a candidato
func (c *CandidatosController) UpdateCandidato(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido", "status": http.StatusBadRequest})
		return
	}

	if _, err := c.service.GetCandidatoByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Candidato no encontrado", "status": http.StatusNotFound})
		return
	}

	// An empty body is the same no-op update as {}
	var fields validation.Fields
	if err := ctx.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido", "status": http.StatusBadRequest})
		return
	}

	rules := c.service.UpdateRules()
	if errs := rules.Validate(fields); errs != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Error en la validación de los datos",
			"errors":  errs,
			"status":  http.StatusBadRequest,
		})
		return
	}

	cambios := &dtos.CandidatoUpdateDTO{}
	if fields.Has("nombre") {
		v := fields.String("nombre")
		cambios.Nombre = &v
	}
	if fields.Has("apellido") {
		v := fields.String("apellido")
		cambios.Apellido = &v
	}
	if fields.Has("documento_identidad") {
		v := fields.String("documento_identidad")
		cambios.DocumentoIdentidad = &v
	}
	if fields.Has("correo") {
		v := fields.String("correo")
		cambios.Correo = &v
	}
	if fields.Has("telefono") {
		v := fields.String("telefono")
		cambios.Telefono = &v
	}

	candidato, err := c.service.UpdateCandidato(id, cambios)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar el candidato", "status": http.StatusInternalServerError})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Candidato actualizado", "candidato": candidato, "status": http.StatusOK})
}

// DeleteCandidato handles DELETE requests to remove a candidato and its
// solicitudes (cascade)
func (c *CandidatosController) DeleteCandidato(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido", "status": http.StatusBadRequest})
		return
	}

	if err := c.service.DeleteCandidato(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Candidato no encontrado", "status": http.StatusNotFound})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Candidato eliminado", "status": http.StatusOK})
}
