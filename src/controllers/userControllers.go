package controllers

import (
	"net/http"
	"time"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/middleware"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// AuthenticateUser handles POST /login and issues a JWT token
func (c *UserController) AuthenticateUser(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido", "status": http.StatusBadRequest})
		return
	}

	token, err := c.service.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas", "status": http.StatusUnauthorized})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token, "status": http.StatusOK})
}

// GetCurrentUser handles GET /user using the id stored by the auth middleware
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	id, ok := ctx.Get("userId")
	idFloat, isFloat := id.(float64)
	if !ok || !isFloat {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Token inválido", "status": http.StatusUnauthorized})
		return
	}

	user, err := c.service.GetUserByID(int(idFloat))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado", "status": http.StatusNotFound})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user, "status": http.StatusOK})
}

// Logout handles POST /logout revoking the current token by its jti
func (c *UserController) Logout(ctx *gin.Context) {
	jti := ctx.GetString("jti")
	if jti != "" {
		exp := time.Now().Add(time.Hour * 12)
		if expClaim, ok := ctx.Get("exp"); ok {
			if expFloat, isFloat := expClaim.(float64); isFloat {
				exp = time.Unix(int64(expFloat), 0)
			}
		}
		middleware.RevokeToken(jti, exp)
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada", "status": http.StatusOK})
}
