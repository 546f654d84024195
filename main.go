package main

import (
	"log"
	"os"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/db"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/middleware"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/routes"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/seed"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.CandidatoModel{},
		&models.TipoEstudioModel{},
		&models.SolicitudModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret for the auth middleware
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// Optional seeding
	if os.Getenv("SEED_DB") == "true" {
		seed.Seed(db)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	userService := services.NewUserService(db)
	candidatoService := services.NewCandidatoService(db)
	tipoEstudioService := services.NewTipoEstudioService(db)
	solicitudService := services.NewSolicitudService(db)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupCandidatoRoutes(router, candidatoService)
	routes.SetupTipoEstudioRoutes(router, tipoEstudioService)
	routes.SetupSolicitudRoutes(router, solicitudService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Solicitudes API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
