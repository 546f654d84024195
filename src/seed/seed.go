package seed

import (
	"log"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "admin",
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Tipos de estudio base, idempotente por nombre
	tiposEstudio := []models.TipoEstudioModel{
		{Nombre: "Estudio básico", Descripcion: "Verificación de identidad y antecedentes judiciales", Precio: 150000},
		{Nombre: "Estudio académico", Descripcion: "Verificación de títulos y certificados académicos", Precio: 220000},
		{Nombre: "Estudio laboral", Descripcion: "Verificación de referencias y experiencia laboral", Precio: 280000},
	}
	for _, tipoEstudio := range tiposEstudio {
		var existente models.TipoEstudioModel
		checkResult := db.Where("nombre = ?", tipoEstudio.Nombre).First(&existente)
		if checkResult.Error == nil {
			log.Printf("Tipo de estudio '%s' already exists, skipping\n", tipoEstudio.Nombre)
			continue
		}
		if err := db.Create(&tipoEstudio).Error; err != nil {
			log.Printf("Failed to create tipo de estudio '%s': %v\n", tipoEstudio.Nombre, err)
		} else {
			log.Printf("Tipo de estudio '%s' created\n", tipoEstudio.Nombre)
		}
	}
}
