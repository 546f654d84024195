package services

import (
	"testing"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database with the full schema. A single
// connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.CandidatoModel{},
		&models.TipoEstudioModel{},
		&models.SolicitudModel{},
	); err != nil {
		t.Fatalf("migrating test schema: %v", err)
	}
	return db
}

func crearCandidato(t *testing.T, db *gorm.DB, documento, correo string) *models.CandidatoModel {
	t.Helper()
	candidato := &models.CandidatoModel{
		Nombre:             "Ana",
		Apellido:           "García",
		DocumentoIdentidad: documento,
		Correo:             correo,
		Telefono:           "3001234567",
	}
	if err := db.Create(candidato).Error; err != nil {
		t.Fatalf("creating candidato: %v", err)
	}
	return candidato
}

func crearTipoEstudio(t *testing.T, db *gorm.DB, nombre string) *models.TipoEstudioModel {
	t.Helper()
	tipoEstudio := &models.TipoEstudioModel{
		Nombre:      nombre,
		Descripcion: "Descripción de prueba",
		Precio:      150000,
	}
	if err := db.Create(tipoEstudio).Error; err != nil {
		t.Fatalf("creating tipo de estudio: %v", err)
	}
	return tipoEstudio
}
