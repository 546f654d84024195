package services

import (
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"gorm.io/gorm"
)

type TipoEstudioService struct {
	db *gorm.DB
}

// NewTipoEstudioService creates a new instance of TipoEstudioService
func NewTipoEstudioService(db *gorm.DB) *TipoEstudioService {
	return &TipoEstudioService{db: db}
}

// GetAllTiposEstudio retrieves all tipo de estudio records from the database
func (s *TipoEstudioService) GetAllTiposEstudio() ([]models.TipoEstudioModel, error) {
	var tiposEstudio []models.TipoEstudioModel
	result := s.db.Find(&tiposEstudio)
	if result.Error != nil {
		return nil, result.Error
	}
	return tiposEstudio, nil
}

// CreateTipoEstudio creates a new TipoEstudio record in the database
func (s *TipoEstudioService) CreateTipoEstudio(tipoEstudio *models.TipoEstudioModel) (*models.TipoEstudioModel, error) {
	result := s.db.Create(tipoEstudio)
	if result.Error != nil {
		return nil, result.Error
	}
	return tipoEstudio, nil
}
