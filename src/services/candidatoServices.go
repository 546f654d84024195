package services

import (
	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
	"gorm.io/gorm"
)

type CandidatoService struct {
	db *gorm.DB
}

// NewCandidatoService creates a new instance of CandidatoService
func NewCandidatoService(db *gorm.DB) *CandidatoService {
	return &CandidatoService{db: db}
}

// CreateRules returns the validation rules for creating a candidato
func (s *CandidatoService) CreateRules() validation.RuleSet {
	return validation.RuleSet{
		"nombre":              {validation.Required(), validation.Max(100)},
		"apellido":            {validation.Required(), validation.Max(100)},
		"documento_identidad": {validation.Required(), validation.Unique(s.db, "candidatos", "documento_identidad")},
		"correo":              {validation.Required(), validation.Email(), validation.Unique(s.db, "candidatos", "correo")},
		"telefono":            {validation.Required(), validation.Digits(10)},
	}
}

// UpdateRules returns the validation rules for a partial update; every field
// is optional, only the ones present are checked
func (s *CandidatoService) UpdateRules() validation.RuleSet {
	return validation.RuleSet{
		"nombre":              {validation.Max(100)},
		"apellido":            {validation.Max(100)},
		"documento_identidad": {validation.Unique(s.db, "candidatos", "documento_identidad")},
		"correo":              {validation.Email(), validation.Unique(s.db, "candidatos", "correo")},
		"telefono":            {validation.Digits(10)},
	}
}

// GetAllCandidatos retrieves all candidato records from the database
func (s *CandidatoService) GetAllCandidatos() ([]models.CandidatoModel, error) {
	var candidatos []models.CandidatoModel
	result := s.db.Find(&candidatos)
	if result.Error != nil {
		return nil, result.Error
	}
	return candidatos, nil
}

// GetCandidatoByID retrieves a Candidato record by ID
func (s *CandidatoService) GetCandidatoByID(id int) (*models.CandidatoModel, error) {
	var candidato models.CandidatoModel
	result := s.db.First(&candidato, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &candidato, nil
}

// CreateCandidato creates a new Candidato record in the database
func (s *CandidatoService) CreateCandidato(candidato *models.CandidatoModel) (*models.CandidatoModel, error) {
	result := s.db.Create(candidato)
	if result.Error != nil {
		return nil, result.Error
	}
	return candidato, nil
}

// UpdateCandidato applies only the supplied fields to an existing Candidato
func (s *CandidatoService) UpdateCandidato(id int, cambios *dtos.CandidatoUpdateDTO) (*models.CandidatoModel, error) {
	var candidato models.CandidatoModel
	if err := s.db.First(&candidato, id).Error; err != nil {
		return nil, err
	}

	if cambios.Nombre != nil {
		candidato.Nombre = *cambios.Nombre
	}
	if cambios.Apellido != nil {
		candidato.Apellido = *cambios.Apellido
	}
	if cambios.DocumentoIdentidad != nil {
		candidato.DocumentoIdentidad = *cambios.DocumentoIdentidad
	}
	if cambios.Correo != nil {
		candidato.Correo = *cambios.Correo
	}
	if cambios.Telefono != nil {
		candidato.Telefono = *cambios.Telefono
	}

	if err := s.db.Save(&candidato).Error; err != nil {
		return nil, err
	}
	return &candidato, nil
}

// DeleteCandidato deletes a Candidato record by ID.
// Las solicitudes del candidato se eliminan en cascada (FK ON DELETE CASCADE).
func (s *CandidatoService) DeleteCandidato(id int) error {
	var candidato models.CandidatoModel
	if err := s.db.First(&candidato, id).Error; err != nil {
		return err
	}
	result := s.db.Delete(&candidato)
	return result.Error
}
