package services

import (
	"fmt"
	"time"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type SolicitudService struct {
	db *gorm.DB
}

// NewSolicitudService creates a new instance of SolicitudService
func NewSolicitudService(db *gorm.DB) *SolicitudService {
	return &SolicitudService{db: db}
}

// CreateRules returns the validation rules for creating a solicitud; the
// referenced candidato and tipo de estudio must exist
func (s *SolicitudService) CreateRules() validation.RuleSet {
	return validation.RuleSet{
		"candidato_id":    {validation.Required(), validation.Exists(s.db, "candidatos")},
		"tipo_estudio_id": {validation.Required(), validation.Exists(s.db, "tipos_estudio")},
		"estado":          {validation.Required(), validation.In(models.EstadosPermitidos()...)},
	}
}

// UpdateRules returns the validation rules for updating a solicitud
func (s *SolicitudService) UpdateRules() validation.RuleSet {
	return validation.RuleSet{
		"estado": {validation.In(models.EstadosPermitidos()...)},
	}
}

// FilterRules returns the validation rules for the list filters
func (s *SolicitudService) FilterRules() validation.RuleSet {
	return validation.RuleSet{
		"estado":          {validation.In(models.EstadosPermitidos()...)},
		"tipo_estudio_id": {validation.Exists(s.db, "tipos_estudio")},
	}
}

// GetAllSolicitudes retrieves solicitudes with their candidato and tipo de
// estudio, optionally filtered by estado and/or tipo_estudio_id
func (s *SolicitudService) GetAllSolicitudes(filtro dtos.FiltroSolicitudDTO) ([]models.SolicitudModel, error) {
	query := s.db.Preload("Candidato").Preload("TipoEstudio")

	if filtro.Estado != nil {
		query = query.Where("estado = ?", *filtro.Estado)
	}
	if filtro.TipoEstudioId != nil {
		query = query.Where("tipo_estudio_id = ?", *filtro.TipoEstudioId)
	}

	var solicitudes []models.SolicitudModel
	if err := query.Find(&solicitudes).Error; err != nil {
		return nil, err
	}
	return solicitudes, nil
}

// GetSolicitudByID retrieves a Solicitud record by ID with its relations
func (s *SolicitudService) GetSolicitudByID(id int) (*models.SolicitudModel, error) {
	var solicitud models.SolicitudModel
	result := s.db.Preload("Candidato").Preload("TipoEstudio").First(&solicitud, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &solicitud, nil
}

// CreateSolicitud creates a new Solicitud record, stamping fecha_solicitud
// with the current date
func (s *SolicitudService) CreateSolicitud(solicitud *models.SolicitudModel) (*models.SolicitudModel, error) {
	solicitud.FechaSolicitud = time.Now()
	result := s.db.Create(solicitud)
	if result.Error != nil {
		return nil, result.Error
	}
	return solicitud, nil
}

// UpdateSolicitud applies the supplied fields to an existing Solicitud.
// Cuando el estado pasa a completada y la solicitud aún no tiene
// fecha_completado, se estampa la fecha actual en el mismo guardado.
func (s *SolicitudService) UpdateSolicitud(id int, cambios *dtos.SolicitudUpdateDTO) (*models.SolicitudModel, error) {
	var solicitud models.SolicitudModel
	if err := s.db.First(&solicitud, id).Error; err != nil {
		return nil, err
	}

	if cambios.Estado != nil {
		solicitud.Estado = *cambios.Estado
		if *cambios.Estado == models.EstadoCompletada && solicitud.FechaCompletado == nil {
			now := time.Now()
			solicitud.FechaCompletado = &now
		}
	}
	if cambios.FechaCompletado != nil {
		solicitud.FechaCompletado = cambios.FechaCompletado
	}

	if err := s.db.Save(&solicitud).Error; err != nil {
		return nil, err
	}
	return &solicitud, nil
}

// DeleteSolicitud deletes a Solicitud record by ID
func (s *SolicitudService) DeleteSolicitud(id int) error {
	var solicitud models.SolicitudModel
	if err := s.db.First(&solicitud, id).Error; err != nil {
		return err
	}
	result := s.db.Delete(&solicitud)
	return result.Error
}

// CantidadSolicitudesPorEstado returns the number of solicitudes grouped by
// estado; estados sin solicitudes no aparecen en el resultado
func (s *SolicitudService) CantidadSolicitudesPorEstado() ([]dtos.SolicitudesPorEstadoDTO, error) {
	var conteos []dtos.SolicitudesPorEstadoDTO
	err := s.db.Model(&models.SolicitudModel{}).
		Select("estado, count(*) as total").
		Group("estado").
		Scan(&conteos).Error
	if err != nil {
		return nil, err
	}
	return conteos, nil
}

// ExportarEstadisticas builds an XLSX workbook with the grouped count by
// estado, ready to be streamed to the client
func (s *SolicitudService) ExportarEstadisticas() (*excelize.File, error) {
	conteos, err := s.CantidadSolicitudesPorEstado()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Estadisticas"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Estado")
	f.SetCellValue(sheet, "B1", "Total")
	for i, conteo := range conteos {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), conteo.Estado)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), conteo.Total)
	}

	return f, nil
}
