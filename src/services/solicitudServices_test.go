package services

import (
	"testing"
	"time"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
)

func TestCreateSolicitudStampsFechaSolicitud(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	creada, err := service.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:   candidato.Id,
		TipoEstudioId: tipoEstudio.Id,
		Estado:        models.EstadoPendiente,
	})
	if err != nil {
		t.Fatalf("CreateSolicitud: %v", err)
	}
	if creada.FechaSolicitud.IsZero() {
		t.Error("fecha_solicitud was not stamped")
	}
	if creada.FechaCompletado != nil {
		t.Error("fecha_completado should start null")
	}
}

func TestCreateRulesRejectMissingReferences(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)

	fields := validation.Fields{
		"candidato_id":    float64(99),
		"tipo_estudio_id": float64(98),
		"estado":          models.EstadoPendiente,
	}
	errs := service.CreateRules().Validate(fields)
	if errs == nil {
		t.Fatal("expected validation errors for nonexistent references")
	}
	if len(errs["candidato_id"]) == 0 || len(errs["tipo_estudio_id"]) == 0 {
		t.Errorf("expected errors on both references, got %v", errs)
	}

	var count int64
	db.Model(&models.SolicitudModel{}).Count(&count)
	if count != 0 {
		t.Errorf("solicitudes count = %d, want 0", count)
	}
}

func TestCreateRulesRejectFractionalReferences(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	crearTipoEstudio(t, db, "Antecedentes")

	// 1.9 must not resolve to the row with id 1
	fields := validation.Fields{
		"candidato_id":    float64(candidato.Id) + 0.9,
		"tipo_estudio_id": float64(1.5),
		"estado":          models.EstadoPendiente,
	}
	errs := service.CreateRules().Validate(fields)
	if errs == nil {
		t.Fatal("expected validation errors for fractional references")
	}
	if len(errs["candidato_id"]) == 0 || len(errs["tipo_estudio_id"]) == 0 {
		t.Errorf("expected errors on both references, got %v", errs)
	}
}

func TestCreateRulesRejectUnknownEstado(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	fields := validation.Fields{
		"candidato_id":    float64(candidato.Id),
		"tipo_estudio_id": float64(tipoEstudio.Id),
		"estado":          "cancelada",
	}
	errs := service.CreateRules().Validate(fields)
	if errs == nil || len(errs["estado"]) == 0 {
		t.Fatalf("expected an estado error, got %v", errs)
	}
}

func TestUpdateSolicitudStampsFechaCompletado(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	solicitud, err := service.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:   candidato.Id,
		TipoEstudioId: tipoEstudio.Id,
		Estado:        models.EstadoPendiente,
	})
	if err != nil {
		t.Fatalf("CreateSolicitud: %v", err)
	}

	estado := models.EstadoCompletada
	actualizada, err := service.UpdateSolicitud(solicitud.Id, &dtos.SolicitudUpdateDTO{Estado: &estado})
	if err != nil {
		t.Fatalf("UpdateSolicitud: %v", err)
	}
	if actualizada.Estado != models.EstadoCompletada {
		t.Errorf("estado = %q, want completada", actualizada.Estado)
	}
	if actualizada.FechaCompletado == nil {
		t.Fatal("fecha_completado was not stamped on completion")
	}
}

func TestUpdateSolicitudKeepsExistingFechaCompletado(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	fecha := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	solicitud, err := service.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:     candidato.Id,
		TipoEstudioId:   tipoEstudio.Id,
		Estado:          models.EstadoEnProceso,
		FechaCompletado: &fecha,
	})
	if err != nil {
		t.Fatalf("CreateSolicitud: %v", err)
	}

	estado := models.EstadoCompletada
	actualizada, err := service.UpdateSolicitud(solicitud.Id, &dtos.SolicitudUpdateDTO{Estado: &estado})
	if err != nil {
		t.Fatalf("UpdateSolicitud: %v", err)
	}
	if actualizada.FechaCompletado == nil || !actualizada.FechaCompletado.Equal(fecha) {
		t.Errorf("fecha_completado = %v, want the original %v", actualizada.FechaCompletado, fecha)
	}
}

func TestUpdateSolicitudAllowsAnyTransition(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	solicitud, _ := service.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:   candidato.Id,
		TipoEstudioId: tipoEstudio.Id,
		Estado:        models.EstadoCompletada,
	})

	// Moving back from completada is allowed; estados no siguen un orden fijo
	estado := models.EstadoPendiente
	actualizada, err := service.UpdateSolicitud(solicitud.Id, &dtos.SolicitudUpdateDTO{Estado: &estado})
	if err != nil {
		t.Fatalf("UpdateSolicitud: %v", err)
	}
	if actualizada.Estado != models.EstadoPendiente {
		t.Errorf("estado = %q, want pendiente", actualizada.Estado)
	}
}

func TestGetAllSolicitudesFilters(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoA := crearTipoEstudio(t, db, "Estudio básico")
	tipoB := crearTipoEstudio(t, db, "Estudio académico")

	for _, s := range []models.SolicitudModel{
		{CandidatoId: candidato.Id, TipoEstudioId: tipoA.Id, Estado: models.EstadoPendiente},
		{CandidatoId: candidato.Id, TipoEstudioId: tipoB.Id, Estado: models.EstadoPendiente},
		{CandidatoId: candidato.Id, TipoEstudioId: tipoA.Id, Estado: models.EstadoCompletada},
	} {
		s := s
		if _, err := service.CreateSolicitud(&s); err != nil {
			t.Fatalf("CreateSolicitud: %v", err)
		}
	}

	estado := models.EstadoPendiente
	pendientes, err := service.GetAllSolicitudes(dtos.FiltroSolicitudDTO{Estado: &estado})
	if err != nil {
		t.Fatalf("GetAllSolicitudes: %v", err)
	}
	if len(pendientes) != 2 {
		t.Errorf("pendientes = %d, want 2", len(pendientes))
	}

	// Both filters combine with AND
	combinadas, err := service.GetAllSolicitudes(dtos.FiltroSolicitudDTO{Estado: &estado, TipoEstudioId: &tipoA.Id})
	if err != nil {
		t.Fatalf("GetAllSolicitudes: %v", err)
	}
	if len(combinadas) != 1 {
		t.Fatalf("combinadas = %d, want 1", len(combinadas))
	}

	// Relations come eagerly loaded
	if combinadas[0].Candidato == nil || combinadas[0].TipoEstudio == nil {
		t.Fatal("expected candidato and tipo_estudio to be preloaded")
	}
	if combinadas[0].TipoEstudio.Nombre != "Estudio básico" {
		t.Errorf("tipo_estudio.nombre = %q", combinadas[0].TipoEstudio.Nombre)
	}
}

func TestCantidadSolicitudesPorEstado(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	estados := []string{
		models.EstadoPendiente,
		models.EstadoPendiente,
		models.EstadoPendiente,
		models.EstadoCompletada,
	}
	for _, estado := range estados {
		if _, err := service.CreateSolicitud(&models.SolicitudModel{
			CandidatoId:   candidato.Id,
			TipoEstudioId: tipoEstudio.Id,
			Estado:        estado,
		}); err != nil {
			t.Fatalf("CreateSolicitud: %v", err)
		}
	}

	conteos, err := service.CantidadSolicitudesPorEstado()
	if err != nil {
		t.Fatalf("CantidadSolicitudesPorEstado: %v", err)
	}

	// en_proceso has no solicitudes so it must not appear
	if len(conteos) != 2 {
		t.Fatalf("grouped rows = %d, want 2: %v", len(conteos), conteos)
	}
	var total int64
	porEstado := map[string]int64{}
	for _, conteo := range conteos {
		total += conteo.Total
		porEstado[conteo.Estado] = conteo.Total
	}
	if total != int64(len(estados)) {
		t.Errorf("counts sum to %d, want %d", total, len(estados))
	}
	if porEstado[models.EstadoPendiente] != 3 || porEstado[models.EstadoCompletada] != 1 {
		t.Errorf("unexpected grouping: %v", porEstado)
	}
}

func TestExportarEstadisticas(t *testing.T) {
	db := newTestDB(t)
	service := NewSolicitudService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	if _, err := service.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:   candidato.Id,
		TipoEstudioId: tipoEstudio.Id,
		Estado:        models.EstadoPendiente,
	}); err != nil {
		t.Fatalf("CreateSolicitud: %v", err)
	}

	f, err := service.ExportarEstadisticas()
	if err != nil {
		t.Fatalf("ExportarEstadisticas: %v", err)
	}
	defer f.Close()

	estado, err := f.GetCellValue("Estadisticas", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if estado != models.EstadoPendiente {
		t.Errorf("A2 = %q, want pendiente", estado)
	}
	total, err := f.GetCellValue("Estadisticas", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if total != "1" {
		t.Errorf("B2 = %q, want 1", total)
	}
}
