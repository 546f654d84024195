package services

import (
	"errors"
	"testing"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/validation"
	"gorm.io/gorm"
)

func TestCreateAndGetCandidato(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)

	creado, err := service.CreateCandidato(&models.CandidatoModel{
		Nombre:             "Ana",
		Apellido:           "García",
		DocumentoIdentidad: "1020304050",
		Correo:             "ana@example.com",
		Telefono:           "3001234567",
	})
	if err != nil {
		t.Fatalf("CreateCandidato: %v", err)
	}
	if creado.Id == 0 {
		t.Fatal("expected an assigned id")
	}

	leido, err := service.GetCandidatoByID(creado.Id)
	if err != nil {
		t.Fatalf("GetCandidatoByID: %v", err)
	}
	if leido.Correo != "ana@example.com" {
		t.Errorf("correo = %q, want ana@example.com", leido.Correo)
	}
}

func TestCreateRulesRejectDuplicates(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)
	crearCandidato(t, db, "1020304050", "ana@example.com")

	fields := validation.Fields{
		"nombre":              "Luis",
		"apellido":            "Pérez",
		"documento_identidad": "1020304050",
		"correo":              "ana@example.com",
		"telefono":            "3009876543",
	}
	errs := service.CreateRules().Validate(fields)
	if errs == nil {
		t.Fatal("expected validation errors for duplicated documento and correo")
	}
	if len(errs["documento_identidad"]) == 0 {
		t.Error("expected a documento_identidad error")
	}
	if len(errs["correo"]) == 0 {
		t.Error("expected a correo error")
	}

	// No write happened
	var count int64
	db.Model(&models.CandidatoModel{}).Count(&count)
	if count != 1 {
		t.Errorf("candidatos count = %d, want 1", count)
	}
}

func TestCreateRulesRejectNumericStringFields(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)

	// JSON numbers in the string fields must fail validation, not
	// coerce to empty strings on the model
	fields := validation.Fields{
		"nombre":              float64(123),
		"apellido":            float64(456),
		"documento_identidad": float64(1020304050),
		"correo":              float64(789),
		"telefono":            float64(3001234567),
	}
	errs := service.CreateRules().Validate(fields)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	for _, campo := range []string{"nombre", "apellido", "documento_identidad", "correo", "telefono"} {
		if len(errs[campo]) == 0 {
			t.Errorf("expected an error for %s, got %v", campo, errs)
		}
	}

	var total int64
	db.Model(&models.CandidatoModel{}).Count(&total)
	if total != 0 {
		t.Errorf("candidatos = %d, want 0", total)
	}
}

func TestUpdateCandidatoPartial(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)
	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")

	telefono := "3000000000"
	actualizado, err := service.UpdateCandidato(candidato.Id, &dtos.CandidatoUpdateDTO{Telefono: &telefono})
	if err != nil {
		t.Fatalf("UpdateCandidato: %v", err)
	}

	if actualizado.Telefono != "3000000000" {
		t.Errorf("telefono = %q, want 3000000000", actualizado.Telefono)
	}
	// The untouched fields stay as they were
	if actualizado.Nombre != "Ana" || actualizado.Apellido != "García" {
		t.Errorf("nombre/apellido changed: %q %q", actualizado.Nombre, actualizado.Apellido)
	}
	if actualizado.DocumentoIdentidad != "1020304050" || actualizado.Correo != "ana@example.com" {
		t.Errorf("documento/correo changed: %q %q", actualizado.DocumentoIdentidad, actualizado.Correo)
	}
}

func TestUpdateCandidatoNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)

	nombre := "Luis"
	_, err := service.UpdateCandidato(99, &dtos.CandidatoUpdateDTO{Nombre: &nombre})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestDeleteCandidatoCascadesSolicitudes(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)
	solicitudes := NewSolicitudService(db)

	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	otro := crearCandidato(t, db, "6070809010", "luis@example.com")
	tipoEstudio := crearTipoEstudio(t, db, "Estudio básico")

	if _, err := solicitudes.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:   candidato.Id,
		TipoEstudioId: tipoEstudio.Id,
		Estado:        models.EstadoPendiente,
	}); err != nil {
		t.Fatalf("CreateSolicitud: %v", err)
	}
	if _, err := solicitudes.CreateSolicitud(&models.SolicitudModel{
		CandidatoId:   otro.Id,
		TipoEstudioId: tipoEstudio.Id,
		Estado:        models.EstadoPendiente,
	}); err != nil {
		t.Fatalf("CreateSolicitud: %v", err)
	}

	if err := service.DeleteCandidato(candidato.Id); err != nil {
		t.Fatalf("DeleteCandidato: %v", err)
	}

	var count int64
	db.Model(&models.SolicitudModel{}).Count(&count)
	if count != 1 {
		t.Errorf("solicitudes count after cascade = %d, want 1", count)
	}
	var restante models.SolicitudModel
	if err := db.First(&restante).Error; err != nil {
		t.Fatalf("reading remaining solicitud: %v", err)
	}
	if restante.CandidatoId != otro.Id {
		t.Errorf("remaining solicitud belongs to %d, want %d", restante.CandidatoId, otro.Id)
	}
}

func TestDeleteCandidatoWithoutSolicitudes(t *testing.T) {
	db := newTestDB(t)
	service := NewCandidatoService(db)

	candidato := crearCandidato(t, db, "1020304050", "ana@example.com")
	otro := crearCandidato(t, db, "6070809010", "luis@example.com")

	if err := service.DeleteCandidato(candidato.Id); err != nil {
		t.Fatalf("DeleteCandidato: %v", err)
	}

	if _, err := service.GetCandidatoByID(otro.Id); err != nil {
		t.Errorf("unrelated candidato was affected: %v", err)
	}
	if err := service.DeleteCandidato(99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
