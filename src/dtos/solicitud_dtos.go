package dtos

import "time"

// FiltroSolicitudDTO holds the optional list filters; both combine with AND.
type FiltroSolicitudDTO struct {
	Estado        *string
	TipoEstudioId *int
}

// SolicitudUpdateDTO carries the fields supplied in a solicitud update.
type SolicitudUpdateDTO struct {
	Estado          *string    `json:"estado"`
	FechaCompletado *time.Time `json:"fecha_completado"`
}

// SolicitudesPorEstadoDTO is one row of the grouped count by estado.
type SolicitudesPorEstadoDTO struct {
	Estado string `json:"estado"`
	Total  int64  `json:"total"`
}
