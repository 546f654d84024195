package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/dtos"
	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
)

type SolicitudesClient struct {
	session *Session
}

func NewSolicitudesClient(session *Session) *SolicitudesClient {
	return &SolicitudesClient{session: session}
}

// List returns solicitudes with their relations, applying the optional
// estado and tipo_estudio_id filters
func (c *SolicitudesClient) List(ctx context.Context, filtro dtos.FiltroSolicitudDTO) ([]models.SolicitudModel, error) {
	query := url.Values{}
	if filtro.Estado != nil {
		query.Set("estado", *filtro.Estado)
	}
	if filtro.TipoEstudioId != nil {
		query.Set("tipo_estudio_id", strconv.Itoa(*filtro.TipoEstudioId))
	}

	var raw json.RawMessage
	if err := c.session.do(ctx, http.MethodGet, "/solicitudes", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.SolicitudModel](raw)
}

// Get returns one solicitud with its candidato and tipo de estudio
func (c *SolicitudesClient) Get(ctx context.Context, id int) (*models.SolicitudModel, error) {
	var solicitud models.SolicitudModel
	if err := c.session.do(ctx, http.MethodGet, fmt.Sprintf("/solicitudes/%d", id), nil, nil, &solicitud); err != nil {
		return nil, err
	}
	return &solicitud, nil
}

// Create registers a new solicitud for a candidato and tipo de estudio
func (c *SolicitudesClient) Create(ctx context.Context, candidatoId, tipoEstudioId int, estado string) (*models.SolicitudModel, error) {
	body := map[string]any{
		"candidato_id":    candidatoId,
		"tipo_estudio_id": tipoEstudioId,
		"estado":          estado,
	}
	var resp struct {
		Solicitud models.SolicitudModel `json:"solicitud"`
	}
	if err := c.session.do(ctx, http.MethodPost, "/solicitudes", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Solicitud, nil
}

// UpdateEstado moves a solicitud to another estado
func (c *SolicitudesClient) UpdateEstado(ctx context.Context, id int, estado string) (*models.SolicitudModel, error) {
	body := map[string]any{"estado": estado}
	var resp struct {
		Solicitud models.SolicitudModel `json:"solicitud"`
	}
	if err := c.session.do(ctx, http.MethodPut, fmt.Sprintf("/solicitudes/%d", id), nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Solicitud, nil
}

// Delete removes a solicitud
func (c *SolicitudesClient) Delete(ctx context.Context, id int) error {
	return c.session.do(ctx, http.MethodDelete, fmt.Sprintf("/solicitudes/%d", id), nil, nil, nil)
}

// Estadisticas returns the count of solicitudes grouped by estado
func (c *SolicitudesClient) Estadisticas(ctx context.Context) ([]dtos.SolicitudesPorEstadoDTO, error) {
	var conteos []dtos.SolicitudesPorEstadoDTO
	if err := c.session.do(ctx, http.MethodGet, "/solicitudes-estadisticas", nil, nil, &conteos); err != nil {
		return nil, err
	}
	return conteos, nil
}
