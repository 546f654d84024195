package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
)

type TiposEstudioClient struct {
	session *Session
}

func NewTiposEstudioClient(session *Session) *TiposEstudioClient {
	return &TiposEstudioClient{session: session}
}

// List returns all tipos de estudio
func (c *TiposEstudioClient) List(ctx context.Context) ([]models.TipoEstudioModel, error) {
	var raw json.RawMessage
	if err := c.session.do(ctx, http.MethodGet, "/tiposEstudio", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.TipoEstudioModel](raw)
}

// Create registers a new tipo de estudio
func (c *TiposEstudioClient) Create(ctx context.Context, tipoEstudio *models.TipoEstudioModel) (*models.TipoEstudioModel, error) {
	var resp struct {
		TipoEstudio models.TipoEstudioModel `json:"tipoEstudio"`
	}
	if err := c.session.do(ctx, http.MethodPost, "/tiposEstudio", nil, tipoEstudio, &resp); err != nil {
		return nil, err
	}
	return &resp.TipoEstudio, nil
}
