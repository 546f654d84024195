package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
)

type CandidatosClient struct {
	session *Session
}

func NewCandidatosClient(session *Session) *CandidatosClient {
	return &CandidatosClient{session: session}
}

// List returns all candidatos. The API answers with a message envelope
// instead of an array when there are none.
func (c *CandidatosClient) List(ctx context.Context) ([]models.CandidatoModel, error) {
	var raw json.RawMessage
	if err := c.session.do(ctx, http.MethodGet, "/candidatos", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.CandidatoModel](raw)
}

// Get returns one candidato by id
func (c *CandidatosClient) Get(ctx context.Context, id int) (*models.CandidatoModel, error) {
	var resp struct {
		Candidato models.CandidatoModel `json:"candidato"`
	}
	if err := c.session.do(ctx, http.MethodGet, fmt.Sprintf("/candidatos/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Candidato, nil
}

// Create registers a new candidato and returns it with its assigned id
func (c *CandidatosClient) Create(ctx context.Context, candidato *models.CandidatoModel) (*models.CandidatoModel, error) {
	var resp struct {
		Candidato models.CandidatoModel `json:"candidato"`
	}
	if err := c.session.do(ctx, http.MethodPost, "/candidatos", nil, candidato, &resp); err != nil {
		return nil, err
	}
	return &resp.Candidato, nil
}

// Update sends a partial update; only the keys present in cambios are
// validated and applied by the server
func (c *CandidatosClient) Update(ctx context.Context, id int, cambios map[string]any) (*models.CandidatoModel, error) {
	var resp struct {
		Candidato models.CandidatoModel `json:"candidato"`
	}
	if err := c.session.do(ctx, http.MethodPut, fmt.Sprintf("/candidatos/%d", id), nil, cambios, &resp); err != nil {
		return nil, err
	}
	return &resp.Candidato, nil
}

// Delete removes a candidato (and, by cascade, its solicitudes)
func (c *CandidatosClient) Delete(ctx context.Context, id int) error {
	return c.session.do(ctx, http.MethodDelete, fmt.Sprintf("/candidatos/%d", id), nil, nil, nil)
}

// decodeList tolerates the empty-result message envelope: anything that is
// not a JSON array decodes as an empty slice.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || raw[0] != '[' {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
