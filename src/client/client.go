// Package client is a Go consumer for the solicitudes API. Each entity has
// its own client over a shared Session; transport and server failures are
// normalized into APIError values with a human-readable message per HTTP
// status class.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// TokenSource is the capability a Session uses to read and store the auth
// token; the storage mechanism (memory, file, keychain) is up to the caller.
type TokenSource interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token in memory, safe for concurrent use.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (m *MemoryTokenStore) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryTokenStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	return m.SetToken("")
}

// Session holds everything needed to call the API: base URL, HTTP client
// and the token capability. Entity clients share one Session.
type Session struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenSource
}

// NewSession creates a Session over the given base URL. A nil tokens falls
// back to an in-memory store.
func NewSession(baseURL string, tokens TokenSource) *Session {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	return &Session{
		BaseURL: baseURL,
		HTTP:    http.DefaultClient,
		Tokens:  tokens,
	}
}

// APIError is the normalized form of any failed call.
type APIError struct {
	StatusCode int                 `json:"status"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// errorMessage maps a status class to the message shown to the user.
// StatusCode 0 means the request never reached the server.
func errorMessage(status int) string {
	switch {
	case status == 0:
		return "No se pudo conectar con el servidor"
	case status == http.StatusBadRequest:
		return "La petición es inválida"
	case status == http.StatusUnauthorized:
		return "Sesión expirada o no autenticada"
	case status == http.StatusForbidden:
		return "No tiene permisos para realizar esta operación"
	case status == http.StatusNotFound:
		return "El recurso solicitado no existe"
	case status == http.StatusUnprocessableEntity:
		return "Los datos enviados no son válidos"
	case status >= http.StatusInternalServerError:
		return "Error interno del servidor"
	default:
		return "Error inesperado del servidor"
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Any non-2xx response, and any transport failure, comes back as *APIError.
func (s *Session) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := s.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := s.Tokens.Token()
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return &APIError{StatusCode: 0, Message: errorMessage(0)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode)}
		// Keep the server's field errors when the envelope carries them
		var envelope struct {
			Errors map[string][]string `json:"errors"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Errors = envelope.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
