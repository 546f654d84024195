package client

import (
	"context"
	"net/http"

	"github.com/SolicitudesApp/Solicitudes-Backend/src/models"
)

type AuthClient struct {
	session *Session
}

func NewAuthClient(session *Session) *AuthClient {
	return &AuthClient{session: session}
}

// Login exchanges credentials for a token and stores it in the session
func (c *AuthClient) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	body := models.LoginRequest{Username: username, Password: password}
	if err := c.session.do(ctx, http.MethodPost, "/login", nil, body, &resp); err != nil {
		return err
	}
	return c.session.Tokens.SetToken(resp.Token)
}

// Logout revokes the server-side token and clears the stored one
func (c *AuthClient) Logout(ctx context.Context) error {
	if err := c.session.do(ctx, http.MethodPost, "/logout", nil, nil, nil); err != nil {
		return err
	}
	return c.session.Tokens.Clear()
}

// CurrentUser returns the authenticated user
func (c *AuthClient) CurrentUser(ctx context.Context) (*models.UserModel, error) {
	var resp struct {
		User models.UserModel `json:"user"`
	}
	if err := c.session.do(ctx, http.MethodGet, "/user", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
