package apiclient

import (
	"context"

	"plantonize-web/models"
)

// CurrentUser fetches the authenticated user. A failure here is how the
// pages discover an expired or revoked token.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.Usuario, error) {
	var u models.Usuario
	if err := c.do(ctx, "GET", "usuario/", nil, token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsuarios(ctx context.Context, token string) ([]models.Usuario, error) {
	var users []models.Usuario
	if err := c.do(ctx, "GET", "usuarios/", nil, token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
