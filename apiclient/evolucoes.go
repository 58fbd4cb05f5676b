package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"plantonize-web/models"
)

type CreateEvolucaoInput struct {
	Titulo     string `json:"titulo"`
	Categoria  string `json:"categoria"`
	Conteudo   string `json:"conteudo"`
	AtribuidoA *int   `json:"atribuido_a"`
}

type UpdateEvolucaoInput struct {
	Titulo    string `json:"titulo"`
	Conteudo  string `json:"conteudo"`
	Categoria string `json:"categoria"`
}

// ListEvolucoes lists notes, optionally filtered server-side by assignee.
func (c *Client) ListEvolucoes(ctx context.Context, token, colaboradorID string) ([]models.Evolucao, error) {
	var params url.Values
	if colaboradorID != "" {
		params = url.Values{"colaborador": {colaboradorID}}
	}
	var evolucoes []models.Evolucao
	if err := c.do(ctx, "GET", "evolucoes/", params, token, nil, &evolucoes); err != nil {
		return nil, err
	}
	return evolucoes, nil
}

func (c *Client) GetEvolucao(ctx context.Context, token string, id int) (*models.Evolucao, error) {
	var ev models.Evolucao
	if err := c.do(ctx, "GET", fmt.Sprintf("evolucoes/%d/", id), nil, token, nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) CreateEvolucao(ctx context.Context, token string, in CreateEvolucaoInput) (*models.Evolucao, error) {
	var ev models.Evolucao
	if err := c.do(ctx, "POST", "evolucoes/", nil, token, in, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) UpdateEvolucao(ctx context.Context, token string, id int, in UpdateEvolucaoInput) (*models.Evolucao, error) {
	var ev models.Evolucao
	if err := c.do(ctx, "PATCH", fmt.Sprintf("evolucoes/%d/", id), nil, token, in, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) DeleteEvolucao(ctx context.Context, token string, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("evolucoes/%d/", id), nil, token, nil, nil)
}
