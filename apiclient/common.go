package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"plantonize-web/models"
)

// APIError carries a non-2xx backend response. Message is the
// server-provided error string when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("apiclient: status %d", e.StatusCode)
}

// Backend is the surface of the Plantonize REST API the pages depend on.
// Controllers take this interface so tests can swap in a mock.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
	CurrentUser(ctx context.Context, token string) (*models.Usuario, error)
	ListUsuarios(ctx context.Context, token string) ([]models.Usuario, error)
	ListEvolucoes(ctx context.Context, token, colaboradorID string) ([]models.Evolucao, error)
	GetEvolucao(ctx context.Context, token string, id int) (*models.Evolucao, error)
	CreateEvolucao(ctx context.Context, token string, in CreateEvolucaoInput) (*models.Evolucao, error)
	UpdateEvolucao(ctx context.Context, token string, id int, in UpdateEvolucaoInput) (*models.Evolucao, error)
	DeleteEvolucao(ctx context.Context, token string, id int) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the given API base URL, e.g.
// "http://localhost:8000/api/". A trailing slash is ensured so relative
// paths concatenate the way the backend routes expect.
func New(baseURL string) *Client {
	if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// do runs one request against the backend. Bodies are JSON encoded, the
// bearer token is attached when present, and any 2xx body is decoded into
// out. Non-2xx responses become *APIError. No retries, no caching.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, token string, body, out interface{}) error {
	u := c.baseURL + path
	if len(params) != 0 {
		u += "?" + params.Encode()
	}

	var reader *bytes.Buffer
	if body != nil {
		reader = &bytes.Buffer{}
		if err := json.NewEncoder(reader).Encode(body); err != nil {
			return err
		}
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out != nil {
			return json.NewDecoder(res.Body).Decode(out)
		}
		return nil
	}

	apiErr := &APIError{StatusCode: res.StatusCode}
	var e struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(res.Body).Decode(&e); err == nil {
		if e.Error != "" {
			apiErr.Message = e.Error
		} else {
			apiErr.Message = e.Detail
		}
	}
	return apiErr
}
