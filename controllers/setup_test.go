package controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"plantonize-web/controllers"
	"plantonize-web/models"
	"plantonize-web/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
)

const testCookie = "plantonize_session"

func setupApp(backend *mockBackend, sessions *memorySessions) *fiber.App {
	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	auth := controllers.NewAuthController(backend, sessions, testCookie, time.Hour)
	dashboard := controllers.NewDashboardController(backend, sessions, testCookie)
	criar := controllers.NewCriarEvolucaoController(backend)
	visualizar := controllers.NewVisualizarEvolucaoController(backend)

	routes.WebRoutes(app, sessions, testCookie, auth, dashboard, criar, visualizar)
	return app
}

// seedSession stores a logged-in session and returns its cookie.
func seedSession(t *testing.T, sessions *memorySessions, token, username string) *http.Cookie {
	t.Helper()
	err := sessions.Save(context.Background(), "sid-test", models.Session{Token: token, Username: username})
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: "sid-test"}
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func intPtr(v int) *int {
	return &v
}

func fixtureEvolucoes() []models.Evolucao {
	return []models.Evolucao{
		{ID: 1, Titulo: "Evolução Clínica", Categoria: "UPA", Conteudo: "Paciente estável.", DataCriacao: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Titulo: "Retorno ambulatorial", Categoria: "Posto", Conteudo: "Sem queixas.", DataCriacao: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)},
	}
}

func adminUser() *models.Usuario {
	return &models.Usuario{ID: 1, Username: "doc1", TipoUsuario: models.TipoAdmin}
}

func colaboradorUser() *models.Usuario {
	return &models.Usuario{ID: 7, Username: "interno1", TipoUsuario: models.TipoColaborador}
}
