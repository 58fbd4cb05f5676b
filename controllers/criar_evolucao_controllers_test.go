package controllers_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"plantonize-web/apiclient"
	"plantonize-web/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criarBackend() *mockBackend {
	return &mockBackend{
		currentUser: adminUser(),
		usuarios: []models.Usuario{
			*adminUser(),
			{ID: 7, Username: "interno1", TipoUsuario: models.TipoColaborador},
			{ID: 8, Username: "interno2", TipoUsuario: models.TipoColaborador},
		},
	}
}

func TestCriarEvolucao_ShowDefaultsFirstCollaborator(t *testing.T) {
	backend := criarBackend()
	sessions := newMemorySessions()
	app := setupApp(backend, sessions)
	cookie := seedSession(t, sessions, "tok123", "doc1")

	req := httptest.NewRequest("GET", "/criar-evolucao", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "interno1")
	assert.Contains(t, body, "interno2")
	assert.NotContains(t, body, "doc1", "admins are not assignable")
	assert.Contains(t, body, `value="7" selected`, "first collaborator preselected")
}

func TestCriarEvolucao_EmptyTitleFailsLocally(t *testing.T) {
	backend := criarBackend()
	sessions := newMemorySessions()
	app := setupApp(backend, sessions)
	cookie := seedSession(t, sessions, "tok123", "doc1")

	req := formRequest("POST", "/criar-evolucao", url.Values{
		"titulo":      {""},
		"categoria":   {"UPA"},
		"conteudo":    {"Paciente estável."},
		"atribuido_a": {"7"},
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Preencha todos os campos obrigatórios.")
	assert.Equal(t, 0, backend.createCalls, "validation failure must not POST")
	assert.Contains(t, body, "Paciente estável.", "entered values preserved")
}

func TestCriarEvolucao_Success(t *testing.T) {
	backend := criarBackend()
	sessions := newMemorySessions()
	app := setupApp(backend, sessions)
	cookie := seedSession(t, sessions, "tok123", "doc1")

	req := formRequest("POST", "/criar-evolucao", url.Values{
		"titulo":      {"Evolução X"},
		"categoria":   {"PS"},
		"conteudo":    {"Conteúdo da evolução."},
		"atribuido_a": {"8"},
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Equal(t, 1, backend.createCalls)
	assert.Equal(t, "Evolução X", backend.lastCreate.Titulo)
	require.NotNil(t, backend.lastCreate.AtribuidoA)
	assert.Equal(t, 8, *backend.lastCreate.AtribuidoA)

	assert.Contains(t, body, "Evolução criada com sucesso!")
	assert.Contains(t, body, `content="2;url=/dashboard"`, "delayed redirect to the dashboard")
	assert.NotContains(t, body, "Conteúdo da evolução.", "form cleared after success")
	assert.Contains(t, body, `value="7" selected`, "assignee back to default")
}

func TestCriarEvolucao_NoAssignee(t *testing.T) {
	backend := criarBackend()
	sessions := newMemorySessions()
	app := setupApp(backend, sessions)
	cookie := seedSession(t, sessions, "tok123", "doc1")

	req := formRequest("POST", "/criar-evolucao", url.Values{
		"titulo":      {"Evolução X"},
		"categoria":   {"PS"},
		"conteudo":    {"Texto."},
		"atribuido_a": {""},
	})
	req.AddCookie(cookie)
	_, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Nil(t, backend.lastCreate.AtribuidoA, "empty selection means null assignee")
}

func TestCriarEvolucao_SaveFailureKeepsForm(t *testing.T) {
	backend := criarBackend()
	backend.createErr = &apiclient.APIError{StatusCode: fiber.StatusBadRequest}
	sessions := newMemorySessions()
	app := setupApp(backend, sessions)
	cookie := seedSession(t, sessions, "tok123", "doc1")

	req := formRequest("POST", "/criar-evolucao", url.Values{
		"titulo":      {"Evolução X"},
		"categoria":   {"PS"},
		"conteudo":    {"Texto que deve permanecer."},
		"atribuido_a": {"7"},
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Erro ao salvar evolução. Verifique os campos e tente novamente.")
	assert.Contains(t, body, "Texto que deve permanecer.")
	assert.Contains(t, body, `value="Evolução X"`)
}

func TestCriarEvolucao_CollaboratorFetchFailure(t *testing.T) {
	backend := criarBackend()
	backend.usuariosErr = &apiclient.APIError{StatusCode: fiber.StatusInternalServerError}
	sessions := newMemorySessions()
	app := setupApp(backend, sessions)
	cookie := seedSession(t, sessions, "tok123", "doc1")

	req := httptest.NewRequest("GET", "/criar-evolucao", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Contains(t, bodyOf(t, resp), "Erro ao carregar colaboradores para atribuição.")
}
