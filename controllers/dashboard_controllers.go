package controllers

import (
	"log"
	"strconv"

	"plantonize-web/apiclient"
	middleware "plantonize-web/middlewares"
	"plantonize-web/models"
	"plantonize-web/repository"
	"plantonize-web/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

const (
	msgCarregarEvolucoes = "Não foi possível carregar as evoluções. Tente novamente mais tarde."
	msgExcluirEvolucao   = "Erro ao excluir evolução. Tente novamente."
)

type DashboardController struct {
	backend    apiclient.Backend
	sessions   repository.SessionRepository
	cookieName string
}

func NewDashboardController(backend apiclient.Backend, sessions repository.SessionRepository, cookieName string) *DashboardController {
	return &DashboardController{backend: backend, sessions: sessions, cookieName: cookieName}
}

// dashboardData is everything one dashboard render needs, fetched jointly.
type dashboardData struct {
	Usuario       *models.Usuario
	Colaboradores []models.Usuario
	Evolucoes     []models.Evolucao
	Erro          string
}

// load fans out the three page fetches. A failing "who am I" cancels the
// siblings and is reported as a session invalidation (nil data). The
// collaborator list failing only empties the dropdown; the note list
// failing becomes a page-level message.
func (dc *DashboardController) load(c *fiber.Ctx, session *models.Session, colaboradorID string) (*dashboardData, error) {
	data := &dashboardData{}

	var listErr error
	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		usuario, err := dc.backend.CurrentUser(ctx, session.Token)
		data.Usuario = usuario
		return err
	})
	g.Go(func() error {
		users, err := dc.backend.ListUsuarios(ctx, session.Token)
		if err != nil {
			log.Println("Erro ao buscar colaboradores:", err)
			return nil
		}
		data.Colaboradores = services.SomenteColaboradores(users)
		return nil
	})
	g.Go(func() error {
		evolucoes, err := dc.backend.ListEvolucoes(ctx, session.Token, colaboradorID)
		if err != nil {
			listErr = err
			return nil
		}
		data.Evolucoes = evolucoes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if listErr != nil {
		log.Println("Erro ao carregar evoluções:", listErr)
		data.Erro = msgCarregarEvolucoes
	}
	return data, nil
}

// invalidateSession clears the server-side session and cookie and sends
// the user back to login. Single attempt, no retry.
func (dc *DashboardController) invalidateSession(c *fiber.Ctx) error {
	log.Println("Erro ao buscar usuário logado, encerrando sessão.")
	if sid := middleware.SessionIDFromCtx(c); sid != "" {
		_ = dc.sessions.Delete(c.Context(), sid)
	}
	middleware.ClearSessionCookie(c, dc.cookieName)
	return c.Redirect("/login", fiber.StatusFound)
}

func (dc *DashboardController) render(c *fiber.Ctx, data *dashboardData, busca string, filtro string, confirmarID int, erro string) error {
	if erro == "" {
		erro = data.Erro
	}
	return c.Render("dashboard", fiber.Map{
		"Titulo":            "Dashboard",
		"Usuario":           data.Usuario,
		"Colaboradores":     data.Colaboradores,
		"FiltroColaborador": filtro,
		"Busca":             busca,
		"Evolucoes":         services.FilterEvolucoes(data.Evolucoes, busca),
		"ConfirmarExclusao": confirmarID,
		"Erro":              erro,
	})
}

func (dc *DashboardController) Show(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	filtro := c.Query("colaborador")
	busca := c.Query("busca")

	data, err := dc.load(c, session, filtro)
	if err != nil {
		return dc.invalidateSession(c)
	}
	return dc.render(c, data, busca, filtro, 0, "")
}

// ConfirmDelete re-renders the dashboard with the confirmation modal open
// for the selected note. Cancelling is a plain link back, list untouched.
func (dc *DashboardController) ConfirmDelete(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	filtro := c.Query("colaborador")
	busca := c.Query("busca")

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	data, err := dc.load(c, session, filtro)
	if err != nil {
		return dc.invalidateSession(c)
	}
	return dc.render(c, data, busca, filtro, id, "")
}

// Delete issues the DELETE and, on success, renders the list with the note
// removed locally instead of refetching. On failure the list is unchanged
// and an error message is shown.
func (dc *DashboardController) Delete(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	filtro := c.Query("colaborador")
	busca := c.Query("busca")

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	data, err := dc.load(c, session, filtro)
	if err != nil {
		return dc.invalidateSession(c)
	}

	if err := dc.backend.DeleteEvolucao(c.Context(), session.Token, id); err != nil {
		log.Println("Erro ao excluir evolução:", err)
		return dc.render(c, data, busca, filtro, 0, msgExcluirEvolucao)
	}

	data.Evolucoes = services.RemoveEvolucao(data.Evolucoes, id)
	return dc.render(c, data, busca, filtro, 0, "")
}
