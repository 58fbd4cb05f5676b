package controllers

import (
	"errors"
	"log"
	"strconv"

	"plantonize-web/apiclient"
	middleware "plantonize-web/middlewares"
	"plantonize-web/models"
	"plantonize-web/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

const (
	msgCarregarEvolucao = "Não foi possível carregar a evolução. Verifique sua conexão ou tente novamente."
	msgSalvarEdicao     = "Erro ao salvar edição. Verifique os dados e tente novamente."
)

type VisualizarEvolucaoController struct {
	backend apiclient.Backend
}

func NewVisualizarEvolucaoController(backend apiclient.Backend) *VisualizarEvolucaoController {
	return &VisualizarEvolucaoController{backend: backend}
}

// load fetches the note and the current user jointly; either failing fails
// the pair, except a 404 on the note which maps to the not-found state.
func (vc *VisualizarEvolucaoController) load(c *fiber.Ctx, session *models.Session, id int) (*models.Evolucao, *models.Usuario, error) {
	var evolucao *models.Evolucao
	var usuario *models.Usuario

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		ev, err := vc.backend.GetEvolucao(ctx, session.Token, id)
		if err != nil {
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == fiber.StatusNotFound {
				return nil
			}
			return err
		}
		evolucao = ev
		return nil
	})
	g.Go(func() error {
		u, err := vc.backend.CurrentUser(ctx, session.Token)
		if err != nil {
			return err
		}
		usuario = u
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return evolucao, usuario, nil
}

func (vc *VisualizarEvolucaoController) render(c *fiber.Ctx, ev *models.Evolucao, usuario *models.Usuario, view fiber.Map) error {
	data := fiber.Map{
		"Titulo":        "Visualizar Evolução",
		"Evolucao":      ev,
		"Usuario":       usuario,
		"PodeEditar":    services.CanEdit(usuario, ev),
		"FormTitulo":    ev.Titulo,
		"FormCategoria": ev.Categoria,
		"FormConteudo":  ev.Conteudo,
	}
	for k, v := range view {
		data[k] = v
	}
	return c.Render("evolucao", data)
}

// Show resolves the three mutually exclusive states in priority order:
// fetch error, not found, detail.
func (vc *VisualizarEvolucaoController) Show(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "NaoEncontrada": true})
	}

	evolucao, usuario, err := vc.load(c, session, id)
	if err != nil {
		log.Println("Erro ao carregar evolução:", err)
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "Erro": msgCarregarEvolucao})
	}
	if evolucao == nil {
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "NaoEncontrada": true})
	}
	return vc.render(c, evolucao, usuario, fiber.Map{})
}

// ShowEditModal renders the detail with the edit modal open, pre-filled
// with the current field values.
func (vc *VisualizarEvolucaoController) ShowEditModal(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "NaoEncontrada": true})
	}

	evolucao, usuario, err := vc.load(c, session, id)
	if err != nil {
		log.Println("Erro ao carregar evolução:", err)
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "Erro": msgCarregarEvolucao})
	}
	if evolucao == nil {
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "NaoEncontrada": true})
	}
	return vc.render(c, evolucao, usuario, fiber.Map{"ModalAberto": true})
}

// Save PATCHes the editable fields. Success merges the confirmed fields
// into the already-fetched note (logs untouched, no refetch) and closes
// the modal; failure keeps the modal open with the entered values.
func (vc *VisualizarEvolucaoController) Save(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "NaoEncontrada": true})
	}

	evolucao, usuario, err := vc.load(c, session, id)
	if err != nil {
		log.Println("Erro ao carregar evolução:", err)
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "Erro": msgCarregarEvolucao})
	}
	if evolucao == nil {
		return c.Render("evolucao", fiber.Map{"Titulo": "Visualizar Evolução", "NaoEncontrada": true})
	}

	input := apiclient.UpdateEvolucaoInput{
		Titulo:    c.FormValue("titulo"),
		Conteudo:  c.FormValue("conteudo"),
		Categoria: c.FormValue("categoria"),
	}

	atualizada, err := vc.backend.UpdateEvolucao(c.Context(), session.Token, id, input)
	if err != nil {
		log.Println("Erro ao salvar edição:", err)
		return vc.render(c, evolucao, usuario, fiber.Map{
			"ModalAberto":   true,
			"ErroEdicao":    msgSalvarEdicao,
			"FormTitulo":    input.Titulo,
			"FormCategoria": input.Categoria,
			"FormConteudo":  input.Conteudo,
		})
	}

	evolucao.Titulo = atualizada.Titulo
	evolucao.Conteudo = atualizada.Conteudo
	evolucao.Categoria = atualizada.Categoria
	return vc.render(c, evolucao, usuario, fiber.Map{})
}
