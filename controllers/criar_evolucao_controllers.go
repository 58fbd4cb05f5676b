package controllers

import (
	"log"
	"strconv"
	"strings"

	"plantonize-web/apiclient"
	middleware "plantonize-web/middlewares"
	"plantonize-web/models"
	"plantonize-web/services"

	"github.com/gofiber/fiber/v2"
)

const (
	msgColaboradoresFalhou = "Erro ao carregar colaboradores para atribuição."
	msgCamposObrigatorios  = "Preencha todos os campos obrigatórios."
	msgSalvarEvolucao      = "Erro ao salvar evolução. Verifique os campos e tente novamente."
	msgEvolucaoCriada      = "Evolução criada com sucesso!"
)

type CriarEvolucaoController struct {
	backend apiclient.Backend
}

func NewCriarEvolucaoController(backend apiclient.Backend) *CriarEvolucaoController {
	return &CriarEvolucaoController{backend: backend}
}

func (cc *CriarEvolucaoController) colaboradores(c *fiber.Ctx, session *models.Session) ([]models.Usuario, string) {
	users, err := cc.backend.ListUsuarios(c.Context(), session.Token)
	if err != nil {
		log.Println("Erro ao carregar colaboradores:", err)
		return nil, msgColaboradoresFalhou
	}
	return services.SomenteColaboradores(users), ""
}

func (cc *CriarEvolucaoController) Show(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	colaboradores, erro := cc.colaboradores(c, session)

	// First collaborator preselected when any exist.
	atribuido := ""
	if len(colaboradores) > 0 {
		atribuido = strconv.Itoa(colaboradores[0].ID)
	}

	return c.Render("criar_evolucao", fiber.Map{
		"Titulo":        "Criar Nova Evolução",
		"Colaboradores": colaboradores,
		"AtribuidoA":    atribuido,
		"FormTitulo":    "",
		"FormCategoria": "",
		"FormConteudo":  "",
		"Erro":          erro,
	})
}

func (cc *CriarEvolucaoController) Create(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)

	titulo := c.FormValue("titulo")
	categoria := c.FormValue("categoria")
	conteudo := c.FormValue("conteudo")
	atribuido := c.FormValue("atribuido_a")

	colaboradores, erroColab := cc.colaboradores(c, session)

	// Required fields fail locally; no request leaves the client.
	if strings.TrimSpace(titulo) == "" || strings.TrimSpace(categoria) == "" || strings.TrimSpace(conteudo) == "" {
		return c.Render("criar_evolucao", fiber.Map{
			"Titulo":        "Criar Nova Evolução",
			"Colaboradores": colaboradores,
			"AtribuidoA":    atribuido,
			"FormTitulo":    titulo,
			"FormCategoria": categoria,
			"FormConteudo":  conteudo,
			"Erro":          msgCamposObrigatorios,
		})
	}

	input := apiclient.CreateEvolucaoInput{
		Titulo:    titulo,
		Categoria: categoria,
		Conteudo:  conteudo,
	}
	if atribuido != "" {
		if id, err := strconv.Atoi(atribuido); err == nil {
			input.AtribuidoA = &id
		}
	}

	if _, err := cc.backend.CreateEvolucao(c.Context(), session.Token, input); err != nil {
		log.Println("Erro ao salvar evolução:", err)
		return c.Render("criar_evolucao", fiber.Map{
			"Titulo":        "Criar Nova Evolução",
			"Colaboradores": colaboradores,
			"AtribuidoA":    atribuido,
			"FormTitulo":    titulo,
			"FormCategoria": categoria,
			"FormConteudo":  conteudo,
			"Erro":          msgSalvarEvolucao,
		})
	}

	// Cleared form, assignee back to the default, short delayed redirect
	// to the dashboard via the template's meta refresh.
	atribuido = ""
	if len(colaboradores) > 0 {
		atribuido = strconv.Itoa(colaboradores[0].ID)
	}
	return c.Render("criar_evolucao", fiber.Map{
		"Titulo":        "Criar Nova Evolução",
		"Colaboradores": colaboradores,
		"AtribuidoA":    atribuido,
		"FormTitulo":    "",
		"FormCategoria": "",
		"FormConteudo":  "",
		"Mensagem":      msgEvolucaoCriada,
		"Redirecionar":  true,
		"Erro":          erroColab,
	})
}
