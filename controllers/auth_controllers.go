package controllers

import (
	"errors"
	"log"
	"time"

	"plantonize-web/apiclient"
	middleware "plantonize-web/middlewares"
	"plantonize-web/models"
	"plantonize-web/repository"
	"plantonize-web/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	msgCredenciaisInvalidas = "Credenciais inválidas. Verifique seu usuário e senha."
	msgConfirmeRobo         = "Confirme que você não é um robô."
	msgRegistroFalhou       = "Erro ao registrar. Verifique se o CRM já está cadastrado ou tente novamente."
	msgRegistroSucesso      = "Cadastro realizado com sucesso! Você já pode fazer login no sistema."
)

type AuthController struct {
	backend    apiclient.Backend
	sessions   repository.SessionRepository
	cookieName string
	sessionTTL time.Duration
}

func NewAuthController(backend apiclient.Backend, sessions repository.SessionRepository, cookieName string, sessionTTL time.Duration) *AuthController {
	return &AuthController{
		backend:    backend,
		sessions:   sessions,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

func (ac *AuthController) ShowLogin(c *fiber.Ctx) error {
	// Already signed in? Straight to the dashboard.
	if sid := c.Cookies(ac.cookieName); sid != "" {
		if session, err := ac.sessions.Find(c.Context(), sid); err == nil && session != nil {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
	}
	return c.Render("login", fiber.Map{
		"Titulo":   "Acesso ao Sistema",
		"Username": "",
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := ac.backend.Login(c.Context(), username, password)
	if err != nil {
		log.Println("Erro no login:", err)
		return c.Render("login", fiber.Map{
			"Titulo":   "Acesso ao Sistema",
			"Erro":     msgCredenciaisInvalidas,
			"Username": username,
		})
	}

	sid := utils.GenerateSessionID()
	if err := ac.sessions.Save(c.Context(), sid, models.Session{Token: token, Username: username}); err != nil {
		log.Println("Erro ao salvar sessão:", err)
		return c.Render("login", fiber.Map{
			"Titulo":   "Acesso ao Sistema",
			"Erro":     msgCredenciaisInvalidas,
			"Username": username,
		})
	}

	c.Cookie(middleware.NewSessionCookie(ac.cookieName, sid, ac.sessionTTL))
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (ac *AuthController) ShowRegister(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{
		"Titulo":   "Cadastro de Colaborador",
		"Username": "",
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	// Local validation, no network call when the confirmation is missing.
	if c.FormValue("confirmo_profissional") == "" {
		return c.Render("register", fiber.Map{
			"Titulo":   "Cadastro de Colaborador",
			"Erro":     msgConfirmeRobo,
			"Username": username,
		})
	}

	if err := ac.backend.Register(c.Context(), username, password); err != nil {
		log.Println("Erro no registro:", err)
		erro := msgRegistroFalhou
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			erro = apiErr.Message
		}
		return c.Render("register", fiber.Map{
			"Titulo":   "Cadastro de Colaborador",
			"Erro":     erro,
			"Username": username,
		})
	}

	return c.Render("register", fiber.Map{
		"Titulo":   "Cadastro de Colaborador",
		"Mensagem": msgRegistroSucesso,
		"Username": "",
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if sid := middleware.SessionIDFromCtx(c); sid != "" {
		if err := ac.sessions.Delete(c.Context(), sid); err != nil {
			log.Println("Erro ao encerrar sessão:", err)
		}
	}
	middleware.ClearSessionCookie(c, ac.cookieName)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
