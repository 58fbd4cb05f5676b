package routes

import (
	"plantonize-web/controllers"
	middleware "plantonize-web/middlewares"
	"plantonize-web/repository"

	"github.com/gofiber/fiber/v2"
)

func WebRoutes(
	app *fiber.App,
	sessions repository.SessionRepository,
	cookieName string,
	auth *controllers.AuthController,
	dashboard *controllers.DashboardController,
	criar *controllers.CriarEvolucaoController,
	visualizar *controllers.VisualizarEvolucaoController,
) {
	app.Get("/login", auth.ShowLogin)
	app.Post("/login", auth.Login)
	app.Get("/register", auth.ShowRegister)
	app.Post("/register", auth.Register)

	guard := middleware.RequireSession(sessions, cookieName)

	app.Post("/logout", guard, auth.Logout)

	app.Get("/dashboard", guard, dashboard.Show)
	app.Get("/dashboard/excluir/:id", guard, dashboard.ConfirmDelete)
	app.Post("/dashboard/excluir/:id", guard, dashboard.Delete)

	app.Get("/criar-evolucao", guard, criar.Show)
	app.Post("/criar-evolucao", guard, criar.Create)

	app.Get("/evolucao/:id", guard, visualizar.Show)
	app.Get("/evolucao/:id/editar", guard, visualizar.ShowEditModal)
	app.Post("/evolucao/:id/editar", guard, visualizar.Save)

	// Anything unmatched goes to login, like the SPA's catch-all route.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})
}
