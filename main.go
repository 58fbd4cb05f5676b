package main

import (
	"log"

	"plantonize-web/apiclient"
	"plantonize-web/configs"
	"plantonize-web/controllers"
	"plantonize-web/repository"
	"plantonize-web/routes"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := configs.RegisterService(cfg); err != nil {
		log.Fatalf("Consul service registration failed: %v", err)
	}

	redisClient := configs.ConnectRedis(cfg)
	sessionRepo := repository.NewRedisSessionRepository(redisClient, cfg.Session.TTL)

	backend := apiclient.New(cfg.API.BaseURL)

	authController := controllers.NewAuthController(backend, sessionRepo, cfg.Session.CookieName, cfg.Session.TTL)
	dashboardController := controllers.NewDashboardController(backend, sessionRepo, cfg.Session.CookieName)
	criarController := controllers.NewCriarEvolucaoController(backend)
	visualizarController := controllers.NewVisualizarEvolucaoController(backend)

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	p := fiberprometheus.New("plantonize-web")
	p.RegisterAt(app, "/metrics")
	app.Use(p.Middleware)

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:4000",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	routes.WebRoutes(app, sessionRepo, cfg.Session.CookieName,
		authController, dashboardController, criarController, visualizarController)

	log.Printf("Starting server on %s...", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
