package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/config"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/database"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if cfg.DBUrl == "" {
		appLogger.Fatal("DB_URL is required")
	}
	pool, err := database.Connect(context.Background(), cfg.DBUrl)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", "error", err)
	}
	defer pool.Close()

	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024,
	})

	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, pool, appLogger); err != nil {
		appLogger.Fatal("Failed to register routes", "error", err)
	}

	appLogger.Info("Server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}
