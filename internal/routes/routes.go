package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sekolahku/user-service/internal/config"
	"github.com/sekolahku/user-service/internal/handlers"
	"github.com/sekolahku/user-service/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	users := app.Group("/api/v1/users")

	// Reads are open; the gateway already authenticated the caller.
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Writes consume the asserted identity for audit stamps.
	identity := middleware.WithIdentity(cfg)
	users.Post("/", identity, userHandler.Create)
	users.Put("/:id", identity, userHandler.Update)
	users.Delete("/:id", identity, userHandler.Delete)
}
