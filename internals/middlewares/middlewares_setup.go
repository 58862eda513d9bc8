package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"agendai_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra a pilha base de middlewares da aplicação.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
