package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "bcaroutine_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the ambient middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
