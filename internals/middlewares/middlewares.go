package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trabalhos_backend/internals/configs"
	loggerMW "trabalhos_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem correta.
func SetupMiddlewares(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(requestid.New())
	app.Use(CorsMiddleware(cfg.CORSOrigin))
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
