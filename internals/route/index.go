// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trabalhos_backend/internals/configs"
	authRoutes "trabalhos_backend/internals/features/auth/route"
	materialRoutes "trabalhos_backend/internals/features/materials/route"
	submissionRoutes "trabalhos_backend/internals/features/submissions/route"
	helper "trabalhos_backend/internals/helpers"
	"trabalhos_backend/internals/helpers/storage"
	"trabalhos_backend/internals/middlewares"
)

// SetupRoutes monta a árvore de rotas da API.
func SetupRoutes(app *fiber.App, db *gorm.DB, st *storage.LocalStorage, cfg *configs.AppConfig) {
	auth := app.Group("/auth", middlewares.LoginRateLimiter())
	authRoutes.AuthRoutes(auth, cfg)

	submissionRoutes.SubmissionRoutes(app.Group("/submissions"), db, st, cfg.JWTSecret)
	materialRoutes.MaterialRoutes(app.Group("/materials"), db, st, cfg.JWTSecret)

	// catch-all 404
	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Rota não encontrada.")
	})
}
