// file: internals/features/materials/route/material_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "trabalhos_backend/internals/features/materials/controller"
	"trabalhos_backend/internals/helpers/storage"
	"trabalhos_backend/internals/middlewares/auth"
)

// MaterialRoutes: leitura para qualquer autenticado, escrita só admin.
// /subjects precisa vir antes de /:id para não ser capturado como id.
func MaterialRoutes(r fiber.Router, db *gorm.DB, st *storage.LocalStorage, jwtSecret string) {
	c := ctl.NewMaterialController(db, st)

	anyone := auth.AuthRequired(jwtSecret, "")
	admin := auth.AuthRequired(jwtSecret, "admin")

	r.Get("/", anyone, c.List)
	r.Get("/subjects", anyone, c.Subjects)
	r.Get("/:id", anyone, c.GetByID)
	r.Get("/:id/download", anyone, c.Download)
	r.Get("/:id/preview", anyone, c.Preview)

	r.Post("/", admin, c.Create)
	r.Patch("/:id", admin, c.Patch)
	r.Delete("/:id", admin, c.Delete)
}
