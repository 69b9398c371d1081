// file: internals/features/submissions/route/submission_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "trabalhos_backend/internals/features/submissions/controller"
	"trabalhos_backend/internals/helpers/storage"
	"trabalhos_backend/internals/middlewares/auth"
)

// SubmissionRoutes: POST é do aluno, todo o resto é do admin.
func SubmissionRoutes(r fiber.Router, db *gorm.DB, st *storage.LocalStorage, jwtSecret string) {
	c := ctl.NewSubmissionController(db, st)

	student := auth.AuthRequired(jwtSecret, "student")
	admin := auth.AuthRequired(jwtSecret, "admin")

	r.Post("/", student, c.Create)

	r.Get("/", admin, c.List)
	r.Get("/export/csv", admin, c.ExportCSV)
	r.Get("/:id", admin, c.GetByID)
	r.Get("/:id/download", admin, c.Download)
	r.Get("/:id/preview", admin, c.Preview)
	r.Patch("/:id", admin, c.Patch)
}
