package routes

import (
	"github.com/gofiber/fiber/v2"

	"trabalhos_backend/internals/configs"
	authCtl "trabalhos_backend/internals/features/auth/controller"
)

func AuthRoutes(r fiber.Router, cfg *configs.AppConfig) {
	ctl := authCtl.NewAuthController(cfg)

	r.Post("/student-login", ctl.StudentLogin)
	r.Post("/admin-login", ctl.AdminLogin)
}
