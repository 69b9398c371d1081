// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"trabalhos_backend/internals/configs"
	helper "trabalhos_backend/internals/helpers"
)

/* =======================================================
   Controller
   ======================================================= */

type AuthController struct {
	Cfg *configs.AppConfig
}

func NewAuthController(cfg *configs.AppConfig) *AuthController {
	return &AuthController{Cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StudentLogin: POST /auth/student-login
func (ctl *AuthController) StudentLogin(c *fiber.Ctx) error {
	return ctl.login(c, ctl.Cfg.StudentUser, ctl.Cfg.StudentPass, "student",
		"Credenciais de aluno inválidas.")
}

// AdminLogin: POST /auth/admin-login
func (ctl *AuthController) AdminLogin(c *fiber.Ctx) error {
	return ctl.login(c, ctl.Cfg.AdminUser, ctl.Cfg.AdminPass, "admin",
		"Credenciais de admin inválidas.")
}

func (ctl *AuthController) login(c *fiber.Ctx, wantUser, wantPass, role, badCredMsg string) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido.")
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Usuário e senha são obrigatórios.")
	}

	if req.Username != wantUser || req.Password != wantPass {
		return helper.JsonError(c, fiber.StatusUnauthorized, badCredMsg)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ctl.Cfg.JWTExpires).Unix(),
	})
	signed, err := token.SignedString([]byte(ctl.Cfg.JWTSecret))
	if err != nil {
		log.Printf("[AUTH ERROR] assinatura do token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno do servidor.")
	}

	return helper.JsonOK(c, fiber.Map{
		"token": signed,
		"role":  role,
	})
}
