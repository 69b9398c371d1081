package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"trabalhos_backend/internals/configs"
)

func testApp() (*fiber.App, *configs.AppConfig) {
	cfg := &configs.AppConfig{
		AdminUser:   "admin",
		AdminPass:   "admin123",
		StudentUser: "aluno",
		StudentPass: "123456",
		JWTSecret:   "segredo-de-teste",
		JWTExpires:  8 * time.Hour,
	}

	app := fiber.New()
	ctl := NewAuthController(cfg)
	app.Post("/auth/student-login", ctl.StudentLogin)
	app.Post("/auth/admin-login", ctl.AdminLogin)
	return app, cfg
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var out map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestStudentLoginSuccess(t *testing.T) {
	app, cfg := testApp()

	status, body := postJSON(t, app, "/auth/student-login",
		`{"username":"aluno","password":"123456"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "student", body["role"])

	// token assinado com o secret e carregando o role certo
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(body["token"].(string), claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)
	assert.Equal(t, "student", claims["role"])
}

func TestAdminLoginSuccess(t *testing.T) {
	app, _ := testApp()

	status, body := postJSON(t, app, "/auth/admin-login",
		`{"username":"admin","password":"admin123"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := testApp()

	status, body := postJSON(t, app, "/auth/student-login",
		`{"username":"aluno","password":"errada"}`)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Credenciais de aluno inválidas.", body["error"])
}

func TestLoginCrossRoleCredentialsRejected(t *testing.T) {
	app, _ := testApp()

	// credencial de admin no endpoint de aluno não vale
	status, _ := postJSON(t, app, "/auth/student-login",
		`{"username":"admin","password":"admin123"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := testApp()

	for _, body := range []string{
		`{}`,
		`{"username":"aluno"}`,
		`{"username":"","password":"123456"}`,
		`{"username":"   ","password":"123456"}`,
	} {
		status, out := postJSON(t, app, "/auth/admin-login", body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body %s", body)
		assert.Equal(t, "Usuário e senha são obrigatórios.", out["error"])
	}
}

func TestLoginMalformedJSON(t *testing.T) {
	app, _ := testApp()

	status, _ := postJSON(t, app, "/auth/admin-login", `{"username":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
