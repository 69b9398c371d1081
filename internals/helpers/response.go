package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error responses ({error: msg})
=================================*/

// JsonError devolve o envelope de erro padrão da API: {"error": "<mensagem>"}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Erro interno do servidor."
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// FromFiberError converte *fiber.Error (vindo de middleware/handler) para o
// envelope {error}. Qualquer outro erro vira 500 genérico.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		// corpo maior que o BodyLimit do Fiber chega aqui como 413
		if fe.Code == fiber.StatusRequestEntityTooLarge {
			return JsonError(c, fe.Code, "Arquivo excede o tamanho máximo permitido.")
		}
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Erro interno do servidor.")
}

/* ===============================
   Success responses
=================================*/

// JsonList devolve o envelope de listagem: {"data": [...], "pagination": {...}}.
func JsonList(c *fiber.Ctx, data any, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"pagination": p,
	})
}

func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}
