// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// LocRole é a chave em Locals onde o role decodificado fica disponível
// para os handlers.
const LocRole = "role"

// AuthRequired verifica o bearer token HS256 e, se requiredRole não for
// vazio, exige que o claim "role" bata. Em caso de sucesso o role é
// exposto em c.Locals(LocRole).
func AuthRequired(secret, requiredRole string) fiber.Handler {
	if strings.TrimSpace(secret) == "" {
		panic("AuthRequired: secret obrigatório")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token não fornecido.")
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de assinatura inválido")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido ou expirado.")
		}

		role, _ := claims["role"].(string)
		if requiredRole != "" && role != requiredRole {
			return fiber.NewError(fiber.StatusForbidden, "Acesso negado.")
		}

		c.Locals(LocRole, role)
		return c.Next()
	}
}
