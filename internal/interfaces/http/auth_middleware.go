package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zapshop-api/internal/application/dto"
)

// LocalToken clave en c.Locals para el token Bearer.
const LocalToken = "session_token"

// AuthMiddleware exige un header Authorization: Bearer <token> y lo deja en c.Locals.
// La validación del token la hace el servicio de sesiones.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, code, msg := bearerToken(c)
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		c.Locals(LocalToken, tok)
		return c.Next()
	}
}

// OptionalAuthMiddleware como AuthMiddleware, pero sin header deja pasar sin token.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		tok, code, msg := bearerToken(c)
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		c.Locals(LocalToken, tok)
		return c.Next()
	}
}

// GetToken devuelve el token del contexto (después del middleware).
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}

func bearerToken(c *fiber.Ctx) (token, code, msg string) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", "MISSING_TOKEN", "Authorization header requerido"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "INVALID_TOKEN", "formato: Bearer <token>"
	}
	token = strings.TrimSpace(parts[1])
	if token == "" {
		return "", "MISSING_TOKEN", "token vacío"
	}
	return token, "", ""
}
