package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zapshop-api/internal/application/dto"
	"github.com/jhoicas/zapshop-api/internal/application/session"
	"github.com/jhoicas/zapshop-api/internal/domain"
)

// SessionHandler saludo de la cabecera y logout.
type SessionHandler struct {
	sessions *session.Service
}

// NewSessionHandler construye el handler.
func NewSessionHandler(sessions *session.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Glance godoc
// @Summary      Saludo de la sesión actual
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionGlance
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Glance(c *fiber.Ctx) error {
	out, err := h.sessions.Glance(c.UserContext(), GetToken(c))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(GetToken(c)); err != nil {
		return sessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
