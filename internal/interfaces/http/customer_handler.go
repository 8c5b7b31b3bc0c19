package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zapshop-api/internal/application/dto"
	"github.com/jhoicas/zapshop-api/internal/application/session"
	"github.com/jhoicas/zapshop-api/internal/domain"
)

// CustomerHandler listado de clientes para el staff.
type CustomerHandler struct {
	sessions *session.Service
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(sessions *session.Service) *CustomerHandler {
	return &CustomerHandler{sessions: sessions}
}

// List GET /api/customers?limit=20&offset=0 (sólo staff)
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.sessions.ListCustomers(c.UserContext(), GetToken(c), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sólo el staff puede listar clientes"})
		}
		return sessionError(c, err)
	}
	return c.JSON(list)
}
