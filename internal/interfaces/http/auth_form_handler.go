package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/application/dto"
	"github.com/jhoicas/zapshop-api/internal/application/session"
	"github.com/jhoicas/zapshop-api/internal/domain"
	"github.com/jhoicas/zapshop-api/pkg/logger"
)

// AuthFormHandler expone el formulario de acceso/registro de la tienda.
type AuthFormHandler struct {
	forms    *auth.FormRegistry
	sessions *session.Service
	log      *logger.Logger
}

// NewAuthFormHandler construye el handler.
func NewAuthFormHandler(forms *auth.FormRegistry, sessions *session.Service, log *logger.Logger) *AuthFormHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthFormHandler{forms: forms, sessions: sessions, log: log.Named("auth_form")}
}

// Open godoc
// @Summary      Abrir formulario de acceso
// @Tags         auth
// @Produce      json
// @Success      201  {object}  dto.FormView
// @Router       /api/auth/forms [post]
func (h *AuthFormHandler) Open(c *fiber.Ctx) error {
	id, page := h.forms.Open()
	return c.Status(fiber.StatusCreated).JSON(formView(id, page))
}

// Get godoc
// @Summary      Estado del formulario
// @Tags         auth
// @Produce      json
// @Param        id   path  string  true  "id del formulario"
// @Success      200  {object}  dto.FormView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/forms/{id} [get]
func (h *AuthFormHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	page, err := h.forms.Get(id)
	if err != nil {
		return formNotFound(c)
	}
	return c.JSON(formView(id, page))
}

// SetField godoc
// @Summary      Escribir un campo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        id     path  string               true  "id del formulario"
// @Param        field  path  string               true  "name | email | phone | password | confirmPassword"
// @Param        body   body  dto.SetFieldRequest  true  "valor"
// @Success      200  {object}  dto.FormView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/forms/{id}/fields/{field} [put]
func (h *AuthFormHandler) SetField(c *fiber.Ctx) error {
	id := c.Params("id")
	page, err := h.forms.Get(id)
	if err != nil {
		return formNotFound(c)
	}
	field, err := auth.ParseField(c.Params("field"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: err.Error()})
	}
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	page.SetField(field, in.Value)
	return c.JSON(formView(id, page))
}

// Toggle godoc
// @Summary      Alternar login/registro (borra las contraseñas)
// @Tags         auth
// @Produce      json
// @Param        id   path  string  true  "id del formulario"
// @Success      200  {object}  dto.FormView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/forms/{id}/toggle [post]
func (h *AuthFormHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	page, err := h.forms.Get(id)
	if err != nil {
		return formNotFound(c)
	}
	page.ToggleMode()
	return c.JSON(formView(id, page))
}

// Submit godoc
// @Summary      Enviar el formulario
// @Tags         auth
// @Produce      json
// @Param        id   path  string  true  "id del formulario"
// @Success      200  {object}  dto.SubmitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.SubmitResponse
// @Failure      503  {object}  dto.SubmitResponse
// @Router       /api/auth/forms/{id}/submit [post]
func (h *AuthFormHandler) Submit(c *fiber.Ctx) error {
	id := c.Params("id")
	page, err := h.forms.Get(id)
	if err != nil {
		return formNotFound(c)
	}
	mode := page.Mode()
	rec := &submitRecorder{sessions: h.sessions}

	out, err := page.Submit(c.UserContext(), rec)
	if err != nil {
		return h.submitFailed(c, id, page, mode, rec, err)
	}

	h.log.Info().
		Str("form_id", id).
		Str("mode", mode.String()).
		Str("outcome", string(out.Kind)).
		Str("reason", string(out.Reason)).
		Msg("envío de formulario")

	if out.Kind == auth.Rejected {
		view := formView(id, page)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.SubmitResponse{
			Outcome: string(out.Kind),
			Reason:  string(out.Reason),
			Toast:   rec.toast,
			Form:    &view,
		})
	}

	h.forms.Discard(id)
	return c.JSON(dto.SubmitResponse{
		Outcome: string(out.Kind),
		Session: rec.session,
	})
}

func (h *AuthFormHandler) submitFailed(c *fiber.Ctx, id string, page *auth.Page, mode auth.Mode, rec *submitRecorder, err error) error {
	switch {
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: "ya hay un envío en curso"})
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		h.log.Error().Err(err).Str("form_id", id).Str("mode", mode.String()).Msg("directorio no disponible")
		view := formView(id, page)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.SubmitResponse{
			Outcome: "unavailable",
			Toast:   rec.toast,
			Form:    &view,
		})
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		// Otro visitante registró el mismo email entre la validación y la persistencia.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: auth.MessageEmailAlreadyRegistered})
	}
	h.log.Error().Err(err).Str("form_id", id).Str("mode", mode.String()).Msg("envío de formulario")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func formNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FORM_NOT_FOUND", Message: domain.ErrFormNotFound.Error()})
}

func formView(id string, page *auth.Page) dto.FormView {
	f := page.Form()
	return dto.FormView{
		ID:      id,
		Mode:    page.Mode().String(),
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Loading: page.Loading(),
	}
}
