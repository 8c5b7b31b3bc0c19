package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/application/session"
	"github.com/jhoicas/zapshop-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Forms    *auth.FormRegistry
	Sessions *session.Service
	Log      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Formulario de acceso/registro (público)
	forms := api.Group("/auth/forms")
	formHandler := NewAuthFormHandler(deps.Forms, deps.Sessions, deps.Log)
	forms.Post("/", formHandler.Open)
	forms.Get("/:id", formHandler.Get)
	forms.Put("/:id/fields/:field", formHandler.SetField)
	forms.Post("/:id/toggle", formHandler.Toggle)
	forms.Post("/:id/submit", formHandler.Submit)

	// Sesión de la cabecera
	sessionHandler := NewSessionHandler(deps.Sessions)
	api.Get("/session", OptionalAuthMiddleware(), sessionHandler.Glance)
	api.Post("/session/logout", AuthMiddleware(), sessionHandler.Logout)

	// Clientes (staff)
	customerHandler := NewCustomerHandler(deps.Sessions)
	api.Get("/customers", AuthMiddleware(), customerHandler.List)
}
