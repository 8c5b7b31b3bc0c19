package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Rechazos del formulario de acceso: nunca son fatales, siempre vuelven a Idle.
	ErrEmailNotFound          = errors.New("email no encontrado")
	ErrPasswordMismatch       = errors.New("las contraseñas no coinciden")
	ErrEmailAlreadyRegistered = errors.New("el email ya está registrado")

	// Fallos de sistema, separados de los rechazos de validación.
	ErrDirectoryUnavailable = errors.New("directorio no disponible")
	ErrSubmissionInFlight   = errors.New("ya hay un envío en curso")
	ErrUnknownField         = errors.New("campo desconocido")
	ErrFormNotFound         = errors.New("formulario no encontrado o expirado")
)
