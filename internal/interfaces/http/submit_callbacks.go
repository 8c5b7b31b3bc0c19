package http

import (
	"context"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/application/dto"
	"github.com/jhoicas/zapshop-api/internal/application/session"
)

var _ auth.Callbacks = (*submitRecorder)(nil)

// submitRecorder conecta los callbacks del formulario con el servicio de sesiones
// y guarda lo necesario para armar la respuesta HTTP de un envío.
type submitRecorder struct {
	sessions *session.Service
	session  *dto.SessionResponse
	toast    *dto.Toast
}

func (r *submitRecorder) OnLogin(ctx context.Context, email string) error {
	out, err := r.sessions.Start(ctx, email)
	if err != nil {
		return err
	}
	r.session = out
	return nil
}

func (r *submitRecorder) OnRegister(ctx context.Context, data auth.RegisterData) error {
	out, err := r.sessions.Register(ctx, data)
	if err != nil {
		return err
	}
	r.session = out
	return nil
}

func (r *submitRecorder) ShowToast(message string, severity auth.Severity) {
	r.toast = &dto.Toast{Message: message, Severity: string(severity)}
}
