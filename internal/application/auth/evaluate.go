package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/zapshop-api/internal/domain"
)

// Evaluate decide el resultado de un envío de forma síncrona: sin latencia, sin callbacks ni mutaciones.
// En registro la coincidencia de contraseñas se comprueba antes de tocar los directorios.
// Un error sólo se devuelve si algún directorio falla (envuelve domain.ErrDirectoryUnavailable).
func Evaluate(ctx context.Context, mode Mode, form FormState, customers, users EmailDirectory) (Outcome, error) {
	if mode == ModeRegister && form.Password != form.ConfirmPassword {
		return rejected(ReasonPasswordMismatch), nil
	}

	found, err := inDirectories(ctx, form.Email, customers, users)
	if err != nil {
		return Outcome{}, err
	}

	if mode == ModeLogin {
		if found {
			return loginSucceeded(form.Email), nil
		}
		return rejected(ReasonEmailNotFound), nil
	}

	if found {
		out := rejected(ReasonEmailAlreadyRegistered)
		login := ModeLogin
		out.ForcedMode = &login
		return out, nil
	}
	return registerSucceeded(RegisterData{
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
	}), nil
}

// inDirectories busca el email en clientes y luego en staff.
func inDirectories(ctx context.Context, email string, customers, users EmailDirectory) (bool, error) {
	ok, err := customers.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%w: clientes: %w", domain.ErrDirectoryUnavailable, err)
	}
	if ok {
		return true, nil
	}
	ok, err = users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%w: staff: %w", domain.ErrDirectoryUnavailable, err)
	}
	return ok, nil
}
