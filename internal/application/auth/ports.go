package auth

import "context"

// EmailDirectory capacidad de búsqueda por email (sin distinguir mayúsculas) sobre un directorio.
// Se consulta de nuevo en cada envío.
type EmailDirectory interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Callbacks colaboradores externos que reciben el resultado de un envío.
// OnLogin y OnRegister se invocan exactamente una vez por éxito; ShowToast una vez por rechazo.
type Callbacks interface {
	OnLogin(ctx context.Context, email string) error
	OnRegister(ctx context.Context, data RegisterData) error
	ShowToast(message string, severity Severity)
}
