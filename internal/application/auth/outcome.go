package auth

import "github.com/jhoicas/zapshop-api/internal/domain"

// Severity severidad del aviso (toast) solicitado al colaborador de UI.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// OutcomeKind resultado terminal de un envío.
type OutcomeKind string

const (
	LoginSucceeded    OutcomeKind = "login_succeeded"
	RegisterSucceeded OutcomeKind = "register_succeeded"
	Rejected          OutcomeKind = "rejected"
)

// Reason motivo de un rechazo.
type Reason string

const (
	ReasonNone                   Reason = ""
	ReasonEmailNotFound          Reason = "email_not_found"
	ReasonPasswordMismatch       Reason = "password_mismatch"
	ReasonEmailAlreadyRegistered Reason = "email_already_registered"
)

// Textos mostrados al usuario (copy pt-BR de la tienda).
const (
	MessageEmailNotFound          = "E-mail não encontrado. Verifique ou crie uma conta."
	MessagePasswordMismatch       = "As senhas não coincidem."
	MessageEmailAlreadyRegistered = "Este e-mail já está cadastrado. Faça login."
	MessageDirectoryUnavailable   = "Não foi possível verificar seus dados. Tente novamente."
)

// Message texto del toast para el motivo.
func (r Reason) Message() string {
	switch r {
	case ReasonEmailNotFound:
		return MessageEmailNotFound
	case ReasonPasswordMismatch:
		return MessagePasswordMismatch
	case ReasonEmailAlreadyRegistered:
		return MessageEmailAlreadyRegistered
	}
	return ""
}

// Err error de dominio equivalente, útil para errors.Is en los handlers.
func (r Reason) Err() error {
	switch r {
	case ReasonEmailNotFound:
		return domain.ErrEmailNotFound
	case ReasonPasswordMismatch:
		return domain.ErrPasswordMismatch
	case ReasonEmailAlreadyRegistered:
		return domain.ErrEmailAlreadyRegistered
	}
	return nil
}

// RegisterData datos entregados a onRegister. Sin id ni avatar: los asigna quien persiste.
type RegisterData struct {
	Name  string
	Email string
	Phone string
}

// Outcome resultado de evaluar un envío.
type Outcome struct {
	Kind         OutcomeKind
	Reason       Reason
	Email        string        // LoginSucceeded
	Registration *RegisterData // RegisterSucceeded
	ForcedMode   *Mode         // modo impuesto como efecto secundario (email ya registrado)
}

func loginSucceeded(email string) Outcome {
	return Outcome{Kind: LoginSucceeded, Email: email}
}

func registerSucceeded(data RegisterData) Outcome {
	return Outcome{Kind: RegisterSucceeded, Registration: &data}
}

func rejected(reason Reason) Outcome {
	return Outcome{Kind: Rejected, Reason: reason}
}
