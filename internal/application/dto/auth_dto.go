package dto

// FormView estado visible de un formulario de acceso. Las contraseñas nunca se devuelven.
type FormView struct {
	ID      string `json:"id"`
	Mode    string `json:"mode"` // login | register
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Loading bool   `json:"loading"`
}

// SetFieldRequest valor de un campo.
type SetFieldRequest struct {
	Value string `json:"value"`
}

// Toast aviso que el cliente debe mostrar.
type Toast struct {
	Message  string `json:"message"`
	Severity string `json:"severity"` // success | error
}

// SubmitResponse resultado de un envío.
type SubmitResponse struct {
	Outcome string           `json:"outcome"` // login_succeeded | register_succeeded | rejected
	Reason  string           `json:"reason,omitempty"`
	Toast   *Toast           `json:"toast,omitempty"`
	Session *SessionResponse `json:"session,omitempty"`
	Form    *FormView        `json:"form,omitempty"`
}
