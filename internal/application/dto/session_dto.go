package dto

import "time"

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse sesión emitida tras login o registro.
type SessionResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Kind      string            `json:"kind"` // customer | staff
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Customer  *CustomerResponse `json:"customer,omitempty"`
}

// SessionGlance datos del saludo de la cabecera.
type SessionGlance struct {
	LoggedIn  bool              `json:"logged_in"`
	Greeting  string            `json:"greeting,omitempty"`
	FirstName string            `json:"first_name,omitempty"`
	Kind      string            `json:"kind,omitempty"`
	Customer  *CustomerResponse `json:"customer,omitempty"`
}
