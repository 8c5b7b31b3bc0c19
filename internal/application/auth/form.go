package auth

import (
	"fmt"

	"github.com/jhoicas/zapshop-api/internal/domain"
)

// Mode selecciona el comportamiento del formulario: acceso o registro.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// Field nombra un campo del formulario.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// ParseField traduce el nombre recibido del cliente a un Field.
// Acepta también confirm_password.
func ParseField(s string) (Field, error) {
	switch s {
	case "name":
		return FieldName, nil
	case "email":
		return FieldEmail, nil
	case "phone":
		return FieldPhone, nil
	case "password":
		return FieldPassword, nil
	case "confirmPassword", "confirm_password":
		return FieldConfirmPassword, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, s)
}

// FormState valores tecleados por el usuario. Texto libre, sin límites ni formato.
type FormState struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// set sobrescribe exactamente un campo.
func (f *FormState) set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	}
}

// clearPasswords borra la contraseña y su confirmación al cambiar de modo.
func (f *FormState) clearPasswords() {
	f.Password = ""
	f.ConfirmPassword = ""
}
