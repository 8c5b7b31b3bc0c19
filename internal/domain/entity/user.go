package entity

import "time"

// Roles válidos para User (staff de la tienda).
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa una cuenta del staff. El acceso sólo consulta Email.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      string // admin, vendedor
	CreatedAt time.Time
}
