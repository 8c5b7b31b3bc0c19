package entity

import (
	"net/url"
	"time"
)

// Customer representa un cliente de la tienda.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvatarURL arma el avatar asignado a un cliente nuevo. Sin base configurada no hay avatar.
func AvatarURL(baseURL, name string) string {
	if baseURL == "" {
		return ""
	}
	return baseURL + url.QueryEscape(name)
}
