// Package seed carga clientes y staff desde un archivo JSON hacia cualquier directorio
// (memoria o PostgreSQL). Formato:
//
//	{"customers": [{"name": "...", "email": "...", "phone": "..."}],
//	 "users":     [{"name": "...", "email": "...", "role": "admin"}]}
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zapshop-api/internal/domain"
	"github.com/jhoicas/zapshop-api/internal/domain/entity"
	"github.com/jhoicas/zapshop-api/internal/domain/repository"
)

// File contenido del archivo de semilla.
type File struct {
	Customers []Customer `json:"customers"`
	Users     []User     `json:"users"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // admin | vendedor (por defecto)
}

// Result cuenta lo insertado y lo omitido por email ya existente.
type Result struct {
	Created int
	Skipped int
}

// Load lee y decodifica el archivo.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", path, err)
	}
	return &f, nil
}

// Apply inserta el contenido en los directorios. Los emails ya existentes se omiten;
// cualquier otro error corta la carga.
func Apply(ctx context.Context, f *File, customers repository.CustomerRepository, users repository.UserRepository, avatarBaseURL string) (Result, error) {
	var res Result
	now := time.Now().UTC()
	for _, c := range f.Customers {
		err := customers.Create(ctx, &entity.Customer{
			ID:        uuid.NewString(),
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			AvatarURL: entity.AvatarURL(avatarBaseURL, c.Name),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err := res.count(err, c.Email); err != nil {
			return res, err
		}
	}
	for _, u := range f.Users {
		role := u.Role
		if role == "" {
			role = entity.RoleVendedor
		}
		err := users.Create(ctx, &entity.User{
			ID:        uuid.NewString(),
			Name:      u.Name,
			Email:     u.Email,
			Role:      role,
			CreatedAt: now,
		})
		if err := res.count(err, u.Email); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Result) count(err error, email string) error {
	switch {
	case err == nil:
		r.Created++
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		r.Skipped++
	default:
		return fmt.Errorf("insertar %s: %w", email, err)
	}
	return nil
}
