package repository

import (
	"context"

	"github.com/jhoicas/zapshop-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// Todas las búsquedas por email ignoran mayúsculas/minúsculas.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
}
