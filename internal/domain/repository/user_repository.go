package repository

import (
	"context"

	"github.com/jhoicas/zapshop-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (staff).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
