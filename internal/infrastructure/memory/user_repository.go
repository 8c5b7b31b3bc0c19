package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/zapshop-api/internal/domain"
	"github.com/jhoicas/zapshop-api/internal/domain/entity"
	"github.com/jhoicas/zapshop-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de staff en memoria.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.User
}

// NewUserRepository construye el directorio, opcionalmente precargado.
func NewUserRepository(seed ...entity.User) *UserRepo {
	r := &UserRepo{byEmail: make(map[string]*entity.User)}
	for i := range seed {
		u := seed[i]
		_ = r.Create(context.Background(), &u)
	}
	return r
}

// Create agrega un usuario de staff.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidInput
	}
	key := foldEmail(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return domain.ErrEmailAlreadyRegistered
	}
	u := *user
	r.byEmail[key] = &u
	return nil
}

// FindByEmail obtiene un usuario por email sin distinguir mayúsculas (nil si no existe).
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byEmail[foldEmail(email)]; ok {
		out := *u
		return &out, nil
	}
	return nil, nil
}

// ExistsByEmail indica si el email pertenece al staff.
func (r *UserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[foldEmail(email)]
	return ok, nil
}
