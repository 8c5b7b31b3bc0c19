package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/zapshop-api/internal/domain"
	"github.com/jhoicas/zapshop-api/internal/domain/entity"
	"github.com/jhoicas/zapshop-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo directorio de clientes en memoria con índice email normalizado -> cliente.
type CustomerRepo struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Customer
	byEmail map[string]*entity.Customer
}

// NewCustomerRepository construye el directorio, opcionalmente precargado.
func NewCustomerRepository(seed ...entity.Customer) *CustomerRepo {
	r := &CustomerRepo{
		byID:    make(map[string]*entity.Customer),
		byEmail: make(map[string]*entity.Customer),
	}
	for i := range seed {
		c := seed[i]
		_ = r.Create(context.Background(), &c)
	}
	return r
}

// Create agrega un cliente. Devuelve ErrEmailAlreadyRegistered si el email ya existe.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer == nil || customer.ID == "" {
		return domain.ErrInvalidInput
	}
	key := foldEmail(customer.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return domain.ErrEmailAlreadyRegistered
	}
	if _, ok := r.byID[customer.ID]; ok {
		return domain.ErrDuplicate
	}
	c := *customer
	r.byID[c.ID] = &c
	r.byEmail[key] = &c
	return nil
}

// GetByID obtiene un cliente por ID (nil si no existe).
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.byID[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, nil
}

// FindByEmail obtiene un cliente por email sin distinguir mayúsculas (nil si no existe).
func (r *CustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.byEmail[foldEmail(email)]; ok {
		out := *c
		return &out, nil
	}
	return nil, nil
}

// ExistsByEmail indica si el email pertenece a algún cliente.
func (r *CustomerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[foldEmail(email)]
	return ok, nil
}

// List lista clientes ordenados por nombre con paginación.
func (r *CustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	r.mu.RLock()
	list := make([]*entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		out := *c
		list = append(list, &out)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	if offset >= len(list) {
		return []*entity.Customer{}, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}
