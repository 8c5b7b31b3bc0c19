package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zapshop-api/internal/domain"
)

// FormRegistry guarda un Page por visitante, identificado por un uuid.
// Los formularios sin actividad durante ttl se descartan.
type FormRegistry struct {
	mu    sync.Mutex
	forms map[string]*formEntry
	ttl   time.Duration
	nowF  func() time.Time

	customers EmailDirectory
	users     EmailDirectory
	latency   Latency
}

type formEntry struct {
	page     *Page
	lastSeen time.Time
}

// NewFormRegistry construye el registro. ttl <= 0 desactiva la expiración.
func NewFormRegistry(customers, users EmailDirectory, latency Latency, ttl time.Duration) *FormRegistry {
	return &FormRegistry{
		forms:     make(map[string]*formEntry),
		ttl:       ttl,
		nowF:      time.Now,
		customers: customers,
		users:     users,
		latency:   latency,
	}
}

// Open crea un formulario nuevo (modo Login, campos vacíos).
func (r *FormRegistry) Open() (string, *Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nowF()
	r.sweepLocked(now)
	id := uuid.NewString()
	page := NewPage(r.customers, r.users, r.latency)
	r.forms[id] = &formEntry{page: page, lastSeen: now}
	return id, page
}

// Get devuelve el formulario y renueva su actividad.
func (r *FormRegistry) Get(id string) (*Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.forms[id]
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	now := r.nowF()
	if r.expired(e, now) && !e.page.Loading() {
		delete(r.forms, id)
		return nil, domain.ErrFormNotFound
	}
	e.lastSeen = now
	return e.page, nil
}

// Discard elimina el formulario (tras un envío exitoso).
func (r *FormRegistry) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.forms, id)
}

// Len número de formularios abiertos.
func (r *FormRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

func (r *FormRegistry) expired(e *formEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

// sweepLocked purga formularios expirados; los que tienen un envío en vuelo se conservan.
func (r *FormRegistry) sweepLocked(now time.Time) {
	for id, e := range r.forms {
		if r.expired(e, now) && !e.page.Loading() {
			delete(r.forms, id)
		}
	}
}
