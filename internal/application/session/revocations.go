package session

import (
	"sync"
	"time"
)

// Revocations lista en memoria de sesiones cerradas (jti) hasta su expiración natural.
type Revocations struct {
	mu   sync.Mutex
	m    map[string]time.Time
	nowF func() time.Time
}

// NewRevocations construye la lista vacía.
func NewRevocations() *Revocations {
	return &Revocations{m: make(map[string]time.Time), nowF: time.Now}
}

// Revoke marca jti como cerrado hasta expiresAt y purga entradas vencidas.
func (r *Revocations) Revoke(jti string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nowF()
	for id, exp := range r.m {
		if !exp.After(now) {
			delete(r.m, id)
		}
	}
	r.m[jti] = expiresAt
}

// Revoked indica si jti fue cerrado y aún no expiró.
func (r *Revocations) Revoked(jti string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.m[jti]
	if !ok {
		return false
	}
	if !exp.After(r.nowF()) {
		delete(r.m, jti)
		return false
	}
	return true
}
