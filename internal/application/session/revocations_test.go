package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocations_ExpiranConElToken(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRevocations()
	r.nowF = func() time.Time { return now }

	r.Revoke("jti-1", now.Add(time.Hour))
	assert.True(t, r.Revoked("jti-1"))
	assert.False(t, r.Revoked("jti-2"))

	now = now.Add(2 * time.Hour)
	assert.False(t, r.Revoked("jti-1"), "un token vencido ya no necesita estar en la lista")
}

func TestRevocations_RevokePurgaVencidos(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRevocations()
	r.nowF = func() time.Time { return now }

	r.Revoke("viejo", now.Add(time.Minute))
	now = now.Add(time.Hour)
	r.Revoke("nuevo", now.Add(time.Hour))

	assert.Len(t, r.m, 1)
}
