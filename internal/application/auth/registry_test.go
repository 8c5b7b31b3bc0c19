package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zapshop-api/internal/domain"
)

func TestFormRegistry_OpenGetDiscard(t *testing.T) {
	r := NewFormRegistry(nil, nil, NoLatency, time.Minute)

	id, page := r.Open()
	require.NotEmpty(t, id)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, page, got)

	r.Discard(id)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, domain.ErrFormNotFound)
}

func TestFormRegistry_ExpiraPorInactividad(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewFormRegistry(nil, nil, NoLatency, 30*time.Minute)
	r.nowF = func() time.Time { return now }

	id, _ := r.Open()
	now = now.Add(20 * time.Minute)
	_, err := r.Get(id)
	require.NoError(t, err, "Get renueva la actividad")

	now = now.Add(20 * time.Minute)
	_, err = r.Get(id)
	require.NoError(t, err)

	now = now.Add(31 * time.Minute)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, domain.ErrFormNotFound)
}

func TestFormRegistry_OpenPurgaExpirados(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewFormRegistry(nil, nil, NoLatency, time.Minute)
	r.nowF = func() time.Time { return now }

	r.Open()
	r.Open()
	now = now.Add(2 * time.Minute)
	r.Open()

	assert.Equal(t, 1, r.Len())
}
