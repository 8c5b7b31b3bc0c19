package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/zapshop?sslmode=disable", migrateURL("postgres://u:p@db:5432/zapshop?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/zapshop", migrateURL("postgresql://u@db/zapshop"))
	assert.Equal(t, "pgx5://ya", migrateURL("pgx5://ya"))
}

func TestMigrate_ValidaArgumentos(t *testing.T) {
	assert.Error(t, Migrate("", "up"))
	assert.Error(t, Migrate("postgres://u@db/zapshop", "sideways"))
}

func TestMigrations_Embebidas(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2, "up y down de la migración inicial")
}
