package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zapshop-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 800*time.Millisecond, cfg.Auth.SubmitDelay())
	assert.Equal(t, 30*time.Minute, cfg.Auth.FormTTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "mari-zap-shop", cfg.JWT.Issuer)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("AUTH_SUBMIT_DELAY_MS", "0")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MIGRATE_ON_START", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.True(t, cfg.Store.MigrateOnStart)
	assert.Equal(t, time.Duration(0), cfg.Auth.SubmitDelay())
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "shop", Password: "p@ss", DBName: "zapshop", SSLMode: "disable"}
	assert.Equal(t, "postgres://shop:p%40ss@db:5432/zapshop?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestLoad_SeedFile(t *testing.T) {
	t.Setenv("SEED_FILE", "./directorio.json")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "./directorio.json", cfg.Store.SeedFile)
}
