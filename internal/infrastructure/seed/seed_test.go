package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/domain/entity"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/memory"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/seed"
)

const directorio = `{
  "customers": [{"name": "Ana Souza", "email": "ana@x.com", "phone": "11 9999-0000"}],
  "users": [
    {"name": "Mari Lima", "email": "mari@zapshop.com", "role": "admin"},
    {"name": "Caio Reis", "email": "caio@zapshop.com"}
  ]
}`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "directorio.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestApply_StaffSembradoPuedeIniciarSesionEnMemoria(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Load(writeSeed(t, directorio))
	require.NoError(t, err)

	customers := memory.NewCustomerRepository()
	users := memory.NewUserRepository()
	res, err := seed.Apply(ctx, f, customers, users, "https://avatars.test/?name=")
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Created: 3}, res)

	out, err := auth.Evaluate(ctx, auth.ModeLogin, auth.FormState{Email: "MARI@zapshop.com", Password: "x"}, customers, users)
	require.NoError(t, err)
	assert.Equal(t, auth.LoginSucceeded, out.Kind)
	assert.Equal(t, "MARI@zapshop.com", out.Email)

	u, err := users.FindByEmail(ctx, "caio@zapshop.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleVendedor, u.Role, "rol por defecto")

	c, err := customers.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "https://avatars.test/?name=Ana+Souza", c.AvatarURL)
}

func TestApply_EmailExistenteSeOmite(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Load(writeSeed(t, directorio))
	require.NoError(t, err)

	customers := memory.NewCustomerRepository(entity.Customer{ID: "c0", Email: "ANA@x.com"})
	users := memory.NewUserRepository()
	res, err := seed.Apply(ctx, f, customers, users, "")
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Created: 2, Skipped: 1}, res)
}

func TestApply_SinBaseDeAvatarNoAsignaAvatar(t *testing.T) {
	ctx := context.Background()
	f := &seed.File{Customers: []seed.Customer{{Name: "Bia Costa", Email: "bia@x.com"}}}

	customers := memory.NewCustomerRepository()
	_, err := seed.Apply(ctx, f, customers, memory.NewUserRepository(), "")
	require.NoError(t, err)

	c, err := customers.FindByEmail(ctx, "bia@x.com")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Empty(t, c.AvatarURL)
}

func TestLoad_JSONInvalido(t *testing.T) {
	_, err := seed.Load(writeSeed(t, "{customers"))
	assert.Error(t, err)

	_, err = seed.Load(filepath.Join(t.TempDir(), "no-existe.json"))
	assert.Error(t, err)
}
