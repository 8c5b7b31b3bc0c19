package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/application/session"
	"github.com/jhoicas/zapshop-api/internal/domain/entity"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/zapshop-api/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

type testEnv struct {
	app       *fiber.App
	forms     *auth.FormRegistry
	customers *memory.CustomerRepo
}

// buildTestApp arma la API completa sobre directorios en memoria y sin latencia.
//   - clientes: ana@x.com (Ana Souza)
//   - staff: staff@x.com (Marina Lima)
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	customers := memory.NewCustomerRepository(entity.Customer{ID: "c1", Name: "Ana Souza", Email: "ana@x.com", Phone: "11"})
	users := memory.NewUserRepository(entity.User{ID: "u1", Name: "Marina Lima", Email: "staff@x.com", Role: entity.RoleAdmin})
	forms := auth.NewFormRegistry(customers, users, auth.NoLatency, 0)
	sessions := session.NewService(customers, users, session.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "test"}, "", nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Forms: forms, Sessions: sessions})
	return &testEnv{app: app, forms: forms, customers: customers}
}

// do lanza una petición y decodifica el JSON de respuesta en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path, body, token string, out any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// openForm abre un formulario y escribe los campos dados (en orden).
func openForm(t *testing.T, app *fiber.App, fields ...[2]string) string {
	t.Helper()
	var view map[string]any
	resp := do(t, app, http.MethodPost, "/api/auth/forms", "", "", &view)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := view["id"].(string)
	for _, f := range fields {
		body, _ := json.Marshal(map[string]string{"value": f[1]})
		resp := do(t, app, http.MethodPut, "/api/auth/forms/"+id+"/fields/"+f[0], string(body), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	return id
}
