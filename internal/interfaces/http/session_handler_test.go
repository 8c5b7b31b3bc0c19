package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zapshop-api/internal/application/dto"
)

func login(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	id := openForm(t, env.app, [2]string{"email", email})
	var out dto.SubmitResponse
	resp := do(t, env.app, http.MethodPost, "/api/auth/forms/"+id+"/submit", "", "", &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return out.Session.Token
}

func TestSession_SinTokenNoHaySesion(t *testing.T) {
	env := buildTestApp(t)

	var g dto.SessionGlance
	resp := do(t, env.app, http.MethodGet, "/api/session", "", "", &g)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, g.LoggedIn)
	assert.Empty(t, g.Greeting)
}

func TestSession_SaludoConPrimerNombre(t *testing.T) {
	env := buildTestApp(t)
	tok := login(t, env, "ana@x.com")

	var g dto.SessionGlance
	resp := do(t, env.app, http.MethodGet, "/api/session", "", tok, &g)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, g.LoggedIn)
	assert.Equal(t, "Olá, Ana", g.Greeting)
}

func TestSession_LogoutInvalidaElToken(t *testing.T) {
	env := buildTestApp(t)
	tok := login(t, env, "ana@x.com")

	resp := do(t, env.app, http.MethodPost, "/api/session/logout", "", tok, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var body dto.ErrorResponse
	resp = do(t, env.app, http.MethodGet, "/api/session", "", tok, &body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestSession_LogoutSinHeader(t *testing.T) {
	env := buildTestApp(t)

	var body dto.ErrorResponse
	resp := do(t, env.app, http.MethodPost, "/api/session/logout", "", "", &body)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestSession_FormatoDeHeaderInvalido(t *testing.T) {
	env := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCustomers_SoloStaff(t *testing.T) {
	env := buildTestApp(t)

	resp := do(t, env.app, http.MethodGet, "/api/customers", "", login(t, env, "ana@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var list []dto.CustomerResponse
	resp = do(t, env.app, http.MethodGet, "/api/customers?limit=5", "", login(t, env, "staff@x.com"), &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Souza", list[0].Name)
}
