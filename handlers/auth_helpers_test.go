package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"apibench-server/token"
	"apibench-server/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTokenConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "handlers-test-secret")
	t.Setenv("JWT_EXPIRE_MINUTES", "60")
	require.NoError(t, token.LoadConfig())
}

func TestAuthenticateNoHeader(t *testing.T) {
	loadTokenConfig(t)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)
	assert.Nil(t, auth)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, rr.Body.String())
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	loadTokenConfig(t)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)
	assert.Nil(t, auth)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	loadTokenConfig(t)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)
	assert.Nil(t, auth)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, rr.Body.String())
}

func TestAuthenticateValidToken(t *testing.T) {
	loadTokenConfig(t)

	signed, err := token.Sign("e7a7d6f0-1d3e-4a6f-9c5b-2f8e01234567", true)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	auth := authenticate(rr, req)
	require.NotNil(t, auth)
	assert.Equal(t, "e7a7d6f0-1d3e-4a6f-9c5b-2f8e01234567", auth.UserId)
	assert.True(t, auth.IsAdmin)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestRequireAdminForbidden(t *testing.T) {
	rr := httptest.NewRecorder()

	ok := requireAdmin(rr, &types.ServerAuth{UserId: "u", IsAdmin: false})
	assert.False(t, ok)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error": "Forbidden"}`, rr.Body.String())
}

func TestRequireAdminAllowed(t *testing.T) {
	rr := httptest.NewRecorder()

	ok := requireAdmin(rr, &types.ServerAuth{UserId: "u", IsAdmin: true})
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, rr.Code)
}
