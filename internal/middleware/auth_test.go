package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gms-backend/internal/auth"
	"gms-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func testMiddleware() *AuthMiddleware {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	return NewAuthMiddleware(auth.NewJWTManager(cfg), nil)
}

func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	m := testMiddleware()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})
	handler := m.Authenticate(next)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestContextHelpers(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, 7)
	ctx = context.WithValue(ctx, EmailKey, "ops@example.com")
	ctx = context.WithValue(ctx, RoleKey, "operator")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "ops@example.com", email)

	role, ok := GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "operator", role)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
