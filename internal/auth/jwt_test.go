package auth

import (
	"testing"

	"gms-backend/internal/config"
	"gms-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTManager() *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "gms-backend"
	return NewJWTManager(cfg)
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := testJWTManager()

	token, err := mgr.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "gms-backend", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := testJWTManager().GenerateToken(testUser())
	require.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	other.JWT.ExpirationHours = 24
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := testJWTManager().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTempToken(t *testing.T) {
	mgr := testJWTManager()

	t.Run("round trip", func(t *testing.T) {
		token, err := mgr.GenerateTempToken(testUser())
		require.NoError(t, err)

		claims, err := mgr.ValidateTempToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "2fa_pending", claims.Type)
	})

	t.Run("temp token is not accepted as session token", func(t *testing.T) {
		user := testUser()
		user.TOTPEnabled = true

		token, err := mgr.GenerateTempToken(user)
		require.NoError(t, err)

		_, err = mgr.ValidateToken(token)
		assert.Error(t, err, "a 2fa_pending token must not open a session")
	})

	t.Run("session token is not accepted as temp token", func(t *testing.T) {
		token, err := mgr.GenerateToken(testUser())
		require.NoError(t, err)

		_, err = mgr.ValidateTempToken(token)
		assert.Error(t, err)
	})
}
