// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/beammart/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "BeamMart"},
		JWT: config.JWTConfig{
			Secret:      "test-secret-do-not-use",
			TokenExpiry: expiry,
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))

	token, err := manager.GenerateToken(42, "zorblax@beammart.dev", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "zorblax@beammart.dev", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewJWTManager(testConfig(-time.Minute))

	token, err := manager.GenerateToken(42, "zorblax@beammart.dev", false)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))

	_, err := manager.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))
	token, err := manager.GenerateToken(42, "zorblax@beammart.dev", false)
	require.NoError(t, err)

	other := NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "BeamMart"},
		JWT: config.JWTConfig{Secret: "different-secret", TokenExpiry: time.Hour},
	})

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}
