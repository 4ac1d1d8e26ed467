// internal/pkg/auth/password_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/beammart/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passwordManager() *PasswordManager {
	return NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4}, // minimum cost keeps tests fast
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	pm := passwordManager()

	hash, err := pm.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, pm.VerifyPassword("hunter22", hash))
	assert.Error(t, pm.VerifyPassword("hunter23", hash))
}

func TestValidatePasswordBounds(t *testing.T) {
	pm := passwordManager()

	assert.Error(t, pm.ValidatePassword("12345"))
	assert.NoError(t, pm.ValidatePassword("123456"))
	assert.NoError(t, pm.ValidatePassword(strings.Repeat("a", 128)))
	assert.Error(t, pm.ValidatePassword(strings.Repeat("a", 129)))
}

func TestHashPasswordRejectsWeakPassword(t *testing.T) {
	pm := passwordManager()

	_, err := pm.HashPassword("abc")
	assert.Error(t, err)
}
