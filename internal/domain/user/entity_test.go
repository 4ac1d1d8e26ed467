// internal/domain/user/entity_test.go
package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "zorblax@beammart.dev", NormalizeEmail("  Zorblax@BeamMart.DEV "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestFullName(t *testing.T) {
	u := &User{FirstName: "Krel", LastName: "Vex", Email: "krel@beammart.dev"}
	assert.Equal(t, "Krel Vex", u.FullName())

	u = &User{FirstName: "Mip", Email: "mip@beammart.dev"}
	assert.Equal(t, "Mip", u.FullName())

	u = &User{Email: "anon@beammart.dev"}
	assert.Equal(t, "anon@beammart.dev", u.FullName())
}

func TestPasswordNeverSerialized(t *testing.T) {
	u := &User{Email: "krel@beammart.dev", Password: "$2a$10$secret"}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
}
