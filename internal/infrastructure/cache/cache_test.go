// internal/infrastructure/cache/cache_test.go
package cache

import (
	"testing"

	"github.com/beammart/backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func testStore() *Store {
	return NewStore(nil, &config.Config{
		Cache: config.CacheConfig{KeyPrefix: "beammart"},
	}, nil)
}

func TestKeyIsDeterministic(t *testing.T) {
	s := testStore()

	a := s.Key("GET", "/api/aliens", map[string]string{"page": "2", "faction": "Void Raiders"})
	b := s.Key("GET", "/api/aliens", map[string]string{"faction": "Void Raiders", "page": "2"})

	assert.Equal(t, a, b)
}

func TestKeyFormat(t *testing.T) {
	s := testStore()

	key := s.Key("GET", "/api/aliens", map[string]string{"page": "2", "limit": "12"})

	assert.Equal(t, "beammart:GET:/api/aliens?limit=12&page=2", key)
}

func TestKeyWithoutParams(t *testing.T) {
	s := testStore()

	assert.Equal(t, "beammart:GET:/api/aliens/7", s.Key("GET", "/api/aliens/7", nil))
}

func TestKeyDistinguishesParamValues(t *testing.T) {
	s := testStore()

	a := s.Key("GET", "/api/aliens", map[string]string{"page": "1"})
	b := s.Key("GET", "/api/aliens", map[string]string{"page": "2"})

	assert.NotEqual(t, a, b)
}
