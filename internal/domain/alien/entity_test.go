// internal/domain/alien/entity_test.go
package alien

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarityIsValid(t *testing.T) {
	for _, r := range Rarities {
		assert.True(t, r.IsValid())
	}

	assert.False(t, Rarity("Mythic").IsValid())
	assert.False(t, Rarity("common").IsValid()) // case sensitive
	assert.False(t, Rarity("").IsValid())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 12, 30)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(30), p.TotalCount)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestNewPaginationFirstPage(t *testing.T) {
	p := NewPagination(1, 12, 30)

	assert.False(t, p.HasPrevPage)
	assert.True(t, p.HasNextPage)
}

func TestNewPaginationLastPage(t *testing.T) {
	p := NewPagination(3, 12, 30)

	assert.True(t, p.HasPrevPage)
	assert.False(t, p.HasNextPage)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 12, 0)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestNewPaginationExactMultiple(t *testing.T) {
	p := NewPagination(2, 10, 20)

	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNextPage)
}
