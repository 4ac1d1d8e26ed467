// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddLineMergesExisting(t *testing.T) {
	c := &Cart{}

	c.AddLine(7, 2)
	c.AddLine(7, 3)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddLineClampsToMax(t *testing.T) {
	c := &Cart{}

	c.AddLine(7, 8)
	c.AddLine(7, 8)

	assert.Equal(t, MaxLineQuantity, c.Items[0].Quantity)
}

func TestAddLineRequestAboveCapIsClamped(t *testing.T) {
	c := &Cart{}

	c.AddLine(7, 500)

	assert.Equal(t, MaxLineQuantity, c.Items[0].Quantity)
}

func TestAddLineZeroQuantityMeansOne(t *testing.T) {
	c := &Cart{}

	c.AddLine(7, 0)
	assert.Equal(t, 1, c.Items[0].Quantity)

	c.AddLine(8, -3)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestSetLineZeroRemovesLine(t *testing.T) {
	c := &Cart{}
	c.AddLine(7, 2)
	c.AddLine(9, 1)

	ok := c.SetLine(7, 0)

	assert.True(t, ok)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, uint(9), c.Items[0].AlienID)
}

func TestSetLineUnknownAlien(t *testing.T) {
	c := &Cart{}
	c.AddLine(7, 2)

	assert.False(t, c.SetLine(42, 3))
	assert.Len(t, c.Items, 1)
}

func TestRemoveLineAbsentIsNoop(t *testing.T) {
	c := &Cart{}
	c.AddLine(7, 2)

	c.RemoveLine(42)

	assert.Len(t, c.Items, 1)
}

func TestTotals(t *testing.T) {
	c := &Cart{}
	c.AddLine(1, 2) // $150 each
	c.AddLine(2, 1) // $49.99

	prices := map[uint]float64{
		1: 150.00,
		2: 49.99,
	}

	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 349.99, c.TotalPrice(prices), 0.001)
}

func TestTotalPriceSkipsStaleLines(t *testing.T) {
	c := &Cart{}
	c.AddLine(1, 2)
	c.AddLine(99, 5) // alien no longer in catalog

	prices := map[uint]float64{1: 150.00}

	assert.InDelta(t, 300.00, c.TotalPrice(prices), 0.001)
	// The stale line still counts toward the item total
	assert.Equal(t, 7, c.TotalItems())
}

func TestClearLines(t *testing.T) {
	c := &Cart{}
	c.AddLine(1, 2)
	c.AddLine(2, 1)

	c.ClearLines()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalItems())
}
