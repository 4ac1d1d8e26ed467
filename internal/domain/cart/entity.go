// internal/domain/cart/entity.go
package cart

import (
	"time"

	"gorm.io/gorm"
)

// MaxLineQuantity caps how many units of one alien a single cart line holds.
// Requests beyond the cap are silently clamped, never rejected.
const MaxLineQuantity = 10

// Cart represents a user's shopping cart. One cart per user, created lazily
// on first access and emptied (never deleted) after a successful order.
type Cart struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Items     []Item         `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Item represents a cart line item
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;index" json:"-"`
	AlienID   uint      `gorm:"not null;index" json:"alienId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides
func (Cart) TableName() string { return "carts" }
func (Item) TableName() string { return "cart_items" }

// The mutation rules below are plain in-memory operations so they stay
// unit-testable without a database. The service persists the result.

// AddLine adds quantity units of an alien, merging into an existing line if
// present. The resulting quantity is clamped to MaxLineQuantity.
func (c *Cart) AddLine(alienID uint, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].AlienID == alienID {
			c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity + quantity)
			return
		}
	}

	c.Items = append(c.Items, Item{
		CartID:   c.ID,
		AlienID:  alienID,
		Quantity: clampQuantity(quantity),
	})
}

// SetLine sets the quantity of an existing line. A quantity of zero or less
// removes the line. Returns false if the alien is not in the cart.
func (c *Cart) SetLine(alienID uint, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].AlienID == alienID {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = clampQuantity(quantity)
			}
			return true
		}
	}
	return false
}

// RemoveLine drops the line for the given alien. Removing an absent line is
// a no-op, not an error.
func (c *Cart) RemoveLine(alienID uint) {
	c.SetLine(alienID, 0)
}

// ClearLines empties the cart in memory
func (c *Cart) ClearLines() {
	c.Items = nil
}

// TotalItems is the sum of all line quantities
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums quantity times current price for every line. Prices are
// supplied by the caller since they live on the catalog, not the cart.
// Lines whose alien is missing from the map are skipped (stale references
// to deleted aliens are tolerated).
func (c *Cart) TotalPrice(prices map[uint]float64) float64 {
	var total float64
	for _, item := range c.Items {
		if price, ok := prices[item.AlienID]; ok {
			total += price * float64(item.Quantity)
		}
	}
	return total
}

func clampQuantity(quantity int) int {
	if quantity > MaxLineQuantity {
		return MaxLineQuantity
	}
	return quantity
}
