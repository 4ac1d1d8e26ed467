// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"gorm.io/gorm"
)

// Item represents a wishlist entry. The (user, alien) pair is unique so a
// specimen can only be wished for once.
type Item struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_wishlist_user_alien" json:"userId"`
	AlienID   uint           `gorm:"not null;uniqueIndex:idx_wishlist_user_alien" json:"alienId"`
	CreatedAt time.Time      `json:"addedAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Item) TableName() string {
	return "wishlist_items"
}
