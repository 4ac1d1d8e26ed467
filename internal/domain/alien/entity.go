// internal/domain/alien/entity.go
package alien

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Rarity represents how hard a specimen is to come by
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Rarities lists all valid rarity values in ascending order
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// IsValid reports whether r is a known rarity
func (r Rarity) IsValid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

// Alien represents a collectible specimen in the catalog
type Alien struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255;index" json:"name"`
	Faction   string         `gorm:"not null;size:255;index" json:"faction"`
	Planet    string         `gorm:"not null;size:255;index" json:"planet"`
	Rarity    Rarity         `gorm:"not null;size:20" json:"rarity"`
	Price     float64        `gorm:"not null" json:"price"`
	Image     string         `gorm:"size:500" json:"image"`
	Backstory string         `gorm:"type:text" json:"backstory"`
	Abilities pq.StringArray `gorm:"type:text[]" json:"abilities"`
	Featured  bool           `gorm:"default:false" json:"featured"`
	InStock   bool           `gorm:"default:true" json:"inStock"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Alien) TableName() string {
	return "aliens"
}

// Pagination is the list envelope returned alongside catalog pages
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the envelope from a total row count and page/limit
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && total > 0,
	}
}
