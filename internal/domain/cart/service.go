// internal/domain/cart/service.go
package cart

import (
	"errors"
	"time"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Service handles cart business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ItemResponse represents a cart line with its alien joined in
type ItemResponse struct {
	AlienID  uint         `json:"alienId"`
	Quantity int          `json:"quantity"`
	Alien    *alien.Alien `json:"alien,omitempty"`
	AddedAt  time.Time    `json:"addedAt"`
}

// Response represents a cart with derived totals. Totals are computed from
// current catalog prices on every read, never stored.
type Response struct {
	ID         uint           `json:"id"`
	UserID     uint           `json:"userId"`
	Items      []ItemResponse `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	AlienID  uint `json:"alienId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// UpdateItemRequest represents update cart item request
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access. Idempotent.
func (s *Service) GetOrCreate(userID uint) (*Cart, error) {
	var c Cart
	err := s.db.Preload("Items").Where("user_id = ?", userID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	c = Cart{UserID: userID}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &c, nil
}

// GetCart returns the user's cart with alien details and derived totals
func (s *Service) GetCart(userID uint) (*Response, error) {
	c, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(c)
}

// AddItem adds an alien to the cart. Fails if the alien does not exist or
// is out of stock; quantities above the cap are silently clamped.
func (s *Service) AddItem(userID uint, req *AddItemRequest) (*Response, error) {
	a, err := s.availableAlien(req.AlienID)
	if err != nil {
		return nil, err
	}

	c, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	c.AddLine(a.ID, req.Quantity)
	if err := s.persistLines(c); err != nil {
		return nil, err
	}

	return s.buildResponse(c)
}

// UpdateItem sets a line's quantity; zero or less removes the line. Setting
// a positive quantity on an alien that is not in the cart fails.
func (s *Service) UpdateItem(userID, alienID uint, quantity int) (*Response, error) {
	c, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if !c.SetLine(alienID, quantity) {
		if quantity > 0 {
			return nil, apperr.NotFound(apperr.CodeAlienNotFound, "Alien is not in the cart")
		}
		// Removing an absent line stays a no-op.
		return s.buildResponse(c)
	}

	if err := s.persistLines(c); err != nil {
		return nil, err
	}

	return s.buildResponse(c)
}

// RemoveItem drops a line if present; removing an absent line is a no-op
func (s *Service) RemoveItem(userID, alienID uint) (*Response, error) {
	return s.UpdateItem(userID, alienID, 0)
}

// Clear empties the cart
func (s *Service) Clear(userID uint) error {
	c, err := s.GetOrCreate(userID)
	if err != nil {
		return err
	}

	c.ClearLines()
	return s.persistLines(c)
}

// availableAlien loads an alien and checks it can be added to a cart
func (s *Service) availableAlien(alienID uint) (*alien.Alien, error) {
	var a alien.Alien
	if err := s.db.First(&a, alienID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BusinessRule(apperr.CodeAlienUnavailable, "Alien is no longer available")
		}
		return nil, apperr.Internal(err)
	}
	if !a.InStock {
		return nil, apperr.BusinessRule(apperr.CodeOutOfStock, "Alien is out of stock")
	}
	return &a, nil
}

// persistLines replaces the cart's stored lines with the in-memory ones.
// Single-cart writes are atomic at the row level; concurrent mutations on
// the same cart are last-write-wins by design of the original system.
func (s *Service) persistLines(c *Cart) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", c.ID).Delete(&Item{}).Error; err != nil {
			return err
		}
		for i := range c.Items {
			c.Items[i].ID = 0
			c.Items[i].CartID = c.ID
			if err := tx.Create(&c.Items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Cart{}).Where("id = ?", c.ID).Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// buildResponse joins current alien data and computes derived totals
func (s *Service) buildResponse(c *Cart) (*Response, error) {
	items := make([]ItemResponse, 0, len(c.Items))
	prices := make(map[uint]float64, len(c.Items))

	for _, item := range c.Items {
		resp := ItemResponse{
			AlienID:  item.AlienID,
			Quantity: item.Quantity,
			AddedAt:  item.CreatedAt,
		}

		var a alien.Alien
		if err := s.db.First(&a, item.AlienID).Error; err == nil {
			resp.Alien = &a
			prices[a.ID] = a.Price
		}
		// Deleted aliens stay in the cart as stale lines; they simply
		// carry no product details and contribute nothing to the total.

		items = append(items, resp)
	}

	return &Response{
		ID:         c.ID,
		UserID:     c.UserID,
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(prices),
		UpdatedAt:  c.UpdatedAt,
	}, nil
}
