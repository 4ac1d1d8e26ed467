// internal/domain/wishlist/service.go
package wishlist

import (
	"errors"
	"time"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Service handles wishlist business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// EntryResponse represents a wishlist entry with its alien joined in
type EntryResponse struct {
	AlienID uint         `json:"alienId"`
	Alien   *alien.Alien `json:"alien,omitempty"`
	AddedAt time.Time    `json:"addedAt"`
}

// AddRequest represents an add-to-wishlist request
type AddRequest struct {
	AlienID uint `json:"alienId" binding:"required"`
}

// List returns the user's wishlist with alien details
func (s *Service) List(userID uint) ([]EntryResponse, error) {
	var items []Item
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	entries := make([]EntryResponse, 0, len(items))
	for _, item := range items {
		entry := EntryResponse{AlienID: item.AlienID, AddedAt: item.CreatedAt}

		var a alien.Alien
		if err := s.db.First(&a, item.AlienID).Error; err == nil {
			entry.Alien = &a
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Add puts an alien on the wishlist; duplicates are a conflict
func (s *Service) Add(userID uint, alienID uint) (*Item, error) {
	var a alien.Alien
	if err := s.db.First(&a, alienID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeAlienNotFound, "Alien not found")
		}
		return nil, apperr.Internal(err)
	}

	var existing Item
	err := s.db.Where("user_id = ? AND alien_id = ?", userID, alienID).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict(apperr.CodeAlreadyInWishlist, "Alien is already in your wishlist")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	item := Item{UserID: userID, AlienID: alienID}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &item, nil
}

// Remove drops an alien from the wishlist; absent entries are a no-op
func (s *Service) Remove(userID, alienID uint) error {
	if err := s.db.Where("user_id = ? AND alien_id = ?", userID, alienID).Delete(&Item{}).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Clear empties the user's wishlist
func (s *Service) Clear(userID uint) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&Item{}).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}
