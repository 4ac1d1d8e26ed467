// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/wishlist"
	"github.com/beammart/backend/internal/interfaces/http/middleware"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
	config          *config.Config
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(db *gorm.DB, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlist.NewService(db, cfg),
		config:          cfg,
	}
}

// List handles GET /wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.wishlistService.List(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"items": result}, "Wishlist retrieved successfully")
}

// Add handles POST /wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req wishlist.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	item, err := h.wishlistService.Add(userID, req.AlienID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, item, "Added to wishlist successfully")
}

// Remove handles DELETE /wishlist/:alienId
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	alienID, ok := parseIDParam(c, "alienId")
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(userID, alienID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil, "Removed from wishlist successfully")
}

// Clear handles DELETE /wishlist
func (h *WishlistHandler) Clear(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.wishlistService.Clear(userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil, "Wishlist cleared successfully")
}
