// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/cart"
	"github.com/beammart/backend/internal/interfaces/http/middleware"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, cfg),
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.cartService.GetCart(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Cart retrieved successfully")
}

// AddItem handles POST /cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.cartService.AddItem(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Item added to cart successfully")
}

// UpdateItem handles PUT /cart/update/:alienId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	alienID, ok := parseIDParam(c, "alienId")
	if !ok {
		return
	}

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.cartService.UpdateItem(userID, alienID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Cart item updated successfully")
}

// RemoveItem handles DELETE /cart/remove/:alienId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	alienID, ok := parseIDParam(c, "alienId")
	if !ok {
		return
	}

	result, err := h.cartService.RemoveItem(userID, alienID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Item removed from cart successfully")
}

// Clear handles DELETE /cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.cartService.Clear(userID); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.cartService.GetCart(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Cart cleared successfully")
}
