// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/cart"
	"github.com/beammart/backend/internal/domain/order"
	"github.com/beammart/backend/internal/domain/payment"
	"github.com/beammart/backend/internal/interfaces/http/middleware"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/invoice"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService   *order.Service
	invoiceService *invoice.Service
	config         *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *OrderHandler {
	cartService := cart.NewService(db, cfg)
	return &OrderHandler{
		orderService:   order.NewService(db, cfg, cartService, payment.NewProcessor(), log),
		invoiceService: invoice.NewService(cfg),
		config:         cfg,
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.orderService.Create(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result, "Order placed successfully")
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req order.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid query parameters").WithDetails(err.Error()))
		return
	}
	req.UserID = userID

	result, err := h.orderService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Orders retrieved successfully")
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.Get(orderID, userID, middleware.IsAdminFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Order retrieved successfully")
}

// Cancel handles PUT /orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.Cancel(orderID, userID, middleware.IsAdminFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Order cancelled successfully")
}

// GetTracking handles GET /orders/:id/tracking
func (h *OrderHandler) GetTracking(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := h.orderService.GetTracking(orderID, userID, middleware.IsAdminFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"tracking": events}, "Tracking retrieved successfully")
}

// GetInvoice handles GET /orders/:id/invoice
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.orderService.Get(orderID, userID, middleware.IsAdminFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, err := h.invoiceService.Generate(o)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", o.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}
