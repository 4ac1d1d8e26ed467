// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/analytics"
	"github.com/beammart/backend/internal/domain/cart"
	"github.com/beammart/backend/internal/domain/order"
	"github.com/beammart/backend/internal/domain/payment"
	"github.com/beammart/backend/internal/domain/user"
	"github.com/beammart/backend/internal/interfaces/http/middleware"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/metrics"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	analyticsService *analytics.Service
	orderService     *order.Service
	adminUserService *user.AdminService
	metricsService   *metrics.Service
	config           *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB, cfg *config.Config, metricsService *metrics.Service, log *logrus.Logger) *AdminHandler {
	cartService := cart.NewService(db, cfg)
	return &AdminHandler{
		analyticsService: analytics.NewService(db, cfg),
		orderService:     order.NewService(db, cfg, cartService, payment.NewProcessor(), log),
		adminUserService: user.NewAdminService(db, cfg),
		metricsService:   metricsService,
		config:           cfg,
	}
}

// GetDashboard handles GET /admin/analytics/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.analyticsService.Dashboard()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats, "Dashboard stats retrieved successfully")
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var req order.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid query parameters").WithDetails(err.Error()))
		return
	}
	// UserID 0 lists across all users
	req.UserID = 0

	result, err := h.orderService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Orders retrieved successfully")
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.orderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Order status updated successfully")
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req user.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid query parameters").WithDetails(err.Error()))
		return
	}

	result, err := h.adminUserService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Users retrieved successfully")
}

// SetUserAdmin handles PUT /admin/users/:id/admin
func (h *AdminHandler) SetUserAdmin(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req user.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.adminUserService.SetAdmin(targetID, callerID, *req.IsAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "User admin status updated successfully")
}

// DeactivateUser handles PUT /admin/users/:id/deactivate
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.adminUserService.Deactivate(targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "User deactivated successfully")
}

// GetMetrics handles GET /admin/metrics
func (h *AdminHandler) GetMetrics(c *gin.Context) {
	response.OK(c, h.metricsService.Snapshot(), "Metrics retrieved successfully")
}
