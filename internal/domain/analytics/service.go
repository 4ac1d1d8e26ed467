// internal/domain/analytics/service.go
package analytics

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/domain/order"
	"github.com/beammart/backend/internal/domain/user"
	"github.com/beammart/backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Service handles admin analytics. All reads, no writes.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new analytics service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// DashboardStats represents overall dashboard statistics
type DashboardStats struct {
	TotalUsers       int64            `json:"totalUsers"`
	TotalAliens      int64            `json:"totalAliens"`
	OutOfStockAliens int64            `json:"outOfStockAliens"`
	TotalOrders      int64            `json:"totalOrders"`
	TotalRevenue     float64          `json:"totalRevenue"`
	AvgOrderValue    float64          `json:"avgOrderValue"`
	OrdersByStatus   []StatusCount    `json:"ordersByStatus"`
	TopAliens        []AlienSalesData `json:"topAliens"`
	RecentOrders     []order.Order    `json:"recentOrders"`
}

// StatusCount represents order counts grouped by status
type StatusCount struct {
	Status order.Status `json:"status"`
	Count  int64        `json:"count"`
}

// AlienSalesData represents units sold and revenue per alien
type AlienSalesData struct {
	AlienID   uint    `json:"alienId"`
	Name      string  `json:"name"`
	UnitsSold int64   `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// Dashboard aggregates the store-wide numbers for the admin panel.
// Revenue only counts orders whose payment actually completed (refunded
// orders were paid once, so they count toward gross revenue).
func (s *Service) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&user.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.db.Model(&alien.Alien{}).Count(&stats.TotalAliens).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.db.Model(&alien.Alien{}).Where("in_stock = ?", false).Count(&stats.OutOfStockAliens).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.db.Model(&order.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	paidStatuses := []order.PaymentStatus{order.PaymentStatusCompleted, order.PaymentStatusRefunded}

	var revenue struct {
		Total float64
		Count int64
	}
	err := s.db.Model(&order.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where("payment_status IN ?", paidStatuses).
		Scan(&revenue).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	stats.TotalRevenue = revenue.Total
	if revenue.Count > 0 {
		stats.AvgOrderValue = revenue.Total / float64(revenue.Count)
	}

	err = s.db.Model(&order.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.OrdersByStatus).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	topAliens, err := s.TopAliens(5)
	if err != nil {
		return nil, err
	}
	stats.TopAliens = topAliens

	err = s.db.Model(&order.Order{}).
		Preload("Items").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentOrders).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return stats, nil
}

// TopAliens returns the best-selling aliens across paid orders
func (s *Service) TopAliens(limit int) ([]AlienSalesData, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}

	var top []AlienSalesData
	err := s.db.Model(&order.Item{}).
		Select("order_items.alien_id AS alien_id, order_items.name AS name, SUM(order_items.quantity) AS units_sold, SUM(order_items.line_total) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.payment_status IN ?", []order.PaymentStatus{order.PaymentStatusCompleted, order.PaymentStatusRefunded}).
		Group("order_items.alien_id, order_items.name").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return top, nil
}
