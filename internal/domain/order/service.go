// internal/domain/order/service.go
package order

import (
	"errors"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/domain/cart"
	"github.com/beammart/backend/internal/domain/payment"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
	processor   *payment.Processor
	log         *logrus.Logger
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service, processor *payment.Processor, log *logrus.Logger) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
		processor:   processor,
		log:         log,
	}
}

// CreateRequest represents order creation data
type CreateRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   payment.Card    `json:"paymentMethod" binding:"required"`
}

// ListRequest represents order list query parameters
type ListRequest struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	Status    Status `form:"status"`
	UserID    uint   `form:"-"`
	SortOrder string `form:"sortOrder,default=desc"`
}

// ListResponse represents an order page with its pagination envelope
type ListResponse struct {
	Orders     []Order          `json:"orders"`
	Pagination alien.Pagination `json:"pagination"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// Create places an order from the user's cart.
//
// The sequence cart-read -> stock-check -> order-write -> cart-clear is not
// transactional end to end: a crash mid-way can leave an order without the
// cart cleared. This mirrors the original system and is a documented gap.
func (s *Service) Create(userID uint, req *CreateRequest) (*Order, error) {
	// 1. Load the cart; an absent or empty cart aborts immediately.
	userCart, err := s.cartService.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if len(userCart.Items) == 0 {
		return nil, apperr.BusinessRule(apperr.CodeEmptyCart, "Cannot place an order with an empty cart")
	}

	// 2. Re-fetch every alien and freeze prices into snapshot items.
	var items []Item
	var totalAmount float64
	for _, line := range userCart.Items {
		var a alien.Alien
		if err := s.db.First(&a, line.AlienID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.BusinessRule(apperr.CodeAlienUnavailable, "An alien in your cart is no longer available")
			}
			return nil, apperr.Internal(err)
		}
		if !a.InStock {
			return nil, apperr.BusinessRule(apperr.CodeOutOfStock, "'"+a.Name+"' is out of stock")
		}

		items = append(items, Item{
			AlienID:   a.ID,
			Name:      a.Name,
			Quantity:  line.Quantity,
			Price:     a.Price,
			LineTotal: a.Price * float64(line.Quantity),
		})
		totalAmount += a.Price * float64(line.Quantity)
	}

	// 3. Persist the order as processing/pending before charging.
	newOrder, err := New(userID, req.ShippingAddress, items, totalAmount)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.db.Create(newOrder).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	// 4. Charge the mock gateway synchronously.
	result := s.processor.Charge(req.PaymentMethod, totalAmount)

	if !result.Success {
		// 6. Failed payment: record it, keep the cart so the user can retry.
		newOrder.PaymentStatus = PaymentStatusFailed
		if err := s.db.Model(&Order{}).Where("id = ?", newOrder.ID).
			Update("payment_status", PaymentStatusFailed).Error; err != nil {
			return nil, apperr.Internal(err)
		}
		s.log.WithFields(logrus.Fields{
			"orderNumber": newOrder.OrderNumber,
			"userId":      userID,
		}).Warn("payment declined")
		return nil, apperr.BusinessRule(apperr.CodePaymentFailed, result.Message)
	}

	// 5. Successful payment: confirm the order, then empty the cart. Only
	// the status columns change; the snapshot rows stay untouched.
	newOrder.PaymentStatus = PaymentStatusCompleted
	newOrder.Status = StatusConfirmed
	if err := s.db.Model(&Order{}).Where("id = ?", newOrder.ID).
		Updates(map[string]interface{}{
			"payment_status": PaymentStatusCompleted,
			"status":         StatusConfirmed,
		}).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.cartService.Clear(userID); err != nil {
		// The order stands even if the cart clear fails.
		s.log.WithError(err).WithField("orderNumber", newOrder.OrderNumber).
			Error("failed to clear cart after order creation")
	}

	s.log.WithFields(logrus.Fields{
		"orderNumber": newOrder.OrderNumber,
		"userId":      userID,
		"totalAmount": newOrder.TotalAmount,
	}).Info("order placed")

	return newOrder, nil
}

// List retrieves orders with filtering and pagination. A zero UserID lists
// all orders (admin view).
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	var orders []Order
	var total int64

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 10
	}

	query := s.db.Model(&Order{}).Preload("Items")

	if req.UserID > 0 {
		query = query.Where("user_id = ?", req.UserID)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	sortOrder := "DESC"
	if req.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at " + sortOrder).Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &ListResponse{
		Orders:     orders,
		Pagination: alien.NewPagination(req.Page, req.Limit, total),
	}, nil
}

// Get retrieves a single order, enforcing ownership unless isAdmin
func (s *Service) Get(orderID, userID uint, isAdmin bool) (*Order, error) {
	var o Order
	if err := s.db.Preload("Items").First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeOrderNotFound, "Order not found")
		}
		return nil, apperr.Internal(err)
	}

	if !isAdmin && o.UserID != userID {
		return nil, apperr.NotFound(apperr.CodeOrderNotFound, "Order not found")
	}

	return &o, nil
}

// Cancel cancels an order if its status still allows it
func (s *Service) Cancel(orderID, userID uint, isAdmin bool) (*Order, error) {
	o, err := s.Get(orderID, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := o.Cancel(); err != nil {
		return nil, apperr.BusinessRule(apperr.CodeCannotCancelOrder,
			"Order cannot be cancelled once shipped, delivered or already cancelled")
	}

	if err := s.db.Save(o).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.WithFields(logrus.Fields{
		"orderNumber":   o.OrderNumber,
		"paymentStatus": o.PaymentStatus,
	}).Info("order cancelled")

	return o, nil
}

// GetTracking returns the synthetic milestone timeline for an order
func (s *Service) GetTracking(orderID, userID uint, isAdmin bool) ([]TrackingEvent, error) {
	o, err := s.Get(orderID, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	return o.Tracking(), nil
}

// UpdateStatus moves an order along the fulfillment state machine (admin)
func (s *Service) UpdateStatus(orderID uint, target Status) (*Order, error) {
	o, err := s.Get(orderID, 0, true)
	if err != nil {
		return nil, err
	}

	if target == StatusCancelled {
		return s.Cancel(orderID, 0, true)
	}

	if !o.CanTransitionTo(target) {
		return nil, apperr.BusinessRule(apperr.CodeInvalidStatusTransition,
			"Cannot move order from "+string(o.Status)+" to "+string(target))
	}

	o.Status = target
	if err := s.db.Save(o).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return o, nil
}
