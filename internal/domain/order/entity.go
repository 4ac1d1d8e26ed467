// internal/domain/order/entity.go
package order

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// Status represents the order fulfillment status
type Status string

const (
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// TotalTolerance is the maximum drift allowed between the stored total and
// the sum of line totals before a save is rejected.
const TotalTolerance = 0.01

// Order represents a placed order: an immutable snapshot of cart lines with
// prices frozen at creation time.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderNumber   string          `gorm:"uniqueIndex;not null;size:20" json:"orderNumber"`
	UserID        uint            `gorm:"not null;index" json:"userId"`
	Status        Status          `gorm:"not null;default:'processing'" json:"orderStatus"`
	PaymentStatus PaymentStatus   `gorm:"not null;default:'pending'" json:"paymentStatus"`
	TotalAmount   float64         `gorm:"not null" json:"totalAmount"`
	Address       ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	Items         []Item          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Item represents a frozen order line. Price is the alien's price at the
// moment the order was placed, independent of later catalog changes.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"-"`
	AlienID   uint      `gorm:"not null;index" json:"alienId"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	LineTotal float64   `gorm:"not null" json:"lineTotal"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShippingAddress is embedded in the order; every field is required
type ShippingAddress struct {
	Street  string `gorm:"not null;size:255" json:"street" binding:"required"`
	City    string `gorm:"not null;size:100" json:"city" binding:"required"`
	State   string `gorm:"not null;size:100" json:"state" binding:"required"`
	Zip     string `gorm:"not null;size:20" json:"zip" binding:"required"`
	Country string `gorm:"not null;size:100" json:"country" binding:"required"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// New builds an order from frozen line items, generating the order number
// and verifying the total. Construction fails if totalAmount drifts from
// the sum of line totals by more than TotalTolerance.
func New(userID uint, address ShippingAddress, items []Item, totalAmount float64) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	if math.Abs(sum-totalAmount) > TotalTolerance {
		return nil, fmt.Errorf("total amount %.2f does not match item sum %.2f", totalAmount, sum)
	}

	return &Order{
		OrderNumber:   GenerateOrderNumber(),
		UserID:        userID,
		Status:        StatusProcessing,
		PaymentStatus: PaymentStatusPending,
		TotalAmount:   totalAmount,
		Address:       address,
		Items:         items,
	}, nil
}

// GenerateOrderNumber produces a BM-prefixed order number: the last eight
// digits of the unix timestamp plus four random digits.
func GenerateOrderNumber() string {
	return fmt.Sprintf("BM%08d%04d", time.Now().Unix()%100000000, rand.Intn(10000))
}

// validTransitions encodes the fulfillment state machine. Cancellation is
// only reachable before shipping.
var validTransitions = map[Status][]Status{
	StatusProcessing: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// CanTransitionTo reports whether the order may move to the target status
func (o *Order) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanBeCancelled reports whether the order is still cancellable
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusProcessing || o.Status == StatusConfirmed
}

// Cancel moves the order to cancelled and flips a completed payment to
// refunded. No real refund transaction occurs.
func (o *Order) Cancel() error {
	if !o.CanBeCancelled() {
		return fmt.Errorf("order cannot be cancelled in status %s", o.Status)
	}

	o.Status = StatusCancelled
	if o.PaymentStatus == PaymentStatusCompleted {
		o.PaymentStatus = PaymentStatusRefunded
	}
	return nil
}
