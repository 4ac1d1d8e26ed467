// internal/domain/order/tracking.go
package order

import "time"

// Milestone offsets from order creation. The timeline is presentational:
// it is derived on every read from the two status fields, never persisted.
const (
	paymentConfirmedOffset = 5 * time.Minute
	confirmedOffset        = 30 * time.Minute
	shippedOffset          = 24 * time.Hour
	deliveredOffset        = 3 * 24 * time.Hour
)

// TrackingEvent represents one milestone in the synthetic order timeline
type TrackingEvent struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Completed   bool      `json:"completed"`
}

// Tracking derives the milestone timeline from the order's statuses and
// fixed offsets from its creation time.
func (o *Order) Tracking() []TrackingEvent {
	placed := TrackingEvent{
		Status:      "placed",
		Description: "Order placed",
		Timestamp:   o.CreatedAt,
		Completed:   true,
	}

	paymentDone := o.PaymentStatus == PaymentStatusCompleted || o.PaymentStatus == PaymentStatusRefunded
	paymentConfirmed := TrackingEvent{
		Status:      "payment_confirmed",
		Description: "Payment confirmed",
		Timestamp:   o.CreatedAt.Add(paymentConfirmedOffset),
		Completed:   paymentDone,
	}

	if o.Status == StatusCancelled {
		return []TrackingEvent{
			placed,
			paymentConfirmed,
			{
				Status:      "cancelled",
				Description: "Order cancelled",
				Timestamp:   o.UpdatedAt,
				Completed:   true,
			},
		}
	}

	return []TrackingEvent{
		placed,
		paymentConfirmed,
		{
			Status:      "confirmed",
			Description: "Order confirmed",
			Timestamp:   o.CreatedAt.Add(confirmedOffset),
			Completed:   o.Status == StatusConfirmed || o.Status == StatusShipped || o.Status == StatusDelivered,
		},
		{
			Status:      "shipped",
			Description: "Order shipped",
			Timestamp:   o.CreatedAt.Add(shippedOffset),
			Completed:   o.Status == StatusShipped || o.Status == StatusDelivered,
		},
		{
			Status:      "delivered",
			Description: "Order delivered",
			Timestamp:   o.CreatedAt.Add(deliveredOffset),
			Completed:   o.Status == StatusDelivered,
		},
	}
}
