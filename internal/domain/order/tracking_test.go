// internal/domain/order/tracking_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingTimelineOffsets(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	o := &Order{
		Status:        StatusConfirmed,
		PaymentStatus: PaymentStatusCompleted,
		CreatedAt:     created,
	}

	events := o.Tracking()
	require.Len(t, events, 5)

	assert.Equal(t, "placed", events[0].Status)
	assert.Equal(t, created, events[0].Timestamp)
	assert.True(t, events[0].Completed)

	assert.Equal(t, "payment_confirmed", events[1].Status)
	assert.Equal(t, created.Add(5*time.Minute), events[1].Timestamp)
	assert.True(t, events[1].Completed)

	assert.Equal(t, "confirmed", events[2].Status)
	assert.Equal(t, created.Add(30*time.Minute), events[2].Timestamp)
	assert.True(t, events[2].Completed)

	assert.Equal(t, "shipped", events[3].Status)
	assert.Equal(t, created.Add(24*time.Hour), events[3].Timestamp)
	assert.False(t, events[3].Completed)

	assert.Equal(t, "delivered", events[4].Status)
	assert.Equal(t, created.Add(72*time.Hour), events[4].Timestamp)
	assert.False(t, events[4].Completed)
}

func TestTrackingDeliveredCompletesEverything(t *testing.T) {
	o := &Order{
		Status:        StatusDelivered,
		PaymentStatus: PaymentStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}

	for _, event := range o.Tracking() {
		assert.Truef(t, event.Completed, "event %s should be completed", event.Status)
	}
}

func TestTrackingCancelledOrder(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	cancelled := created.Add(2 * time.Hour)
	o := &Order{
		Status:        StatusCancelled,
		PaymentStatus: PaymentStatusRefunded,
		CreatedAt:     created,
		UpdatedAt:     cancelled,
	}

	events := o.Tracking()
	require.Len(t, events, 3)

	assert.Equal(t, "cancelled", events[2].Status)
	assert.Equal(t, cancelled, events[2].Timestamp)
	assert.True(t, events[2].Completed)

	// Refunded still counts as payment having been confirmed
	assert.True(t, events[1].Completed)
}

func TestTrackingPendingPayment(t *testing.T) {
	o := &Order{
		Status:        StatusProcessing,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	events := o.Tracking()
	require.Len(t, events, 5)
	assert.False(t, events[1].Completed)
	assert.False(t, events[2].Completed)
}
