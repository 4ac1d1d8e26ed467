// internal/domain/order/entity_test.go
package order

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddress = ShippingAddress{
	Street:  "42 Crater Lane",
	City:    "Port Armstrong",
	State:   "Mare Tranquillitatis",
	Zip:     "00001",
	Country: "Luna",
}

func testItems() []Item {
	return []Item{
		{AlienID: 1, Name: "Zorblax", Quantity: 2, Price: 150.00, LineTotal: 300.00},
		{AlienID: 2, Name: "Mip", Quantity: 1, Price: 49.99, LineTotal: 49.99},
	}
}

func TestNewOrder(t *testing.T) {
	o, err := New(3, testAddress, testItems(), 349.99)
	require.NoError(t, err)

	assert.Equal(t, uint(3), o.UserID)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
	assert.Len(t, o.Items, 2)
	assert.NotEmpty(t, o.OrderNumber)
}

func TestNewOrderRejectsEmptyItems(t *testing.T) {
	_, err := New(3, testAddress, nil, 0)
	assert.Error(t, err)
}

func TestNewOrderTotalWithinTolerance(t *testing.T) {
	// Drift of half a cent is accepted
	o, err := New(3, testAddress, testItems(), 349.985)
	require.NoError(t, err)
	assert.InDelta(t, 349.985, o.TotalAmount, 0.0001)
}

func TestNewOrderRejectsTotalDrift(t *testing.T) {
	_, err := New(3, testAddress, testItems(), 360.00)
	assert.Error(t, err)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BM\d{12}$`)

	for i := 0; i < 20; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusProcessing, StatusConfirmed, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusShipped, false},
		{StatusProcessing, StatusDelivered, false},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		o := &Order{Status: tc.from}
		assert.Equalf(t, tc.allowed, o.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: StatusProcessing}).CanBeCancelled())
	assert.True(t, (&Order{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusShipped}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusDelivered}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCancelled}).CanBeCancelled())
}

func TestCancelRefundsCompletedPayment(t *testing.T) {
	o := &Order{Status: StatusConfirmed, PaymentStatus: PaymentStatusCompleted}

	require.NoError(t, o.Cancel())

	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, PaymentStatusRefunded, o.PaymentStatus)
}

func TestCancelLeavesFailedPaymentAlone(t *testing.T) {
	o := &Order{Status: StatusProcessing, PaymentStatus: PaymentStatusFailed}

	require.NoError(t, o.Cancel())

	assert.Equal(t, PaymentStatusFailed, o.PaymentStatus)
}

func TestCancelShippedOrderFails(t *testing.T) {
	o := &Order{Status: StatusShipped, PaymentStatus: PaymentStatusCompleted}

	assert.Error(t, o.Cancel())
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, PaymentStatusCompleted, o.PaymentStatus)
}
