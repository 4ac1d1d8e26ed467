// internal/domain/order/service_test.go
package order

import (
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/cart"
	"github.com/beammart/backend/internal/domain/payment"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newCreateTestService(t *testing.T, randFloat func() float64) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	return NewService(gdb, cfg, cart.NewService(gdb, cfg), payment.NewProcessorWithRand(randFloat), log), mock
}

func createRequest(cardNumber string) *CreateRequest {
	return &CreateRequest{
		ShippingAddress: ShippingAddress{
			Street:  "42 Crater Lane",
			City:    "Port Zeta",
			State:   "Rings",
			Zip:     "00042",
			Country: "Saturn",
		},
		PaymentMethod: payment.Card{
			CardNumber:     cardNumber,
			ExpiryDate:     "12/30",
			CVV:            "123",
			CardholderName: "Zee Traveler",
		},
	}
}

func expectCartWithLine(mock sqlmock.Sqlmock, alienID uint, quantity int) {
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "alien_id", "quantity"}).
			AddRow(1, 1, alienID, quantity))
}

func TestCreateEmptyCartCreatesNothing(t *testing.T) {
	svc, mock := newCreateTestService(t, func() float64 { return 0.0 })

	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "alien_id", "quantity"}))

	o, err := svc.Create(7, createRequest(payment.TestCardNumber))
	require.Error(t, err)
	assert.Nil(t, o)
	assert.Equal(t, apperr.CodeEmptyCart, apperr.From(err).Code)
	// No order row was ever written.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOutOfStockAbortsAndKeepsCart(t *testing.T) {
	svc, mock := newCreateTestService(t, func() float64 { return 0.0 })

	expectCartWithLine(mock, 3, 2)
	mock.ExpectQuery(`SELECT \* FROM "aliens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "in_stock"}).
			AddRow(3, "Thorgak the Unmoved", 220.0, false))

	o, err := svc.Create(7, createRequest(payment.TestCardNumber))
	require.Error(t, err)
	assert.Nil(t, o)
	assert.Equal(t, apperr.CodeOutOfStock, apperr.From(err).Code)
	// Neither the order insert nor the cart clear ran.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTestCardConfirmsAndClearsCart(t *testing.T) {
	// The pinned value sits below the decline threshold, proving the test
	// card bypasses the random decline entirely.
	svc, mock := newCreateTestService(t, func() float64 { return 0.05 })

	expectCartWithLine(mock, 3, 2)
	mock.ExpectQuery(`SELECT \* FROM "aliens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "in_stock"}).
			AddRow(3, "Zorblax the Magnificent", 150.0, true))

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Clearing the cart reloads it and rewrites its lines in a transaction.
	expectCartWithLine(mock, 3, 2)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "carts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	o, err := svc.Create(7, createRequest(payment.TestCardNumber))
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, PaymentStatusCompleted, o.PaymentStatus)
	assert.InDelta(t, 300.0, o.TotalAmount, TotalTolerance)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.InDelta(t, 150.0, o.Items[0].Price, TotalTolerance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDeclinedPaymentKeepsCart(t *testing.T) {
	svc, mock := newCreateTestService(t, func() float64 { return 0.05 })

	expectCartWithLine(mock, 3, 2)
	mock.ExpectQuery(`SELECT \* FROM "aliens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "in_stock"}).
			AddRow(3, "Zorblax the Magnificent", 150.0, true))

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	o, err := svc.Create(7, createRequest("4000000000000002"))
	require.Error(t, err)
	assert.Nil(t, o)
	assert.Equal(t, apperr.CodePaymentFailed, apperr.From(err).Code)
	// The failed attempt was recorded but the cart was never cleared.
	assert.NoError(t, mock.ExpectationsWereMet())
}
