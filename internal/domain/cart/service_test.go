// internal/domain/cart/service_test.go
package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return NewService(gdb, &config.Config{}), mock
}

func TestUpdateItemUnknownAlienFails(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "alien_id", "quantity"}).
			AddRow(1, 1, 3, 2))

	resp, err := svc.UpdateItem(7, 99, 5)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.CodeAlienNotFound, apperr.From(err).Code)
	// The stored lines were never touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItemAbsentLineIsNoOp(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "alien_id", "quantity"}))

	resp, err := svc.RemoveItem(7, 99)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}
