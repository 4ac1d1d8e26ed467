// internal/pkg/apperr/apperr_test.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromExtractsAppError(t *testing.T) {
	original := NotFound(CodeAlienNotFound, "Alien not found")
	wrapped := fmt.Errorf("handler: %w", original)

	extracted := From(wrapped)

	assert.Equal(t, CodeAlienNotFound, extracted.Code)
	assert.Equal(t, http.StatusNotFound, extracted.Status)
}

func TestFromWrapsUnknownError(t *testing.T) {
	err := From(errors.New("pq: connection refused"))

	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	// The cause never leaks into the client-facing message
	assert.Equal(t, "An unexpected error occurred", err.Message)
}

func TestInternalMapsUniqueViolationToConflict(t *testing.T) {
	err := Internal(gorm.ErrDuplicatedKey)

	assert.Equal(t, CodeDuplicateField, err.Code)
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFromMapsWrappedUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("save wishlist item: %w", gorm.ErrDuplicatedKey)

	err := From(wrapped)

	assert.Equal(t, CodeDuplicateField, err.Code)
	assert.Equal(t, http.StatusConflict, err.Status)
}

func TestWithDetailsDoesNotMutateOriginal(t *testing.T) {
	base := Validation("Invalid request data")
	detailed := base.WithDetails("name is required")

	assert.Nil(t, base.Details)
	assert.Equal(t, "name is required", detailed.Details)
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := errors.New("row not found")
	err := NotFound(CodeOrderNotFound, "Order not found").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "row not found")
}

func TestConstructorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status)
	assert.Equal(t, http.StatusBadRequest, BusinessRule(CodeEmptyCart, "x").Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized(CodeNoToken, "x").Status)
	assert.Equal(t, http.StatusForbidden, Forbidden(CodeAdminRequired, "x").Status)
	assert.Equal(t, http.StatusNotFound, NotFound(CodeUserNotFound, "x").Status)
	assert.Equal(t, http.StatusConflict, Conflict(CodeUserExists, "x").Status)
}
