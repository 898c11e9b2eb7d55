package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("order is incomplete", "缺少公司名稱", "未選擇尺寸")

	assert.Equal(t, "order is incomplete", err.Error())
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"缺少公司名稱", "未選擇尺寸"}, ve.Details)
}

func TestValidationError_NotValidation(t *testing.T) {
	_, ok := IsValidationError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("order for user U123 not found")

	assert.Equal(t, "order for user U123 not found", err.Error())

	_, ok := IsNotFoundError(err)
	assert.True(t, ok)

	_, ok = IsNotFoundError(errors.New("other"))
	assert.False(t, ok)
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("notifying archive", cause)

	assert.Equal(t, "notifying archive: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("handling event: %w", err)
	var ie *InternalError
	assert.True(t, errors.As(wrapped, &ie))
}

func TestInternalError_NoCause(t *testing.T) {
	err := NewInternalError("unexpected state", nil)
	assert.Equal(t, "unexpected state", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
