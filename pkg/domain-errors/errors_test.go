package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorInterface(t *testing.T) {
	t.Run("returns message when present", func(t *testing.T) {
		err := &Error{Code: CodeNotFound, Message: "person not found"}
		assert.Equal(t, "person not found", err.Error())
	})

	t.Run("returns code when message is empty", func(t *testing.T) {
		err := &Error{Code: CodeNotFound}
		assert.Equal(t, "not_found", err.Error())
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeConflict, "country already exists")
	assert.True(t, errors.Is(err, &Error{Code: CodeConflict}))
	assert.False(t, errors.Is(err, &Error{Code: CodeNotFound}))
}

func TestWrapPreservesOriginalCode(t *testing.T) {
	inner := New(CodeValidation, "person_name is required")
	wrapped := Wrap(inner, CodeInternal, "add person failed")

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, CodeValidation, e.Code)
	assert.Equal(t, "add person failed", e.Message)
	assert.True(t, errors.Is(wrapped, inner))
}

func TestWrapPlainError(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := Wrap(inner, CodeInternal, "store unavailable")

	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.True(t, errors.Is(wrapped, inner))
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(New(CodeBadRequest, "request is required"), CodeBadRequest))
	assert.False(t, HasCode(errors.New("plain"), CodeBadRequest))
	assert.False(t, HasCode(nil, CodeBadRequest))
}
