package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActivityNotFoundError(t *testing.T) {
	err := NewActivityNotFoundError(`Chess "Club"`)

	assert.True(t, errors.Is(err, ErrActivityNotFound))
	assert.Equal(t, `activity "Chess \"Club\"" not found`, err.Error())
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("signup: %w", ErrCapacityExceeded)

	assert.True(t, Is(wrapped, ErrCapacityExceeded))
	assert.True(t, Is(wrapped, ErrNotRegistered, ErrAlreadyRegistered, ErrCapacityExceeded))
	assert.False(t, Is(wrapped, ErrActivityNotFound))
}
