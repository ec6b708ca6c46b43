package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrStorageUnavailable", ErrStorageUnavailable},
		{"ErrInvalidSetting", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

// TestErrInvalidInput tests ErrInvalidInput error
func TestErrInvalidInput(t *testing.T) {
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.True(t, errors.Is(ErrInvalidInput, ErrInvalidInput))
	assert.False(t, errors.Is(ErrInvalidInput, ErrNotFound))
}

// TestErrors_Wrapping tests that sentinels survive wrapping
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("get chart %s: %w", "abc", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "not found")
}

func TestInputError(t *testing.T) {
	err := &InputError{Field: "month", Value: "13", Err: ErrInvalidInput}

	assert.Equal(t, `month "13": invalid input`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var target *InputError
	wrapped := fmt.Errorf("build: %w", err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "month", target.Field)
}

func TestInputError_Nil(t *testing.T) {
	var err *InputError
	assert.Equal(t, "<nil>", err.Error())
	assert.Nil(t, err.Unwrap())
}
