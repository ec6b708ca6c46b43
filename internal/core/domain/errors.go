package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable indicates the chart history store is not configured.
	ErrStorageUnavailable = errors.New("chart storage unavailable")

	// ErrInvalidSetting indicates a settings value outside its allowed set.
	ErrInvalidSetting = errors.New("invalid setting")
)

// InputError reports which birth input field failed normalisation.
type InputError struct {
	// Field names the offending input, e.g. "month" or "pillar".
	Field string

	// Value is the raw value as received.
	Value string

	// Err is the classification, normally ErrInvalidInput.
	Err error
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
