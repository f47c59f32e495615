package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks counters that must not reach the calculator.
	ErrInvalidInput = errors.New("invalid input")
	// ErrComputation marks an arithmetic failure inside the calculation.
	ErrComputation = errors.New("computation error")
)

// FieldError is an ErrInvalidInput tied to a single counter.
type FieldError struct {
	Field  CounterField
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
