package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMerchantRequired    = errors.New("merchant name is required")
	ErrMerchantTooLong     = errors.New("merchant name exceeds maximum length")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidCategory     = errors.New("category is not one of the allowed values")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrFutureDate          = errors.New("date must not be in the future")
	ErrNotesTooLong        = errors.New("notes exceed maximum length")
	ErrDuplicateSubmission = errors.New("submission already in flight")
)

// PersistenceError wraps any failure reported by the transaction store. The
// core treats all of them uniformly; retry is the caller's decision.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err as a store failure for the given operation.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
