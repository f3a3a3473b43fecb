package domain

import (
	"errors"
	"fmt"
)

// ValidationError is returned by the input constructors when a field
// violates a domain rule. It is always the client's fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError signals that an entity of the given kind does not exist.
type NotFoundError struct {
	Kind string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// ConstraintViolationError wraps a storage-level integrity failure, e.g. an
// insert that references a missing foreign row.
type ConstraintViolationError struct {
	Constraint string
	Err        error
}

func (e ConstraintViolationError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("constraint violation: %v", e.Err)
	}
	return fmt.Sprintf("constraint %s violated: %v", e.Constraint, e.Err)
}

func (e ConstraintViolationError) Unwrap() error {
	return e.Err
}

// ErrPoolExhausted is returned when no pooled connection became free before
// the request deadline. Callers should retry with backoff.
var ErrPoolExhausted = errors.New("database connection pool exhausted")

// ErrInvalidStoredData marks a row read back from storage that no longer
// passes domain validation. It is never the client's fault.
var ErrInvalidStoredData = errors.New("stored data failed validation")

const (
	KindLocation   = "Location"
	KindAsset      = "Asset"
	KindStrategy   = "Strategy"
	KindInvestment = "Investment"
	KindUser       = "User"
)
