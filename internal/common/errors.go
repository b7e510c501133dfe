// Package common defines the sentinel errors shared across the service
// layers. Callers should use errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal        = errors.New("internal error")
	ErrInvalidPassword = errors.New("invalid password")
)

// ConflictError reports a uniqueness violation from the store. Constraint
// holds the name of the violated database constraint, so callers can tell a
// duplicate username from a duplicate email without parsing driver errors.
type ConflictError struct {
	Constraint string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Constraint)
}
