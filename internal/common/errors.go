// Package common defines sentinel errors shared by repositories, services and
// handlers. Callers wrap them with fmt.Errorf("...: %w") and match with errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// repository specific errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")

	// upstream (translation service) errors
	ErrUpstream   = errors.New("upstream service error")
	ErrGeneration = fmt.Errorf("quiz generation failed: %w", ErrUpstream)
)
