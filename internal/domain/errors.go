package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a write would violate a uniqueness rule
	ErrConflict = errors.New("conflict occurred")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)
