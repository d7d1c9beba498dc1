// Package store holds the storage-agnostic errors every repository
// implementation translates its driver errors into.
package store

import "errors"

var (
	// ErrNotFound is returned when a record does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key violates unique constraint")
)
