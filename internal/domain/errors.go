package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a write collided with a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)
