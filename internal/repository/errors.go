package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrUserExists is returned when a user with the same email already exists.
	ErrUserExists = errors.New("user already exists")
)
