package services

import "errors"

var (
	// ErrMissingFields marks user-correctable validation failures.
	ErrMissingFields = errors.New("all fields are required")
	// ErrUserExists is returned when a registration email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidID marks a malformed document id in a request path.
	ErrInvalidID = errors.New("invalid id format")
	// ErrNotFound is returned when a lookup or update matched nothing.
	ErrNotFound = errors.New("not found")
)
