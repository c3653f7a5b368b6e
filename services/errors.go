package services

import "errors"

// Failure kinds the controllers translate into HTTP status codes. Anything
// a service returns that does not match one of these is treated as a store
// or upstream failure and surfaces as a generic 500.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)
