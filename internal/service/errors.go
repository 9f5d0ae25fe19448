package service

import "errors"

// Request-boundary error taxonomy. Handlers map each of these to a
// redirect plus a flash message; none escape as unhandled faults.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("item not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnauthorized       = errors.New("permission denied")
	ErrInvalidAction      = errors.New("invalid stock action")
)
