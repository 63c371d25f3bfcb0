package domain

import "errors"

// Every error here is an expected outcome the caller branches on, not a
// fatal condition.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid booking status")
)
