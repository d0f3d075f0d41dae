package store

import (
	"errors"
)

// Sentinel errors returned by store operations. Handlers map these to
// flash messages, redirects, or a rendered 404 page.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAlreadyVoted       = errors.New("already voted")
)
