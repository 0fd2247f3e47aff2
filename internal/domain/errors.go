package domain

import "errors"

// Domain error kinds. Services return these (possibly wrapped); the API
// layer maps them to HTTP status codes with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")           // Missing id
	ErrDuplicateKey       = errors.New("duplicate key")                // Unique constraint violation
	ErrValidation         = errors.New("validation failed")            // Bad input shape or range
	ErrInvalidCredentials = errors.New("invalid username or password") // Login failure, never more specific
	ErrTokenInvalid       = errors.New("invalid or expired token")     // Signature, structure or expiry failure
	ErrUnauthorized       = errors.New("unauthorized")                 // No resolved user identity
)
