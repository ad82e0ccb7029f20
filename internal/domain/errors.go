package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain lets adapters map it consistently.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// Unknown email and digest mismatch return this same value to
	// prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput covers missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict signals a duplicate email at registration.
	ErrConflict = errors.New("email exists")
	// ErrUnauthorized covers absent, malformed, or signature-invalid tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTokenExpired distinguishes an expired token from a forged one;
	// both still map to 401 at the boundary.
	ErrTokenExpired = errors.New("token expired")
	// ErrUpstream signals a failed call to the completion service.
	ErrUpstream = errors.New("completion service unavailable")
)
