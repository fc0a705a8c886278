package domain

import "errors"

// Authentication failures. All of them map to 401.
var (
	ErrMissingHeader   = errors.New("authorization header missing")
	ErrMalformedHeader = errors.New("invalid authorization header format")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrUnsupportedPair    = errors.New("unsupported translation type")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")

	// ErrStoreFailure wraps any fault coming from the storage layer.
	ErrStoreFailure = errors.New("store failure")
)
