package generator

import "errors"

var (
	// ErrDeriveTimeout indicates key derivation did not finish before the deadline.
	ErrDeriveTimeout = errors.New("key derivation timed out")
	// ErrEmptySecret indicates an empty master secret.
	ErrEmptySecret = errors.New("master secret must not be empty")
	// ErrEmptySite indicates an empty site identifier.
	ErrEmptySite = errors.New("site must not be empty")
)
