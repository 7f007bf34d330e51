package crypto

import "errors"

var (
	// ErrInvalidParameter indicates a cost parameter outside the range the KDF accepts.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrResourceExhausted indicates the host cannot provide the requested memory cost.
	ErrResourceExhausted = errors.New("resource exhausted")
)
