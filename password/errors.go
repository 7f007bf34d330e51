package password

import "errors"

var (
	// ErrLengthTooShort indicates the requested length cannot hold one character per required class.
	ErrLengthTooShort = errors.New("length too short")
	// ErrInsufficientKeyMaterial indicates the derived key encodes to fewer characters than requested.
	ErrInsufficientKeyMaterial = errors.New("insufficient key material")
)
