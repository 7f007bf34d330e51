package config

import "errors"

var (
	// ErrInvalidVariant indicates an unknown program variant name.
	ErrInvalidVariant = errors.New("invalid variant")
	// ErrInvalidConfig indicates settings that cannot be combined or parsed.
	ErrInvalidConfig = errors.New("invalid configuration")
)
