package config

import (
	"fmt"
	"strings"

	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/storage"
)

// Variant selects between the two behaviours of the generator.
type Variant string

const (
	// VariantSimple prompts once, defaults to 20 characters and the classic costs.
	VariantSimple Variant = "simple"
	// VariantExtended confirms the secret, defaults to 64 characters and
	// supports named cost tiers.
	VariantExtended Variant = "extended"
)

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantSimple, VariantExtended:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q (want simple or extended)", ErrInvalidVariant, s)
	}
}

// Defaults returns the settings used when neither flags nor a stored
// profile provide a value.
func (v Variant) Defaults() storage.SiteProfile {
	p := storage.SiteProfile{
		Variant:     string(v),
		Parallelism: crypto.DefaultParallelism,
	}
	switch v {
	case VariantSimple:
		p.Length = 20
		p.Mode = string(crypto.ModeClassic)
	default:
		p.Length = 64
	}
	return p
}

// ConfirmSecret reports whether the master secret is entered twice.
func (v Variant) ConfirmSecret() bool {
	return v == VariantExtended
}

// ShowsProfile reports whether the security profile banner is printed.
func (v Variant) ShowsProfile() bool {
	return v == VariantExtended
}

// AllowsMode reports whether named cost tiers may be selected.
func (v Variant) AllowsMode() bool {
	return v == VariantExtended
}
