package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/storage"
)

// SelectVariant picks the variant from the first non-empty source: an
// explicit flag, the stored profile, then the process configuration.
func SelectVariant(explicit string, stored *storage.SiteProfile, fallback string) (Variant, error) {
	switch {
	case explicit != "":
		return ParseVariant(explicit)
	case stored != nil && stored.Variant != "":
		return ParseVariant(stored.Variant)
	default:
		return ParseVariant(fallback)
	}
}

// MergeSiteProfile layers explicit settings over a stored profile over the
// variant defaults. Only zero-valued fields are filled from lower layers.
func MergeSiteProfile(explicit storage.SiteProfile, stored *storage.SiteProfile, variant Variant) (storage.SiteProfile, error) {
	merged := *explicit.Clone()
	merged.Variant = string(variant)

	layers := []storage.SiteProfile{variant.Defaults()}
	if stored != nil {
		layers = []storage.SiteProfile{*stored.Clone(), variant.Defaults()}
	}
	for _, layer := range layers {
		if err := mergo.Merge(&merged, layer); err != nil {
			return storage.SiteProfile{}, fmt.Errorf("error merging site profile: %w", err)
		}
	}

	return merged, validateProfile(merged, variant)
}

func validateProfile(p storage.SiteProfile, variant Variant) error {
	mode, err := crypto.ParseMode(p.Mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !variant.AllowsMode() && mode != crypto.ModeClassic {
		return fmt.Errorf("%w: --mode is only available in the extended variant", ErrInvalidConfig)
	}
	return nil
}
