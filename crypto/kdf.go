// Package crypto derives site keys from a master secret with Argon2id and
// resolves the named cost tiers used to parameterise the derivation.
package crypto

import (
	"errors"
	"fmt"

	"github.com/jmcleod/argonpass/internal/util"
)

// MinSaltLen is the minimum salt length accepted by Argon2id. Shorter site
// identifiers are right-padded with zero bytes.
const MinSaltLen = 8

const (
	// DefaultParallelism is the lane count every existing password was derived with.
	DefaultParallelism = 2
	// DefaultKeyLen is the derived key length in bytes.
	DefaultKeyLen = 64
)

// CostParams configures a site key derivation.
type CostParams = util.Argon2idParams

// NewCostParams returns CostParams for the given time and memory costs with
// the default lane count and key length.
func NewCostParams(timeCost, memoryKiB int) CostParams {
	return CostParams{
		Time:        timeCost,
		MemoryKiB:   memoryKiB,
		Parallelism: DefaultParallelism,
		KeyLen:      DefaultKeyLen,
	}
}

// MemoryProbe reports how much memory the host can provide, in KiB. The
// boolean is false when the amount is unknown, in which case no check is
// made.
type MemoryProbe func() (uint64, bool)

// DeriveOption is a functional option for DeriveSiteKey.
type DeriveOption func(*deriveOptions)

type deriveOptions struct {
	probe MemoryProbe
}

// WithMemoryProbe replaces the host memory probe.
func WithMemoryProbe(probe MemoryProbe) DeriveOption {
	return func(o *deriveOptions) {
		o.probe = probe
	}
}

// SiteSalt returns the UTF-8 bytes of site right-padded with zero bytes to
// MinSaltLen.
func SiteSalt(site string) []byte {
	return util.PadRight([]byte(site), MinSaltLen)
}

// ValidateCostParams checks p against the limits of the KDF.
func ValidateCostParams(p CostParams) error {
	if err := util.ValidateArgon2idParams(p); err != nil {
		if errors.Is(err, util.ErrInvalidArgon2idParams) {
			return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
		return err
	}
	return nil
}

// DeriveSiteKey derives p.KeyLen bytes from secret and site. The result is a
// pure function of its inputs. The caller owns the returned slice and must
// wipe it after use.
func DeriveSiteKey(secret []byte, site string, p CostParams, opts ...DeriveOption) ([]byte, error) {
	options := deriveOptions{probe: util.PhysicalMemoryKiB}
	for _, opt := range opts {
		opt(&options)
	}

	if err := ValidateCostParams(p); err != nil {
		return nil, err
	}
	if options.probe != nil {
		if avail, ok := options.probe(); ok && uint64(p.MemoryKiB) > avail {
			return nil, fmt.Errorf("%w: memory cost %d KiB exceeds the %d KiB available", ErrResourceExhausted, p.MemoryKiB, avail)
		}
	}

	salt := SiteSalt(site)
	key, err := util.DeriveArgon2idKey(secret, salt, p)
	if err != nil {
		return nil, fmt.Errorf("deriving site key: %w", err)
	}
	return key, nil
}
