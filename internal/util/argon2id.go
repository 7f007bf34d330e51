package util

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidArgon2idParams is returned when the Argon2id cost parameters are
// outside the range the primitive accepts.
var ErrInvalidArgon2idParams = errors.New("invalid argon2id parameters")

// Argon2idParams holds Argon2id cost parameters. Fields are plain ints so
// that out-of-range user input can be rejected before narrowing.
type Argon2idParams struct {
	Time        int `json:"time"`
	MemoryKiB   int `json:"memory"`
	Parallelism int `json:"parallelism"`
	KeyLen      int `json:"key_len"`
}

// DefaultArgon2idParams returns parallelism 2 and a 64 byte key, matching
// every password generated so far, with the classic time/memory costs.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Time:        3,
		MemoryKiB:   32 * 1024,
		Parallelism: 2,
		KeyLen:      64,
	}
}

// ValidateArgon2idParams reports whether p can be passed to argon2.IDKey.
func ValidateArgon2idParams(p Argon2idParams) error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("%w: time cost must be at least 1, got %d", ErrInvalidArgon2idParams, p.Time)
	case int64(p.Time) > math.MaxUint32:
		return fmt.Errorf("%w: time cost %d overflows uint32", ErrInvalidArgon2idParams, p.Time)
	case p.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidArgon2idParams, p.Parallelism)
	case p.Parallelism > math.MaxUint8:
		return fmt.Errorf("%w: parallelism must be at most %d, got %d", ErrInvalidArgon2idParams, math.MaxUint8, p.Parallelism)
	case p.MemoryKiB < 8*p.Parallelism:
		return fmt.Errorf("%w: memory cost must be at least %d KiB for parallelism %d, got %d",
			ErrInvalidArgon2idParams, 8*p.Parallelism, p.Parallelism, p.MemoryKiB)
	case int64(p.MemoryKiB) > math.MaxUint32:
		return fmt.Errorf("%w: memory cost %d KiB overflows uint32", ErrInvalidArgon2idParams, p.MemoryKiB)
	case p.KeyLen < 1:
		return fmt.Errorf("%w: key length must be at least 1, got %d", ErrInvalidArgon2idParams, p.KeyLen)
	case int64(p.KeyLen) > math.MaxUint32:
		return fmt.Errorf("%w: key length %d overflows uint32", ErrInvalidArgon2idParams, p.KeyLen)
	}
	return nil
}

// DeriveArgon2idKey runs Argon2id over passphrase and salt. The caller owns
// the returned slice and should wipe it when done.
func DeriveArgon2idKey(passphrase []byte, salt []byte, params Argon2idParams) ([]byte, error) {
	if err := ValidateArgon2idParams(params); err != nil {
		return nil, err
	}
	key := argon2.IDKey(passphrase, salt,
		uint32(params.Time), uint32(params.MemoryKiB), uint8(params.Parallelism), uint32(params.KeyLen))
	return key, nil
}
