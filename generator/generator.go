// Package generator runs the derive-then-encode pipeline that turns a
// master secret and a site into that site's password.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/awnumar/memguard"
	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/internal/logger"
	"github.com/jmcleod/argonpass/internal/util"
	"github.com/jmcleod/argonpass/password"
)

// Request holds everything, apart from the secret, that determines a
// password. Two runs with equal requests and secrets yield the same password.
type Request struct {
	Site    string
	Length  int
	Symbols bool
	Cost    crypto.CostParams
	// NFKD normalises the secret and the site before derivation.
	NFKD bool
}

// Validate reports whether req can produce a password, so that bad input is
// rejected before the secret is asked for.
func (r Request) Validate() error {
	if r.Site == "" {
		return ErrEmptySite
	}
	policy := password.NewPolicy(r.Symbols)
	if r.Length < len(policy) {
		return fmt.Errorf("%w: length %d cannot hold %d required classes", password.ErrLengthTooShort, r.Length, len(policy))
	}
	if err := crypto.ValidateCostParams(r.Cost); err != nil {
		return err
	}
	if maxLen := password.MaxLength(r.Cost.KeyLen); r.Length > maxLen {
		return fmt.Errorf("%w: a %d byte key yields at most %d characters", password.ErrInsufficientKeyMaterial, r.Cost.KeyLen, maxLen)
	}
	return nil
}

// Generator derives site passwords. It holds no state between calls.
type Generator struct {
	log        *logger.Logger
	timeout    time.Duration
	deriveOpts []crypto.DeriveOption
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{log: logger.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate derives the password for req from secret. The secret buffer is
// only read; the caller keeps ownership and destroys it. The derived key
// lives in a locked buffer that is destroyed before Generate returns.
func (g *Generator) Generate(ctx context.Context, secret *memguard.LockedBuffer, req Request) (string, error) {
	if secret == nil || secret.Size() == 0 {
		return "", ErrEmptySecret
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	key, err := g.derive(ctx, secret, req)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	return password.Encode(key.Bytes(), req.Length, password.NewPolicy(req.Symbols))
}

type deriveResult struct {
	key []byte
	err error
}

func (g *Generator) derive(ctx context.Context, secret *memguard.LockedBuffer, req Request) (*memguard.LockedBuffer, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	// The worker owns its own copy so a timed-out derivation never reads a
	// secret the caller has already destroyed.
	var work *memguard.LockedBuffer
	site := req.Site
	if req.NFKD {
		work = memguard.NewBufferFromBytes(util.NormalizeBytes(secret.Bytes()))
		site = util.Normalize(site)
	} else {
		work = memguard.NewBuffer(secret.Size())
		work.Copy(secret.Bytes())
	}

	g.log.Debug().
		Int("site_len", len(site)).
		Int("time_cost", req.Cost.Time).
		Int("memory_kib", req.Cost.MemoryKiB).
		Int("parallelism", req.Cost.Parallelism).
		Int("key_len", req.Cost.KeyLen).
		Bool("nfkd", req.NFKD).
		Msg("deriving site key")
	start := time.Now()

	done := make(chan deriveResult, 1)
	go func() {
		defer work.Destroy()
		key, err := crypto.DeriveSiteKey(work.Bytes(), site, req.Cost, g.deriveOpts...)
		done <- deriveResult{key: key, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		g.log.Debug().Dur("elapsed", time.Since(start)).Msg("site key derived")
		// NewBufferFromBytes wipes the source slice.
		return memguard.NewBufferFromBytes(res.key), nil
	case <-ctx.Done():
		go func() {
			res := <-done
			util.WipeBytes(res.key)
		}()
		return nil, fmt.Errorf("%w: %w", ErrDeriveTimeout, ctx.Err())
	}
}
