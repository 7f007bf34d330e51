package generator

import (
	"time"

	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/internal/logger"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithTimeout bounds each derivation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithMemoryProbe overrides the host memory probe used before derivation.
func WithMemoryProbe(probe crypto.MemoryProbe) Option {
	return func(g *Generator) {
		g.deriveOpts = append(g.deriveOpts, crypto.WithMemoryProbe(probe))
	}
}
