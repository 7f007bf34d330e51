package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/awnumar/memguard"
	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(s string) *memguard.LockedBuffer {
	return memguard.NewBufferFromBytes([]byte(s))
}

func cheapRequest(site string) Request {
	return Request{Site: site, Length: 20, Cost: crypto.NewCostParams(1, 64)}
}

func TestGenerate_Fixture(t *testing.T) {
	tests := []struct {
		name    string
		site    string
		length  int
		symbols bool
		cost    crypto.CostParams
		want    string
	}{
		{"ClassicCosts", "example.com", 20, false, crypto.NewCostParams(3, 32768), "N33j4vWTkXUyoe32kYYs"},
		{"ClassicCostsSymbols", "example.com", 20, true, crypto.NewCostParams(3, 32768), "l33)C,uT-vs>[%B2-ww|"},
		{"ClassicCostsFullLength", "example.com", 64, false, crypto.NewCostParams(3, 32768),
			"N33j4vWTkXUyoe32kYYsYggdBSh1XKZ4UVKJ05z3RTUVq2ol25WY2Qd322zZ4Zs2"},
		{"ShortSite", "gh", 20, false, crypto.NewCostParams(1, 64), "000R5N13QgzeZwN70Mx5"},
	}
	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := newSecret("correct horse")
			defer secret.Destroy()

			req := Request{Site: tt.site, Length: tt.length, Symbols: tt.symbols, Cost: tt.cost}
			got, err := g.Generate(context.Background(), secret, req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Properties(t *testing.T) {
	secret := newSecret("correct horse")
	defer secret.Destroy()
	g := New()

	for _, symbols := range []bool{false, true} {
		req := cheapRequest("github.com")
		req.Symbols = symbols
		req.Length = 40
		pw, err := g.Generate(context.Background(), secret, req)
		require.NoError(t, err)
		require.Len(t, pw, 40)

		policy := password.NewPolicy(symbols)
		for _, ch := range pw {
			assert.True(t, strings.ContainsRune(policy.FullPool(), ch))
		}
	}

	a, err := g.Generate(context.Background(), secret, cheapRequest("a.example"))
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), secret, cheapRequest("b.example"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "different sites must give different passwords")
}

func TestGenerate_SecretUntouched(t *testing.T) {
	secret := newSecret("correct horse")
	defer secret.Destroy()

	_, err := New().Generate(context.Background(), secret, cheapRequest("example.com"))
	require.NoError(t, err)
	assert.Equal(t, "correct horse", string(secret.Bytes()))

	req := cheapRequest("example.com")
	req.NFKD = true
	_, err = New().Generate(context.Background(), secret, req)
	require.NoError(t, err)
	assert.Equal(t, "correct horse", string(secret.Bytes()))
}

func TestGenerate_NFKD(t *testing.T) {
	composed := newSecret("caf\u00e9")
	defer composed.Destroy()
	decomposed := newSecret("cafe\u0301")
	defer decomposed.Destroy()
	g := New()

	req := cheapRequest("example.com")
	a, err := g.Generate(context.Background(), composed, req)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), decomposed, req)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "raw bytes differ without normalisation")

	req.NFKD = true
	a, err = g.Generate(context.Background(), composed, req)
	require.NoError(t, err)
	b, err = g.Generate(context.Background(), decomposed, req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	secret := newSecret("correct horse")
	defer secret.Destroy()
	g := New()
	ctx := context.Background()

	t.Run("LengthTooShort", func(t *testing.T) {
		req := cheapRequest("example.com")
		req.Length = 3
		req.Symbols = true
		_, err := g.Generate(ctx, secret, req)
		assert.ErrorIs(t, err, password.ErrLengthTooShort)
	})

	t.Run("InsufficientKeyMaterial", func(t *testing.T) {
		req := cheapRequest("example.com")
		req.Length = 87
		_, err := g.Generate(ctx, secret, req)
		assert.ErrorIs(t, err, password.ErrInsufficientKeyMaterial)
	})

	t.Run("InvalidParameter", func(t *testing.T) {
		req := cheapRequest("example.com")
		req.Cost.Time = 0
		_, err := g.Generate(ctx, secret, req)
		assert.ErrorIs(t, err, crypto.ErrInvalidParameter)
	})

	t.Run("ResourceExhausted", func(t *testing.T) {
		small := New(WithMemoryProbe(func() (uint64, bool) { return 16, true }))
		_, err := small.Generate(ctx, secret, cheapRequest("example.com"))
		assert.ErrorIs(t, err, crypto.ErrResourceExhausted)
	})

	t.Run("EmptySecret", func(t *testing.T) {
		_, err := g.Generate(ctx, nil, cheapRequest("example.com"))
		assert.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("EmptySite", func(t *testing.T) {
		_, err := g.Generate(ctx, secret, cheapRequest(""))
		assert.ErrorIs(t, err, ErrEmptySite)
	})
}

func TestGenerate_Timeout(t *testing.T) {
	secret := newSecret("correct horse")
	defer secret.Destroy()

	g := New(WithTimeout(time.Nanosecond))
	req := cheapRequest("example.com")
	req.Cost = crypto.NewCostParams(4, 64*1024)

	_, err := g.Generate(context.Background(), secret, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeriveTimeout)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestGenerate_Cancelled(t *testing.T) {
	secret := newSecret("correct horse")
	defer secret.Destroy()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := cheapRequest("example.com")
	req.Cost = crypto.NewCostParams(4, 64*1024)
	_, err := New().Generate(ctx, secret, req)
	assert.ErrorIs(t, err, context.Canceled)
}
