package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/generator"
	"github.com/jmcleod/argonpass/internal/config"
	"github.com/jmcleod/argonpass/password"
	"github.com/jmcleod/argonpass/sink"
	"github.com/jmcleod/argonpass/storage"
	"github.com/jmcleod/argonpass/storage/memory"
)

type generateOptions struct {
	length      int
	symbols     bool
	mode        string
	timeCost    int
	memoryKiB   int
	parallelism int
	nfkd        bool
	quiet       bool
	variant     string
	save        bool
	verbose     bool
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.length, "length", "l", 0, "password length (default 64, or 20 in the simple variant)")
	f.BoolVarP(&o.symbols, "symbols", "s", false, "require a symbol character")
	f.StringVar(&o.mode, "mode", "", "cost tier: fast, balanced or paranoid (extended variant only)")
	f.IntVarP(&o.timeCost, "time-cost", "t", 0, "Argon2 time cost, overrides the tier")
	f.IntVarP(&o.memoryKiB, "memory-cost", "m", 0, "Argon2 memory cost in KiB, overrides the tier")
	f.IntVarP(&o.parallelism, "parallelism", "p", 0, "Argon2 lanes (default 2)")
	f.BoolVar(&o.nfkd, "nfkd", false, "NFKD-normalise the secret and site before derivation")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "do not print the password when it was copied to the clipboard")
	f.StringVar(&o.variant, "variant", "", "simple or extended (default from ARGONPASS_VARIANT, else extended)")
	f.BoolVar(&o.save, "save", false, "remember these settings for the site")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

// explicit returns the settings given on the command line. Flags that were
// not set stay zero so stored profiles and defaults can fill them. An
// explicit zero length or lane count is rejected here, since the merge would
// treat it as unset.
func (o *generateOptions) explicit(cmd *cobra.Command, site string) (storage.SiteProfile, error) {
	f := cmd.Flags()
	p := storage.SiteProfile{Site: site}
	if f.Changed("length") {
		if o.length < 1 {
			return p, fmt.Errorf("%w: length %d", password.ErrLengthTooShort, o.length)
		}
		p.Length = o.length
	}
	if f.Changed("symbols") {
		v := o.symbols
		p.Symbols = &v
	}
	if f.Changed("mode") {
		p.Mode = o.mode
	}
	if f.Changed("time-cost") {
		p.TimeCost = o.timeCost
	}
	if f.Changed("memory-cost") {
		p.MemoryKiB = o.memoryKiB
	}
	if f.Changed("parallelism") {
		if o.parallelism < 1 {
			return p, fmt.Errorf("%w: parallelism must be at least 1", crypto.ErrInvalidParameter)
		}
		p.Parallelism = o.parallelism
	}
	if f.Changed("nfkd") {
		v := o.nfkd
		p.NFKD = &v
	}
	return p, nil
}

// buildRequest turns a merged profile into a generation request.
func buildRequest(p storage.SiteProfile) (generator.Request, error) {
	mode, err := crypto.ParseMode(p.Mode)
	if err != nil {
		return generator.Request{}, err
	}
	timeCost, memoryKiB, err := crypto.Resolve(mode, p.TimeCost, p.MemoryKiB)
	if err != nil {
		return generator.Request{}, err
	}
	req := generator.Request{
		Site:   p.Site,
		Length: p.Length,
		Cost: crypto.CostParams{
			Time:        timeCost,
			MemoryKiB:   memoryKiB,
			Parallelism: p.Parallelism,
			KeyLen:      crypto.DefaultKeyLen,
		},
	}
	if p.Symbols != nil {
		req.Symbols = *p.Symbols
	}
	if p.NFKD != nil {
		req.NFKD = *p.NFKD
	}
	return req, req.Validate()
}

func runGenerate(cmd *cobra.Command, d deps, opts *generateOptions, site string) error {
	cfg, err := d.loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg, opts.verbose)

	// Saved settings are optional: without --save a broken or locked
	// profile book only costs the stored defaults.
	store, err := d.openStore(cfg)
	if err != nil {
		if opts.save {
			return err
		}
		log.Warn().Err(err).Msg("site profiles unavailable, using defaults")
		store = memory.NewRepository()
	}
	defer store.Close()

	stored, err := lookupProfile(store, site)
	if err != nil {
		if opts.save {
			return err
		}
		log.Warn().Err(err).Msg("cannot read site profile, using defaults")
		stored = nil
	}
	explicitVariant := ""
	if cmd.Flags().Changed("variant") {
		explicitVariant = opts.variant
	}
	variant, err := config.SelectVariant(explicitVariant, stored, cfg.Variant)
	if err != nil {
		return err
	}
	explicit, err := opts.explicit(cmd, site)
	if err != nil {
		return err
	}
	profile, err := config.MergeSiteProfile(explicit, stored, variant)
	if err != nil {
		return err
	}
	req, err := buildRequest(profile)
	if err != nil {
		return err
	}
	log.Debug().
		Str("variant", string(variant)).
		Bool("stored_profile", stored != nil).
		Int("length", req.Length).
		Bool("symbols", req.Symbols).
		Msg("settings resolved")

	errOut := cmd.ErrOrStderr()
	chatty := variant.ShowsProfile() && !opts.quiet
	if chatty {
		printSecurityProfile(errOut, req.Cost.Time, req.Cost.MemoryKiB)
	}

	reader, err := d.newPrompter(cmd)
	if err != nil {
		return err
	}
	secret, err := reader.Read(variant.ConfirmSecret())
	if err != nil {
		return err
	}
	defer secret.Destroy()

	genOpts := []generator.Option{generator.WithLogger(log), generator.WithTimeout(cfg.Timeout)}
	if d.memoryProbe != nil {
		genOpts = append(genOpts, generator.WithMemoryProbe(d.memoryProbe))
	}
	gen := generator.New(genOpts...)

	if chatty {
		fmt.Fprint(errOut, "Generating password...")
	}
	start := time.Now()
	pw, err := gen.Generate(context.Background(), secret, req)
	if chatty {
		fmt.Fprintln(errOut)
	}
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("password generated")
	if chatty {
		printReproductionHint(errOut, req.Cost.Time, req.Cost.MemoryKiB)
	}

	if opts.save {
		profile.UpdatedAt = time.Now().UTC()
		if err := store.Put(&profile); err != nil {
			return fmt.Errorf("saving site profile: %w", err)
		}
		log.Info().Msg("site profile saved")
	}

	res, err := sink.New(d.clipboard(cfg), cmd.OutOrStdout(), log).Deliver(pw, opts.quiet)
	if err != nil {
		return err
	}
	if res.Outcome == sink.Fallback {
		log.Debug().AnErr("cause", res.Cause).Msg("password printed instead of copied")
	}
	return nil
}

func printReproductionHint(w io.Writer, timeCost, memoryKiB int) {
	fmt.Fprintf(w, "Generated with: t=%d, m=%dMB (keep these settings for reproduction)\n\n", timeCost, memoryKiB/1024)
}
