package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"go.etcd.io/bbolt"

	"github.com/jmcleod/argonpass/crypto"
	"github.com/jmcleod/argonpass/internal/config"
	"github.com/jmcleod/argonpass/internal/logger"
	"github.com/jmcleod/argonpass/internal/prompt"
	"github.com/jmcleod/argonpass/sink"
	"github.com/jmcleod/argonpass/storage"
	bboltstorage "github.com/jmcleod/argonpass/storage/bbolt"
	"github.com/jmcleod/argonpass/storage/memory"
)

// Version is set at build time.
var Version = "dev"

// secretReader reads the master secret, twice when confirm is set.
type secretReader interface {
	Read(confirm bool) (*memguard.LockedBuffer, error)
}

// deps holds the collaborators that tests replace.
type deps struct {
	loadConfig  func() (*config.Config, error)
	newPrompter func(cmd *cobra.Command) (secretReader, error)
	clipboard   func(cfg *config.Config) sink.Clipboard
	openStore   func(cfg *config.Config) (storage.Repository, error)
	memoryProbe crypto.MemoryProbe
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		newPrompter: func(cmd *cobra.Command) (secretReader, error) {
			return prompt.NewTerminal(os.Stdin, cmd.ErrOrStderr())
		},
		clipboard: func(cfg *config.Config) sink.Clipboard {
			if cfg.NoClipboard {
				return nil
			}
			return sink.SystemClipboard()
		},
		openStore: openStore,
	}
}

func openStore(cfg *config.Config) (storage.Repository, error) {
	path := cfg.DatabasePath()
	if path == "" {
		return memory.NewRepository(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	repo, err := bboltstorage.NewRepositoryFromFile(path, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open site profiles: %w", err)
	}
	return repo, nil
}

func newRootCmd(d deps) *cobra.Command {
	opts := &generateOptions{}
	siteOpts := &siteOptions{}
	rootCmd := &cobra.Command{
		Use:   "argonpass [flags] <site>",
		Short: "Deterministic site password generator",
		Long: `argonpass derives a password for a site from your master secret with Argon2id.
Nothing is stored: the same secret, site and settings always give the same password.

The master secret must not be empty; an empty entry is asked for again.
Settings saved with --save never include the secret or the password.`,
		Example: `  argonpass example.com
  argonpass -l 20 -s --mode fast github.com
  argonpass --variant simple -t 3 -m 32768 example.com
  argonpass --list-sites`,
		Args: func(cmd *cobra.Command, args []string) error {
			if siteOpts.active(cmd) {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if siteOpts.active(cmd) {
				return runSites(cmd, d, siteOpts)
			}
			return runGenerate(cmd, d, opts, args[0])
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	opts.bind(rootCmd)
	siteOpts.bind(rootCmd)
	return rootCmd
}

// Execute runs the command line and exits 1 on any error.
func Execute() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	rootCmd := newRootCmd(defaultDeps())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		memguard.SafeExit(1)
	}
}

func newLogger(cmd *cobra.Command, cfg *config.Config, verbose bool) *logger.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if cfg.LogFile != "" {
		return logger.NewFromFile(cfg.LogFile, level)
	}
	return logger.New(cmd.ErrOrStderr(), level)
}

func lookupProfile(store storage.Repository, site string) (*storage.SiteProfile, error) {
	p, err := store.Get(site)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
