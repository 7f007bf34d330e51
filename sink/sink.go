// Package sink delivers a generated password to the clipboard, falling back
// to plain output when the clipboard is missing or fails.
package sink

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/jmcleod/argonpass/internal/logger"
)

// ErrClipboardUnavailable is reported with a Fallback outcome when the
// clipboard could not be used. It is never returned as a failure.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is the copy capability.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error { return f(text) }

// SystemClipboard returns the host clipboard, or nil when the platform has
// no supported clipboard tool.
func SystemClipboard() Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return ClipboardFunc(clipboard.WriteAll)
}

// Outcome tells the caller where the password went.
type Outcome int

const (
	// Copied means the password is on the clipboard.
	Copied Outcome = iota
	// Fallback means the password was written to the output instead.
	Fallback
)

func (o Outcome) String() string {
	switch o {
	case Copied:
		return "copied"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes a delivery.
type Result struct {
	Outcome Outcome
	// Cause is set for Fallback and wraps ErrClipboardUnavailable.
	Cause error
}

// Sink writes passwords to a clipboard capability chosen at construction.
type Sink struct {
	clip Clipboard
	out  io.Writer
	log  *logger.Logger
}

// New returns a Sink. A nil clip means no clipboard capability: every
// password is written to out.
func New(clip Clipboard, out io.Writer, log *logger.Logger) *Sink {
	if log == nil {
		log = logger.Nop()
	}
	return &Sink{clip: clip, out: out, log: log}
}

// CanCopy reports whether a clipboard capability is present.
func (s *Sink) CanCopy() bool {
	return s.clip != nil
}

// Deliver copies pw to the clipboard and, unless quiet, prints it with a
// note. If copying is impossible pw is printed even when quiet. The
// returned error only reports failures writing to out.
func (s *Sink) Deliver(pw string, quiet bool) (Result, error) {
	if s.clip == nil {
		res := Result{Outcome: Fallback, Cause: fmt.Errorf("%w: no clipboard support", ErrClipboardUnavailable)}
		s.log.Debug().Msg("no clipboard capability, printing password")
		return res, s.print(pw)
	}

	if err := s.clip.WriteAll(pw); err != nil {
		res := Result{Outcome: Fallback, Cause: fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)}
		s.log.Warn().Err(err).Msg("clipboard copy failed, printing password")
		return res, s.print(pw)
	}

	s.log.Debug().Msg("password copied to clipboard")
	if !quiet {
		if _, err := fmt.Fprintln(s.out, pw, "(copied to clipboard)"); err != nil {
			return Result{Outcome: Copied}, err
		}
	}
	return Result{Outcome: Copied}, nil
}

func (s *Sink) print(pw string) error {
	_, err := fmt.Fprintln(s.out, pw)
	return err
}
