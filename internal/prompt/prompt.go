// Package prompt reads the master secret from a terminal without echo.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when the input is not an interactive terminal.
	ErrNotTerminal = errors.New("master secret must be entered on a terminal")
)

// ReadPasswordFunc reads one line without echo.
type ReadPasswordFunc func() ([]byte, error)

// Prompter asks for the master secret.
type Prompter struct {
	read ReadPasswordFunc
	out  io.Writer
}

// NewTerminal returns a Prompter reading from in, which must be a terminal.
// Prompts are written to out.
func NewTerminal(in *os.File, out io.Writer) (*Prompter, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return New(func() ([]byte, error) { return term.ReadPassword(fd) }, out), nil
}

// New returns a Prompter using read for input.
func New(read ReadPasswordFunc, out io.Writer) *Prompter {
	return &Prompter{read: read, out: out}
}

// ReadSecret prompts with label until a non-empty secret is entered. The
// returned buffer must be destroyed by the caller.
func (p *Prompter) ReadSecret(label string) (*memguard.LockedBuffer, error) {
	for {
		fmt.Fprint(p.out, label)
		b, err := p.read()
		fmt.Fprintln(p.out) // newline after hidden input
		if err != nil {
			memguard.WipeBytes(b)
			return nil, fmt.Errorf("reading master secret: %w", err)
		}
		if len(b) == 0 {
			fmt.Fprintln(p.out, "Master secret must not be empty.")
			continue
		}
		// NewBufferFromBytes wipes b.
		return memguard.NewBufferFromBytes(b), nil
	}
}

// ReadConfirmed prompts twice and repeats until both entries match.
func (p *Prompter) ReadConfirmed() (*memguard.LockedBuffer, error) {
	for {
		first, err := p.ReadSecret("Master: ")
		if err != nil {
			return nil, err
		}
		second, err := p.ReadSecret("Confirm Master: ")
		if err != nil {
			first.Destroy()
			return nil, err
		}
		match := first.EqualTo(second.Bytes())
		second.Destroy()
		if match {
			return first, nil
		}
		first.Destroy()
		fmt.Fprintln(p.out, "Entries do not match. Please try again.")
	}
}

// Read prompts once, or twice with confirmation when confirm is set.
func (p *Prompter) Read(confirm bool) (*memguard.LockedBuffer, error) {
	if confirm {
		return p.ReadConfirmed()
	}
	return p.ReadSecret("Master: ")
}
