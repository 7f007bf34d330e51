// Package password maps derived key bytes onto printable passwords that
// contain at least one character of every required class.
package password

import (
	"errors"
	"fmt"
	"strings"
)

// Fixed class alphabets. Their order and content are part of every password
// generated so far and must not change.
const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{}|;:,.<>?/~"
)

// Class is a named alphabet the password must sample from.
type Class struct {
	Name     string
	Alphabet string
}

// Policy is the ordered list of required classes. Iteration order drives
// the encoder's index arithmetic.
type Policy []Class

// NewPolicy returns lower, upper and digit classes, followed by the symbol
// class when includeSymbols is set.
func NewPolicy(includeSymbols bool) Policy {
	p := Policy{
		{Name: "lower", Alphabet: Lower},
		{Name: "upper", Alphabet: Upper},
		{Name: "digit", Alphabet: Digits},
	}
	if includeSymbols {
		p = append(p, Class{Name: "symbol", Alphabet: Symbols})
	}
	return p
}

// FullPool concatenates the class alphabets in policy order.
func (p Policy) FullPool() string {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(c.Alphabet)
	}
	return sb.String()
}

// Names returns the class names in policy order.
func (p Policy) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Name
	}
	return names
}

func (c Class) containsAny(pw []byte) bool {
	for _, ch := range pw {
		if strings.IndexByte(c.Alphabet, ch) >= 0 {
			return true
		}
	}
	return false
}

func (p Policy) validate() error {
	if len(p) == 0 {
		return errors.New("policy has no classes")
	}
	for _, c := range p {
		if c.Alphabet == "" {
			return fmt.Errorf("class %q has an empty alphabet", c.Name)
		}
	}
	return nil
}
