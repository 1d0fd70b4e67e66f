package crypto

import (
	"errors"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*"

	// SimilarChars are removed from the pool when ExcludeSimilar is set.
	SimilarChars = "I1LoO0"
)

var ErrEmptyPool = errors.New("character pool is empty: select at least one character set or add custom characters")

// Options configures pool construction and password generation.
type Options struct {
	Length         int
	Lowercase      bool
	Uppercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
	Custom         string
}

// DefaultOptions returns 12 characters from all four sets with similar characters excluded.
func DefaultOptions() Options {
	return Options{
		Length:         12,
		Lowercase:      true,
		Uppercase:      true,
		Digits:         true,
		Symbols:        true,
		ExcludeSimilar: true,
	}
}

// CharPool is the ordered list of runes eligible for selection.
// A rune appearing more than once is proportionally more likely to be drawn.
type CharPool []rune

// Contains reports whether r is a member of the pool.
func (p CharPool) Contains(r rune) bool {
	for _, c := range p {
		if c == r {
			return true
		}
	}
	return false
}

// String returns the pool as a string in construction order.
func (p CharPool) String() string {
	return string(p)
}

// BuildPool assembles the character pool for opts. Sets are appended in the
// order lowercase, uppercase, digits, symbols, custom; duplicates are kept.
func BuildPool(opts Options) (CharPool, error) {
	var sb strings.Builder

	if opts.Lowercase {
		sb.WriteString(lowercaseChars)
	}
	if opts.Uppercase {
		sb.WriteString(uppercaseChars)
	}
	if opts.Digits {
		sb.WriteString(digitChars)
	}
	if opts.Symbols {
		sb.WriteString(symbolChars)
	}
	sb.WriteString(opts.Custom)

	pool := make(CharPool, 0, sb.Len())
	for _, r := range sb.String() {
		if opts.ExcludeSimilar && strings.ContainsRune(SimilarChars, r) {
			continue
		}
		pool = append(pool, r)
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	return pool, nil
}
