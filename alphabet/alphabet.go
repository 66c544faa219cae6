// Package alphabet defines the contract an alphabet of symbols fulfils and
// provides a mutable, slice-backed implementation together with the common
// DNA alphabets.
//
// An alphabet is an ordered, duplicate-free list of symbols. All symbols have
// the same width, measured in Unicode scalar values (runes), so a symbol may be
// wider than one character. The declared maximum size is used by encoders for
// capacity planning: it decides how many bytes each symbol code occupies.
//
// Symbols are case sensitive.
package alphabet

import (
	"fmt"
	"strconv"

	"github.com/arloliu/symseq/errs"
)

const (
	// DefaultSymbolSize is the symbol width of an alphabet that does not declare one.
	DefaultSymbolSize = 1

	// DefaultMaxSize is the declared maximum number of symbols of an alphabet that does not declare one.
	DefaultMaxSize = 256
)

// Alphabet is an ordered set of symbols a sequence is built from.
type Alphabet interface {
	// Symbols returns the symbols in order. Each symbol occurs exactly once.
	// The returned slice must not be modified.
	Symbols() []string

	// SymbolSize returns the number of runes in every symbol (at least 1).
	SymbolSize() int

	// MaxSize returns the number of symbols the alphabet may hold over its lifetime.
	MaxSize() int

	// Contains reports whether symbol is one of the alphabet's current symbols.
	Contains(symbol string) bool

	// IsWord reports whether every element of symbols is contained in the alphabet.
	IsWord(symbols []string) bool
}

// Complementer is an Alphabet whose symbols pair with complement symbols.
type Complementer interface {
	Alphabet

	// ComplementMapping returns a slice aligned with Symbols: element i is the
	// complement of Symbols()[i]. The pairing does not have to be one to one.
	// A nil result means the alphabet currently has no complement.
	ComplementMapping() []string
}

// ComplementTable builds the symbol -> complement lookup of c.
//
// Returns errs.ErrNoComplement when c has no mapping and errs.ErrInvalidComplement
// when the mapping is not aligned with the symbols or names a symbol outside the alphabet.
func ComplementTable(c Complementer) (map[string]string, error) {
	symbols := c.Symbols()
	mapping := c.ComplementMapping()

	if mapping == nil {
		return nil, errs.ErrNoComplement
	}
	if err := validateComplement(symbols, mapping, c.Contains); err != nil {
		return nil, err
	}

	table := make(map[string]string, len(symbols))
	for i, s := range symbols {
		table[s] = mapping[i]
	}

	return table, nil
}

// Complement returns the complement of each symbol in input.
//
// Returns errs.ErrInvalidSymbol for a symbol not in the alphabet, or the
// errors of ComplementTable.
func Complement(c Complementer, input []string) ([]string, error) {
	table, err := ComplementTable(c)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(input))
	for i, s := range input {
		comp, ok := table[s]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSymbol, strconv.Quote(s))
		}
		out[i] = comp
	}

	return out, nil
}

func validateComplement(symbols, mapping []string, contains func(string) bool) error {
	if len(mapping) != len(symbols) {
		return fmt.Errorf("%w: %d complements for %d symbols", errs.ErrInvalidComplement, len(mapping), len(symbols))
	}

	for i, comp := range mapping {
		if !contains(comp) {
			return fmt.Errorf("%w: complement %s of %s is not in the alphabet",
				errs.ErrInvalidComplement, strconv.Quote(comp), strconv.Quote(symbols[i]))
		}
	}

	return nil
}
