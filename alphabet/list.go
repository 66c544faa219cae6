package alphabet

import (
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/internal/collision"
)

// List is a mutable Alphabet backed by a slice of symbols.
//
// Changing the symbols with SetSymbols or Append does not update encoders built
// from the list; they must call RecalculateMapping.
//
// Note: List is NOT thread-safe.
type List struct {
	name       string
	symbols    []string
	index      map[string]int
	complement []string
	symbolSize int
	maxSize    int
}

var (
	_ Alphabet     = (*List)(nil)
	_ Complementer = (*List)(nil)
)

// NewList creates an alphabet from symbols, in order.
//
// The symbol size defaults to the common rune length of the symbols (or
// DefaultSymbolSize when symbols is empty) and the maximum size to DefaultMaxSize.
//
// Returns errs.ErrDuplicateSymbol, errs.ErrInvalidSymbolSize when a symbol's
// rune length differs from the symbol size, errs.ErrInvalidMaxSize, or
// errs.ErrInvalidComplement.
func NewList(symbols []string, opts ...Option) (*List, error) {
	cfg := newConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}

	l := &List{
		name:       cfg.name,
		symbolSize: cfg.symbolSize,
		maxSize:    cfg.maxSize,
	}
	if l.symbolSize == 0 {
		l.symbolSize = commonSize(symbols)
	}

	if err := l.replace(symbols, cfg.complement); err != nil {
		return nil, err
	}

	return l, nil
}

// MustNewList is like NewList but panics on error. Intended for package-level alphabets.
func MustNewList(symbols []string, opts ...Option) *List {
	l, err := NewList(symbols, opts...)
	if err != nil {
		panic(fmt.Sprintf("alphabet: %v", err))
	}

	return l
}

// Symbols implements Alphabet.
func (l *List) Symbols() []string {
	return l.symbols
}

// SymbolSize implements Alphabet.
func (l *List) SymbolSize() int {
	return l.symbolSize
}

// MaxSize implements Alphabet.
func (l *List) MaxSize() int {
	return l.maxSize
}

// Len returns the current number of symbols.
func (l *List) Len() int {
	return len(l.symbols)
}

// Contains implements Alphabet.
func (l *List) Contains(symbol string) bool {
	_, ok := l.index[symbol]
	return ok
}

// IsWord implements Alphabet.
func (l *List) IsWord(symbols []string) bool {
	for _, s := range symbols {
		if !l.Contains(s) {
			return false
		}
	}

	return true
}

// ComplementMapping implements Complementer. It returns nil when the list has no complement.
func (l *List) ComplementMapping() []string {
	return l.complement
}

// SetSymbols replaces all symbols and the complement mapping. Pass a nil
// complement to drop it.
//
// On error the list is left unchanged.
func (l *List) SetSymbols(symbols []string, complement []string) error {
	return l.replace(symbols, complement)
}

// Append adds symbols after the existing ones.
//
// Lists with a complement mapping must be changed with SetSymbols instead and
// return errs.ErrInvalidComplement. On error the list is left unchanged.
func (l *List) Append(symbols ...string) error {
	if l.complement != nil {
		return fmt.Errorf("%w: appending would misalign the complement mapping, use SetSymbols", errs.ErrInvalidComplement)
	}

	return l.replace(append(slices.Clone(l.symbols), symbols...), nil)
}

// String implements fmt.Stringer.
func (l *List) String() string {
	if l.name == "" {
		return fmt.Sprintf("Alphabet containing symbols: %q", l.symbols)
	}

	return fmt.Sprintf("%s Alphabet containing symbols: %q", l.name, l.symbols)
}

func (l *List) replace(symbols []string, complement []string) error {
	for _, s := range symbols {
		if n := utf8.RuneCountInString(s); n != l.symbolSize {
			return fmt.Errorf("%w: symbol %s has %d runes, want %d", errs.ErrInvalidSymbolSize, strconv.Quote(s), n, l.symbolSize)
		}
	}

	tracker := collision.NewTracker(len(symbols))
	if err := tracker.TrackAll(symbols); err != nil {
		return err
	}

	index := tracker.Positions()
	if complement != nil {
		contains := func(s string) bool {
			_, ok := index[s]
			return ok
		}
		if err := validateComplement(symbols, complement, contains); err != nil {
			return err
		}
		complement = slices.Clone(complement)
	}

	l.symbols = slices.Clone(symbols)
	l.index = index
	l.complement = complement

	return nil
}

// commonSize returns the rune length shared by all symbols, or DefaultSymbolSize.
func commonSize(symbols []string) int {
	if len(symbols) == 0 {
		return DefaultSymbolSize
	}

	size := utf8.RuneCountInString(symbols[0])
	for _, s := range symbols[1:] {
		if utf8.RuneCountInString(s) != size {
			return DefaultSymbolSize
		}
	}
	if size == 0 {
		return DefaultSymbolSize
	}

	return size
}
