package encoder

import (
	"fmt"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/byteid"
	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/format"
)

// MaxByteSymbols is the largest alphabet a ByteEncoder accepts.
const MaxByteSymbols = 256

// ByteEncoder encodes each symbol as a single byte holding its position in the alphabet.
//
// It rejects alphabets that declare or contain more than MaxByteSymbols symbols.
type ByteEncoder struct {
	base
}

var _ Encoder = (*ByteEncoder)(nil)

// NewByteEncoder creates a ByteEncoder for a.
//
// Returns errs.ErrAlphabetTooLarge when a declares a maximum size or holds more
// than MaxByteSymbols symbols, or errs.ErrDuplicateSymbol.
func NewByteEncoder(a alphabet.Alphabet) (*ByteEncoder, error) {
	if err := checkByteAlphabet(a); err != nil {
		return nil, err
	}

	b, err := newBase(a, byteid.FromByteCount(1))
	if err != nil {
		return nil, fmt.Errorf("byte encoder: %w", err)
	}

	return &ByteEncoder{base: b}, nil
}

// MustNewByteEncoder is like NewByteEncoder but panics on error.
func MustNewByteEncoder(a alphabet.Alphabet) *ByteEncoder {
	e, err := NewByteEncoder(a)
	if err != nil {
		panic(err)
	}

	return e
}

// Type implements Encoder.
func (e *ByteEncoder) Type() format.EncoderType {
	return format.TypeByte
}

// RecalculateMapping implements Encoder.
func (e *ByteEncoder) RecalculateMapping() error {
	if err := checkByteAlphabet(e.alphabet); err != nil {
		return err
	}
	if err := e.rebuild(); err != nil {
		return fmt.Errorf("byte encoder: %w", err)
	}

	return nil
}

func checkByteAlphabet(a alphabet.Alphabet) error {
	if a.MaxSize() > MaxByteSymbols {
		return fmt.Errorf("%w: byte encoder supports %d symbols, alphabet declares up to %d",
			errs.ErrAlphabetTooLarge, MaxByteSymbols, a.MaxSize())
	}
	if n := len(a.Symbols()); n > MaxByteSymbols {
		return fmt.Errorf("%w: byte encoder supports %d symbols, alphabet has %d",
			errs.ErrAlphabetTooLarge, MaxByteSymbols, n)
	}

	return nil
}
