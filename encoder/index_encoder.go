package encoder

import (
	"fmt"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/byteid"
	"github.com/arloliu/symseq/format"
)

// IndexEncoder encodes each symbol as the big-endian identifier of its position
// in the alphabet, using the fewest bytes that can address the alphabet's
// declared maximum size.
//
// The width is sized from the largest index, MaxSize()-1, not from MaxSize()
// itself. With the default maximum of 256 symbols every code is therefore one
// byte (indices 0 through 255); a maximum of 257 or more gives two-byte codes. The declared maximum only sizes the codes: the
// encoder accepts as many symbols as its code width can address.
//
// This is the default encoder for sequences.
type IndexEncoder struct {
	base
}

var _ Encoder = (*IndexEncoder)(nil)

// NewIndexEncoder creates an IndexEncoder for a.
//
// Returns errs.ErrDuplicateSymbol when two positions hold the same symbol, or
// errs.ErrAlphabetTooLarge when the symbols do not fit the code width.
func NewIndexEncoder(a alphabet.Alphabet) (*IndexEncoder, error) {
	b, err := newBase(a, indexGenerator(a.MaxSize()))
	if err != nil {
		return nil, fmt.Errorf("index encoder: %w", err)
	}

	return &IndexEncoder{base: b}, nil
}

// MustNewIndexEncoder is like NewIndexEncoder but panics on error.
func MustNewIndexEncoder(a alphabet.Alphabet) *IndexEncoder {
	e, err := NewIndexEncoder(a)
	if err != nil {
		panic(err)
	}

	return e
}

// Type implements Encoder.
func (e *IndexEncoder) Type() format.EncoderType {
	return format.TypeIndex
}

// RecalculateMapping implements Encoder.
//
// The code width stays the one chosen at construction.
func (e *IndexEncoder) RecalculateMapping() error {
	if err := e.rebuild(); err != nil {
		return fmt.Errorf("index encoder: %w", err)
	}

	return nil
}

// indexGenerator returns a generator whose width addresses maxSize symbols
// (indices 0 through maxSize-1), never narrower than one byte.
func indexGenerator(maxSize int) byteid.Generator {
	maxIdx := uint64(max(maxSize, 1) - 1)

	return byteid.FromByteCount(max(byteid.FromMax(maxIdx).NumBytes(), 1))
}
