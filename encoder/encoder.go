package encoder

import (
	"fmt"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/format"
)

// Encoder converts symbols of an alphabet to byte codes and back.
type Encoder interface {
	// Type returns the encoding scheme.
	Type() format.EncoderType

	// Alphabet returns the alphabet the encoder was built from.
	Alphabet() alphabet.Alphabet

	// Width returns the number of bytes in every code.
	Width() int

	// Encode returns the code of symbol.
	//
	// Returns errs.ErrInvalidSymbol when the symbol is not in the alphabet, or
	// errs.ErrNoMapping when the alphabet contains it but the mapping predates it.
	Encode(symbol string) ([]byte, error)

	// AppendEncode appends the code of symbol to dst. On error dst is returned unchanged.
	AppendEncode(dst []byte, symbol string) ([]byte, error)

	// EncodeAll encodes symbols into one flattened buffer, stopping at the first error.
	EncodeAll(symbols []string) ([]byte, error)

	// Decode returns the symbol of a single code.
	//
	// Returns errs.ErrInvalidBytes when len(code) != Width(), or errs.ErrNoMapping
	// when no symbol has that code.
	Decode(code []byte) (string, error)

	// DecodeAll decodes a buffer of concatenated codes.
	//
	// Returns errs.ErrInvalidBytes when len(codes) is not a multiple of Width(),
	// or errs.ErrNoMapping at the first unknown code.
	DecodeAll(codes []byte) ([]string, error)

	// RecalculateMapping rebuilds the mapping from the alphabet's current symbols.
	// It must be called after any change to the symbols or their order. On error
	// the previous mapping is kept.
	RecalculateMapping() error

	// SizeHint returns the expected number of bytes per encoded symbol, for pre-allocation.
	SizeHint() int

	// Stale reports whether the alphabet's symbols changed since the mapping was built.
	Stale() bool
}

// New creates an encoder of the given type for a.
//
// Returns errs.ErrInvalidEncoderType for an unknown type, or the construction
// errors of the chosen encoder.
func New(typ format.EncoderType, a alphabet.Alphabet) (Encoder, error) {
	switch typ {
	case format.TypeIndex:
		return NewIndexEncoder(a)
	case format.TypeByte:
		return NewByteEncoder(a)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncoderType, typ)
	}
}
