package encoder

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/byteid"
	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/internal/collision"
	"github.com/arloliu/symseq/internal/hash"
)

// mapping is an immutable snapshot of an alphabet's symbols and their codes.
type mapping struct {
	symbols     []string       // position -> symbol
	index       map[string]int // symbol -> position
	codes       []byte         // code of position i at [i*width, (i+1)*width)
	width       int
	fingerprint uint64
}

func buildMapping(a alphabet.Alphabet, gen byteid.Generator) (*mapping, error) {
	symbols := slices.Clone(a.Symbols())

	if uint64(len(symbols)) > gen.Len() {
		return nil, fmt.Errorf("%w: %d symbols, %d-byte codes address at most %d",
			errs.ErrAlphabetTooLarge, len(symbols), gen.NumBytes(), gen.Len())
	}

	tracker := collision.NewTracker(len(symbols))
	if err := tracker.TrackAll(symbols); err != nil {
		return nil, err
	}

	width := gen.NumBytes()
	codes := make([]byte, 0, len(symbols)*width)
	for i := range symbols {
		var err error
		if codes, err = gen.AppendID(codes, uint64(i)); err != nil {
			return nil, err
		}
	}

	return &mapping{
		symbols:     symbols,
		index:       tracker.Positions(),
		codes:       codes,
		width:       width,
		fingerprint: hash.Symbols(symbols),
	}, nil
}

func (m *mapping) code(pos int) []byte {
	start := pos * m.width
	end := start + m.width

	return m.codes[start:end:end]
}

// base implements the Encoder methods shared by both variants.
type base struct {
	alphabet alphabet.Alphabet
	gen      byteid.Generator
	m        *mapping
}

func newBase(a alphabet.Alphabet, gen byteid.Generator) (base, error) {
	m, err := buildMapping(a, gen)
	if err != nil {
		return base{}, err
	}

	return base{alphabet: a, gen: gen, m: m}, nil
}

func (b *base) Alphabet() alphabet.Alphabet {
	return b.alphabet
}

func (b *base) Width() int {
	return b.m.width
}

func (b *base) SizeHint() int {
	return b.m.width
}

// Len returns the number of symbols in the mapping.
func (b *base) Len() int {
	return len(b.m.symbols)
}

func (b *base) Encode(symbol string) ([]byte, error) {
	return b.AppendEncode(make([]byte, 0, b.m.width), symbol)
}

func (b *base) AppendEncode(dst []byte, symbol string) ([]byte, error) {
	pos, ok := b.m.index[symbol]
	if !ok {
		return dst, b.encodeError(symbol)
	}

	return append(dst, b.m.code(pos)...), nil
}

func (b *base) EncodeAll(symbols []string) ([]byte, error) {
	out := make([]byte, 0, len(symbols)*b.m.width)
	for _, s := range symbols {
		var err error
		if out, err = b.AppendEncode(out, s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (b *base) Decode(code []byte) (string, error) {
	if len(code) != b.m.width {
		return "", fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidBytes, len(code), b.m.width)
	}

	idx, err := b.gen.Index(code)
	if err != nil || idx >= uint64(len(b.m.symbols)) {
		return "", fmt.Errorf("%w: code %x", errs.ErrNoMapping, code)
	}

	return b.m.symbols[idx], nil
}

func (b *base) DecodeAll(codes []byte) ([]string, error) {
	w := b.m.width
	if len(codes)%w != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", errs.ErrInvalidBytes, len(codes), w)
	}

	out := make([]string, 0, len(codes)/w)
	for off := 0; off < len(codes); off += w {
		s, err := b.Decode(codes[off : off+w])
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", off/w, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func (b *base) Stale() bool {
	return hash.Symbols(b.alphabet.Symbols()) != b.m.fingerprint
}

func (b *base) rebuild() error {
	m, err := buildMapping(b.alphabet, b.gen)
	if err != nil {
		return err
	}
	b.m = m

	return nil
}

func (b *base) encodeError(symbol string) error {
	if b.alphabet.Contains(symbol) {
		return fmt.Errorf("%w: symbol %s was added to the alphabet after the mapping was built, call RecalculateMapping",
			errs.ErrNoMapping, strconv.Quote(symbol))
	}

	return fmt.Errorf("%w: %s is not in the alphabet", errs.ErrInvalidSymbol, strconv.Quote(symbol))
}
