package sequence

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/encoder"
	"github.com/arloliu/symseq/errs"
	"github.com/arloliu/symseq/internal/pool"
)

// DisplayLimit is the number of leading symbols String renders.
const DisplayLimit = 50

// Sequence is an ordered run of alphabet symbols stored as packed byte codes.
type Sequence struct {
	enc      encoder.Encoder
	buf      *pool.ByteBuffer
	circular bool
}

// New creates an empty sequence over a, using the encoder chosen by
// WithEncoderType (an encoder.IndexEncoder by default).
//
// Returns the encoder's construction errors, such as errs.ErrDuplicateSymbol or
// errs.ErrAlphabetTooLarge.
func New(a alphabet.Alphabet, opts ...Option) (*Sequence, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	enc, err := encoder.New(cfg.encoderType, a)
	if err != nil {
		return nil, err
	}

	return newSequence(enc, cfg), nil
}

// FromEncoder creates an empty sequence that encodes with enc.
func FromEncoder(enc encoder.Encoder, opts ...Option) (*Sequence, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil encoder", errs.ErrOther)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newSequence(enc, cfg), nil
}

func newSequence(enc encoder.Encoder, cfg *Config) *Sequence {
	s := &Sequence{
		enc:      enc,
		buf:      pool.GetSequenceBuffer(),
		circular: cfg.circular,
	}
	if cfg.capacity > 0 {
		s.buf.Grow(cfg.capacity * enc.SizeHint())
	}

	return s
}

// SetCircular sets the circular flag and returns s for chaining.
// The flag is metadata only and does not change how symbols are stored.
func (s *Sequence) SetCircular(circular bool) *Sequence {
	s.circular = circular
	return s
}

// IsCircular reports whether the sequence wraps from its end to its start.
func (s *Sequence) IsCircular() bool {
	return s.circular
}

// Encoder returns the encoder of the sequence.
func (s *Sequence) Encoder() encoder.Encoder {
	return s.enc
}

// Alphabet returns the alphabet of the sequence's encoder.
func (s *Sequence) Alphabet() alphabet.Alphabet {
	return s.enc.Alphabet()
}

// Push splits text into symbols of SymbolSize runes, encodes them and appends
// the codes.
//
// Returns errs.ErrInvalidLength when the rune count of text is not a multiple
// of the symbol size, or the encoder's error for the first symbol that cannot
// be encoded. On error nothing is appended.
func (s *Sequence) Push(text string) error {
	size, err := s.symbolSize()
	if err != nil {
		return err
	}

	n := utf8.RuneCountInString(text)
	if n%size != 0 {
		return fmt.Errorf("%w: %d runes, symbol size %d", errs.ErrInvalidLength, n, size)
	}

	return s.push(text, size, n/size)
}

// PushUnchecked is like Push but does not check the length of text: trailing
// runes that do not fill a whole symbol are silently dropped.
//
// Encoding errors still apply and still leave the sequence unchanged.
func (s *Sequence) PushUnchecked(text string) error {
	size, err := s.symbolSize()
	if err != nil {
		return err
	}

	// The byte length bounds the rune count; it only sizes the pre-allocation.
	return s.push(text, size, len(text)/size)
}

func (s *Sequence) push(text string, size int, hint int) error {
	start := s.buf.Len()
	s.buf.Grow(hint * s.enc.SizeHint())

	i := 0
	for chunk := range Chunks(text, size) {
		var err error
		if s.buf.B, err = s.enc.AppendEncode(s.buf.B, chunk); err != nil {
			s.buf.Truncate(start)
			return fmt.Errorf("symbol %d: %w", i, err)
		}
		i++
	}

	return nil
}

// Extend pushes every item of symbols in order, with Push semantics.
//
// It stops at the first error; items pushed before it stay in the sequence.
func (s *Sequence) Extend(symbols iter.Seq[string]) error {
	i := 0
	for item := range symbols {
		if err := s.Push(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		i++
	}

	return nil
}

// ExtendSlice is Extend over a slice.
func (s *Sequence) ExtendSlice(symbols []string) error {
	return s.Extend(slices.Values(symbols))
}

// Clear removes all symbols. The encoder and the allocated capacity are kept.
func (s *Sequence) Clear() {
	s.buf.Reset()
}

// Len returns the number of stored symbols.
func (s *Sequence) Len() int {
	return s.buf.Len() / s.enc.Width()
}

// IsEmpty reports whether the sequence holds no symbols.
func (s *Sequence) IsEmpty() bool {
	return s.buf.Len() == 0
}

// ByteLen returns the size of the packed codes in bytes.
func (s *Sequence) ByteLen() int {
	return s.buf.Len()
}

// Bytes returns the packed codes. The slice is only valid until the next
// mutation and must not be modified. Its capacity is clipped, so appending to
// it never writes into the sequence.
func (s *Sequence) Bytes() []byte {
	return slices.Clip(s.buf.Bytes())
}

// At returns the symbol at position i.
//
// Returns errs.ErrIndexOutOfRange, or errs.ErrNoMapping when the encoder
// mapping no longer covers the stored code.
func (s *Sequence) At(i int) (string, error) {
	if i < 0 || i >= s.Len() {
		return "", fmt.Errorf("%w: position %d, length %d", errs.ErrIndexOutOfRange, i, s.Len())
	}

	w := s.enc.Width()

	return s.enc.Decode(s.buf.B[i*w : (i+1)*w])
}

// Symbols decodes every stored symbol.
func (s *Sequence) Symbols() ([]string, error) {
	return s.enc.DecodeAll(s.buf.Bytes())
}

// All returns an iterator over the positions and symbols of the sequence.
//
// A stored code that does not decode means the buffer or the encoder mapping
// is corrupted; All panics with an error wrapping errs.ErrCorrupted.
func (s *Sequence) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		w := s.enc.Width()
		b := s.buf.Bytes()
		for i := 0; i*w < len(b); i++ {
			if !yield(i, s.mustDecode(i, b[i*w:(i+1)*w])) {
				return
			}
		}
	}
}

// String renders the first DisplayLimit symbols concatenated.
//
// Codes past the limit are never decoded. It panics with an error wrapping
// errs.ErrCorrupted when one of the displayed codes does not decode.
func (s *Sequence) String() string {
	w := s.enc.Width()
	n := min(s.Len(), DisplayLimit)

	var sb strings.Builder
	for i := range n {
		sb.WriteString(s.mustDecode(i, s.buf.B[i*w:(i+1)*w]))
	}

	return sb.String()
}

// Release returns the buffer to the pool. The sequence must not be used afterwards.
func (s *Sequence) Release() {
	pool.PutSequenceBuffer(s.buf)
	s.buf = nil
}

func (s *Sequence) mustDecode(i int, code []byte) string {
	sym, err := s.enc.Decode(code)
	if err != nil {
		panic(corrupted(i, err))
	}

	return sym
}

func (s *Sequence) symbolSize() (int, error) {
	size := s.enc.Alphabet().SymbolSize()
	if size < 1 {
		return 0, fmt.Errorf("%w: alphabet symbol size %d", errs.ErrInvalidSymbolSize, size)
	}

	return size, nil
}

func corrupted(i int, err error) error {
	return fmt.Errorf("%w: symbol %d: %w", errs.ErrCorrupted, i, err)
}
