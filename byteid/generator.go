package byteid

import (
	"fmt"
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/symseq/endian"
	"github.com/arloliu/symseq/errs"
)

// MaxBytes is the widest identifier a Generator can produce.
const MaxBytes = endian.MaxWidth

var engine = endian.GetBigEndianEngine()

// Generator produces byte identifiers for indices 0 through Max inclusive.
type Generator struct {
	max      uint64
	numBytes int
}

// FromMax returns a Generator able to represent every index up to and including maxIdx,
// using the fewest bytes possible.
//
// The byte count is ceil(ceil(log2(maxIdx+1)) / 8). bits.Len64 gives the bit count
// exactly, so math.MaxUint64 yields 8 without overflowing maxIdx+1.
// FromMax(0) needs zero bytes and produces empty identifiers.
func FromMax(maxIdx uint64) Generator {
	return Generator{
		max:      maxIdx,
		numBytes: (bits.Len64(maxIdx) + 7) / 8,
	}
}

// FromByteCount returns a Generator that uses exactly n bytes per identifier,
// with a maximum index of 2^(8n) - 1.
//
// n is clamped to [1, MaxBytes] so the maximum always fits in a uint64.
func FromByteCount(n int) Generator {
	n = max(1, min(n, MaxBytes))

	return Generator{
		max:      maxForBytes(n),
		numBytes: n,
	}
}

// Max returns the largest index the generator produces an identifier for.
func (g Generator) Max() uint64 {
	return g.max
}

// NumBytes returns the width of every identifier.
func (g Generator) NumBytes() int {
	return g.numBytes
}

// Len returns the number of identifiers the generator yields, saturating at math.MaxUint64.
func (g Generator) Len() uint64 {
	if g.max == math.MaxUint64 {
		return math.MaxUint64
	}

	return g.max + 1
}

// ID returns the identifier for idx.
//
// Returns errs.ErrIndexOutOfRange when idx is greater than Max.
func (g Generator) ID(idx uint64) ([]byte, error) {
	return g.AppendID(make([]byte, 0, g.numBytes), idx)
}

// AppendID appends the identifier for idx to dst.
//
// Returns dst unchanged and errs.ErrIndexOutOfRange when idx is greater than Max.
func (g Generator) AppendID(dst []byte, idx uint64) ([]byte, error) {
	if idx > g.max {
		return dst, fmt.Errorf("%w: index %d, max %d", errs.ErrIndexOutOfRange, idx, g.max)
	}

	return endian.AppendUintN(engine, dst, idx, g.numBytes), nil
}

// IDUnchecked returns the identifier for idx without comparing it to Max.
//
// The caller must guarantee idx <= 2^(8*NumBytes) - 1. A larger index is not an
// error: its high bytes are dropped and the result is silently wrong.
func (g Generator) IDUnchecked(idx uint64) []byte {
	return endian.AppendUintN(engine, make([]byte, 0, g.numBytes), idx, g.numBytes)
}

// Index is the inverse of ID: it reads id as a big-endian integer.
//
// Returns errs.ErrInvalidBytes when len(id) differs from NumBytes and
// errs.ErrIndexOutOfRange when the decoded index is greater than Max.
func (g Generator) Index(id []byte) (uint64, error) {
	if len(id) != g.numBytes {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidBytes, len(id), g.numBytes)
	}

	idx, _ := endian.UintN(engine, id)
	if idx > g.max {
		return 0, fmt.Errorf("%w: index %d, max %d", errs.ErrIndexOutOfRange, idx, g.max)
	}

	return idx, nil
}

// All returns an iterator over the identifiers for indices 0 through Max in order.
//
// Each call starts a fresh traversal. Yielded slices are owned by the caller.
func (g Generator) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		cur := make([]byte, g.numBytes)
		for i := uint64(0); ; i++ {
			id := make([]byte, len(cur))
			copy(id, cur)
			if !yield(id) {
				return
			}
			if i == g.max {
				return
			}
			increment(cur)
		}
	}
}

// String implements fmt.Stringer.
func (g Generator) String() string {
	return fmt.Sprintf("byteid.Generator{max: %d, bytes: %d}", g.max, g.numBytes)
}

// increment adds one to a big-endian counter in place; the low byte wraps
// before the next byte is carried into.
func increment(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}

func maxForBytes(n int) uint64 {
	if n >= MaxBytes {
		return math.MaxUint64
	}

	return (uint64(1) << (8 * uint(n))) - 1
}
