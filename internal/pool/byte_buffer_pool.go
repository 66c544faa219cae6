package pool

import "sync"

// Default sizes for sequence storage buffers.
const (
	SequenceBufferDefaultSize  = 1024 * 4    // 4KiB
	SequenceBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice holding concatenated symbol codes.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer but retains the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Truncate shrinks the buffer to n bytes.
// Panics if n is negative or greater than the current length.
func (bb *ByteBuffer) Truncate(n int) {
	if n < 0 || n > len(bb.B) {
		panic("Truncate: invalid length")
	}
	bb.B = bb.B[:n]
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by at least SequenceBufferDefaultSize, larger ones by 25%
// of their capacity, and always by at least requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SequenceBufferDefaultSize
	if cap(bb.B) > 4*SequenceBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var sequenceDefaultPool = NewByteBufferPool(SequenceBufferDefaultSize, SequenceBufferMaxThreshold)

// GetSequenceBuffer retrieves a ByteBuffer from the default sequence pool.
func GetSequenceBuffer() *ByteBuffer {
	return sequenceDefaultPool.Get()
}

// PutSequenceBuffer returns a ByteBuffer to the default sequence pool.
func PutSequenceBuffer(bb *ByteBuffer) {
	sequenceDefaultPool.Put(bb)
}
