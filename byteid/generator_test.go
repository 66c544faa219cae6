package byteid

import (
	"math"
	"testing"

	"github.com/arloliu/symseq/errs"
	"github.com/stretchr/testify/require"
)

func TestFromMax_ByteCount(t *testing.T) {
	tests := []struct {
		name   string
		maxIdx uint64
		want   int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"hundred", 100, 1},
		{"uint8 max", math.MaxUint8, 1},
		{"uint8 max plus one", math.MaxUint8 + 1, 2},
		{"uint16 max", math.MaxUint16, 2},
		{"three bytes", 0x10000, 3},
		{"uint32 max", math.MaxUint32, 4},
		{"near uint64 max", math.MaxUint64 - 500, 8},
		{"uint64 max", math.MaxUint64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FromMax(tt.maxIdx)
			require.Equal(t, tt.want, g.NumBytes())
			require.Equal(t, tt.maxIdx, g.Max())
		})
	}
}

func TestFromMax_Minimality(t *testing.T) {
	samples := []uint64{1, 2, 7, 255, 256, 1000, 65535, 65536, 1 << 24, 1<<24 - 1, 1 << 40, math.MaxUint64 - 1, math.MaxUint64}

	for _, maxIdx := range samples {
		g := FromMax(maxIdx)
		n := g.NumBytes()
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, MaxBytes)

		require.LessOrEqual(t, maxIdx, maxForBytes(n), "max %d must fit in %d bytes", maxIdx, n)
		if n > 1 {
			require.Greater(t, maxIdx, maxForBytes(n-1), "max %d must not fit in %d bytes", maxIdx, n-1)
		}
	}
}

func TestFromByteCount(t *testing.T) {
	tests := []struct {
		n        int
		wantMax  uint64
		wantSize int
	}{
		{1, math.MaxUint8, 1},
		{2, math.MaxUint16, 2},
		{3, 1<<24 - 1, 3},
		{4, math.MaxUint32, 4},
		{8, math.MaxUint64, 8},
		{0, math.MaxUint8, 1},
		{9, math.MaxUint64, 8},
	}

	for _, tt := range tests {
		g := FromByteCount(tt.n)
		require.Equal(t, tt.wantMax, g.Max(), "n=%d", tt.n)
		require.Equal(t, tt.wantSize, g.NumBytes(), "n=%d", tt.n)
	}
}

func TestGenerator_ID(t *testing.T) {
	g := FromByteCount(3)

	id, err := g.ID(33)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x21}, id)

	id, err = g.ID(256)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01, 0x00}, id)

	id, err = g.ID(0xC1045)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0C, 0x10, 0x45}, id)

	g = FromByteCount(2)

	id, err = g.ID(33)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x21}, id)

	id, err = g.ID(256)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00}, id)
}

func TestGenerator_ID_OutOfRange(t *testing.T) {
	_, err := FromByteCount(2).ID(0x10000)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = FromMax(345).ID(346)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	id, err := FromMax(345).ID(345)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x59}, id)
}

func TestGenerator_AppendID(t *testing.T) {
	g := FromMax(1000)

	dst := []byte{0xFF}
	dst, err := g.AppendID(dst, 1000)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0x03, 0xE8}, dst)

	out, err := g.AppendID(dst, 1001)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	require.Equal(t, dst, out)
}

func TestGenerator_IDUnchecked(t *testing.T) {
	g := FromMax(10)

	require.Equal(t, []byte{0x05}, g.IDUnchecked(5))
	// Past the bound but within one byte: still correct.
	require.Equal(t, []byte{0xFF}, g.IDUnchecked(255))
	// Past the byte width: silently truncated.
	require.Equal(t, []byte{0x00}, g.IDUnchecked(256))
}

func TestGenerator_Index_RoundTrip(t *testing.T) {
	for _, maxIdx := range []uint64{3, 255, 256, 70000, 1 << 33, math.MaxUint64} {
		g := FromMax(maxIdx)
		for _, idx := range []uint64{0, 1, maxIdx / 2, maxIdx} {
			id, err := g.ID(idx)
			require.NoError(t, err)
			require.Len(t, id, g.NumBytes())

			got, err := g.Index(id)
			require.NoError(t, err)
			require.Equal(t, idx, got)
		}
	}
}

func TestGenerator_Index_Errors(t *testing.T) {
	g := FromMax(300)

	_, err := g.Index([]byte{0x01})
	require.ErrorIs(t, err, errs.ErrInvalidBytes)

	_, err = g.Index([]byte{0x01, 0x2D})
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestGenerator_Len(t *testing.T) {
	require.Equal(t, uint64(1), FromMax(0).Len())
	require.Equal(t, uint64(33), FromMax(32).Len())
	require.Equal(t, uint64(256), FromByteCount(1).Len())
	require.Equal(t, uint64(math.MaxUint64), FromByteCount(8).Len())
}

func TestGenerator_All_SingleByte(t *testing.T) {
	g := FromByteCount(1)

	expected := 0
	for id := range g.All() {
		require.Equal(t, []byte{byte(expected)}, id)
		expected++
	}
	require.Equal(t, 256, expected)
}

func TestGenerator_All_MultiByteRollover(t *testing.T) {
	g := FromByteCount(2)

	var high, low byte
	count := 0
	for id := range g.All() {
		require.Equal(t, []byte{high, low}, id)
		count++

		low++
		if low == 0 {
			high++
		}
	}
	require.Equal(t, 65536, count)
}

func TestGenerator_All_FromMax(t *testing.T) {
	g := FromMax(32)

	var ids [][]byte
	for id := range g.All() {
		ids = append(ids, id)
	}

	require.Len(t, ids, 33)
	for i, id := range ids {
		require.Equal(t, []byte{byte(i)}, id)
	}
}

func TestGenerator_All_Restartable(t *testing.T) {
	g := FromMax(300)

	first := 0
	for id := range g.All() {
		if first == 10 {
			break
		}
		require.Len(t, id, 2)
		first++
	}

	var last []byte
	count := 0
	for id := range g.All() {
		last = id
		count++
	}
	require.Equal(t, 301, count)
	require.Equal(t, []byte{0x01, 0x2C}, last)
}

func TestGenerator_All_MatchesID(t *testing.T) {
	g := FromMax(1000)

	idx := uint64(0)
	for id := range g.All() {
		want, err := g.ID(idx)
		require.NoError(t, err)
		require.Equal(t, want, id)
		idx++
	}
}

func TestID_Stateless(t *testing.T) {
	id, err := ID(256, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00}, id)

	_, err = ID(256, 1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	require.Equal(t, []byte{0x00}, IDUnchecked(256, 1))
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, IDUnchecked(256, 4))
}

func TestID_ClampsWidthLikeUnchecked(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 9} {
		id, err := ID(7, n)
		require.NoError(t, err)
		require.Equal(t, id, IDUnchecked(7, n), "numBytes=%d", n)
	}

	require.Equal(t, []byte{0x07}, IDUnchecked(7, 0))
	require.Len(t, IDUnchecked(7, 9), MaxBytes)
}
