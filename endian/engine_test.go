package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
}

func TestAppendUintN(t *testing.T) {
	be := GetBigEndianEngine()
	le := GetLittleEndianEngine()

	tests := []struct {
		name   string
		engine EndianEngine
		v      uint64
		n      int
		want   []byte
	}{
		{"big one byte", be, 0x21, 1, []byte{0x21}},
		{"big three bytes", be, 0xC1045, 3, []byte{0x0C, 0x10, 0x45}},
		{"big truncates high bytes", be, 0x010203, 2, []byte{0x02, 0x03}},
		{"big full width", be, 0x0102030405060708, 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"big width clamped", be, 0x01, 12, []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"zero width", be, 0xFF, 0, []byte{}},
		{"little two bytes", le, 0x0102, 2, []byte{0x02, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendUintN(tt.engine, []byte{}, tt.v, tt.n)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAppendUintN_PreservesPrefix(t *testing.T) {
	dst := []byte{0xAA}
	dst = AppendUintN(GetBigEndianEngine(), dst, 0x0100, 2)
	require.Equal(t, []byte{0xAA, 0x01, 0x00}, dst)
}

func TestUintN(t *testing.T) {
	be := GetBigEndianEngine()

	v, ok := UintN(be, []byte{0x0C, 0x10, 0x45})
	require.True(t, ok)
	require.Equal(t, uint64(0xC1045), v)

	v, ok = UintN(be, nil)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)

	v, ok = UintN(GetLittleEndianEngine(), []byte{0x02, 0x01})
	require.True(t, ok)
	require.Equal(t, uint64(0x0102), v)

	_, ok = UintN(be, make([]byte, 9))
	require.False(t, ok)
}

func TestUintN_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		for n := 1; n <= MaxWidth; n++ {
			v := uint64(0x0123456789ABCDEF)
			if n < MaxWidth {
				v &= (uint64(1) << (8 * n)) - 1
			}
			b := AppendUintN(engine, nil, v, n)
			require.Len(t, b, n)

			got, ok := UintN(engine, b)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
	}
}
