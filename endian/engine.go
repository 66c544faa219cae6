// Package endian provides byte order utilities for fixed-width symbol codes.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine and adds helpers for integers that occupy fewer
// than eight bytes, which is how symbol codes are stored.
//
// Symbol codes are always big-endian so that the byte-wise order of codes
// matches the numeric order of the indices they were generated from:
//
//	engine := endian.GetBigEndianEngine()
//	code := endian.AppendUintN(engine, nil, 0x0102, 3) // [0x00 0x01 0x02]
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// MaxWidth is the widest integer, in bytes, the helpers in this package handle.
const MaxWidth = 8

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.BigEndian and binary.LittleEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsBigEndian reports whether engine orders bytes most significant first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// AppendUintN appends the n least significant bytes of v to dst in the engine's byte order.
//
// Bytes of v above n are dropped without any check; n is clamped to [0, MaxWidth].
func AppendUintN(engine EndianEngine, dst []byte, v uint64, n int) []byte {
	n = clampWidth(n)

	var tmp [MaxWidth]byte
	engine.PutUint64(tmp[:], v)

	if IsBigEndian(engine) {
		return append(dst, tmp[MaxWidth-n:]...)
	}

	return append(dst, tmp[:n]...)
}

// UintN reads an unsigned integer stored in len(b) bytes using the engine's byte order.
//
// It returns false when b is wider than MaxWidth bytes.
func UintN(engine EndianEngine, b []byte) (uint64, bool) {
	if len(b) > MaxWidth {
		return 0, false
	}

	var tmp [MaxWidth]byte
	if IsBigEndian(engine) {
		copy(tmp[MaxWidth-len(b):], b)
	} else {
		copy(tmp[:], b)
	}

	return engine.Uint64(tmp[:]), true
}

func clampWidth(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxWidth {
		return MaxWidth
	}

	return n
}
