package byteid

import "testing"

func BenchmarkGenerator_AppendID(b *testing.B) {
	g := FromMax(1 << 20)
	dst := make([]byte, 0, 8)

	for b.Loop() {
		dst, _ = g.AppendID(dst[:0], 0xABCDE)
	}
}

func BenchmarkGenerator_All(b *testing.B) {
	g := FromByteCount(2)

	for b.Loop() {
		for id := range g.All() {
			_ = id
		}
	}
}
