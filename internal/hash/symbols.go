// Package hash computes xxHash64 fingerprints of alphabet symbol lists.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Symbols computes an order-sensitive fingerprint of an ordered symbol list.
//
// Each symbol is length-prefixed so that ["AB", "C"] and ["A", "BC"] differ.
func Symbols(symbols []string) uint64 {
	d := xxhash.New()

	var prefix [binary.MaxVarintLen64]byte
	for _, s := range symbols {
		n := binary.PutUvarint(prefix[:], uint64(len(s)))
		_, _ = d.Write(prefix[:n])
		_, _ = d.WriteString(s)
	}

	return d.Sum64()
}
