// Package byteid maps integer indices to minimal-width big-endian byte identifiers.
//
// A Generator is sized either from the largest index it must represent or from
// an explicit byte count. Every identifier it produces has exactly NumBytes bytes:
//
//	g := byteid.FromMax(300)    // two bytes are needed for 300
//	id, _ := g.ID(256)          // [0x01 0x00]
//
// Identifiers compare byte-wise in the same order as their indices, and
// iteration with All yields them in big-endian counting order.
//
// Generators are immutable and safe for concurrent use.
package byteid
