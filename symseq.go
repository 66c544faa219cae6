// Package symseq packs sequences of alphabet symbols, such as DNA bases or
// amino acids, into compact byte buffers and decodes them back.
//
// Each symbol of an alphabet is assigned a fixed-width byte code, the densest
// width that can address the alphabet's declared maximum size. A sequence
// stores the concatenated codes of its symbols.
//
// # Core Features
//
//   - Minimal-width big-endian symbol codes (package byteid)
//   - Bijective symbol <-> code mappings with explicit rebuild after alphabet changes (package encoder)
//   - Symbols wider than one character, split on rune boundaries (package sequence)
//   - Strict and best-effort append
//   - Complement and reverse complement through the alphabet's complement mapping
//
// # Basic Usage
//
//	seq, err := symseq.NewDNASequence("GATTACA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer seq.Release()
//
//	rc, _ := seq.ReverseComplement()
//	fmt.Println(rc) // TGTAATC
//
// Custom alphabets with multi-character symbols:
//
//	codons := alphabet.MustNewList([]string{"ATG", "TAA", "TAG", "TGA"})
//	seq, _ := symseq.NewSequence(codons)
//	err := seq.Push("ATGTAA")
//
// # Package Structure
//
// This package provides convenient top-level constructors around the sequence
// package. For fine-grained control, use the alphabet, encoder and sequence
// packages directly.
package symseq

import (
	"slices"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/encoder"
	"github.com/arloliu/symseq/format"
	"github.com/arloliu/symseq/sequence"
)

// NewSequence creates an empty sequence over a with the default index encoder.
//
// Parameters:
//   - a: The alphabet symbols are drawn from
//   - opts: Optional configuration (see sequence.Option)
//
// Returns:
//   - *sequence.Sequence: The created sequence.
//   - error: The encoder's construction error, if any.
func NewSequence(a alphabet.Alphabet, opts ...sequence.Option) (*sequence.Sequence, error) {
	return sequence.New(a, opts...)
}

// NewCompactSequence creates an empty sequence over a whose symbols are always
// stored in a single byte. a must not declare or hold more than 256 symbols.
func NewCompactSequence(a alphabet.Alphabet, opts ...sequence.Option) (*sequence.Sequence, error) {
	return sequence.New(a, append(slices.Clone(opts), sequence.WithEncoderType(format.TypeByte))...)
}

// NewDNASequence creates a sequence over the unambiguous DNA alphabet (ACGT) holding text.
func NewDNASequence(text string, opts ...sequence.Option) (*sequence.Sequence, error) {
	return newFilled(alphabet.UnambiguousDNA(), text, opts...)
}

// NewAmbiguousDNASequence creates a sequence over the IUPAC nucleotide alphabet holding text.
func NewAmbiguousDNASequence(text string, opts ...sequence.Option) (*sequence.Sequence, error) {
	return newFilled(alphabet.AmbiguousDNA(), text, opts...)
}

// NewEncoder creates the default encoder for a.
func NewEncoder(a alphabet.Alphabet) (encoder.Encoder, error) {
	return encoder.New(format.TypeIndex, a)
}

func newFilled(a alphabet.Alphabet, text string, opts ...sequence.Option) (*sequence.Sequence, error) {
	seq, err := sequence.New(a, opts...)
	if err != nil {
		return nil, err
	}

	if err := seq.Push(text); err != nil {
		seq.Release()
		return nil, err
	}

	return seq, nil
}
