// Package sequence stores ordered runs of alphabet symbols as packed byte codes.
//
// A Sequence owns an encoder.Encoder and a growable buffer of concatenated,
// fixed-width symbol codes. Text is appended by splitting it into chunks of
// exactly SymbolSize runes and encoding each chunk:
//
//	seq, _ := sequence.New(alphabet.UnambiguousDNA())
//	if err := seq.Push("GATTACA"); err != nil {
//	    return err
//	}
//	fmt.Println(seq) // GATTACA
//
// Chunk boundaries are computed on rune boundaries, so symbols built from
// multi-byte UTF-8 characters are split correctly.
//
// The buffer always holds a whole number of valid codes: a failed Push leaves
// it exactly as it was.
//
// Note: Sequence is NOT thread-safe. Each sequence should be used by a single
// goroutine at a time, or guarded by the caller.
package sequence
