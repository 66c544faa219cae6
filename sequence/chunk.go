package sequence

import (
	"iter"
	"unicode/utf8"
)

// Chunks returns an iterator over consecutive substrings of text holding exactly
// size runes each, starting at the first rune. A trailing partial chunk is not
// yielded. size must be positive.
//
// Invalid UTF-8 bytes count as one rune each, as in utf8.RuneCountInString.
func Chunks(text string, size int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if size < 1 {
			return
		}

		start, runes := 0, 0
		for i := 0; i < len(text); {
			_, w := utf8.DecodeRuneInString(text[i:])
			i += w
			runes++

			if runes == size {
				if !yield(text[start:i]) {
					return
				}
				start, runes = i, 0
			}
		}
	}
}

// SplitSymbols splits text into chunks of size runes and returns the chunks
// together with the trailing runes that do not fill a chunk.
func SplitSymbols(text string, size int) (chunks []string, rest string) {
	if size < 1 {
		return nil, text
	}

	chunks = make([]string, 0, utf8.RuneCountInString(text)/size)
	consumed := 0
	for chunk := range Chunks(text, size) {
		chunks = append(chunks, chunk)
		consumed += len(chunk)
	}

	return chunks, text[consumed:]
}
