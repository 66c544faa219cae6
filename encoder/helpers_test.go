package encoder

import "slices"

// rawAlphabet implements alphabet.Alphabet without any validation so tests can
// feed encoders duplicate or oversized symbol lists.
type rawAlphabet struct {
	symbols    []string
	symbolSize int
	maxSize    int
}

func (r *rawAlphabet) Symbols() []string { return r.symbols }
func (r *rawAlphabet) SymbolSize() int   { return r.symbolSize }
func (r *rawAlphabet) MaxSize() int      { return r.maxSize }

func (r *rawAlphabet) Contains(symbol string) bool {
	return slices.Contains(r.symbols, symbol)
}

func (r *rawAlphabet) IsWord(symbols []string) bool {
	for _, s := range symbols {
		if !r.Contains(s) {
			return false
		}
	}

	return true
}
