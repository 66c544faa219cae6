package sequence

import (
	"fmt"

	"github.com/arloliu/symseq/alphabet"
	"github.com/arloliu/symseq/errs"
)

// Complement returns a new sequence holding the complement of every symbol,
// in the same order. The receiver is not modified.
//
// Symbols are paired positionally through the alphabet's ComplementMapping.
// Returns errs.ErrNoComplement when the alphabet is not an alphabet.Complementer
// or has no mapping, errs.ErrInvalidComplement for a misaligned mapping, and an
// error wrapping errs.ErrCorrupted when a stored code has no complement.
func (s *Sequence) Complement() (*Sequence, error) {
	return s.complement(false)
}

// ReverseComplement is like Complement but also reverses the order of the symbols.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	return s.complement(true)
}

func (s *Sequence) complement(reverse bool) (*Sequence, error) {
	table, err := s.complementCodes()
	if err != nil {
		return nil, err
	}

	out := newSequence(s.enc, &Config{circular: s.circular})
	out.buf.Grow(s.buf.Len())

	w := s.enc.Width()
	n := s.Len()
	for k := range n {
		i := k
		if reverse {
			i = n - 1 - k
		}

		comp, ok := table[string(s.buf.B[i*w:(i+1)*w])]
		if !ok {
			out.Release()
			return nil, corrupted(i, fmt.Errorf("%w: code %x", errs.ErrNoMapping, s.buf.B[i*w:(i+1)*w]))
		}
		out.buf.MustWrite(comp)
	}

	return out, nil
}

// complementCodes translates the complement mapping into code -> complement code.
func (s *Sequence) complementCodes() (map[string][]byte, error) {
	c, ok := s.enc.Alphabet().(alphabet.Complementer)
	if !ok {
		return nil, errs.ErrNoComplement
	}

	pairs, err := alphabet.ComplementTable(c)
	if err != nil {
		return nil, err
	}

	table := make(map[string][]byte, len(pairs))
	for sym, comp := range pairs {
		code, err := s.enc.Encode(sym)
		if err != nil {
			return nil, err
		}
		compCode, err := s.enc.Encode(comp)
		if err != nil {
			return nil, err
		}
		table[string(code)] = compCode
	}

	return table, nil
}
