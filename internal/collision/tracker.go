// Package collision detects duplicate symbols while an alphabet or an encoder
// mapping is being built.
package collision

import (
	"fmt"
	"strconv"

	"github.com/arloliu/symseq/errs"
)

// Tracker records the position of every symbol it has seen.
type Tracker struct {
	positions map[string]int // symbol -> first position
	count     int
}

// NewTracker creates a tracker sized for capacity symbols.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		positions: make(map[string]int, capacity),
	}
}

// Track records symbol at the next position.
//
// Returns errs.ErrDuplicateSymbol when symbol was already tracked; the tracker
// is left unchanged in that case.
func (t *Tracker) Track(symbol string) error {
	if first, exists := t.positions[symbol]; exists {
		return fmt.Errorf("%w: %s at positions %d and %d", errs.ErrDuplicateSymbol, strconv.Quote(symbol), first, t.count)
	}

	t.positions[symbol] = t.count
	t.count++

	return nil
}

// TrackAll tracks every symbol in order and stops at the first duplicate.
func (t *Tracker) TrackAll(symbols []string) error {
	for _, s := range symbols {
		if err := t.Track(s); err != nil {
			return err
		}
	}

	return nil
}

// Position returns the position symbol was tracked at.
func (t *Tracker) Position(symbol string) (int, bool) {
	pos, ok := t.positions[symbol]
	return pos, ok
}

// Count returns the number of tracked symbols.
func (t *Tracker) Count() int {
	return t.count
}

// Positions returns the underlying symbol -> position map. The caller must not modify it.
func (t *Tracker) Positions() map[string]int {
	return t.positions
}
