package byteid

// ID returns the numBytes-wide big-endian identifier for idx.
//
// Returns errs.ErrIndexOutOfRange when idx does not fit in numBytes bytes.
// numBytes is clamped to [1, MaxBytes].
func ID(idx uint64, numBytes int) ([]byte, error) {
	return FromByteCount(numBytes).ID(idx)
}

// IDUnchecked returns the numBytes-wide big-endian identifier for idx without
// checking that idx fits; excess high bytes are dropped.
// numBytes is clamped to [1, MaxBytes], as in ID.
func IDUnchecked(idx uint64, numBytes int) []byte {
	return FromByteCount(numBytes).IDUnchecked(idx)
}
