// Package errs defines the sentinel errors returned by symseq packages.
//
// Errors are wrapped with context using fmt.Errorf and the %w verb, so callers
// should compare with errors.Is rather than ==.
package errs

import "errors"

// Encoding and decoding errors.
var (
	// ErrInvalidSymbol is returned when a symbol is neither in the encoder mapping nor in the alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidBytes is returned when a byte code does not have the width of exactly one symbol.
	ErrInvalidBytes = errors.New("invalid byte code length")

	// ErrInvalidLength is returned by a strict push when the text's character count
	// is not a multiple of the alphabet symbol size.
	ErrInvalidLength = errors.New("text length is not a multiple of the symbol size")

	// ErrNoMapping is returned when a symbol or byte code is missing from a mapping that
	// may have been built before the alphabet changed.
	ErrNoMapping = errors.New("no mapping for symbol or byte code")

	// ErrOther covers failures that fit no other category.
	ErrOther = errors.New("symseq error")
)

// Construction and configuration errors.
var (
	ErrIndexOutOfRange    = errors.New("index exceeds generator maximum")
	ErrDuplicateSymbol    = errors.New("duplicate symbol in alphabet")
	ErrAlphabetTooLarge   = errors.New("alphabet exceeds encoder capacity")
	ErrInvalidSymbolSize  = errors.New("invalid symbol size")
	ErrInvalidMaxSize     = errors.New("invalid maximum alphabet size")
	ErrInvalidEncoderType = errors.New("invalid encoder type")
)

// Sequence errors.
var (
	// ErrNoComplement is returned when complementing a sequence whose alphabet has no complement mapping.
	ErrNoComplement = errors.New("alphabet has no complement mapping")

	// ErrInvalidComplement is returned when a complement mapping is not aligned with the alphabet symbols.
	ErrInvalidComplement = errors.New("invalid complement mapping")

	// ErrCorrupted signals that a stored byte code could not be decoded, which means either
	// the buffer was corrupted or the encoder mapping is stale.
	ErrCorrupted = errors.New("sequence buffer does not match encoder mapping")
)
