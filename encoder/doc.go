// Package encoder maps alphabet symbols to fixed-width byte codes and back.
//
// Every encoder holds a snapshot of its alphabet's symbols taken when it was
// built: the symbol at position i is assigned the big-endian identifier of
// index i, so the mapping is a bijection over the symbols at that moment.
//
// # Stale mappings
//
// Encoders never watch their alphabet. If the alphabet's symbols or their
// order change, the snapshot goes stale until RecalculateMapping is called.
// A stale encoder does not misbehave silently on new symbols: Encode reports
// errs.ErrNoMapping for a symbol the alphabet now contains but the snapshot
// does not. Stale reports whether a rebuild is needed, but is never consulted
// implicitly.
//
// # Variants
//
//   - IndexEncoder sizes its codes from the alphabet's declared maximum size.
//   - ByteEncoder always uses one-byte codes and refuses alphabets larger than 256 symbols.
//
// Note: Encoders are NOT thread-safe with respect to RecalculateMapping.
// Concurrent Encode and Decode calls are safe as long as no rebuild runs at the same time.
package encoder
