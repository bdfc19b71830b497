// Package keyspan provides the ordered-key arithmetic used to partition a
// primary-key domain into balanced sub-ranges.
//
// A table-diffing engine holds two boundary keys of the same concrete type
// and asks for N evenly spaced interior checkpoints between them. Every key
// type reduces to an integer (a UUID's 128-bit value, an alphanumeric
// string's positional value), the split happens on integers, and the
// checkpoints are mapped back into the key's own representation. Boundaries
// are exact: adjacent sub-ranges tile the original range with no key lost
// or duplicated.
//
// # Key Types
//
//   - UUIDKey: a 128-bit UUID under integer order
//   - AlphanumKey: a string over a fixed 65-symbol alphabet, read as a
//     positional numeral
//
// Composite multi-column boundaries are compared with the vector package;
// column-name lookup lives in the schema package.
//
// # Concurrency
//
// All types in this package are immutable values. No operation blocks,
// performs I/O, or mutates shared state, so keys may be used concurrently
// without coordination. See WalkSegments for running work over the produced
// sub-ranges in parallel.
package keyspan

import "math/big"

// Key is the capability set shared by ordered key types.
//
// The type parameter is the implementing type itself, so arithmetic between
// different key variants does not compile.
type Key[K any] interface {
	// Int returns the key's canonical integer value.
	Int() *big.Int

	// Add returns a new key shifted forward by offset.
	Add(offset int64) (K, error)

	// Sub returns a new key shifted backward by offset.
	Sub(offset int64) (K, error)

	// Distance returns the integer distance from other to this key
	// (this minus other). It may be negative.
	Distance(other K) (*big.Int, error)

	// Compare returns -1, 0, or +1 depending on whether the key orders
	// before, equal to, or after other.
	Compare(other K) int

	// Range returns count evenly spaced keys strictly between this key and
	// other, in increasing order.
	Range(other K, count int) ([]K, error)
}
