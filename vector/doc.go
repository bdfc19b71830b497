// Package vector implements immutable fixed-arity tuples under a product
// order, used to compare composite multi-column boundary keys.
//
// Under the product order a relation holds only if it holds on every
// component: (1, 5) < (2, 6) but neither (1, 2) < (2, 1) nor
// (2, 1) < (1, 2). Incomparability is a real outcome, not an error;
// Compare reports it as an explicit Ordering case so callers cannot
// mistake it for a boolean.
//
// Comparing vectors of different arity is a contract violation and always
// returns ErrArityMismatch, never false.
package vector
