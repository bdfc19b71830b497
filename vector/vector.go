package vector

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrArityMismatch is returned when two vectors of different arity are
// compared or subtracted.
var ErrArityMismatch = errors.New("vector arity mismatch")

// Vector is an immutable fixed-arity tuple of ordered elements. Arity is
// fixed at creation.
type Vector[E constraints.Ordered] []E

// New builds a vector from its components.
func New[E constraints.Ordered](elems ...E) Vector[E] {
	v := make(Vector[E], len(elems))
	copy(v, elems)
	return v
}

// Arity returns the number of components.
func (v Vector[E]) Arity() int {
	return len(v)
}

// String renders the vector as a parenthesized tuple.
func (v Vector[E]) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprint(e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (v Vector[E]) check(other Vector[E]) error {
	if len(v) != len(other) {
		return fmt.Errorf("vector: %w: %d vs %d", ErrArityMismatch, len(v), len(other))
	}
	return nil
}

// Less reports whether every component of v is strictly less than the
// corresponding component of other.
func (v Vector[E]) Less(other Vector[E]) (bool, error) {
	if err := v.check(other); err != nil {
		return false, err
	}
	for i := range v {
		if !(v[i] < other[i]) {
			return false, nil
		}
	}
	return true, nil
}

// LessEq reports whether every component of v is less than or equal to the
// corresponding component of other.
func (v Vector[E]) LessEq(other Vector[E]) (bool, error) {
	if err := v.check(other); err != nil {
		return false, err
	}
	for i := range v {
		if !(v[i] <= other[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Greater reports whether every component of v is strictly greater than the
// corresponding component of other.
func (v Vector[E]) Greater(other Vector[E]) (bool, error) {
	if err := v.check(other); err != nil {
		return false, err
	}
	for i := range v {
		if !(v[i] > other[i]) {
			return false, nil
		}
	}
	return true, nil
}

// GreaterEq reports whether every component of v is greater than or equal
// to the corresponding component of other.
func (v Vector[E]) GreaterEq(other Vector[E]) (bool, error) {
	if err := v.check(other); err != nil {
		return false, err
	}
	for i := range v {
		if !(v[i] >= other[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether all components are equal.
func (v Vector[E]) Equal(other Vector[E]) (bool, error) {
	if err := v.check(other); err != nil {
		return false, err
	}
	for i := range v {
		if v[i] != other[i] {
			return false, nil
		}
	}
	return true, nil
}

// Ordering is the outcome of comparing two vectors under the product order.
// The zero value is OrderingIncomparable, the case a caller must handle
// explicitly rather than treat as a boolean.
type Ordering int

const (
	OrderingIncomparable Ordering = iota
	OrderingLess
	OrderingEqual
	OrderingGreater
)

func (o Ordering) String() string {
	switch o {
	case OrderingIncomparable:
		return "Incomparable"
	case OrderingLess:
		return "Less"
	case OrderingEqual:
		return "Equal"
	case OrderingGreater:
		return "Greater"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Known reports whether the outcome is an actual ordering.
func (o Ordering) Known() bool {
	return o != OrderingIncomparable
}

// Compare classifies v against other under the product partial order:
// OrderingLess means v <= other componentwise without being equal (some
// components may tie), and likewise for OrderingGreater. Note this is
// weaker than the componentwise-strict Less method.
func (v Vector[E]) Compare(other Vector[E]) (Ordering, error) {
	if err := v.check(other); err != nil {
		return OrderingIncomparable, err
	}
	le, ge := true, true
	for i := range v {
		if v[i] < other[i] {
			ge = false
		} else if v[i] > other[i] {
			le = false
		}
	}
	switch {
	case le && ge:
		return OrderingEqual, nil
	case le:
		return OrderingLess, nil
	case ge:
		return OrderingGreater, nil
	default:
		return OrderingIncomparable, nil
	}
}

// Number constrains subtraction to element types with arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sub returns the component-wise difference a minus b as a new vector.
func Sub[E Number](a, b Vector[E]) (Vector[E], error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("vector: %w: %d vs %d", ErrArityMismatch, len(a), len(b))
	}
	out := make(Vector[E], len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}
