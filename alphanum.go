package keyspan

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sungchun12/keyspan/internal/alphabet"
)

// AlphanumKey is a key over the fixed 65-symbol alphanumeric alphabet
// (space, hyphen, digits, uppercase letters, underscore, lowercase letters,
// in that order) with an optional maximum length.
//
// Binary operations read both operands as positional numerals after
// aligning them to equal length; see Compare for the one deliberate
// exception.
type AlphanumKey struct {
	str    string
	maxLen int // 0 means no maximum
}

var _ Key[AlphanumKey] = AlphanumKey{}

// AlphanumOption configures an AlphanumKey at construction.
type AlphanumOption func(*AlphanumKey)

// WithMaxLen sets the key's maximum length. The rendered form pads to this
// length with the alphabet's lowest symbol.
func WithMaxLen(n int) AlphanumOption {
	return func(k *AlphanumKey) {
		k.maxLen = n
	}
}

// NewAlphanumKey validates s against the alphabet and wraps it.
func NewAlphanumKey(s string, optFns ...AlphanumOption) (AlphanumKey, error) {
	k := AlphanumKey{str: s}
	for _, fn := range optFns {
		fn(&k)
	}
	if k.maxLen > 0 && len(s) > k.maxLen {
		return AlphanumKey{}, fmt.Errorf("keyspan: %w: alphanum value %q is longer than the expected %d", ErrInvalidKey, s, k.maxLen)
	}
	if err := alphabet.Valid(s); err != nil {
		return AlphanumKey{}, fmt.Errorf("keyspan: %w: %v", ErrInvalidKey, err)
	}
	return k, nil
}

// String renders the key, left-padded with the alphabet's lowest symbol to
// the maximum length when one is set.
func (k AlphanumKey) String() string {
	if k.maxLen > 0 && len(k.str) < k.maxLen {
		return strings.Repeat(string(alphabet.Alphanums[0]), k.maxLen-len(k.str)) + k.str
	}
	return k.str
}

// Len returns the unpadded length.
func (k AlphanumKey) Len() int {
	return len(k.str)
}

// MaxLen returns the configured maximum length, or 0 when unset.
func (k AlphanumKey) MaxLen() int {
	return k.maxLen
}

// Int returns the positional value of the raw, unpadded string. Binary
// operations do not use Int directly; they align both operands first.
func (k AlphanumKey) Int() *big.Int {
	n, _ := alphabet.Decode(k.str) // validated at construction
	return n
}

// evolve wraps a new string with k's maximum length.
func (k AlphanumKey) evolve(s string) (AlphanumKey, error) {
	return NewAlphanumKey(s, WithMaxLen(k.maxLen))
}

// Add returns the key's successor. Only offset == 1 is supported: shifting
// an alphabet string by an arbitrary distance is not implemented.
func (k AlphanumKey) Add(offset int64) (AlphanumKey, error) {
	if offset != 1 {
		return AlphanumKey{}, fmt.Errorf("keyspan: alphanum add with offset %d: %w", offset, ErrUnsupported)
	}
	n := k.Int()
	n.Add(n, one)
	s, err := alphabet.Encode(n)
	if err != nil {
		return AlphanumKey{}, fmt.Errorf("keyspan: %w: %v", ErrInvalidKey, err)
	}
	return k.evolve(s)
}

// Sub with an integer offset is not defined for alphanumeric keys.
func (k AlphanumKey) Sub(offset int64) (AlphanumKey, error) {
	return AlphanumKey{}, fmt.Errorf("keyspan: alphanum sub with offset %d: %w", offset, ErrUnsupported)
}

// Distance returns k minus other under aligned positional weights. It may
// be negative.
func (k AlphanumKey) Distance(other AlphanumKey) (*big.Int, error) {
	n1, n2, err := alphabet.AlignedInts(k.str, other.str)
	if err != nil {
		return nil, fmt.Errorf("keyspan: %w: %v", ErrInvalidKey, err)
	}
	return n1.Sub(n1, n2), nil
}

// Compare orders keys lexicographically on the raw, unaligned strings.
//
// This is not the aligned integer order used by Distance and Range: the two
// can disagree for strings of different lengths sharing a prefix. The
// asymmetry is deliberate and preserved.
func (k AlphanumKey) Compare(other AlphanumKey) int {
	return strings.Compare(k.str, other.str)
}

// Equal reports raw string equality.
func (k AlphanumKey) Equal(other AlphanumKey) bool {
	return k.str == other.str
}

// Range returns count evenly spaced keys strictly between k and other under
// aligned positional weights. Every checkpoint inherits k's maximum length.
func (k AlphanumKey) Range(other AlphanumKey, count int) ([]AlphanumKey, error) {
	n1, n2, err := alphabet.AlignedInts(k.str, other.str)
	if err != nil {
		return nil, fmt.Errorf("keyspan: %w: %v", ErrInvalidKey, err)
	}
	checkpoints, err := SplitSpace(n1, n2, count)
	if err != nil {
		return nil, err
	}
	keys := make([]AlphanumKey, len(checkpoints))
	for i, cp := range checkpoints {
		s, err := alphabet.Encode(cp)
		if err != nil {
			return nil, fmt.Errorf("keyspan: %w: %v", ErrInvalidKey, err)
		}
		keys[i], err = k.evolve(s)
		if err != nil {
			return nil, err
		}
	}
	return keys, nil
}
