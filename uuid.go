package keyspan

import (
	"bytes"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsUUID reports whether s is a canonical dashed UUID string.
//
// A 32-character hex digest is not a UUID: without dashes it does not sort
// like one, so it must not be treated as one.
func IsUUID(s string) bool {
	if !uuidPattern.MatchString(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// uuidSpace is 2^128, one past the largest representable UUID value.
var uuidSpace = new(big.Int).Lsh(one, 128)

// UUIDKey is a UUID that supports offset arithmetic and range partitioning.
//
// Arithmetic and ordering operate exclusively on the UUID's 128-bit integer
// value. The lowercase/uppercase flags only affect String and never
// participate in comparison: two keys with the same value but different
// flags are equal.
type UUIDKey struct {
	value     uuid.UUID
	lowercase bool
	uppercase bool
}

var _ Key[UUIDKey] = UUIDKey{}

// NewUUIDKey wraps an existing UUID.
func NewUUIDKey(v uuid.UUID) UUIDKey {
	return UUIDKey{value: v}
}

// ParseUUIDKey parses a UUID string in any form accepted by uuid.Parse.
func ParseUUIDKey(s string) (UUIDKey, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return UUIDKey{}, fmt.Errorf("keyspan: %w: %v", ErrInvalidKey, err)
	}
	return UUIDKey{value: v}, nil
}

// UUIDKeyFromInt builds a key from its 128-bit integer value.
func UUIDKeyFromInt(n *big.Int) (UUIDKey, error) {
	if n.Sign() < 0 || n.Cmp(uuidSpace) >= 0 {
		return UUIDKey{}, fmt.Errorf("keyspan: %w: integer %s outside the 128-bit UUID space", ErrInvalidKey, n)
	}
	var b [16]byte
	n.FillBytes(b[:])
	return UUIDKey{value: uuid.UUID(b)}, nil
}

// UUID returns the wrapped UUID.
func (k UUIDKey) UUID() uuid.UUID {
	return k.value
}

// WithLowercase returns a copy of the key that renders in lowercase.
func (k UUIDKey) WithLowercase() UUIDKey {
	k.lowercase = true
	k.uppercase = false
	return k
}

// WithUppercase returns a copy of the key that renders in uppercase.
func (k UUIDKey) WithUppercase() UUIDKey {
	k.uppercase = true
	k.lowercase = false
	return k
}

// String renders the canonical dashed form, honoring the display-case flags.
func (k UUIDKey) String() string {
	s := k.value.String()
	if k.uppercase {
		return strings.ToUpper(s)
	}
	return s
}

// Int returns the UUID's 128-bit integer value.
func (k UUIDKey) Int() *big.Int {
	return new(big.Int).SetBytes(k.value[:])
}

// evolve replaces the integer value while keeping the display-case flags.
func (k UUIDKey) evolve(n *big.Int) (UUIDKey, error) {
	nk, err := UUIDKeyFromInt(n)
	if err != nil {
		return UUIDKey{}, err
	}
	nk.lowercase, nk.uppercase = k.lowercase, k.uppercase
	return nk, nil
}

// Add returns a new key shifted forward by offset.
func (k UUIDKey) Add(offset int64) (UUIDKey, error) {
	n := k.Int()
	n.Add(n, big.NewInt(offset))
	return k.evolve(n)
}

// Sub returns a new key shifted backward by offset.
func (k UUIDKey) Sub(offset int64) (UUIDKey, error) {
	n := k.Int()
	n.Sub(n, big.NewInt(offset))
	return k.evolve(n)
}

// Distance returns k minus other as an integer. It may be negative.
func (k UUIDKey) Distance(other UUIDKey) (*big.Int, error) {
	return new(big.Int).Sub(k.Int(), other.Int()), nil
}

// Compare orders keys by their 128-bit integer value.
func (k UUIDKey) Compare(other UUIDKey) int {
	return bytes.Compare(k.value[:], other.value[:])
}

// Equal reports value equality, ignoring display-case flags.
func (k UUIDKey) Equal(other UUIDKey) bool {
	return k.value == other.value
}

// Range returns count evenly spaced keys strictly between k and other.
// Every checkpoint inherits k's display-case flags.
func (k UUIDKey) Range(other UUIDKey, count int) ([]UUIDKey, error) {
	checkpoints, err := SplitSpace(k.Int(), other.Int(), count)
	if err != nil {
		return nil, err
	}
	keys := make([]UUIDKey, len(checkpoints))
	for i, cp := range checkpoints {
		keys[i], err = k.evolve(cp)
		if err != nil {
			return nil, err
		}
	}
	return keys, nil
}
