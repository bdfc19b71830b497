// Package alphabet implements the base-65 positional numeral system behind
// alphanumeric keys: a fixed, ordered symbol set where each string reads as
// an integer, most significant symbol first.
package alphabet

import (
	"fmt"
	"math/big"
	"strings"
)

// Alphanums is the ordered alphabet. The relative order defines every
// symbol's digit value, with space as zero.
const Alphanums = " -0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

// Base is the number of symbols in the alphabet.
const Base = len(Alphanums)

var base = big.NewInt(int64(Base))

var indexOf [256]int16

func init() {
	for i := range indexOf {
		indexOf[i] = -1
	}
	for i := 0; i < len(Alphanums); i++ {
		indexOf[Alphanums[i]] = int16(i)
	}
}

// Valid reports whether every character of s belongs to the alphabet.
func Valid(s string) error {
	for i := 0; i < len(s); i++ {
		if indexOf[s[i]] < 0 {
			return fmt.Errorf("alphabet: unexpected character %q in alphanum string", s[i])
		}
	}
	return nil
}

// Encode converts a non-negative integer into its alphabet representation,
// most significant symbol first.
//
// Zero encodes to the empty string: the digit loop stops once the value is
// exhausted, and the empty string decodes back to zero. Range computations
// never reach this case because checkpoints are strictly greater than the
// lower bound.
func Encode(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", fmt.Errorf("alphabet: cannot encode negative value %s", n)
	}
	var digits []byte
	v := new(big.Int).Set(n)
	rem := new(big.Int)
	for v.Sign() > 0 {
		v.QuoRem(v, base, rem)
		digits = append(digits, Alphanums[rem.Int64()])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// Decode converts an alphabet string into its integer value. The empty
// string decodes to zero.
func Decode(s string) (*big.Int, error) {
	n := new(big.Int)
	idx := new(big.Int)
	for i := 0; i < len(s); i++ {
		d := indexOf[s[i]]
		if d < 0 {
			return nil, fmt.Errorf("alphabet: unexpected character %q in alphanum string", s[i])
		}
		n.Mul(n, base)
		n.Add(n, idx.SetInt64(int64(d)))
	}
	return n, nil
}

// Align pads the shorter of a and b on the right with the alphabet's lowest
// symbol until both have equal length, so that Decode reads both under the
// same positional weight. It must run before any integer comparison or
// range computation over two alphabet strings.
func Align(a, b string) (string, string) {
	switch {
	case len(a) < len(b):
		a += strings.Repeat(string(Alphanums[0]), len(b)-len(a))
	case len(b) < len(a):
		b += strings.Repeat(string(Alphanums[0]), len(a)-len(b))
	}
	return a, b
}

// AlignedInts aligns a and b and decodes both.
func AlignedInts(a, b string) (*big.Int, *big.Int, error) {
	a, b = Align(a, b)
	na, err := Decode(a)
	if err != nil {
		return nil, nil, err
	}
	nb, err := Decode(b)
	if err != nil {
		return nil, nil, err
	}
	return na, nb, nil
}
