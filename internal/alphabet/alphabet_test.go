package alphabet

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	assert.Equal(t, 65, Base)
	assert.Len(t, Alphanums, Base)

	// Space is the zero symbol; the relative order defines digit values.
	assert.Equal(t, byte(' '), Alphanums[0])
	assert.Equal(t, byte('-'), Alphanums[1])
	assert.Equal(t, byte('0'), Alphanums[2])
	assert.Equal(t, byte('A'), Alphanums[12])
	assert.Equal(t, byte('_'), Alphanums[38])
	assert.Equal(t, byte('a'), Alphanums[39])
	assert.Equal(t, byte('z'), Alphanums[64])
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"Empty", "", 0},
		{"ZeroSymbol", " ", 0},
		{"One", "-", 1},
		{"SingleLetter", "a", 39},
		{"TwoDigits", "a ", 39 * 65},
		{"Mixed", "az", 39*65 + 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(big.NewInt(tt.expected)), "got %s", got)
		})
	}

	t.Run("OutsideAlphabet", func(t *testing.T) {
		_, err := Decode("ab!cd")
		assert.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		// Zero has no digits: the empty string, which decodes back to zero.
		{"Zero", 0, ""},
		{"One", 1, "-"},
		{"SingleLetter", 39, "a"},
		{"TwoDigits", 39 * 65, "a "},
		{"Mixed", 39*65 + 64, "az"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(big.NewInt(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("Negative", func(t *testing.T) {
		_, err := Encode(big.NewInt(-1))
		assert.Error(t, err)
	})
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	// No leading zero symbol, so the textual form round trips exactly.
	for _, s := range []string{"Hello", "a", "z_9", "TABLE-1"} {
		n, err := Decode(s)
		require.NoError(t, err)
		got, err := Encode(n)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	// A leading zero symbol is dropped, like a leading zero digit.
	n, err := Decode(" x")
	require.NoError(t, err)
	got, err := Encode(n)
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestValid(t *testing.T) {
	assert.NoError(t, Valid("a-Z_9 "))
	assert.Error(t, Valid("nope!"))
	assert.Error(t, Valid("tab\tchar"))
}

func TestAlign(t *testing.T) {
	a, b := Align("ab", "a")
	assert.Equal(t, "ab", a)
	assert.Equal(t, "a ", b)

	a, b = Align("x", "wxyz")
	assert.Equal(t, "x   ", a)
	assert.Equal(t, "wxyz", b)

	a, b = Align("same", "size")
	assert.Equal(t, "same", a)
	assert.Equal(t, "size", b)
}

func TestAlignedInts(t *testing.T) {
	na, nb, err := AlignedInts("b", "a")
	require.NoError(t, err)
	assert.Zero(t, na.Cmp(big.NewInt(40)))
	assert.Zero(t, nb.Cmp(big.NewInt(39)))

	// Alignment multiplies the shorter operand's weight.
	na, nb, err = AlignedInts("b", "a ")
	require.NoError(t, err)
	assert.Zero(t, na.Cmp(big.NewInt(40*65)))
	assert.Zero(t, nb.Cmp(big.NewInt(39*65)))

	_, _, err = AlignedInts("ok", "bad!")
	assert.Error(t, err)
}
