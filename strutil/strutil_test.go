package strutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToHuman(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"Zero", 0, "0"},
		{"Small", 999, "999"},
		{"Thousands", 1234, "1k"},
		{"Millions", 7200000, "7m"},
		{"Billions", 5400000000, "5b"},
		// Magnitude clamps at billions.
		{"Trillions", 2000000000000, "2000b"},
		{"Negative", -1200, "-1k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberToHuman(tt.input))
		})
	}
}

func TestMatchLike(t *testing.T) {
	names := []string{"users", "users_tmp", "orders", "user"}

	t.Run("PercentWildcard", func(t *testing.T) {
		got, err := MatchLike("users%", names)
		require.NoError(t, err)
		assert.Equal(t, []string{"users", "users_tmp"}, got)
	})

	t.Run("QuestionMark", func(t *testing.T) {
		got, err := MatchLike("user?", names)
		require.NoError(t, err)
		assert.Equal(t, []string{"users"}, got)
	})

	t.Run("ExactOnly", func(t *testing.T) {
		got, err := MatchLike("user", names)
		require.NoError(t, err)
		assert.Equal(t, []string{"user"}, got)
	})

	t.Run("NoMatch", func(t *testing.T) {
		got, err := MatchLike("missing%", names)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("BadPattern", func(t *testing.T) {
		_, err := MatchLike("users[", names)
		assert.Error(t, err)
	})
}

func TestEvalNameTemplate(t *testing.T) {
	t.Run("NoPlaceholder", func(t *testing.T) {
		assert.Equal(t, "diff_output", EvalNameTemplate("diff_output"))
	})

	t.Run("Timestamp", func(t *testing.T) {
		got := EvalNameTemplate("diff_%t")
		assert.Regexp(t, regexp.MustCompile(`^diff_\d{4}-\d{2}-\d{2}_\d{2}_\d{2}_\d{2}$`), got)
	})
}
