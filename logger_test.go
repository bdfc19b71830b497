package keyspan

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogPartition(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).WithTable("orders")

	logger.LogPartition(context.Background(), "0", "100", 4, nil)

	out := buf.String()
	assert.Contains(t, out, "partition completed")
	assert.Contains(t, out, "table=orders")
	assert.Contains(t, out, "count=4")
}

func TestLogger_LogWalkError(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithCount(8)

	logger.LogWalk(context.Background(), 8, 2, errors.New("row mismatch"))

	out := buf.String()
	assert.Contains(t, out, "segment walk failed")
	assert.Contains(t, out, "row mismatch")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()

	// Must not panic and must stay silent at every standard level.
	logger.Error("dropped")
	logger.LogWalk(context.Background(), 1, 1, nil)
}

func TestNewLogger_NilHandler(t *testing.T) {
	logger := NewLogger(nil)
	assert.NotNil(t, logger.Logger)
}
