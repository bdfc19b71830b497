// Package status renders live per-table diff progress. Handler plugs into
// log/slog, so every log record emitted during a diff refreshes the status
// block alongside the table states.
package status

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	finishedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Handler is a slog.Handler that maintains a per-table status block and
// rewrites it on every record.
//
// It is a display adapter: structured attributes and groups are ignored,
// only the record message is shown under the status block.
type Handler struct {
	mu     sync.Mutex
	out    io.Writer
	level  slog.Leveler
	prefix string
	tables []string // insertion order
	state  map[string]string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler writing to out. If level is nil,
// slog.LevelInfo is used.
func NewHandler(out io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:   out,
		level: level,
		state: make(map[string]string),
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler by refreshing the status block with the
// record's message appended.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.render(r.Message)
}

// WithAttrs implements slog.Handler. Attributes are not displayed.
func (h *Handler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup implements slog.Handler. Groups are not displayed.
func (h *Handler) WithGroup(string) slog.Handler { return h }

// SetPrefix sets a string prepended to every rendered log message.
func (h *Handler) SetPrefix(prefix string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prefix = prefix
}

// Started marks table as in progress and refreshes the block.
func (h *Handler) Started(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.state[table]; !ok {
		h.tables = append(h.tables, table)
	}
	h.state[table] = inProgressStyle.Render("In Progress")
	_ = h.render("")
}

// Finished marks table as done with the number of rows compared and
// refreshes the block.
func (h *Handler) Finished(table string, rows int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.state[table]; !ok {
		h.tables = append(h.tables, table)
	}
	h.state[table] = finishedStyle.Render(fmt.Sprintf("Finished %s rows", humanize.Comma(rows)))
	_ = h.render("")
}

func (h *Handler) render(msg string) error {
	var b strings.Builder
	for _, t := range h.tables {
		b.WriteString(h.state[t])
		b.WriteByte(' ')
		b.WriteString(t)
		b.WriteByte('\n')
	}
	if msg != "" {
		b.WriteString(h.prefix)
		b.WriteString(msg)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(h.out, b.String())
	return err
}
