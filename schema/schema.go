// Package schema provides case-aware name maps for database column and
// table identifiers.
//
// Databases disagree on whether identifiers are case-sensitive. Both map
// variants expose the same contract; the insensitive one folds case for
// lookup while remembering the casing each name was first inserted with,
// so that generated SQL can quote identifiers exactly as the schema
// declared them.
package schema

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrNotFound is returned when a canonical-key lookup misses.
var ErrNotFound = errors.New("not found")

// CaseAwareMap maps identifier names to values. Implementations decide how
// much of a name's casing participates in equality; CanonicalKey always
// reports the casing callers should display.
type CaseAwareMap[V any] interface {
	// Get returns the value stored under name.
	Get(name string) (V, bool)

	// Set inserts or replaces the value for name.
	Set(name string, value V)

	// Delete removes name.
	Delete(name string)

	// Len returns the number of entries.
	Len() int

	// All iterates over canonical names and their values.
	All() iter.Seq2[string, V]

	// CanonicalKey returns the stored casing for name. It fails with
	// ErrNotFound when the name is absent, surfacing a clear
	// "column not found" condition instead of a default.
	CanonicalKey(name string) (string, error)
}

type insensitiveEntry[V any] struct {
	key   string // first-inserted casing
	value V
}

// CaseInsensitiveMap matches names case-insensitively while remembering the
// casing each name was first inserted with.
type CaseInsensitiveMap[V any] struct {
	entries map[string]insensitiveEntry[V]
}

var _ CaseAwareMap[int] = (*CaseInsensitiveMap[int])(nil)

// NewCaseInsensitiveMap creates an empty case-insensitive map.
func NewCaseInsensitiveMap[V any]() *CaseInsensitiveMap[V] {
	return &CaseInsensitiveMap[V]{entries: make(map[string]insensitiveEntry[V])}
}

// Get returns the value stored under any case variant of name.
func (m *CaseInsensitiveMap[V]) Get(name string) (V, bool) {
	e, ok := m.entries[strings.ToLower(name)]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under name. When a case variant of name is already
// present its original casing is retained.
func (m *CaseInsensitiveMap[V]) Set(name string, value V) {
	k := strings.ToLower(name)
	if e, ok := m.entries[k]; ok {
		name = e.key
	}
	m.entries[k] = insensitiveEntry[V]{key: name, value: value}
}

// Delete removes any case variant of name.
func (m *CaseInsensitiveMap[V]) Delete(name string) {
	delete(m.entries, strings.ToLower(name))
}

// Len returns the number of entries.
func (m *CaseInsensitiveMap[V]) Len() int {
	return len(m.entries)
}

// All iterates over first-inserted casings and their values.
func (m *CaseInsensitiveMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// CanonicalKey returns the casing name was first inserted with.
func (m *CaseInsensitiveMap[V]) CanonicalKey(name string) (string, error) {
	e, ok := m.entries[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("schema: column %q: %w", name, ErrNotFound)
	}
	return e.key, nil
}

// CaseSensitiveMap matches names exactly; the canonical casing of a present
// name is the name itself.
type CaseSensitiveMap[V any] struct {
	entries map[string]V
}

var _ CaseAwareMap[int] = (*CaseSensitiveMap[int])(nil)

// NewCaseSensitiveMap creates an empty case-sensitive map.
func NewCaseSensitiveMap[V any]() *CaseSensitiveMap[V] {
	return &CaseSensitiveMap[V]{entries: make(map[string]V)}
}

// Get returns the value stored under exactly name.
func (m *CaseSensitiveMap[V]) Get(name string) (V, bool) {
	v, ok := m.entries[name]
	return v, ok
}

// Set stores value under name.
func (m *CaseSensitiveMap[V]) Set(name string, value V) {
	m.entries[name] = value
}

// Delete removes name.
func (m *CaseSensitiveMap[V]) Delete(name string) {
	delete(m.entries, name)
}

// Len returns the number of entries.
func (m *CaseSensitiveMap[V]) Len() int {
	return len(m.entries)
}

// All iterates over names and their values.
func (m *CaseSensitiveMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// CanonicalKey returns name itself when present.
func (m *CaseSensitiveMap[V]) CanonicalKey(name string) (string, error) {
	if _, ok := m.entries[name]; !ok {
		return "", fmt.Errorf("schema: column %q: %w", name, ErrNotFound)
	}
	return name, nil
}

// AsInsensitive returns a case-insensitive copy. Current casings become the
// canonical ones.
func (m *CaseSensitiveMap[V]) AsInsensitive() *CaseInsensitiveMap[V] {
	out := NewCaseInsensitiveMap[V]()
	for k, v := range m.entries {
		out.Set(k, v)
	}
	return out
}
