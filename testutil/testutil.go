// Package testutil provides deterministic generators for key-space tests.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/sungchun12/keyspan/internal/alphabet"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random int64 in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// UUID returns a pseudo-random UUID drawn from the seeded stream.
func (r *RNG) UUID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b [16]byte
	r.rand.Read(b[:])
	return uuid.UUID(b)
}

// Alphanum returns a pseudo-random string over the key alphabet with a
// length in [1, maxLen].
func (r *RNG) Alphanum(maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 1 + r.rand.Intn(maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet.Alphanums[r.rand.Intn(alphabet.Base)]
	}
	return string(b)
}
