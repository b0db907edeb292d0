package axis

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Key identifies the inputs a scope was computed from.
type Key struct {
	Dataset           uint64
	Visibility        uint64
	SignificantDigits bool
	Stacked           bool
}

// Memo caches the result for the most recent Key. A lookup under a
// different key recomputes before returning, so a result is never served for
// inputs other than the ones it was computed from.
type Memo[T any] struct {
	mu     sync.Mutex
	key    Key
	value  T
	valid  bool
	misses int
}

func (m *Memo[T]) Get(key Key, compute func() T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.key == key {
		return m.value
	}
	log.Debug().
		Uint64("dataset", key.Dataset).
		Uint64("visibility", key.Visibility).
		Bool("significant_digits", key.SignificantDigits).
		Bool("stacked", key.Stacked).
		Msg("axis scope recomputed")
	m.value = compute()
	m.key = key
	m.valid = true
	m.misses++
	return m.value
}

// Reset drops the cached value.
func (m *Memo[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.value, m.valid = zero, false
}

// Misses counts recomputations.
func (m *Memo[T]) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}
