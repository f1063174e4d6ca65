// Package selector maps a loaded record sequence and the page's current
// selection to the records that should be displayed.
package selector

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// AllValue disables exact-match filtering
const AllValue = "all"

// Func picks the visible records for the given selection value
type Func[T any] func(records []T, selection string) []T

// Identity shows every record; the selection only affects presentation
func Identity[T any]() Func[T] {
	return func(records []T, _ string) []T {
		return records
	}
}

// ExactMatch keeps the records whose key equals the selection, in order.
// AllValue keeps everything. There is no partial matching.
func ExactMatch[T any](key func(T) string) Func[T] {
	return func(records []T, selection string) []T {
		if selection == AllValue {
			return records
		}
		matched := make([]T, 0, len(records))
		for _, record := range records {
			if key(record) == selection {
				matched = append(matched, record)
			}
		}
		return matched
	}
}

// Rand is the randomness the sampler consumes; *rand.Rand satisfies it
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Sample draws a uniform random subset of the eligible records: both when
// exactly two are eligible, otherwise two or three by coin flip, capped at
// the pool size. Input order is not preserved and the input is not modified.
func Sample[T any](eligible func(T) bool, rng Rand) Func[T] {
	return func(records []T, _ string) []T {
		pool := make([]T, 0, len(records))
		for _, record := range records {
			if eligible(record) {
				pool = append(pool, record)
			}
		}
		if len(pool) == 0 {
			return pool
		}

		count := 2
		if len(pool) != 2 && rng.Float64() > 0.5 {
			count = 3
		}
		count = min(count, len(pool))

		for i := len(pool) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			pool[i], pool[j] = pool[j], pool[i]
		}
		return pool[:count]
	}
}

// NewRand returns a PCG generator seeded from crypto/rand
func NewRand() (*rand.Rand, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))), nil
}

// LockedRand lets concurrent page loads share one generator
type LockedRand struct {
	mu  sync.Mutex
	rng Rand
}

func NewLockedRand(rng Rand) *LockedRand {
	return &LockedRand{rng: rng}
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}
