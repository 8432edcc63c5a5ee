// Package util holds the integer lookup tables behind oscillating behaviours
// and a shared cache for them.
package util

import (
	"sync"
)

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// GenerateWiggleLut builds the zig-zag offset table for a wiggle of the given
// number of steps: a rise from 0, a fall through zero to the trough, and a
// rise back toward 0. The table is empty when steps < 2.
func GenerateWiggleLut(steps int) []int {
	if steps <= 0 {
		return []int{}
	}

	half := steps / 2
	trough := FloorDiv(-steps, 2)
	lut := make([]int, 0, steps+1)
	for i := 0; i < half; i++ {
		lut = append(lut, i)
	}
	for i := half - 2; i > trough; i-- {
		lut = append(lut, i)
	}
	for i := trough + 2; i < 0; i++ {
		lut = append(lut, i)
	}
	return lut
}

// Memoizer caches wiggle tables by step count. It is safe for concurrent use.
type Memoizer struct {
	mu     sync.Mutex
	tables map[int][]int
}

// NewMemoizer creates an empty Memoizer.
func NewMemoizer() *Memoizer {
	return &Memoizer{tables: make(map[int][]int)}
}

// GenerateWiggleLutMemoized returns the shared table for steps, generating it
// on first use. Callers must not modify the returned slice.
func GenerateWiggleLutMemoized(steps int, m *Memoizer) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tables == nil {
		m.tables = make(map[int][]int)
	}
	lut, ok := m.tables[steps]
	if !ok {
		lut = GenerateWiggleLut(steps)
		m.tables[steps] = lut
	}
	return lut
}
