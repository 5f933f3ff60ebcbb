// Package random provides the draw sources a race consumes.
package random

import (
	"math/rand"
	"sync"
)

// Uniform draws uniformly from [min, max] using the runtime's
// automatically seeded generator.
type Uniform struct{}

// IntInRange returns a uniform integer in [min, max] inclusive.
func (Uniform) IntInRange(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// Source is anything that yields draws in a range.
type Source interface {
	IntInRange(min, max int) int
}

// Recorder wraps a Source and keeps every draw it hands out, in order.
//
// Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	src   Source
	draws []int
}

// NewRecorder wraps src.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// IntInRange draws from the wrapped source and records the result.
func (r *Recorder) IntInRange(min, max int) int {
	d := r.src.IntInRange(min, max)

	r.mu.Lock()
	r.draws = append(r.draws, d)
	r.mu.Unlock()
	return d
}

// Draws returns a copy of the recorded draws.
func (r *Recorder) Draws() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.draws))
	copy(out, r.draws)
	return out
}
