package testutil

import (
	"fmt"
	"sync"
)

// ScriptedDraws replays a fixed sequence of draws.
//
// Draws are handed out in order regardless of the requested range, so a
// script can include out-of-range values to exercise failure paths.
// Reset rewinds to the first draw so the same script can race again.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ScriptedDraws struct {
	mu    sync.Mutex
	draws []int
	idx   int
}

// NewScriptedDraws creates a source that returns draws in order.
func NewScriptedDraws(draws ...int) *ScriptedDraws {
	return &ScriptedDraws{draws: draws}
}

// RepeatDraw creates a source that returns the same draw n times.
func RepeatDraw(draw, n int) *ScriptedDraws {
	draws := make([]int, n)
	for i := range draws {
		draws[i] = draw
	}
	return NewScriptedDraws(draws...)
}

// IntInRange returns the next scripted draw.
//
// Panics when the script is exhausted: the race asked for more draws than
// the test planned for.
func (s *ScriptedDraws) IntInRange(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.draws) {
		panic(fmt.Sprintf("ScriptedDraws: all %d draws exhausted", len(s.draws)))
	}
	d := s.draws[s.idx]
	s.idx++
	return d
}

// Used returns how many draws have been consumed.
func (s *ScriptedDraws) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Remaining returns how many draws are left.
func (s *ScriptedDraws) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.draws) - s.idx
}

// Reset rewinds the script to the first draw.
func (s *ScriptedDraws) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = 0
}
