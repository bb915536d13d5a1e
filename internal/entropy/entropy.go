// Package entropy provides the randomness source behind every probability
// roll in the game. Sessions take a Source so playthroughs are reproducible
// from a seed, and tests can script exact roll sequences.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Source yields uniform random values. Implementations need not be safe for
// concurrent use; a session owns its source.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// NewSeeded returns a deterministic Source from a seed.
func NewSeeded(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

type seeded struct {
	rng *rand.Rand
}

func (s *seeded) Float64() float64 { return s.rng.Float64() }
func (s *seeded) IntN(n int) int   { return s.rng.Intn(n) }

// NewSystem returns a Source seeded from the operating system, for real play.
func NewSystem() Source {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// Extremely unlikely; fall back to a fixed seed rather than fail.
		return NewSeeded(1)
	}
	return NewSeeded(int64(binary.LittleEndian.Uint64(buf[:])))
}

// Script is a Source that replays a fixed sequence of float rolls, falling
// back to a seeded source when the sequence runs out. IntN consumes one roll.
// Intended for tests that need to force specific outcomes.
type Script struct {
	mu       sync.Mutex
	rolls    []float64
	fallback Source
}

// NewScript builds a scripted source from the given rolls.
func NewScript(rolls ...float64) *Script {
	return &Script{rolls: rolls, fallback: NewSeeded(0)}
}

// Push appends more rolls to the script.
func (s *Script) Push(rolls ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, rolls...)
}

func (s *Script) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rolls) == 0 {
		return s.fallback.Float64()
	}
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v
}

func (s *Script) IntN(n int) int {
	v := s.Float64()
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
