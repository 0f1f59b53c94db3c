package forecast

import (
	"math/rand/v2"
	"sync"
)

// NoiseSource yields uniform values in [0, 1).
type NoiseSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the process-wide generator, which is safe for
// concurrent use.
func DefaultSource() NoiseSource {
	return globalSource{}
}

// SeededSource is a reproducible NoiseSource that can be shared between
// goroutines.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource builds a PCG-backed source from seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// symmetric maps a uniform draw onto [-magnitude, +magnitude).
func symmetric(src NoiseSource, magnitude float64) float64 {
	return (src.Float64() - 0.5) * 2 * magnitude
}

// upward maps a uniform draw onto [0, magnitude).
func upward(src NoiseSource, magnitude float64) float64 {
	return src.Float64() * magnitude
}
