// Package weather models overnight rain across the work week. Instead of an
// independent coin flip per night, a seeded simplex-noise curve gives the week
// a coherent wet or dry character while keeping the long-run rain rate near
// one night in four.
package weather

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// rainThreshold was tuned against the noise distribution so that roughly 25%
// of sampled nights land above it.
const rainThreshold = 0.38

// Week holds the rain curve for one play week.
type Week struct {
	noise opensimplex.Noise
	seed  int64
}

// NewWeek builds the rain model for a session seed.
func NewWeek(seed int64) *Week {
	return &Week{noise: opensimplex.New(seed), seed: seed}
}

// Intensity returns the rain intensity in [0, 1] for the night leading into
// the given day index (0 = the night before Monday).
func (w *Week) Intensity(day int) float64 {
	// Sample a slowly-varying 1D slice of the 2D noise field.
	v := w.noise.Eval2(float64(day)*0.9, 0.5)
	return (v + 1) / 2
}

// RainedOvernight reports whether it rained in the night leading into day.
func (w *Week) RainedOvernight(day int) bool {
	return w.Intensity(day) > 1-rainThreshold
}
