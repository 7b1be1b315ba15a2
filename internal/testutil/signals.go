package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ReferenceMultitone evaluates sum_j amplitude*sin(dt*i*freqs[j]) sample by
// sample, without any buffering, for comparison against optimized paths.
func ReferenceMultitone(freqs []float64, amplitude, dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		for _, f := range freqs {
			out[i] += amplitude * math.Sin(dt*float64(i)*f)
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
