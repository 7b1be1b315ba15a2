package transform

import (
	"math"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
)

// Direct evaluates the DFT sum bin by bin in O(n^2).
//
// Twiddle factors come from a table indexed by (k*t) mod n, so each bin sees
// exactly the same rounding as the table and errors do not grow with k*t.
type Direct struct{}

// Name implements Backend.
func (Direct) Name() string { return NameDirect }

// Forward implements Backend.
func (Direct) Forward(x []float64) (spectrum.Spectrum, error) {
	if err := validateSignal(x); err != nil {
		return spectrum.Spectrum{}, err
	}

	n := len(x)
	cos, sin := twiddles(n)
	out := spectrum.New(n)
	for k := range n {
		var re, im float64
		for t, v := range x {
			idx := (k * t) % n
			re += v * cos[idx]
			im -= v * sin[idx]
		}
		out.Real[k] = re
		out.Imag[k] = im
	}
	return out, nil
}

// Inverse implements Backend.
func (Direct) Inverse(s spectrum.Spectrum) ([]float64, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}

	n := s.Len()
	cos, sin := twiddles(n)
	out := make([]float64, n)
	scale := 1 / float64(n)
	for t := range n {
		var acc float64
		for k := range n {
			idx := (k * t) % n
			acc += s.Real[k]*cos[idx] - s.Imag[k]*sin[idx]
		}
		out[t] = acc * scale
	}
	return out, nil
}

func twiddles(n int) (cos, sin []float64) {
	cos = make([]float64, n)
	sin = make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range n {
		sin[i], cos[i] = math.Sincos(step * float64(i))
	}
	return cos, sin
}
