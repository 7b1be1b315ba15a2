package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-tonefft/dsp/core"
	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
)

// AlgoFFT transforms power-of-two lengths with algo-fft plans.
type AlgoFFT struct{}

// Name implements Backend.
func (AlgoFFT) Name() string { return NameAlgoFFT }

// Forward implements Backend.
func (AlgoFFT) Forward(x []float64) (spectrum.Spectrum, error) {
	if err := validateSignal(x); err != nil {
		return spectrum.Spectrum{}, err
	}
	if len(x) == 1 {
		return spectrum.FromBins([]complex128{complex(x[0], 0)}), nil
	}

	plan, err := newPlan(len(x))
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, realToComplex(x)); err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("transform: algofft forward: %w", err)
	}
	return spectrum.FromBins(out), nil
}

// Inverse implements Backend.
func (AlgoFFT) Inverse(s spectrum.Spectrum) ([]float64, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}
	if s.Len() == 1 {
		return []float64{s.Real[0]}, nil
	}

	plan, err := newPlan(s.Len())
	if err != nil {
		return nil, err
	}

	out := make([]complex128, s.Len())
	if err := plan.Inverse(out, s.Bins()); err != nil {
		return nil, fmt.Errorf("transform: algofft inverse: %w", err)
	}
	return realParts(out, 1), nil
}

func newPlan(n int) (*algofft.Plan[complex128], error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: algofft requires a power of two: %d", ErrUnsupportedLength, n)
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}
	return plan, nil
}
