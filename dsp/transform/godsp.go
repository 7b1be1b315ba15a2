package transform

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
)

// GoDSP transforms any length with mjibson/go-dsp.
type GoDSP struct{}

// Name implements Backend.
func (GoDSP) Name() string { return NameGoDSP }

// Forward implements Backend.
func (GoDSP) Forward(x []float64) (spectrum.Spectrum, error) {
	if err := validateSignal(x); err != nil {
		return spectrum.Spectrum{}, err
	}
	return spectrum.FromBins(fft.FFTReal(x)), nil
}

// Inverse implements Backend.
func (GoDSP) Inverse(s spectrum.Spectrum) ([]float64, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}
	return realParts(fft.IFFT(s.Bins()), 1), nil
}
