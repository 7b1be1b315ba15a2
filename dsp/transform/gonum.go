package transform

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
)

// Gonum transforms any length with gonum's complex FFT.
type Gonum struct{}

// Name implements Backend.
func (Gonum) Name() string { return NameGonum }

// Forward implements Backend.
func (Gonum) Forward(x []float64) (spectrum.Spectrum, error) {
	if err := validateSignal(x); err != nil {
		return spectrum.Spectrum{}, err
	}
	fft := fourier.NewCmplxFFT(len(x))
	return spectrum.FromBins(fft.Coefficients(nil, realToComplex(x))), nil
}

// Inverse implements Backend.
func (Gonum) Inverse(s spectrum.Spectrum) ([]float64, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}
	// Sequence is unnormalized.
	fft := fourier.NewCmplxFFT(s.Len())
	seq := fft.Sequence(nil, s.Bins())
	return realParts(seq, 1/float64(s.Len())), nil
}
