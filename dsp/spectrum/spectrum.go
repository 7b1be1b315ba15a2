package spectrum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

var errPartsMismatch = errors.New("spectrum real and imaginary parts must have same length")

// Spectrum holds the coefficients of a DFT as split real and imaginary parts.
// Both slices have the transform length.
type Spectrum struct {
	Real []float64
	Imag []float64
}

// New allocates a zeroed spectrum of n bins.
func New(n int) Spectrum {
	return Spectrum{
		Real: make([]float64, n),
		Imag: make([]float64, n),
	}
}

// FromBins splits interleaved complex bins into a Spectrum.
func FromBins(bins []complex128) Spectrum {
	s := New(len(bins))
	for i, c := range bins {
		s.Real[i] = real(c)
		s.Imag[i] = imag(c)
	}
	return s
}

// Len returns the bin count.
func (s Spectrum) Len() int { return len(s.Real) }

// At returns bin i as a complex value.
func (s Spectrum) At(i int) complex128 { return complex(s.Real[i], s.Imag[i]) }

// Bins returns the spectrum as a newly allocated []complex128.
func (s Spectrum) Bins() []complex128 {
	out := make([]complex128, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Validate checks that the real and imaginary parts line up.
func (s Spectrum) Validate() error {
	if len(s.Real) != len(s.Imag) {
		return fmt.Errorf("%w: %d != %d", errPartsMismatch, len(s.Real), len(s.Imag))
	}
	return nil
}

// Component selects which per-bin value of a spectrum is extracted.
type Component int

const (
	// ComponentReal is Re(X[k]).
	ComponentReal Component = iota
	// ComponentImag is Im(X[k]).
	ComponentImag
	// ComponentMagnitude is |X[k]|.
	ComponentMagnitude
	// ComponentPower is |X[k]|^2.
	ComponentPower
)

var componentNames = map[Component]string{
	ComponentReal:      "real",
	ComponentImag:      "imag",
	ComponentMagnitude: "magnitude",
	ComponentPower:     "power",
}

// String returns the canonical component name.
func (c Component) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// ParseComponent resolves a component name. Matching is case-insensitive and
// accepts the short aliases "re", "im", "mag" and "pow".
func ParseComponent(name string) (Component, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "real", "re":
		return ComponentReal, nil
	case "imag", "im", "imaginary":
		return ComponentImag, nil
	case "magnitude", "mag", "abs":
		return ComponentMagnitude, nil
	case "power", "pow":
		return ComponentPower, nil
	default:
		return 0, fmt.Errorf("unknown spectrum component %q", name)
	}
}

// Components lists the supported components in canonical order.
func Components() []Component {
	return []Component{ComponentReal, ComponentImag, ComponentMagnitude, ComponentPower}
}

// Values returns a new slice with the selected component of every bin.
func (s Spectrum) Values(c Component) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, s.Len())
	switch c {
	case ComponentReal:
		copy(out, s.Real)
	case ComponentImag:
		copy(out, s.Imag)
	case ComponentMagnitude:
		MagnitudeFromParts(out, s.Real, s.Imag)
	case ComponentPower:
		PowerFromParts(out, s.Real, s.Imag)
	default:
		return nil, fmt.Errorf("unknown spectrum component %d", int(c))
	}
	return out, nil
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	if len(dst) == 0 {
		return
	}
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	if len(dst) == 0 {
		return
	}
	vecmath.Power(dst, re, im)
}
