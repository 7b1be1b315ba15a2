package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-tonefft/dsp/core"
	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
)

// Backend names accepted by New.
const (
	NameAuto    = "auto"
	NameAlgoFFT = "algofft"
	NameGonum   = "gonum"
	NameGoDSP   = "godsp"
	NameDirect  = "direct"
)

// Backend is a DFT implementation for real-valued signals.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string
	// Forward returns the full n-bin spectrum of x.
	Forward(x []float64) (spectrum.Spectrum, error)
	// Inverse returns the real part of the normalized inverse transform of s.
	Inverse(s spectrum.Spectrum) ([]float64, error)
}

var registry = map[string]func() Backend{
	NameAuto:    func() Backend { return Auto{} },
	NameAlgoFFT: func() Backend { return AlgoFFT{} },
	NameGonum:   func() Backend { return Gonum{} },
	NameGoDSP:   func() Backend { return GoDSP{} },
	NameDirect:  func() Backend { return Direct{} },
}

// New resolves a backend by name. The empty name selects auto.
func New(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = NameAuto
	}
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return ctor(), nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Auto dispatches to AlgoFFT for power-of-two lengths and Gonum otherwise.
type Auto struct{}

// Name implements Backend.
func (Auto) Name() string { return NameAuto }

// Forward implements Backend.
func (a Auto) Forward(x []float64) (spectrum.Spectrum, error) {
	return a.pick(len(x)).Forward(x)
}

// Inverse implements Backend.
func (a Auto) Inverse(s spectrum.Spectrum) ([]float64, error) {
	return a.pick(s.Len()).Inverse(s)
}

// Resolve returns the concrete backend Auto uses for length n.
func (a Auto) Resolve(n int) Backend {
	return a.pick(n)
}

func (Auto) pick(n int) Backend {
	if core.IsPowerOfTwo(n) {
		return AlgoFFT{}
	}
	return Gonum{}
}

func realToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

func realParts(in []complex128, scale float64) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = real(c) * scale
	}
	return out
}
