package transform

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
)

var (
	// ErrEmptyInput is returned when transforming zero samples or bins.
	ErrEmptyInput = errors.New("transform: input must not be empty")
	// ErrUnknownBackend is returned by New for unregistered names.
	ErrUnknownBackend = errors.New("transform: unknown backend")
	// ErrUnsupportedLength is returned when a backend cannot handle a length.
	ErrUnsupportedLength = errors.New("transform: unsupported length")
)

func validateSignal(x []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	return nil
}

func validateSpectrum(s spectrum.Spectrum) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if s.Len() == 0 {
		return ErrEmptyInput
	}
	return nil
}
