// Package spectrum holds DFT results as split real/imaginary parts.
//
// The package does not compute transforms itself; see package transform for
// the FFT backends that produce a [Spectrum]. It provides the bin container,
// component extraction (real, imaginary, magnitude, power) and conversions to
// and from interleaved complex bins.
package spectrum
