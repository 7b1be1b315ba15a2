// Package transform computes forward and inverse discrete Fourier transforms
// of real-valued signals.
//
// Several FFT implementations sit behind the [Backend] interface so callers can
// pick one by name:
//
//	algofft  power-of-two lengths, github.com/MeKo-Christian/algo-fft
//	gonum    any length, gonum.org/v1/gonum/dsp/fourier
//	godsp    any length, github.com/mjibson/go-dsp/fft
//	direct   any length, O(n^2) evaluation of the DFT sum
//	auto     algofft for power-of-two lengths, gonum otherwise
//
// Forward transforms are unnormalized, X[k] = sum_t x[t]*exp(-2*pi*i*k*t/n).
// Inverse transforms carry the 1/n factor so Inverse(Forward(x)) reproduces x.
package transform
