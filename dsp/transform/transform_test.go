package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tonefft/dsp/spectrum"
	"github.com/cwbudde/algo-tonefft/internal/testutil"
)

func anyLengthBackends() []Backend {
	return []Backend{Auto{}, Gonum{}, GoDSP{}, Direct{}}
}

func allBackends() []Backend {
	return append(anyLengthBackends(), AlgoFFT{})
}

func TestBackendsMatchDirect(t *testing.T) {
	for _, n := range []int{1, 2, 8, 1024} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		want, err := Direct{}.Forward(x)
		if err != nil {
			t.Fatalf("Direct.Forward(n=%d) error: %v", n, err)
		}

		for _, b := range allBackends() {
			t.Run(b.Name(), func(t *testing.T) {
				got, err := b.Forward(x)
				if err != nil {
					t.Fatalf("Forward(n=%d) error: %v", n, err)
				}
				testutil.RequireSliceClose(t, got.Real, want.Real, 1e-9)
				testutil.RequireSliceClose(t, got.Imag, want.Imag, 1e-9)
			})
		}
	}
}

func TestNonPowerOfTwoLengths(t *testing.T) {
	for _, n := range []int{3, 12, 100} {
		x := testutil.DeterministicNoise(7, 2, n)
		want, err := Direct{}.Forward(x)
		if err != nil {
			t.Fatalf("Direct.Forward(n=%d) error: %v", n, err)
		}

		for _, b := range anyLengthBackends() {
			got, err := b.Forward(x)
			if err != nil {
				t.Fatalf("%s.Forward(n=%d) error: %v", b.Name(), n, err)
			}
			testutil.RequireSliceClose(t, got.Real, want.Real, 1e-9)
			testutil.RequireSliceClose(t, got.Imag, want.Imag, 1e-9)
		}

		if _, err := (AlgoFFT{}).Forward(x); !errors.Is(err, ErrUnsupportedLength) {
			t.Fatalf("AlgoFFT.Forward(n=%d) err=%v, want ErrUnsupportedLength", n, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	x := testutil.ReferenceMultitone([]float64{math.Pi, math.Pi / 2, 2 * math.Pi}, 1, 0.1, 1024)

	for _, b := range allBackends() {
		t.Run(b.Name(), func(t *testing.T) {
			s, err := b.Forward(x)
			if err != nil {
				t.Fatalf("Forward error: %v", err)
			}
			back, err := b.Inverse(s)
			if err != nil {
				t.Fatalf("Inverse error: %v", err)
			}
			diff, err := testutil.MaxAbsDiff(back, x)
			if err != nil {
				t.Fatalf("MaxAbsDiff error: %v", err)
			}
			if diff > 1e-9 {
				t.Fatalf("round-trip max error %g > 1e-9", diff)
			}
		})
	}
}

func TestImpulseIsFlat(t *testing.T) {
	for _, b := range allBackends() {
		s, err := b.Forward(testutil.Impulse(16, 0))
		if err != nil {
			t.Fatalf("%s.Forward error: %v", b.Name(), err)
		}
		testutil.RequireSliceNearlyEqual(t, s.Real, testutil.DC(1, 16), 1e-12)
		testutil.RequireSliceNearlyEqual(t, s.Imag, testutil.DC(0, 16), 1e-12)
	}
}

func TestZeroSignal(t *testing.T) {
	for _, b := range allBackends() {
		s, err := b.Forward(make([]float64, 4))
		if err != nil {
			t.Fatalf("%s.Forward error: %v", b.Name(), err)
		}
		if s.Len() != 4 {
			t.Fatalf("%s: len=%d want=4", b.Name(), s.Len())
		}
		if s.Real[0] != 0 {
			t.Fatalf("%s: real[0]=%v want=0", b.Name(), s.Real[0])
		}
	}
}

func TestDCBinIsSum(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	for _, b := range allBackends() {
		s, err := b.Forward(x)
		if err != nil {
			t.Fatalf("%s.Forward error: %v", b.Name(), err)
		}
		if math.Abs(s.Real[0]-36) > 1e-12 || math.Abs(s.Imag[0]) > 1e-12 {
			t.Fatalf("%s: X[0]=%v want=36", b.Name(), s.At(0))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, b := range allBackends() {
		if _, err := b.Forward(nil); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%s.Forward(nil) err=%v, want ErrEmptyInput", b.Name(), err)
		}
		if _, err := b.Inverse(spectrum.Spectrum{}); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%s.Inverse(empty) err=%v, want ErrEmptyInput", b.Name(), err)
		}
	}
}

func TestInverseMismatchedParts(t *testing.T) {
	bad := spectrum.Spectrum{Real: []float64{1, 2}, Imag: []float64{0}}
	for _, b := range allBackends() {
		if _, err := b.Inverse(bad); err == nil {
			t.Fatalf("%s.Inverse: expected error for mismatched parts", b.Name())
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		b, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error: %v", name, err)
		}
		if b.Name() != name {
			t.Fatalf("New(%q).Name()=%q", name, b.Name())
		}
	}

	b, err := New("")
	if err != nil || b.Name() != NameAuto {
		t.Fatalf("New(\"\")=%v,%v want auto", b, err)
	}

	if _, err := New(" GoNum "); err != nil {
		t.Fatalf("New is expected to normalize names: %v", err)
	}

	if _, err := New("fftw"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("New(fftw) err=%v, want ErrUnknownBackend", err)
	}
}

func TestAutoResolve(t *testing.T) {
	if got := (Auto{}).Resolve(1024).Name(); got != NameAlgoFFT {
		t.Fatalf("Resolve(1024)=%s want=%s", got, NameAlgoFFT)
	}
	if got := (Auto{}).Resolve(1000).Name(); got != NameGonum {
		t.Fatalf("Resolve(1000)=%s want=%s", got, NameGonum)
	}
}
