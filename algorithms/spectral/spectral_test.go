package spectral_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gusbeane/gala/algorithms/spectral"
)

// tone samples exp(i·omega·t) at n points spaced dt apart.
func tone(omega float64, n int, dt float64) []complex128 {
	f := make([]complex128, n)
	for i := range f {
		f[i] = cmplx.Exp(complex(0, omega*float64(i)*dt))
	}
	return f
}

// TestAngularFrequencies_EvenOdd checks the bin-to-frequency mapping
// against the standard DFT layout for even and odd lengths.
func TestAngularFrequencies_EvenOdd(t *testing.T) {
	got := spectral.AngularFrequencies(4, 0.5)
	want := []float64{0, math.Pi, -2 * math.Pi, -math.Pi}
	require.Len(t, got, 4)
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "even length bin %d", i)
	}

	got = spectral.AngularFrequencies(5, 1)
	want = []float64{0, 0.4 * math.Pi, 0.8 * math.Pi, -0.8 * math.Pi, -0.4 * math.Pi}
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "odd length bin %d", i)
	}
}

// TestTransformers_Agree runs both FFT backends on the same series and
// requires matching coefficients, so either can back the peak finder.
func TestTransformers_Agree(t *testing.T) {
	f := tone(0.7, 64, 0.25)
	for i := range f {
		f[i] += 0.3 * cmplx.Exp(complex(0, -1.9*float64(i)*0.25))
	}

	a := spectral.NewGoDSP().Transform(f)
	b := spectral.NewGonum().Transform(f)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.InDelta(t, real(a[i]), real(b[i]), 1e-9, "re bin %d", i)
		require.InDelta(t, imag(a[i]), imag(b[i]), 1e-9, "im bin %d", i)
	}
}

// TestPeakFinder_SingleTone requires the peak bin to land within one
// frequency bin of the true tone.
func TestPeakFinder_SingleTone(t *testing.T) {
	n, dt := 1024, 0.1
	omega := 0.581
	pf := spectral.NewPeakFinder(nil)

	peak, ok := pf.Strongest(tone(omega, n, dt), dt)
	require.True(t, ok, "a clean tone must produce a peak")

	binWidth := 2 * math.Pi / (float64(n) * dt)
	require.InDelta(t, omega, peak.Omega, binWidth, "peak must be within one bin of the tone")
}

// TestPeakFinder_NegativeFrequency checks that tones below zero map onto
// the negative half of the spectrum.
func TestPeakFinder_NegativeFrequency(t *testing.T) {
	n, dt := 1024, 0.1
	omega := -1.31
	pf := spectral.NewPeakFinder(spectral.NewGonum())

	peak, ok := pf.Strongest(tone(omega, n, dt), dt)
	require.True(t, ok)

	binWidth := 2 * math.Pi / (float64(n) * dt)
	require.InDelta(t, omega, peak.Omega, binWidth)
}

// TestPeakFinder_Degenerate covers the zero-real-peak early return used
// for planar/axial series.
func TestPeakFinder_Degenerate(t *testing.T) {
	pf := spectral.NewPeakFinder(nil)

	_, ok := pf.Strongest(make([]complex128, 64), 0.1)
	require.False(t, ok, "all-zero series has no frequency")

	// Constant purely imaginary series: all power in the DC bin with a
	// zero real part.
	f := make([]complex128, 64)
	for i := range f {
		f[i] = 2i
	}
	_, ok = pf.Strongest(f, 0.1)
	require.False(t, ok, "purely imaginary DC series is degenerate")
}

// TestPeakFinder_BadInput rejects too-short series and non-positive
// spacing.
func TestPeakFinder_BadInput(t *testing.T) {
	pf := spectral.NewPeakFinder(nil)

	_, ok := pf.Strongest([]complex128{1}, 0.1)
	require.False(t, ok)
	_, ok = pf.Strongest(tone(1, 16, 0.1), 0)
	require.False(t, ok)
}
