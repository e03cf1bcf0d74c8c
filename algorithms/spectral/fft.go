package spectral

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer computes the unnormalized discrete Fourier transform of a
// complex sequence. Implementations must return coefficients in standard
// DFT order: bin 0 is the zero frequency, bins above n/2 are the negative
// frequencies.
//
// The abstraction exists so callers can swap FFT backends without touching
// the analysis code, and so tests can pin a backend for reproducibility.
// Implementations must be safe for concurrent use: an analysis session
// shares one Transformer across per-dimension extractions.
type Transformer interface {
	Transform(x []complex128) []complex128
}

// GoDSP is a Transformer backed by mjibson/go-dsp. It handles arbitrary
// (non-power-of-2) lengths.
type GoDSP struct{}

// NewGoDSP creates the default FFT backend
func NewGoDSP() *GoDSP {
	return &GoDSP{}
}

// Transform computes the DFT of x
func (g *GoDSP) Transform(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFT(x)
}

// Gonum is a Transformer backed by gonum's fourier package. A fresh plan
// is built per call: fourier.CmplxFFT carries internal scratch state, so
// sharing one across calls would make concurrent transforms unsafe.
type Gonum struct{}

// NewGonum creates a gonum-backed FFT backend
func NewGonum() *Gonum {
	return &Gonum{}
}

// Transform computes the DFT of x. It is safe for concurrent use.
func (g *Gonum) Transform(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	src := make([]complex128, len(x))
	copy(src, x)
	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, src)
}

// AngularFrequencies returns the angular frequency of each DFT bin for a
// length-n transform of samples spaced dt apart, in standard DFT order:
// omega[k] = 2π·k/(n·dt) for k < (n+1)/2, and 2π·(k-n)/(n·dt) above.
func AngularFrequencies(n int, dt float64) []float64 {
	omegas := make([]float64, n)
	scale := 2 * math.Pi / (float64(n) * dt)
	half := (n + 1) / 2
	for k := 0; k < half; k++ {
		omegas[k] = scale * float64(k)
	}
	for k := half; k < n; k++ {
		omegas[k] = scale * float64(k-n)
	}
	return omegas
}
