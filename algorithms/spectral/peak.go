package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Peak is the strongest line of a periodogram
type Peak struct {
	Omega float64 // Angular frequency of the peak bin
	Index int     // DFT bin index
}

// PeakFinder locates the strongest frequency of a complex time series by a
// coarse periodogram search. The result is accurate to one frequency bin
// and is meant as the starting guess for a refinement step.
type PeakFinder struct {
	transformer Transformer
}

// NewPeakFinder creates a peak finder using the given FFT backend.
// A nil transformer selects the go-dsp backend.
func NewPeakFinder(transformer Transformer) *PeakFinder {
	if transformer == nil {
		transformer = NewGoDSP()
	}
	return &PeakFinder{transformer: transformer}
}

// Strongest returns the bin-resolution frequency estimate for a complex
// series sampled dt apart. The transform is scaled by 1/√n and the real
// and imaginary parts are sign-corrected by (-1)^k, which compensates for
// analyzing the series on a time grid centered about its midpoint.
//
// The second return value is false when the real part of the winning bin
// is exactly zero. That is the degenerate planar/axial case: the series
// carries no usable frequency and the caller should treat the estimate as
// "none found" rather than an error.
func (p *PeakFinder) Strongest(f []complex128, dt float64) (Peak, bool) {
	ndata := len(f)
	if ndata < 2 || dt <= 0 {
		return Peak{}, false
	}

	fff := p.transformer.Transform(f)
	omegas := AngularFrequencies(ndata, dt)

	scale := 1 / math.Sqrt(float64(ndata))
	amp := 1 / math.Sqrt(float64(ndata)-1)

	xf := make([]float64, ndata)
	yf := make([]float64, ndata)
	envelope := make([]float64, ndata)
	sign := 1.0
	for k, c := range fff {
		xf[k] = amp * real(c) * scale * sign
		yf[k] = amp * imag(c) * scale * sign
		envelope[k] = math.Max(math.Abs(xf[k]), math.Abs(yf[k]))
		sign = -sign
	}

	wmax := floats.MaxIdx(envelope)
	if xf[wmax] == 0 {
		return Peak{}, false
	}

	return Peak{Omega: omegas[wmax], Index: wmax}, true
}
