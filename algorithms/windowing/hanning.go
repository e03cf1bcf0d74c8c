package windowing

import (
	"fmt"
	"math"
)

// Hanning evaluates the Hanning-type analysis window 1 + cos(x).
//
// Note this is the unnormalized form used by frequency-map analysis, not
// the 0.5*(1-cos) window common in audio work: it peaks at 2 for x=0 and
// tapers to 0 at x = ±π.
func Hanning(x float64) float64 {
	return 1 + math.Cos(x)
}

// Filter holds precomputed Hanning weights over a centered time grid
type Filter struct {
	halfSpan float64
	weights  []float64
}

// NewFilter creates a filter with weights chi[i] = 1 + cos(tz[i]*π/T) for
// centered times tz spanning [-T, T]. halfSpan must be positive.
func NewFilter(tz []float64, halfSpan float64) (*Filter, error) {
	if halfSpan <= 0 {
		return nil, fmt.Errorf("windowing: half span must be > 0, got %g", halfSpan)
	}

	f := &Filter{
		halfSpan: halfSpan,
		weights:  make([]float64, len(tz)),
	}
	for i, t := range tz {
		f.weights[i] = Hanning(t * math.Pi / halfSpan)
	}
	return f, nil
}

// At returns the weight for sample i
func (f *Filter) At(i int) float64 {
	return f.weights[i]
}

// Len returns the number of samples
func (f *Filter) Len() int {
	return len(f.weights)
}

// Weights returns a copy of the precomputed weights
func (f *Filter) Weights() []float64 {
	w := make([]float64, len(f.weights))
	copy(w, f.weights)
	return w
}

// Apply multiplies a real signal by the window weights (creates new array)
func (f *Filter) Apply(signal []float64) []float64 {
	if len(signal) != len(f.weights) {
		return nil
	}

	windowed := make([]float64, len(signal))
	for i := range signal {
		windowed[i] = signal[i] * f.weights[i]
	}
	return windowed
}

// ApplyComplex multiplies a complex signal by the window weights
func (f *Filter) ApplyComplex(signal []complex128) []complex128 {
	if len(signal) != len(f.weights) {
		return nil
	}

	windowed := make([]complex128, len(signal))
	for i := range signal {
		windowed[i] = signal[i] * complex(f.weights[i], 0)
	}
	return windowed
}
