package naff

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/integrate"

	"github.com/gusbeane/gala/algorithms/optimize"
	"github.com/gusbeane/gala/algorithms/spectral"
	"github.com/gusbeane/gala/algorithms/windowing"
	"github.com/gusbeane/gala/logging"
)

// Session owns the time grid and Hanning weights for one analysis run.
// It is immutable after construction and safe to share across concurrent
// per-dimension extractions.
type Session struct {
	t  []float64 // sample times
	ts float64   // midpoint (t[0]+t[n-1])/2
	T  float64   // half span (t[n-1]-t[0])/2
	tz []float64 // centered times t[i]-ts
	dt float64   // nominal sample spacing

	chi    *windowing.Filter
	peaks  *spectral.PeakFinder
	minim  optimize.Minimizer
	retry  optimize.Minimizer
	logger logging.Logger
	cfg    Config
}

// NewSession creates an analysis session over the given sample times with
// the default configuration.
func NewSession(t []float64) (*Session, error) {
	return NewSessionWithConfig(t, DefaultConfig())
}

// NewSessionWithConfig creates an analysis session over the given sample
// times. The grid must hold at least 9 strictly increasing samples and is
// assumed close to uniform; even-length grids are accepted since the
// composite Simpson quadrature used for the inner product handles them.
func NewSessionWithConfig(t []float64, cfg Config) (*Session, error) {
	if len(t) < 9 {
		return nil, ErrShortSeries
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return nil, ErrNonIncreasingTimes
		}
	}
	cfg = cfg.withDefaults()

	s := &Session{
		t:   append([]float64(nil), t...),
		ts:  0.5 * (t[len(t)-1] + t[0]),
		T:   0.5 * (t[len(t)-1] - t[0]),
		dt:  t[1] - t[0],
		cfg: cfg,
	}

	s.tz = make([]float64, len(t))
	for i, ti := range t {
		s.tz[i] = ti - s.ts
	}

	chi, err := windowing.NewFilter(s.tz, s.T)
	if err != nil {
		return nil, err
	}
	s.chi = chi

	s.peaks = spectral.NewPeakFinder(cfg.Transformer)
	s.minim = cfg.Minimizer
	if s.minim == nil {
		s.minim = optimize.NewBrent(cfg.Tolerance, cfg.MaxIterations)
	}
	s.retry = cfg.Retry
	if s.retry == nil {
		s.retry = optimize.NewBrent(cfg.Tolerance, cfg.RetryIterations)
	}
	s.logger = cfg.Logger
	if s.logger == nil {
		s.logger = logging.GetGlobalLogger()
	}

	return s, nil
}

// Times returns a copy of the sample times
func (s *Session) Times() []float64 {
	return append([]float64(nil), s.t...)
}

// HalfSpan returns T = (t[n-1]-t[0])/2
func (s *Session) HalfSpan() float64 {
	return s.T
}

// Len returns the number of samples in the grid
func (s *Session) Len() int {
	return len(s.t)
}

// InnerProduct computes the Hanning-weighted scalar product
//
//	<u1, u2> = 1/(2T) ∫ u1(t) χ(t) conj(u2(t)) dt
//
// over the centered time grid, integrating the real and imaginary parts of
// the integrand separately by composite Simpson quadrature. The product is
// conjugate symmetric: <u1,u2> = conj(<u2,u1>).
func (s *Session) InnerProduct(u1, u2 []complex128) (complex128, error) {
	n := len(s.t)
	if len(u1) != n || len(u2) != n {
		return 0, ErrSeriesLength
	}

	integR := make([]float64, n)
	integI := make([]float64, n)
	for i := range u1 {
		z := u1[i] * cmplx.Conj(u2[i]) * complex(s.chi.At(i), 0)
		integR[i] = real(z)
		integI[i] = imag(z)
	}

	re := integrate.Simpsons(s.tz, integR) / (2 * s.T)
	im := integrate.Simpsons(s.tz, integI) / (2 * s.T)
	return complex(re, im), nil
}

// exponential builds the raw basis candidate exp(i·ν·t) over the sample
// times. Note the uncentered times: the phase reference of extracted
// components is t=0, not the grid midpoint.
func (s *Session) exponential(nu float64) []complex128 {
	e := make([]complex128, len(s.t))
	for i, ti := range s.t {
		sin, cos := math.Sincos(nu * ti)
		e[i] = complex(cos, sin)
	}
	return e
}
