package naff

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/gusbeane/gala/logging"
)

// flatObjectiveTol marks the refinement objective as degenerate when every
// warm-start grid sample is this close to zero.
const flatObjectiveTol = 1e-10

// StrongestFrequency finds the most significant frequency of a complex
// time series q(t) + i·p(t) aligned with the session grid.
//
// A coarse estimate ω0 comes from the periodogram peak; the estimate is
// then refined by maximizing the magnitude of the Hanning-windowed
// real-part projection
//
//	φ(ω) = |∫ χ(t) (x(t) cos ωt + y(t) sin ωt) dt| / (2T)
//
// over the window [ω0-π/T, ω0+π/T], normalized to [0,1] for the bounded
// minimizer. A 50-point grid scan supplies the warm start; if the
// minimizer fails to converge it is restarted once from the window
// midpoint with a larger iteration cap, and a second failure surfaces as
// *RefinementError.
//
// A zero return with nil error is the degenerate planar/axial case: the
// periodogram has no usable peak and no refinement is attempted.
func (s *Session) StrongestFrequency(f []complex128) (float64, error) {
	if len(f) != len(s.t) {
		return 0, ErrSeriesLength
	}

	peak, ok := s.peaks.Strongest(f, s.dt)
	if !ok {
		// likely an axial or planar orbit
		return 0, nil
	}

	omin := peak.Omega - math.Pi/s.T
	omax := peak.Omega + math.Pi/s.T
	span := omax - omin

	n := len(f)
	xf := make([]float64, n)
	yf := make([]float64, n)
	for i, c := range f {
		xf[i] = real(c)
		yf[i] = imag(c)
	}

	integ := make([]float64, n)
	phi := func(w float64) float64 {
		omega := omin + w*span
		for i, tzi := range s.tz {
			sin, cos := math.Sincos(omega * tzi)
			integ[i] = s.chi.At(i) * (xf[i]*cos + yf[i]*sin)
		}
		ans := integrate.Simpsons(s.tz, integ)
		return -math.Abs(ans / (2 * s.T))
	}

	// Coarse scan for the warm start.
	vals := make([]float64, s.cfg.GridPoints)
	step := 1 / float64(s.cfg.GridPoints-1)
	flat := true
	for i := range vals {
		vals[i] = phi(float64(i) * step)
		if math.Abs(vals[i]) >= flatObjectiveTol {
			flat = false
		}
	}

	start := 0.5
	if !flat {
		start = float64(floats.MinIdx(vals)) * step
	}

	res, err := s.minim.Minimize(phi, 0, 1, start)
	if err != nil {
		return 0, err
	}

	if !res.Converged {
		// failed by starting at the grid minimum, try the window midpoint
		s.logger.Debug("frequency refinement restarting from midpoint",
			logging.Fields{"status": res.Status, "iterations": res.Iterations})
		res, err = s.retry.Minimize(phi, 0, 1, 0.5)
		if err != nil {
			return 0, err
		}
	}

	if !res.Converged {
		return 0, &RefinementError{Status: res.Status, Iterations: res.Iterations}
	}

	return omin + res.X*span, nil
}
