package optimize

import (
	"fmt"
	"math"
)

const (
	// StatusConverged indicates the minimizer met its tolerance
	StatusConverged = "converged"
	// StatusMaxIterations indicates the iteration cap was hit first
	StatusMaxIterations = "maximum iterations exceeded"
)

// Result holds the outcome of a bounded scalar minimization
type Result struct {
	X          float64 // Location of the minimum found
	F          float64 // Objective value at X
	Iterations int     // Iterations consumed
	Converged  bool    // Whether the tolerance was met
	Status     string  // Human-readable solver status
}

// Minimizer finds the minimum of a scalar function on a closed interval,
// optionally seeded with a starting point inside the interval.
// Non-convergence is reported through Result, not as an error, so callers
// can apply their own restart policy.
type Minimizer interface {
	Minimize(f func(float64) float64, lower, upper, start float64) (Result, error)
}

// Brent minimizes a scalar function on a bounded interval using Brent's
// method: golden-section search combined with successive parabolic
// interpolation. The bracket is seeded with the caller's starting point
// rather than the golden-section point, so a good warm start cuts the
// iteration count on well-behaved objectives.
type Brent struct {
	tolerance     float64
	maxIterations int
}

// NewBrent creates a minimizer with the given absolute position tolerance
// and iteration cap. Non-positive arguments fall back to 1e-8 and 500.
func NewBrent(tolerance float64, maxIterations int) *Brent {
	if tolerance <= 0 {
		tolerance = 1e-8
	}
	if maxIterations <= 0 {
		maxIterations = 500
	}
	return &Brent{
		tolerance:     tolerance,
		maxIterations: maxIterations,
	}
}

// Minimize searches [lower, upper] for a minimum of f starting from start.
// start is clamped into the interval. The returned Result always holds the
// best point seen, even when Converged is false.
func (b *Brent) Minimize(f func(float64) float64, lower, upper, start float64) (Result, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower >= upper {
		return Result{}, fmt.Errorf("optimize: invalid interval [%g, %g]", lower, upper)
	}
	if f == nil {
		return Result{}, fmt.Errorf("optimize: nil objective")
	}

	const goldenMean = 0.3819660112501051 // (3 - sqrt(5)) / 2
	sqrtEps := math.Sqrt(math.Nextafter(1, 2) - 1)

	a, bb := lower, upper
	xf := math.Min(math.Max(start, a), bb)

	// Two worst points of the current triple start out coincident with the
	// seed, exactly as if the seed were the golden-section point.
	fulc, nfc := xf, xf
	x := xf
	fx := f(x)
	ffulc, fnfc := fx, fx

	rat, e := 0.0, 0.0
	xm := 0.5 * (a + bb)
	tol1 := sqrtEps*math.Abs(xf) + b.tolerance/3
	tol2 := 2 * tol1

	iterations := 0
	for math.Abs(xf-xm) > tol2-0.5*(bb-a) {
		if iterations >= b.maxIterations {
			return Result{
				X:          xf,
				F:          fx,
				Iterations: iterations,
				Converged:  false,
				Status:     StatusMaxIterations,
			}, nil
		}

		golden := true
		if math.Abs(e) > tol1 {
			// Attempt a parabolic fit through the current triple.
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(bb-xf) {
				rat = p / q
				x = xf + rat
				if x-a < tol2 || bb-x < tol2 {
					rat = tol1 * signOrOne(xm-xf)
				}
			} else {
				golden = true
			}
		}

		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = bb - xf
			}
			rat = goldenMean * e
		}

		x = xf + signOrOne(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(x)
		iterations++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				bb = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				bb = x
			}
			switch {
			case fu <= fnfc || nfc == xf:
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			case fu <= ffulc || fulc == xf || fulc == nfc:
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + bb)
		tol1 = sqrtEps*math.Abs(xf) + b.tolerance/3
		tol2 = 2 * tol1
	}

	return Result{
		X:          xf,
		F:          fx,
		Iterations: iterations,
		Converged:  true,
		Status:     StatusConverged,
	}, nil
}

// signOrOne mirrors sign(x) but maps 0 to +1, so a zero step still moves
// by the minimum tolerance.
func signOrOne(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
