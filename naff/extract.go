package naff

import (
	"math"
	"math/cmplx"

	"github.com/gusbeane/gala/logging"
)

// Status is the terminal state of an extraction run
type Status int

const (
	// StatusConverged means the residual or component amplitude dropped
	// below the break threshold
	StatusConverged Status = iota
	// StatusExhausted means the requested number of components was
	// extracted without meeting the break threshold
	StatusExhausted
	// StatusFailed means a frequency refinement failed; the accompanying
	// error carries the solver status
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusExhausted:
		return "exhausted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Component is one extracted term of the decomposition.
//
// Frequency is stored as the negative of the search frequency, matching
// the FRECODER convention of the original NAFF routines. Downstream
// selection depends on this sign, so it is part of the contract;
// BuildComponentTable restores the physical sign.
type Component struct {
	Frequency float64    `json:"freq"`
	Amplitude complex128 `json:"-"`
	Magnitude float64    `json:"amp"`
	Phase     float64    `json:"phi"`
}

// Result is the outcome of one per-series extraction run
type Result struct {
	Components []Component
	Status     Status
}

// Extract iteratively decomposes a complex time series q(t) + i·p(t) into
// at most maxComponents frequency components: locate the strongest
// frequency of the current residual, orthogonalize its exponential against
// the components already found, project to get the complex amplitude, and
// subtract.
//
// Iteration stops early (StatusConverged) once the residual peak amplitude
// or the component amplitude drops below breakThreshold; a threshold <= 0
// always runs the full maxComponents iterations (StatusExhausted). A
// refinement failure aborts the run with StatusFailed and the components
// found so far.
func (s *Session) Extract(f []complex128, maxComponents int, breakThreshold float64) (Result, error) {
	if len(f) != len(s.t) {
		return Result{}, ErrSeriesLength
	}
	if maxComponents < 1 {
		maxComponents = 1
	}

	fk := make([]complex128, len(f))
	copy(fk, f)

	basis := NewBasis(maxComponents)
	components := make([]Component, 0, maxComponents)

	for k := 0; k < maxComponents; k++ {
		nu, err := s.StrongestFrequency(fk)
		if err != nil {
			return Result{Components: components, Status: StatusFailed}, err
		}

		if err := s.Orthonormalize(basis, nu); err != nil {
			return Result{Components: components, Status: StatusFailed}, err
		}
		ek := basis.Vector(k)

		// Complex amplitude from projecting the residual onto e_k.
		a, err := s.InnerProduct(fk, ek)
		if err != nil {
			return Result{Components: components, Status: StatusFailed}, err
		}
		amp := cmplx.Abs(a)
		phase := math.Atan2(imag(a), real(a))

		// Subtract the component and find the residual peak amplitude.
		fmax := 0.0
		for i := range fk {
			fk[i] -= a * ek[i]
			if m := cmplx.Abs(fk[i]); m > fmax {
				fmax = m
			}
		}

		components = append(components, Component{
			Frequency: -nu,
			Amplitude: a,
			Magnitude: amp,
			Phase:     phase,
		})

		s.logger.Debug("extracted component", logging.Fields{
			"k":     k,
			"omega": nu,
			"amp":   amp,
			"phase": phase,
			"fmax":  fmax,
		})

		if breakThreshold > 0 && (fmax < breakThreshold || amp < breakThreshold) {
			return Result{Components: components, Status: StatusConverged}, nil
		}
	}

	return Result{Components: components, Status: StatusExhausted}, nil
}
