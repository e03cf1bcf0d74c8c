package naff

import (
	"errors"
	"fmt"
)

var (
	// ErrShortSeries reports a time grid with too few samples for stable
	// quadrature
	ErrShortSeries = errors.New("naff: time grid needs at least 9 samples")

	// ErrNonIncreasingTimes reports an unordered time grid
	ErrNonIncreasingTimes = errors.New("naff: sample times must be strictly increasing")

	// ErrSeriesLength reports a series not aligned with the time grid
	ErrSeriesLength = errors.New("naff: series length does not match time grid")

	// ErrDimensionCount reports an unsupported number of spatial dimensions
	ErrDimensionCount = errors.New("naff: analysis supports 1 to 3 dimensions")
)

// RefinementError reports that the bounded minimizer failed to converge
// while refining a frequency estimate, on both the warm-started attempt
// and the midpoint restart. It carries the solver status for diagnostics.
type RefinementError struct {
	Status     string
	Iterations int
}

func (e *RefinementError) Error() string {
	return fmt.Sprintf("naff: frequency refinement failed to converge after %d iterations: %s",
		e.Iterations, e.Status)
}

// MissingFundamentalError reports that fundamental selection could not
// assign one frequency to every source dimension.
type MissingFundamentalError struct {
	Dims []int // source dimensions actually covered
}

func (e *MissingFundamentalError) Error() string {
	return fmt.Sprintf("naff: cannot form a full fundamental set, only dimensions %v covered", e.Dims)
}
