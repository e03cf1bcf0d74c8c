package naff

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/gusbeane/gala/logging"
)

// FrequencyAnalysis bundles the outputs of a full multi-dimensional run
type FrequencyAnalysis struct {
	Fundamentals FundamentalSet  // one per source dimension
	Table        ComponentTable  // all components, sorted by magnitude
	Vectors      []IntegerVector // integer combination per table row
	Results      []Result        // per-dimension extraction results
}

// FindFundamentalFrequencies runs the full NAFF pipeline on one complex
// series per spatial dimension (1 to 3): extract components from each
// series, flatten them into a magnitude-sorted table, select one
// fundamental frequency per dimension, and fit integer vectors against
// the fundamentals.
//
// With Config.Concurrent the per-dimension extractions run on separate
// goroutines; results are slotted by dimension index, so the table order
// and every downstream selection are identical to the sequential run.
func (s *Session) FindFundamentalFrequencies(fs [][]complex128) (*FrequencyAnalysis, error) {
	ndim := len(fs)
	if ndim < 1 || ndim > 3 {
		return nil, ErrDimensionCount
	}

	results := make([]Result, ndim)
	errs := make([]error, ndim)

	if s.cfg.Concurrent {
		var wg sync.WaitGroup
		for dim, f := range fs {
			wg.Add(1)
			go func(dim int, f []complex128) {
				defer wg.Done()
				results[dim], errs[dim] = s.Extract(f, s.cfg.MaxComponents, s.cfg.BreakThreshold)
			}(dim, f)
		}
		wg.Wait()
	} else {
		for dim, f := range fs {
			results[dim], errs[dim] = s.Extract(f, s.cfg.MaxComponents, s.cfg.BreakThreshold)
		}
	}

	for dim := 0; dim < ndim; dim++ {
		if errs[dim] != nil {
			return nil, errs[dim]
		}
	}

	perDim := make([][]Component, ndim)
	for dim, res := range results {
		perDim[dim] = res.Components
	}
	table := BuildComponentTable(perDim)

	if len(table) > 0 {
		mags := make([]float64, len(table))
		for i, row := range table {
			mags[i] = row.Magnitude
		}
		s.logger.Debug("component table built", logging.Fields{
			"rows":     len(table),
			"mean_amp": stat.Mean(mags, nil),
			"std_amp":  stat.StdDev(mags, nil),
		})
	}

	selector := NewSelector(s.cfg.MinFrequency, s.cfg.DistinctTolerance)
	fundamentals, err := selector.Select(table, ndim)
	if err != nil {
		return nil, err
	}

	return &FrequencyAnalysis{
		Fundamentals: fundamentals,
		Table:        table,
		Vectors:      FitIntegerVectors(fundamentals, table, s.cfg.IMax),
		Results:      results,
	}, nil
}
