package naff

import (
	"math"
	"sort"
)

// TableRow is one extracted component tagged with its source dimension.
// Frequency carries the physical sign: BuildComponentTable negates the
// stored component frequency back, mirroring the double negation of the
// original routines.
type TableRow struct {
	Frequency float64
	Amplitude complex128
	Magnitude float64
	Phase     float64
	Dim       int // source dimension index
	Order     int // insertion order within the source dimension
}

// ComponentTable is the flattened collection of components across all
// dimensions, sorted by descending magnitude
type ComponentTable []TableRow

// BuildComponentTable flattens per-dimension component lists into a table
// sorted by descending magnitude. Ties are pinned: ascending source
// dimension, then ascending insertion order, so repeated selection over
// the same inputs is deterministic.
func BuildComponentTable(perDim [][]Component) ComponentTable {
	total := 0
	for _, comps := range perDim {
		total += len(comps)
	}

	table := make(ComponentTable, 0, total)
	for dim, comps := range perDim {
		for order, c := range comps {
			table = append(table, TableRow{
				Frequency: -c.Frequency,
				Amplitude: c.Amplitude,
				Magnitude: c.Magnitude,
				Phase:     c.Phase,
				Dim:       dim,
				Order:     order,
			})
		}
	}

	// Rows enter in (dim, order) sequence, so a stable sort on magnitude
	// alone preserves the pinned tie-break.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Magnitude > table[j].Magnitude
	})
	return table
}

// Fundamental is one selected fundamental frequency
type Fundamental struct {
	Frequency  float64
	Dim        int // source dimension it was selected from
	TableIndex int // row of the component table it came from
}

// FundamentalSet holds one fundamental per source dimension, indexed by
// dimension
type FundamentalSet []Fundamental

// Frequencies returns the fundamental frequencies in dimension order
func (fs FundamentalSet) Frequencies() []float64 {
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = f.Frequency
	}
	return out
}

// Selector picks fundamental frequencies from a component table by the
// amplitude- and distinctness-based heuristic of the original NAFF
// routines
type Selector struct {
	minFrequency      float64
	distinctTolerance float64
}

// NewSelector creates a selector. minFrequency guards against selecting
// numerical-noise zero frequencies; distinctTolerance is the minimum
// separation in frequency magnitude between fundamentals.
func NewSelector(minFrequency, distinctTolerance float64) *Selector {
	return &Selector{
		minFrequency:      minFrequency,
		distinctTolerance: distinctTolerance,
	}
}

// Select chooses ndim fundamental frequencies from a magnitude-sorted
// table, one per source dimension, and returns them reordered so entry i
// corresponds to dimension i.
//
// Selection is sequential: the first fundamental is the highest-magnitude
// nonzero-frequency row; each later one must come from a distinct source
// dimension and differ in frequency magnitude from all earlier picks by
// more than the distinctness tolerance. Failure to cover every dimension
// is a *MissingFundamentalError.
func (sel *Selector) Select(table ComponentTable, ndim int) (FundamentalSet, error) {
	if ndim < 1 || ndim > 3 {
		return nil, ErrDimensionCount
	}

	picked := make([]Fundamental, 0, ndim)
	for len(picked) < ndim {
		idx := sel.next(table, picked)
		if idx < 0 {
			return nil, &MissingFundamentalError{Dims: coveredDims(picked)}
		}
		picked = append(picked, Fundamental{
			Frequency:  table[idx].Frequency,
			Dim:        table[idx].Dim,
			TableIndex: idx,
		})
	}

	// The picks must cover dimensions 0..ndim-1 exactly.
	out := make(FundamentalSet, ndim)
	seen := make([]bool, ndim)
	for _, f := range picked {
		if f.Dim >= ndim || seen[f.Dim] {
			return nil, &MissingFundamentalError{Dims: coveredDims(picked)}
		}
		seen[f.Dim] = true
		out[f.Dim] = f
	}

	return out, nil
}

// next returns the index of the first table row that passes the
// nonzero-frequency guard, comes from a source dimension not already
// picked, and is distinct in frequency magnitude from every prior pick.
// Returns -1 when none qualifies.
func (sel *Selector) next(table ComponentTable, picked []Fundamental) int {
	for i := 0; i < len(table); i++ {
		row := table[i]
		if math.Abs(row.Frequency) <= sel.minFrequency {
			continue
		}

		ok := true
		for _, f := range picked {
			if row.Dim == f.Dim {
				ok = false
				break
			}
			if math.Abs(math.Abs(f.Frequency)-math.Abs(row.Frequency)) <= sel.distinctTolerance {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

func coveredDims(picked []Fundamental) []int {
	dims := make([]int, 0, len(picked))
	for _, f := range picked {
		dims = append(dims, f.Dim)
	}
	sort.Ints(dims)
	return dims
}

// IntegerVector expresses one component frequency as an approximate
// integer combination of the fundamentals
type IntegerVector struct {
	Coefficients []int   // one per fundamental
	Residual     float64 // |freq - n·fundamentals| at the minimum
}

// FitIntegerVectors finds, for every table row, the integer tuple
// n ∈ {-imax..imax}^m minimizing |row.Frequency - n·fundamentals|.
// The search is brute force; with m ≤ 3 and small tables the
// (2·imax+1)^m cost is negligible.
func FitIntegerVectors(fundamentals FundamentalSet, table ComponentTable, imax int) []IntegerVector {
	m := len(fundamentals)
	freqs := fundamentals.Frequencies()
	out := make([]IntegerVector, len(table))

	coeffs := make([]int, m)
	for r, row := range table {
		best := IntegerVector{
			Coefficients: make([]int, m),
			Residual:     math.Inf(1),
		}

		for i := range coeffs {
			coeffs[i] = -imax
		}
		for {
			combo := 0.0
			for i, n := range coeffs {
				combo += float64(n) * freqs[i]
			}
			if err := math.Abs(row.Frequency - combo); err < best.Residual {
				best.Residual = err
				copy(best.Coefficients, coeffs)
			}

			// odometer over {-imax..imax}^m
			i := 0
			for ; i < m; i++ {
				coeffs[i]++
				if coeffs[i] <= imax {
					break
				}
				coeffs[i] = -imax
			}
			if i == m {
				break
			}
		}

		out[r] = best
	}
	return out
}
