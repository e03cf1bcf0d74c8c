package naff

import (
	"github.com/gusbeane/gala/algorithms/optimize"
	"github.com/gusbeane/gala/algorithms/spectral"
	"github.com/gusbeane/gala/logging"
)

// Config holds the tunable parameters of an analysis session. The
// distinctness thresholds are empirical values inherited from the original
// NAFF routines; change them only against reference outputs.
type Config struct {
	// Extraction
	MaxComponents  int     `json:"max_components"`  // Frequencies to find and subtract per dimension
	BreakThreshold float64 `json:"break_threshold"` // Stop when residual peak or amplitude drops below this; <= 0 disables

	// Frequency refinement
	GridPoints      int     `json:"grid_points"`      // Warm-start grid resolution over the search window
	Tolerance       float64 `json:"tolerance"`        // Minimizer position tolerance on the normalized window
	MaxIterations   int     `json:"max_iterations"`   // Minimizer cap for the warm-started attempt
	RetryIterations int     `json:"retry_iterations"` // Minimizer cap for the midpoint restart

	// Fundamental selection
	MinFrequency      float64 `json:"min_frequency"`      // Guard against numerical-noise zero frequencies
	DistinctTolerance float64 `json:"distinct_tolerance"` // Minimum frequency-magnitude separation between fundamentals

	// Integer vectors
	IMax int `json:"imax"` // Lattice search bound per coefficient

	// Concurrent runs the per-dimension extractions on separate goroutines.
	// Results are assembled in dimension order either way, so the component
	// table and the selection it feeds are identical.
	Concurrent bool `json:"concurrent"`

	// Injected capabilities; nil selects the defaults.
	Transformer spectral.Transformer `json:"-"`
	Minimizer   optimize.Minimizer   `json:"-"` // Warm-started attempt
	Retry       optimize.Minimizer   `json:"-"` // Midpoint restart
	Logger      logging.Logger       `json:"-"`
}

// DefaultConfig returns the parameter set of the reference implementation
func DefaultConfig() Config {
	return Config{
		MaxComponents:     15,
		BreakThreshold:    1e-7,
		GridPoints:        50,
		Tolerance:         1e-9,
		MaxIterations:     50,
		RetryIterations:   100,
		MinFrequency:      1e-5,
		DistinctTolerance: 1e-6,
		IMax:              15,
	}
}

// withDefaults fills zero-valued numeric fields from DefaultConfig
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxComponents <= 0 {
		c.MaxComponents = def.MaxComponents
	}
	if c.GridPoints <= 0 {
		c.GridPoints = def.GridPoints
	}
	if c.Tolerance <= 0 {
		c.Tolerance = def.Tolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = def.MaxIterations
	}
	if c.RetryIterations <= 0 {
		c.RetryIterations = def.RetryIterations
	}
	if c.MinFrequency <= 0 {
		c.MinFrequency = def.MinFrequency
	}
	if c.DistinctTolerance <= 0 {
		c.DistinctTolerance = def.DistinctTolerance
	}
	if c.IMax <= 0 {
		c.IMax = def.IMax
	}
	return c
}
