package naff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gusbeane/gala/naff"
)

// TestExtract_SingleTone recovers the frequency, amplitude and phase of a
// pure complex exponential. The stored frequency carries the FRECODER
// sign convention: negative of the search frequency.
func TestExtract_SingleTone(t *testing.T) {
	times := grid(1001, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	omega := 0.581
	res, err := s.Extract(tone(times, omega, 1), 1, 1e-7)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)

	c := res.Components[0]
	require.InDelta(t, -omega, c.Frequency, 1e-6, "stored frequency is -ν")
	require.InDelta(t, 1.0, c.Magnitude, 1e-4)
	require.InDelta(t, 0.0, c.Phase, 1e-3)
}

// TestExtract_TwoTone decomposes A1·e^{iω1t} + A2·e^{iω2t} with A1 > A2
// and expects the components ordered by amplitude, each within tolerance.
func TestExtract_TwoTone(t *testing.T) {
	times := grid(1001, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	omega1, omega2 := 0.581, 1.247
	a1, a2 := 1.0, 0.35
	f := tone(times, omega1, a1)
	addTo(f, tone(times, omega2, a2))

	res, err := s.Extract(f, 2, 0)
	require.NoError(t, err)
	require.Equal(t, naff.StatusExhausted, res.Status, "threshold 0 disables early stopping")
	require.Len(t, res.Components, 2)

	require.InDelta(t, -omega1, res.Components[0].Frequency, 1e-4, "dominant tone first")
	require.InDelta(t, a1, res.Components[0].Magnitude, 1e-3)
	require.InDelta(t, -omega2, res.Components[1].Frequency, 1e-4)
	require.InDelta(t, a2, res.Components[1].Magnitude, 1e-3)
}

// TestExtract_ResidualShrinks verifies subtracting the dominant component
// strictly reduces the residual peak amplitude on a two-tone input.
func TestExtract_ResidualShrinks(t *testing.T) {
	times := grid(1001, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	f := tone(times, 0.581, 1)
	addTo(f, tone(times, 1.247, 0.35))
	before := maxAbs(f)

	res, err := s.Extract(f, 1, 0)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)

	// Rebuild the residual from the reported component.
	c := res.Components[0]
	recovered := tone(times, -c.Frequency, 1)
	for i := range recovered {
		f[i] -= c.Amplitude * recovered[i]
	}
	require.Less(t, maxAbs(f), before, "residual peak must strictly decrease")
}

// TestExtract_HighThreshold stops after exactly one iteration when the
// break threshold exceeds any possible residual.
func TestExtract_HighThreshold(t *testing.T) {
	times := grid(1001, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	res, err := s.Extract(tone(times, 0.581, 1), 10, 1e6)
	require.NoError(t, err)
	require.Equal(t, naff.StatusConverged, res.Status)
	require.Len(t, res.Components, 1)
}

// TestExtract_DegenerateSeries runs on an all-zero series: the peak
// finder reports no frequency, extraction proceeds at ν=0 and the zero
// amplitude trips the break condition.
func TestExtract_DegenerateSeries(t *testing.T) {
	times := grid(101, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	res, err := s.Extract(make([]complex128, len(times)), 3, 1e-7)
	require.NoError(t, err)
	require.Equal(t, naff.StatusConverged, res.Status)
	require.Len(t, res.Components, 1)
	require.InDelta(t, 0.0, res.Components[0].Frequency, 0)
	require.InDelta(t, 0.0, res.Components[0].Magnitude, 1e-12)
}

// TestExtract_LengthMismatch rejects a series not aligned to the grid.
func TestExtract_LengthMismatch(t *testing.T) {
	s, err := naff.NewSession(grid(64, 0.1))
	require.NoError(t, err)

	_, err = s.Extract(make([]complex128, 10), 1, 0)
	require.ErrorIs(t, err, naff.ErrSeriesLength)
}

// TestStrongestFrequency_PureTone checks the refined estimate against the
// quadrature/optimization tolerance, well below one FFT bin.
func TestStrongestFrequency_PureTone(t *testing.T) {
	times := grid(1001, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	omega := 0.581
	nu, err := s.StrongestFrequency(tone(times, omega, 1))
	require.NoError(t, err)
	require.InDelta(t, omega, nu, 1e-6)

	binWidth := 2 * math.Pi / (float64(len(times)) * 0.1)
	require.Less(t, math.Abs(nu-omega), binWidth/100, "refinement must beat the FFT resolution")
}

// TestStrongestFrequency_Degenerate returns zero without error for a
// series with no usable spectral peak.
func TestStrongestFrequency_Degenerate(t *testing.T) {
	times := grid(101, 0.1)
	s, err := naff.NewSession(times)
	require.NoError(t, err)

	nu, err := s.StrongestFrequency(make([]complex128, len(times)))
	require.NoError(t, err)
	require.InDelta(t, 0.0, nu, 0)
}
