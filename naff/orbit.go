package naff

import (
	"fmt"
	"math"
)

// Collaborator-facing input builders: pack 6-component phase-space samples
// (x, y, z, vx, vy, vz) into the complex series the analysis consumes.
// Choosing between them (tube orbits want Poincaré-polar coordinates, box
// orbits plain Cartesian) is the orbit classifier's call, not ours.

// CartesianSeries packs phase-space samples into one complex series per
// spatial dimension, q_j(t) + i·v_j(t)
func CartesianSeries(w [][]float64) ([][]complex128, error) {
	if err := checkPhaseSpace(w); err != nil {
		return nil, err
	}

	fs := make([][]complex128, 3)
	for j := 0; j < 3; j++ {
		fs[j] = make([]complex128, len(w))
		for i, row := range w {
			fs[j][i] = complex(row[j], row[j+3])
		}
	}
	return fs, nil
}

// PoincarePolar converts phase-space samples of an orbit circulating about
// the z axis into the three Poincaré-polar complex series
//
//	R + i·vR,  √(2|vφ|)·(cos φ + i·sin φ),  z + i·vz
//
// The angle convention φ = atan2(x, y) follows the original NAFF
// routines.
func PoincarePolar(w [][]float64) ([][]complex128, error) {
	if err := checkPhaseSpace(w); err != nil {
		return nil, err
	}

	fs := make([][]complex128, 3)
	for j := range fs {
		fs[j] = make([]complex128, len(w))
	}

	for i, row := range w {
		x, y, z := row[0], row[1], row[2]
		vx, vy, vz := row[3], row[4], row[5]

		r := math.Hypot(x, y)
		if r == 0 {
			return nil, fmt.Errorf("naff: zero cylindrical radius at sample %d", i)
		}
		phi := math.Atan2(x, y)
		vR := (x*vx + y*vy) / r
		vPhi := x*vy - y*vx

		amp := math.Sqrt(2 * math.Abs(vPhi))
		sin, cos := math.Sincos(phi)

		fs[0][i] = complex(r, vR)
		fs[1][i] = complex(amp*cos, amp*sin)
		fs[2][i] = complex(z, vz)
	}
	return fs, nil
}

func checkPhaseSpace(w [][]float64) error {
	if len(w) == 0 {
		return fmt.Errorf("naff: empty phase-space array")
	}
	for i, row := range w {
		if len(row) != 6 {
			return fmt.Errorf("naff: phase-space sample %d has %d components, want 6", i, len(row))
		}
	}
	return nil
}
