package naff

import (
	"math/cmplx"
)

// Basis is the growing set of orthonormal complex-exponential series built
// during one extraction run, each entry tagged with the frequency that
// generated it. Entries are append-only and pairwise orthogonal under the
// session's weighted inner product, except degenerate entries that were
// zeroed when normalization was undefined.
type Basis struct {
	vectors [][]complex128
	freqs   []float64
}

// NewBasis creates an empty basis with the given capacity
func NewBasis(capacity int) *Basis {
	return &Basis{
		vectors: make([][]complex128, 0, capacity),
		freqs:   make([]float64, 0, capacity),
	}
}

// Len returns the number of basis vectors built so far
func (b *Basis) Len() int {
	return len(b.vectors)
}

// Vector returns the k-th basis vector (not a copy)
func (b *Basis) Vector(k int) []complex128 {
	return b.vectors[k]
}

// Frequency returns the frequency that generated the k-th basis vector
func (b *Basis) Frequency(k int) float64 {
	return b.freqs[k]
}

// Orthonormalize appends the next basis vector for frequency nu.
//
// For an empty basis the raw exponential exp(i·ν·t) is used directly; its
// weighted self product is already ≈1 since the Hanning weights integrate
// to 2T. Otherwise the candidate is orthogonalized against every prior
// vector by Gram-Schmidt under the weighted inner product and normalized.
// A residual with numerically zero self product gets normalization factor
// zero instead of dividing: the vector contributes nothing but must not
// inject NaN into the pipeline.
func (s *Session) Orthonormalize(b *Basis, nu float64) error {
	u := s.exponential(nu)
	k := b.Len()

	if k == 0 {
		b.vectors = append(b.vectors, u)
		b.freqs = append(b.freqs, nu)
		return nil
	}

	coeffs := make([]complex128, k)
	for j := 0; j < k; j++ {
		c, err := s.InnerProduct(u, b.vectors[j])
		if err != nil {
			return err
		}
		coeffs[j] = c
	}

	e := make([]complex128, len(u))
	copy(e, u)
	for j := 0; j < k; j++ {
		prev := b.vectors[j]
		for i := range e {
			e[i] -= coeffs[j] * prev[i]
		}
	}

	prod, err := s.InnerProduct(e, e)
	if err != nil {
		return err
	}

	var norm complex128
	if prod != 0 {
		norm = 1 / cmplx.Sqrt(prod)
	}
	for i := range e {
		e[i] *= norm
	}

	b.vectors = append(b.vectors, e)
	b.freqs = append(b.freqs, nu)
	return nil
}
