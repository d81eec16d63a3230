package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Identity matrix.
func Eye(n int) *mat.DiagDense {
	return ConstDiag(n, 1)
}

// ConstDiag returns the n x n diagonal matrix with v on every diagonal
// entry.
func ConstDiag(n int, v float64) *mat.DiagDense {
	d := make([]float64, n)
	for i := range d {
		d[i] = v
	}
	return mat.NewDiagDense(n, d)
}

// SymFromDiag expands a diagonal matrix into symmetric storage.
func SymFromDiag(d *mat.DiagDense) *mat.SymDense {
	n := d.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, d.At(i, i))
	}
	return out
}

// ScaleSym returns alpha * s as a new symmetric matrix.
func ScaleSym(alpha float64, s *mat.SymDense) *mat.SymDense {
	n := s.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, alpha*s.At(i, j))
		}
	}
	return out
}

// Diag copies the diagonal of s.
func Diag(s *mat.SymDense) []float64 {
	n := s.SymmetricDim()
	d := make([]float64, n)
	for i := range d {
		d[i] = s.At(i, i)
	}
	return d
}
