package cov

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// uncenteredTraces fills the trace statistics from the column-centered data
// c. The naive plug-in sum(S^2) overestimates tr(Sigma^2) when p is
// comparable to N; the closed-form correction below removes the bias without
// assuming anything about fourth moments.
func (s *Stats) uncenteredTraces(c *mat.Dense) {
	n := float64(s.N)
	raw := c.RawMatrix()

	s.TraceSigma = mat.Trace(s.Sample)

	// colSq[j] = ||c_j||^2 for centered observation j, quart = sum_ij c_ij^4.
	colSq := make([]float64, s.N)
	var quart float64
	for i := 0; i < s.P; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+s.N]
		for j, v := range row {
			v2 := v * v
			colSq[j] += v2
			quart += v2 * v2
		}
	}
	// q = sum_j ||c_j||^4 / (n-1)
	q := floats.Dot(colSq, colSq) / (n - 1)

	frob := mat.Norm(s.Sample, 2)
	sumSq := frob * frob

	k := (n - 1) / (n * (n - 2) * (n - 3))
	s.TraceSigmaSq = k * ((n-1)*(n-2)*sumSq + s.TraceSigma*s.TraceSigma - n*q)

	diag := s.Variances()
	diagSq := floats.Dot(diag, diag)
	s.TraceDiagSq = k * ((n*n-3*n+3)*diagSq - n/(n-1)*quart)
}

// centeredTraces fills the trace statistics from the raw data x under the
// zero-mean assumption. tr(Sigma^2) is the U-statistic over unordered
// observation pairs,
//
//	Y2 = 2/(n(n-1)) * sum_{i<j} (x_i . x_j)^2,
//
// computed on the full inner-product matrix rather than pairwise loops.
func (s *Stats) centeredTraces(x *mat.Dense) {
	n := float64(s.N)

	s.TraceSigma = mat.Trace(s.Sample)

	// Gram matrix of observation columns, G = X^T X.
	g := blas64.Symmetric{
		N:      s.N,
		Stride: s.N,
		Data:   make([]float64, s.N*s.N),
		Uplo:   blas.Upper,
	}
	blas64.Syrk(blas.Trans, 1, x.RawMatrix(), 0, g)

	var pairs float64
	for i := 0; i < s.N; i++ {
		for j := i + 1; j < s.N; j++ {
			v := g.Data[i*g.Stride+j]
			pairs += v * v
		}
	}
	s.TraceSigmaSq = 2 * pairs / (n * (n - 1))

	// Same U-statistic restricted to each variable:
	// Y3 = sum_i [ (sum_j x_ij^2)^2 - sum_j x_ij^4 ] / (n(n-1)).
	raw := x.RawMatrix()
	var acc float64
	for i := 0; i < s.P; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+s.N]
		var sq, quart float64
		for _, v := range row {
			v2 := v * v
			sq += v2
			quart += v2 * v2
		}
		acc += sq*sq - quart
	}
	s.TraceDiagSq = acc / (n * (n - 1))
}
