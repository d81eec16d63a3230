// Package cov computes the sample covariance matrix and the unbiased trace
// statistics that drive the optimal shrinkage intensity.
package cov

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/imfacrc/ShrinkCovMat/utils"
)

var ErrInvalidMode = errors.New("cov: centering mode is neither NotCentered nor Centered")
var ErrTooFewColumns = errors.New("cov: not enough observation columns")

// Mode states whether the population mean is known to be zero.
type Mode int

const (
	// NotCentered subtracts the row-wise sample mean from every column and
	// uses divisor N-1 for the sample covariance.
	NotCentered Mode = iota
	// Centered treats the data as drawn from a zero-mean population and
	// uses divisor N.
	Centered
)

func (m Mode) String() string {
	switch m {
	case NotCentered:
		return "not centered"
	case Centered:
		return "centered"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) Valid() bool {
	return m == NotCentered || m == Centered
}

// MinColumns is the smallest sample size for which the unbiased trace
// estimators of the mode are defined. The NotCentered formulas divide by
// N(N-2)(N-3), the Centered ones by N(N-1).
func (m Mode) MinColumns() int {
	if m == Centered {
		return 2
	}
	return 4
}

// Stats holds the sample covariance matrix of one data matrix together with
// the trace statistics needed by every shrinkage target:
//
//	TraceSigma   unbiased estimate of tr(Sigma)
//	TraceSigmaSq unbiased estimate of tr(Sigma^2)
//	TraceDiagSq  unbiased estimate of sum_i Sigma_ii^2
//
// The record is built once by NewStats and read-only afterwards.
type Stats struct {
	P    int // number of variables (rows)
	N    int // number of observations (columns)
	Mode Mode

	Sample *mat.SymDense

	TraceSigma   float64
	TraceSigmaSq float64
	TraceDiagSq  float64
}

// NewStats computes the sample covariance and trace statistics of data,
// a p x N matrix with variables in rows and independent observations in
// columns. The input matrix is never modified.
func NewStats(data *mat.Dense, mode Mode) (*Stats, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("mode %d: %w", int(mode), ErrInvalidMode)
	}
	p, n := data.Dims()
	if n < mode.MinColumns() {
		return nil, fmt.Errorf("%s mode needs at least %d columns, got %d: %w",
			mode, mode.MinColumns(), n, ErrTooFewColumns)
	}

	s := &Stats{P: p, N: n, Mode: mode}
	switch mode {
	case NotCentered:
		c := center(data)
		s.Sample = outerScaled(c, 1/float64(n-1))
		s.uncenteredTraces(c)
	case Centered:
		s.Sample = outerScaled(data, 1/float64(n))
		s.centeredTraces(data)
	}
	return s, nil
}

// AvgVariance is the average sample variance tr(S)/p, the diagonal value of
// the spherical target.
func (s *Stats) AvgVariance() float64 {
	return s.TraceSigma / float64(s.P)
}

// Variances returns a copy of the diagonal of the sample covariance matrix.
func (s *Stats) Variances() []float64 {
	return utils.Diag(s.Sample)
}

// center returns a copy of data with the row-wise mean subtracted from
// every column.
func center(data *mat.Dense) *mat.Dense {
	p, n := data.Dims()
	c := mat.DenseCopyOf(data)
	raw := c.RawMatrix()
	for i := 0; i < p; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+n]
		mean := floats.Sum(row) / float64(n)
		floats.AddConst(-mean, row)
	}
	return c
}

// outerScaled computes alpha * x * x^T as a symmetric matrix.
func outerScaled(x *mat.Dense, alpha float64) *mat.SymDense {
	p, _ := x.Dims()
	sym := blas64.Symmetric{
		N:      p,
		Stride: p,
		Data:   make([]float64, p*p),
		Uplo:   blas.Upper,
	}
	blas64.Syrk(blas.NoTrans, alpha, x.RawMatrix(), 0, sym)
	return mat.NewSymDense(p, sym.Data)
}
