// Package shrink implements nonparametric Stein-type shrinkage estimation of
// a covariance matrix: a convex combination of the sample covariance matrix
// and a structured target, weighted by an analytically estimated intensity.
// The estimator stays well conditioned when the number of variables is
// comparable to or larger than the number of observations.
package shrink

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/imfacrc/ShrinkCovMat/cov"
	"github.com/imfacrc/ShrinkCovMat/target"
	"github.com/imfacrc/ShrinkCovMat/utils"
)

// Result is the outcome of one shrinkage estimation.
type Result struct {
	// Cov is the shrinkage-estimated covariance matrix,
	// (1-Intensity)*Sample + Intensity*Target.
	Cov *mat.SymDense

	// Intensity is the estimated optimal weight of the target, capped at 1.
	Intensity float64

	// Sample is the sample covariance matrix.
	Sample *mat.SymDense

	// Target is the structured matrix the estimate was shrunk toward.
	Target *mat.DiagDense

	// TargetName records which target structure was used.
	TargetName string

	// Centered echoes whether the data was treated as zero-mean.
	Centered bool
}

// Estimate computes the shrinkage estimator of the covariance matrix of
// data, a p x N matrix with variables in rows and independent observations
// in columns, toward the given target. The input matrix is not modified.
func Estimate(data *mat.Dense, mode cov.Mode, t target.Target) (*Result, error) {
	s, err := cov.NewStats(data, mode)
	if err != nil {
		return nil, err
	}

	lambda := t.Intensity(s)
	tm := t.Matrix(s)

	var shrunk *mat.SymDense
	if lambda == 1 {
		// Full shrinkage: the blend collapses to the target itself.
		shrunk = utils.SymFromDiag(tm)
	} else {
		// shrunk = (1-lambda)*S, then shrunk_ii += lambda*t_ii.
		// The off-diagonal of the target is zero, so the full target matrix
		// never enters the blend.
		shrunk = utils.ScaleSym(1-lambda, s.Sample)
		for i := 0; i < s.P; i++ {
			shrunk.SetSym(i, i, shrunk.At(i, i)+lambda*tm.At(i, i))
		}
	}

	return &Result{
		Cov:        shrunk,
		Intensity:  lambda,
		Sample:     s.Sample,
		Target:     tm,
		TargetName: t.Name(),
		Centered:   mode == cov.Centered,
	}, nil
}

// Equal shrinks toward the equal-diagonal target nu*I, with nu the average
// sample variance.
func Equal(data *mat.Dense, mode cov.Mode) (*Result, error) {
	return Estimate(data, mode, &target.Spherical{})
}

// Identity shrinks toward the identity target I.
func Identity(data *mat.Dense, mode cov.Mode) (*Result, error) {
	return Estimate(data, mode, &target.Identity{})
}

// Unequal shrinks toward the unequal-diagonal target diag(S) of sample
// variances.
func Unequal(data *mat.Dense, mode cov.Mode) (*Result, error) {
	return Estimate(data, mode, &target.Diagonal{})
}

func (r *Result) String() string {
	p := r.Cov.SymmetricDim()
	mode := cov.NotCentered
	if r.Centered {
		mode = cov.Centered
	}
	return fmt.Sprintf(
		"SHRINKAGE ESTIMATION OF THE COVARIANCE MATRIX\n"+
			"  Dimensions: %d x %d\n"+
			"  Target:     %s\n"+
			"  Data:       %s\n"+
			"  Estimated optimal shrinkage intensity: %.4f\n",
		p, p, r.TargetName, mode, r.Intensity)
}
