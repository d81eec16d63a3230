package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/imfacrc/ShrinkCovMat/utils"
)

func TestEye(t *testing.T) {
	eye := utils.Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1.0, eye.At(i, j))
			} else {
				assert.Zero(t, eye.At(i, j))
			}
		}
	}
}

func TestConstDiag(t *testing.T) {
	d := utils.ConstDiag(4, 2.5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2.5, d.At(i, i))
	}
	assert.Zero(t, d.At(0, 3))
}

func TestSymFromDiag(t *testing.T) {
	d := mat.NewDiagDense(3, []float64{1, 2, 3})
	s := utils.SymFromDiag(d)
	assert.True(t, mat.Equal(d, s), "expanded matrix must equal the diagonal")
}

func TestScaleSym(t *testing.T) {
	s := mat.NewSymDense(2, []float64{1, 2, 2, 4})
	out := utils.ScaleSym(0.5, s)
	assert.Equal(t, 0.5, out.At(0, 0))
	assert.Equal(t, 1.0, out.At(0, 1))
	assert.Equal(t, 1.0, out.At(1, 0))
	assert.Equal(t, 2.0, out.At(1, 1))
	// Input untouched.
	assert.Equal(t, 1.0, s.At(0, 0))
}

func TestScaleSym_One(t *testing.T) {
	s := mat.NewSymDense(2, []float64{1.25, -0.5, -0.5, 3})
	out := utils.ScaleSym(1, s)
	assert.True(t, mat.Equal(s, out), "scaling by 1 must reproduce the input exactly")
}

func TestDiag(t *testing.T) {
	s := mat.NewSymDense(3, []float64{
		1, 4, 5,
		4, 2, 6,
		5, 6, 3,
	})
	assert.Equal(t, []float64{1, 2, 3}, utils.Diag(s))
}
