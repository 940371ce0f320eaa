package mip

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// SetSimplex swaps the LP routine until the test ends.
func SetSimplex(t testing.TB, f func(c []float64, A mat.Matrix, b []float64, tol float64, initialBasic []int) (float64, []float64, error)) {
	old := simplex
	simplex = f
	t.Cleanup(func() { simplex = old })
}
