// Package se: canonical validation helpers shared by all operations.
// Validators return plain sentinels; call sites wrap them with opErr so
// errors carry the operation name while still matching via errors.Is.

package se

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validDim checks the basic dimension invariant N ≥ 2.
func validDim(n int) error {
	if n < 2 {
		return ErrInvalidDimension
	}

	return nil
}

// supportedDim checks that n has the closed-form rotation machinery
// (N ∈ {2, 3}) on top of the basic invariant.
func supportedDim(n int) error {
	if err := validDim(n); err != nil {
		return err
	}
	if n != 2 && n != 3 {
		return ErrUnsupportedDimension
	}

	return nil
}

// sameDim checks that two constructed values share a dimension.
func sameDim(a, b int) error {
	if a != b {
		return ErrDimensionMismatch
	}

	return nil
}

// zeroRow checks that row i of m is all zeros within eps over cols columns.
func zeroRow(m mat.Matrix, i, cols int, eps float64) bool {
	for j := 0; j < cols; j++ {
		if math.Abs(m.At(i, j)) > eps {
			return false
		}
	}

	return true
}

// eye returns the n×n identity matrix.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
