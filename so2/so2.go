package so2

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dim is the ambient dimension of SO(2) rotation matrices.
const Dim = 2

// Dof is the number of degrees of freedom of SO(2).
const Dof = 1

// DefaultEpsilon is the tolerance used by Vee when checking that the input
// matrix is skew-symmetric.
const DefaultEpsilon = 1e-9

var (
	// ErrBadShape indicates that an input matrix is not 2×2.
	ErrBadShape = errors.New("so2: matrix must be 2×2")

	// ErrNotSkewSymmetric indicates that a matrix handed to Vee is not
	// skew-symmetric within DefaultEpsilon.
	ErrNotSkewSymmetric = errors.New("so2: matrix is not skew-symmetric")
)

// Hat maps an angle to its 2×2 skew-symmetric matrix form,
//
//	[ 0  -θ ]
//	[ θ   0 ]
//
// the matrix generator of the planar rotation flow.
func Hat(theta float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{0, -theta, theta, 0})
}

// Vee extracts the angle from a 2×2 skew-symmetric matrix; it is the inverse
// of Hat. Returns ErrBadShape on wrong dimensions and ErrNotSkewSymmetric if
// the matrix violates skew symmetry within DefaultEpsilon.
func Vee(m mat.Matrix) (float64, error) {
	if r, c := m.Dims(); r != Dim || c != Dim {
		return 0, ErrBadShape
	}
	if !IsSkewSymmetric(m, DefaultEpsilon) {
		return 0, ErrNotSkewSymmetric
	}

	return m.At(1, 0), nil
}

// IsSkewSymmetric reports whether m is a 2×2 matrix satisfying mᵀ = -m
// within the absolute tolerance eps.
func IsSkewSymmetric(m mat.Matrix, eps float64) bool {
	if r, c := m.Dims(); r != Dim || c != Dim {
		return false
	}
	if math.Abs(m.At(0, 0)) > eps || math.Abs(m.At(1, 1)) > eps {
		return false
	}

	return math.Abs(m.At(0, 1)+m.At(1, 0)) <= eps
}

// Exp is the exponential map of SO(2): it sends an algebra angle to the
// rotation matrix
//
//	[ cos θ  -sin θ ]
//	[ sin θ   cos θ ]
//
// Exp is total: every real angle maps to a valid rotation.
func Exp(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)

	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// Log is the logarithmic map of SO(2): it recovers the rotation angle of r
// on the principal branch (-π, π]. The absolute value of the returned angle
// is the rotation magnitude. Returns ErrBadShape if r is not 2×2.
//
// r is assumed to be orthogonal; Log does not verify orthogonality.
func Log(r mat.Matrix) (float64, error) {
	if rows, cols := r.Dims(); rows != Dim || cols != Dim {
		return 0, ErrBadShape
	}

	return math.Atan2(r.At(1, 0), r.At(0, 0)), nil
}
