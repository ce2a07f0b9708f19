// Package se: the se(N) algebra surface — constructors, vector-space
// operations and the hat/vee pair. The algebra is a plain vector space, so
// identity/inverse/addition are the zero vector, negation and elementwise
// addition; all the interesting numerics live in expmap.go and jacobian.go.

package se

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlie/so2"
	"github.com/katalvlaran/lvlie/so3"
)

// NewTangent constructs an se(n) element from its coordinate vector,
// ordered [ρ (n translation), θ (rotation)]. The slice is copied.
//
// Errors:
//   - ErrInvalidDimension  — n < 2.
//   - ErrBadVectorLength   — len(coords) ≠ Dof(n).
func NewTangent(n int, coords []float64) (Tangent, error) {
	if err := validDim(n); err != nil {
		return Tangent{}, opErr("NewTangent", err)
	}
	if len(coords) != Dof(n) {
		return Tangent{}, opErr("NewTangent", ErrBadVectorLength)
	}

	c := make([]float64, len(coords))
	copy(c, coords)

	return Tangent{n: n, coords: c}, nil
}

// ZeroTangent returns the identity of the se(n) vector space: all
// coordinates zero.
func ZeroTangent(n int) (Tangent, error) {
	if err := validDim(n); err != nil {
		return Tangent{}, opErr("ZeroTangent", err)
	}

	return Tangent{n: n, coords: make([]float64, Dof(n))}, nil
}

// TangentFromMatrix constructs an se(n) element from its (n+1)×(n+1) matrix
// form: a skew-symmetric n×n upper-left block, the translation part in the
// last column, and a zero bottom row. This is the vee direction; Vee is an
// alias.
//
// Errors:
//   - ErrBadShape            — matrix not square or too small.
//   - ErrUnsupportedDimension — n outside {2, 3} (no SO(n) vee available).
//   - ErrBadBottomRow        — bottom row not zero within DefaultEpsilon.
//   - ErrNotSkewSymmetric    — upper-left block not skew within DefaultEpsilon.
func TangentFromMatrix(m mat.Matrix) (Tangent, error) {
	const op = "TangentFromMatrix"

	rows, cols := m.Dims()
	if rows != cols || rows < 3 {
		return Tangent{}, opErr(op, ErrBadShape)
	}
	n := rows - 1
	if err := supportedDim(n); err != nil {
		return Tangent{}, opErr(op, err)
	}
	if !zeroRow(m, n, n+1, DefaultEpsilon) {
		return Tangent{}, opErr(op, ErrBadBottomRow)
	}

	block := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			block.Set(i, j, m.At(i, j))
		}
	}

	coords := make([]float64, 0, Dof(n))
	for i := 0; i < n; i++ {
		coords = append(coords, m.At(i, n))
	}

	switch n {
	case 2:
		th, err := so2.Vee(block)
		if err != nil {
			return Tangent{}, opErr(op, ErrNotSkewSymmetric)
		}
		coords = append(coords, th)
	case 3:
		th, err := so3.Vee(block)
		if err != nil {
			return Tangent{}, opErr(op, ErrNotSkewSymmetric)
		}
		coords = append(coords, th...)
	}

	return Tangent{n: n, coords: coords}, nil
}

// Vee is TangentFromMatrix under its algebraic name: the inverse of Hat.
func Vee(m mat.Matrix) (Tangent, error) {
	return TangentFromMatrix(m)
}

// Hat returns the (n+1)×(n+1) matrix form of the tangent: the rotation part
// expanded into the SO(n) skew-symmetric block, the translation part in the
// last column, and a zero bottom row.
//
// Errors: ErrUninitialized, ErrUnsupportedDimension.
func (t Tangent) Hat() (*mat.Dense, error) {
	const op = "Hat"

	if err := t.valid(); err != nil {
		return nil, opErr(op, err)
	}
	if err := supportedDim(t.n); err != nil {
		return nil, opErr(op, err)
	}

	var block *mat.Dense
	switch t.n {
	case 2:
		block = so2.Hat(t.coords[2])
	case 3:
		block, _ = so3.Hat(t.coords[3:6])
	}

	out := mat.NewDense(t.n+1, t.n+1, nil)
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			out.Set(i, j, block.At(i, j))
		}
		out.Set(i, t.n, t.coords[i])
	}

	return out, nil
}

// Neg returns the additive inverse of the tangent: the algebra is a vector
// space, so inversion negates every coordinate.
func (t Tangent) Neg() (Tangent, error) {
	if err := t.valid(); err != nil {
		return Tangent{}, opErr("Neg", err)
	}

	c := make([]float64, len(t.coords))
	for i, v := range t.coords {
		c[i] = -v
	}

	return Tangent{n: t.n, coords: c}, nil
}

// Add returns the elementwise sum of two tangents of equal dimension.
//
// Errors: ErrUninitialized, ErrDimensionMismatch.
func (t Tangent) Add(u Tangent) (Tangent, error) {
	const op = "Add"

	if err := t.valid(); err != nil {
		return Tangent{}, opErr(op, err)
	}
	if err := u.valid(); err != nil {
		return Tangent{}, opErr(op, err)
	}
	if err := sameDim(t.n, u.n); err != nil {
		return Tangent{}, opErr(op, err)
	}

	c := make([]float64, len(t.coords))
	floats.AddTo(c, t.coords, u.coords)

	return Tangent{n: t.n, coords: c}, nil
}

// Equal reports exact coordinate equality. Mismatched or uninitialized
// dimensions compare unequal.
func (t Tangent) Equal(u Tangent) bool {
	if t.n == 0 || t.n != u.n {
		return false
	}

	return floats.Equal(t.coords, u.coords)
}

// EqualApprox reports coordinate equality within the absolute-or-relative
// tolerance eps. Mismatched or uninitialized dimensions compare unequal.
func (t Tangent) EqualApprox(u Tangent, eps float64) bool {
	if t.n == 0 || t.n != u.n {
		return false
	}

	return floats.EqualApprox(t.coords, u.coords, eps)
}
