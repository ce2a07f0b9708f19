// Package se: the SE(N) group surface — constructors, group operations,
// group action, homogeneous form, adjoint and retraction.

package se

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NewPose constructs an SE(n) element from an n×n rotation block and a
// translation of length n. Both are copied. Orthogonality of r is expected
// but, following the usual convention for rigid-transform types, not
// asserted.
//
// Errors:
//   - ErrBadShape           — r not square.
//   - ErrInvalidDimension   — n < 2.
//   - ErrDimensionMismatch  — len(t) ≠ n.
func NewPose(r mat.Matrix, t []float64) (Pose, error) {
	const op = "NewPose"

	rows, cols := r.Dims()
	if rows != cols {
		return Pose{}, opErr(op, ErrBadShape)
	}
	if err := validDim(rows); err != nil {
		return Pose{}, opErr(op, err)
	}
	if len(t) != rows {
		return Pose{}, opErr(op, ErrDimensionMismatch)
	}

	tc := make([]float64, len(t))
	copy(tc, t)

	return Pose{n: rows, r: mat.DenseCopyOf(r), t: mat.NewVecDense(rows, tc)}, nil
}

// PoseFromMatrix constructs an SE(n) element from its (n+1)×(n+1)
// homogeneous form [[R, t], [0, 1]], extracting the R and t blocks.
//
// Errors:
//   - ErrBadShape     — matrix not square or too small.
//   - ErrBadBottomRow — bottom row not [0 … 0 1] within DefaultEpsilon.
func PoseFromMatrix(m mat.Matrix) (Pose, error) {
	const op = "PoseFromMatrix"

	rows, cols := m.Dims()
	if rows != cols || rows < 3 {
		return Pose{}, opErr(op, ErrBadShape)
	}
	n := rows - 1
	if !zeroRow(m, n, n, DefaultEpsilon) || math.Abs(m.At(n, n)-1) > DefaultEpsilon {
		return Pose{}, opErr(op, ErrBadBottomRow)
	}

	r := mat.NewDense(n, n, nil)
	t := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.Set(i, j, m.At(i, j))
		}
		t[i] = m.At(i, n)
	}

	return Pose{n: n, r: r, t: mat.NewVecDense(n, t)}, nil
}

// Identity returns the identity transformation of SE(n): R = I, t = 0.
func Identity(n int) (Pose, error) {
	if err := validDim(n); err != nil {
		return Pose{}, opErr("Identity", err)
	}

	return Pose{n: n, r: eye(n), t: mat.NewVecDense(n, nil)}, nil
}

// Matrix returns the (n+1)×(n+1) homogeneous form [[R, t], [0, 1]].
func (p Pose) Matrix() (*mat.Dense, error) {
	if err := p.valid(); err != nil {
		return nil, opErr("Matrix", err)
	}

	out := mat.NewDense(p.n+1, p.n+1, nil)
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			out.Set(i, j, p.r.At(i, j))
		}
		out.Set(i, p.n, p.t.AtVec(i))
	}
	out.Set(p.n, p.n, 1)

	return out, nil
}

// Inverse returns the rigid-transform inverse (Rᵀ, -Rᵀt). O(n²), no
// iteration: orthogonality of R makes the transpose the rotation inverse.
func (p Pose) Inverse() (Pose, error) {
	if err := p.valid(); err != nil {
		return Pose{}, opErr("Inverse", err)
	}

	rt := mat.DenseCopyOf(p.r.T())
	t := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		var s float64
		for j := 0; j < p.n; j++ {
			s += rt.At(i, j) * p.t.AtVec(j)
		}
		t[i] = -s
	}

	return Pose{n: p.n, r: rt, t: mat.NewVecDense(p.n, t)}, nil
}

// Compose returns the group product p·q: the matrix product of the two
// homogeneous forms, (R_p·R_q, R_p·t_q + t_p).
//
// Errors: ErrUninitialized, ErrDimensionMismatch when q has a different N.
func (p Pose) Compose(q Pose) (Pose, error) {
	const op = "Compose"

	if err := p.valid(); err != nil {
		return Pose{}, opErr(op, err)
	}
	if err := q.valid(); err != nil {
		return Pose{}, opErr(op, err)
	}
	if err := sameDim(p.n, q.n); err != nil {
		return Pose{}, opErr(op, err)
	}

	var r mat.Dense
	r.Mul(p.r, q.r)

	t := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		s := p.t.AtVec(i)
		for j := 0; j < p.n; j++ {
			s += p.r.At(i, j) * q.t.AtVec(j)
		}
		t[i] = s
	}

	return Pose{n: p.n, r: &r, t: mat.NewVecDense(p.n, t)}, nil
}

// Act applies the group action to a point: y = R·x + t, the affine map of
// homogeneous coordinates restricted back to N-space.
//
// Errors: ErrUninitialized, ErrDimensionMismatch when len(x) ≠ N.
func (p Pose) Act(x []float64) ([]float64, error) {
	const op = "Act"

	if err := p.valid(); err != nil {
		return nil, opErr(op, err)
	}
	if len(x) != p.n {
		return nil, opErr(op, ErrDimensionMismatch)
	}

	y := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		s := p.t.AtVec(i)
		for j := 0; j < p.n; j++ {
			s += p.r.At(i, j) * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// Adjoint returns the adjoint representation of the pose: the linear map
// transporting tangent coordinates [ρ, θ] between frames under conjugation,
// so that Adjoint(p)·τ = Log(p · Exp(τ) · p⁻¹).
//
// For N=3 it is the 6×6 block matrix [[R, t^·R], [0, R]]; for N=2 the 3×3
// analogue [[R, (t_y, -t_x)ᵀ], [0, 1]].
//
// Errors: ErrUninitialized, ErrUnsupportedDimension.
func (p Pose) Adjoint() (*mat.Dense, error) {
	const op = "Adjoint"

	if err := p.valid(); err != nil {
		return nil, opErr(op, err)
	}
	if err := supportedDim(p.n); err != nil {
		return nil, opErr(op, err)
	}

	if p.n == 2 {
		out := mat.NewDense(3, 3, nil)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				out.Set(i, j, p.r.At(i, j))
			}
		}
		out.Set(0, 2, p.t.AtVec(1))
		out.Set(1, 2, -p.t.AtVec(0))
		out.Set(2, 2, 1)

		return out, nil
	}

	tk := hat3(p.Translation())
	var tkr mat.Dense
	tkr.Mul(tk, p.r)

	out := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, p.r.At(i, j))
			out.Set(i, j+3, tkr.At(i, j))
			out.Set(i+3, j+3, p.r.At(i, j))
		}
	}

	return out, nil
}

// Retract is the manifold plus operator ⊕: it composes the pose with the
// exponential of a tangent perturbation, p ⊕ τ = p · Exp(τ).
//
// Errors: ErrUninitialized, ErrDimensionMismatch, ErrUnsupportedDimension
// (via Exp).
func (p Pose) Retract(tau Tangent) (Pose, error) {
	const op = "Retract"

	if err := p.valid(); err != nil {
		return Pose{}, opErr(op, err)
	}
	if err := tau.valid(); err != nil {
		return Pose{}, opErr(op, err)
	}
	if err := sameDim(p.n, tau.n); err != nil {
		return Pose{}, opErr(op, err)
	}

	e, err := Exp(tau)
	if err != nil {
		return Pose{}, opErr(op, err)
	}

	return p.Compose(e)
}

// Equal reports exact equality of the homogeneous forms. Mismatched or
// uninitialized dimensions compare unequal.
func (p Pose) Equal(q Pose) bool {
	if p.n == 0 || p.n != q.n {
		return false
	}

	return mat.Equal(p.r, q.r) && mat.Equal(p.t, q.t)
}

// EqualApprox reports equality of the homogeneous forms within the
// tolerance eps. Mismatched or uninitialized dimensions compare unequal.
func (p Pose) EqualApprox(q Pose, eps float64) bool {
	if p.n == 0 || p.n != q.n {
		return false
	}

	return mat.EqualApprox(p.r, q.r, eps) && mat.EqualApprox(p.t, q.t, eps)
}
