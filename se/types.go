// Package se: core value types and static metadata.

package se

import "gonum.org/v1/gonum/mat"

// DefaultEpsilon is the tolerance used by the structural checks of the
// matrix-form constructors (skew symmetry, bottom rows). Approximate
// equality methods take an explicit eps instead so callers own the policy.
const DefaultEpsilon = 1e-9

// Dof returns the degrees of freedom of SE(n): n translation components
// plus n(n-1)/2 rotation components, i.e. n(n+1)/2.
func Dof(n int) int {
	return n * (n + 1) / 2
}

// rotDof returns the degrees of freedom of the rotation subgroup SO(n).
func rotDof(n int) int {
	return n * (n - 1) / 2
}

// Tangent is an element of the Lie algebra se(N): the tangent space of
// SE(N) at the identity. Its canonical storage is the coordinate vector of
// length Dof(N), ordered [ρ (N translation), θ (rotation)]; the equivalent
// (N+1)×(N+1) matrix form is reachable through Hat and comes back through
// Vee / TangentFromMatrix.
//
// Tangent is a value type: immutable once constructed, safe to copy and to
// share across goroutines. The zero value is not usable; construct with
// NewTangent, ZeroTangent, TangentFromMatrix or Vee.
type Tangent struct {
	n      int
	coords []float64
}

// Dim returns the ambient dimension N of the tangent, or 0 for the zero value.
func (t Tangent) Dim() int { return t.n }

// Dof returns the number of coordinates, Dof(N).
func (t Tangent) Dof() int { return len(t.coords) }

// Coords returns a copy of the full coordinate vector [ρ..., θ...].
func (t Tangent) Coords() []float64 {
	out := make([]float64, len(t.coords))
	copy(out, t.coords)

	return out
}

// Rho returns a copy of the translation part (the first N coordinates).
func (t Tangent) Rho() []float64 {
	out := make([]float64, t.n)
	copy(out, t.coords[:t.n])

	return out
}

// Theta returns a copy of the rotation part (the trailing rotDof(N)
// coordinates).
func (t Tangent) Theta() []float64 {
	out := make([]float64, rotDof(t.n))
	copy(out, t.coords[t.n:])

	return out
}

// valid reports ErrUninitialized for the zero value.
func (t Tangent) valid() error {
	if t.n == 0 {
		return ErrUninitialized
	}

	return nil
}

// Pose is an element of the group SE(N): a rotation block R (N×N, orthogonal
// in practice though not asserted at construction) and a translation vector
// t (length N). The equivalent homogeneous form [[R, t], [0, 1]] is produced
// by Matrix and accepted by PoseFromMatrix.
//
// Pose is a value type with the same lifetime rules as Tangent: construct
// with NewPose, PoseFromMatrix or Identity; all methods are pure and
// accessors return copies.
type Pose struct {
	n int
	r *mat.Dense
	t *mat.VecDense
}

// Dim returns the ambient dimension N of the pose, or 0 for the zero value.
func (p Pose) Dim() int { return p.n }

// Rotation returns a copy of the N×N rotation block.
func (p Pose) Rotation() *mat.Dense {
	return mat.DenseCopyOf(p.r)
}

// Translation returns a copy of the translation vector.
func (p Pose) Translation() []float64 {
	out := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		out[i] = p.t.AtVec(i)
	}

	return out
}

// valid reports ErrUninitialized for the zero value.
func (p Pose) valid() error {
	if p.n == 0 {
		return ErrUninitialized
	}

	return nil
}
