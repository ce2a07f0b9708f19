// Package se: the exponential and logarithmic maps between se(N) and SE(N).
//
// Exp splits the tangent into translation ρ and rotation θ, exponentiates θ
// through the rotation subsystem, and corrects the translation with the
// V-matrix — the left Jacobian of the rotation part — so that t = V(θ)·ρ.
// Log inverts this with the closed-form V⁻¹, never a numeric linear solve,
// so the only genuine singularity is the one inherited from the rotation
// logarithm at angle π (see the package documentation).

package se

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlie/so2"
	"github.com/katalvlaran/lvlie/so3"
)

// smallAngle is the series cutoff for the SE(2) V-matrix coefficients; the
// SE(3) path inherits its cutoff from so3.
const smallAngle = 1e-4

// Exp is the exponential map of SE(n): it sends a tangent τ = [ρ, θ] to the
// pose (Exp_SO(θ), V(θ)·ρ). For a tangent handed around in matrix form, use
// ExpMatrix or vee it first — the two forms are equivalent by construction.
//
// Errors: ErrUninitialized, ErrUnsupportedDimension (the V-matrix closed
// form exists here for N ∈ {2, 3} only; the N-dimensional analogue needs
// the SO(N) left Jacobian and is out of scope).
func Exp(tau Tangent) (Pose, error) {
	const op = "Exp"

	if err := tau.valid(); err != nil {
		return Pose{}, opErr(op, err)
	}
	if err := supportedDim(tau.n); err != nil {
		return Pose{}, opErr(op, err)
	}

	var r, v *mat.Dense
	switch tau.n {
	case 2:
		theta := tau.coords[2]
		r = so2.Exp(theta)
		v = v2(theta)
	case 3:
		theta := tau.coords[3:6]
		r, _ = so3.Exp(theta)
		v, _ = so3.LeftJacobian(theta)
	}

	t := make([]float64, tau.n)
	for i := 0; i < tau.n; i++ {
		var s float64
		for j := 0; j < tau.n; j++ {
			s += v.At(i, j) * tau.coords[j]
		}
		t[i] = s
	}

	return Pose{n: tau.n, r: r, t: mat.NewVecDense(tau.n, t)}, nil
}

// ExpMatrix is Exp for a tangent given in (n+1)×(n+1) matrix form: it vees
// the matrix and exponentiates the result.
func ExpMatrix(m mat.Matrix) (Pose, error) {
	tau, err := TangentFromMatrix(m)
	if err != nil {
		return Pose{}, opErr("ExpMatrix", err)
	}

	return Exp(tau)
}

// Log is the logarithmic map of SE(n): it recovers the tangent [ρ, θ] with
// θ = Log_SO(R) and ρ = V(θ)⁻¹·t. For rotation angles strictly below π it
// is the exact inverse of Exp; at π the rotation part carries the branch
// choice of the rotation logarithm.
//
// Errors: ErrUninitialized, ErrUnsupportedDimension.
func Log(p Pose) (Tangent, error) {
	const op = "Log"

	if err := p.valid(); err != nil {
		return Tangent{}, opErr(op, err)
	}
	if err := supportedDim(p.n); err != nil {
		return Tangent{}, opErr(op, err)
	}

	var vinv *mat.Dense
	var theta []float64
	switch p.n {
	case 2:
		th, _ := so2.Log(p.r)
		theta = []float64{th}
		vinv = vInv2(th)
	case 3:
		w, _, _ := so3.Log(p.r)
		theta = w
		vinv, _ = so3.LeftJacobianInv(w)
	}

	coords := make([]float64, 0, Dof(p.n))
	for i := 0; i < p.n; i++ {
		var s float64
		for j := 0; j < p.n; j++ {
			s += vinv.At(i, j) * p.t.AtVec(j)
		}
		coords = append(coords, s)
	}
	coords = append(coords, theta...)

	return Tangent{n: p.n, coords: coords}, nil
}

// v2 is the SE(2) V-matrix,
//
//	V(θ) = (1/θ)·[[sin θ, -(1-cos θ)], [1-cos θ, sin θ]],
//
// with Taylor limits a = 1 - θ²/6, b = θ/2 - θ³/24 below smallAngle.
func v2(theta float64) *mat.Dense {
	var a, b float64
	if math.Abs(theta) < smallAngle {
		a = 1 - theta*theta/6
		b = theta/2 - theta*theta*theta/24
	} else {
		a = math.Sin(theta) / theta
		sh := math.Sin(theta / 2)
		b = 2 * sh * sh / theta
	}

	return mat.NewDense(2, 2, []float64{a, -b, b, a})
}

// vInv2 is the closed-form inverse of v2,
//
//	V⁻¹(θ) = [[α, θ/2], [-θ/2, α]],  α = (θ/2)·cot(θ/2),
//
// with the Taylor limit α = 1 - θ²/12 below smallAngle. α is finite on the
// whole principal branch; the genuine singularity sits at θ = 2π.
func vInv2(theta float64) *mat.Dense {
	var alpha float64
	if math.Abs(theta) < smallAngle {
		alpha = 1 - theta*theta/12
	} else {
		alpha = theta / 2 / math.Tan(theta/2)
	}
	b := theta / 2

	return mat.NewDense(2, 2, []float64{alpha, b, -b, alpha})
}

// hat3 is so3.Hat for a length-checked 3-vector.
func hat3(v []float64) *mat.Dense {
	k, _ := so3.Hat(v)

	return k
}
