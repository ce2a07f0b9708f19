// Package se: the differential layer — closed-form Jacobians of the group
// operations and of the tangent exponential, in the [ρ, θ] coordinate
// ordering with right-multiplied (body-frame) perturbations.
//
// The load-bearing piece is the Q correction block of the SE(3) left
// Jacobian. Its four scalar coefficients are sin/cos series in the rotation
// angle with removable 0/0 singularities at zero; below qSmallAngle each is
// replaced by the first two nonzero terms of its Taylor expansion. The
// cutoff is larger than the one in so3 because the θ⁵ denominator of the
// last coefficient loses all significance much earlier than the θ² and θ³
// ones.

package se

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlie/so3"
)

// qSmallAngle is the series cutoff for the Q-block coefficients. At the
// cutoff the closed forms still carry ~11 significant digits and the
// two-term series are accurate to O(θ⁴) ≈ 1e-8 relative, so the switch is
// continuous well inside the guarantees of the package.
const qSmallAngle = 1e-2

// LeftJacobian returns the left Jacobian of se(3) at the tangent [ρ, θ]:
// the 6×6 block matrix
//
//	[ J_l(θ)  Q(ρ,θ) ]
//	[   0     J_l(θ) ]
//
// where J_l is the SO(3) left Jacobian and Q the translation-rotation
// coupling block. Only N=3 has this closed form; other dimensions return
// ErrUnsupportedDimension.
func (t Tangent) LeftJacobian() (*mat.Dense, error) {
	const op = "LeftJacobian"

	if err := t.valid(); err != nil {
		return nil, opErr(op, err)
	}
	if t.n != 3 {
		return nil, opErr(op, ErrUnsupportedDimension)
	}

	theta := t.coords[3:6]
	jl, _ := so3.LeftJacobian(theta)
	q := qBlock(t.coords[0:3], theta)

	out := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, jl.At(i, j))
			out.Set(i, j+3, q.At(i, j))
			out.Set(i+3, j+3, jl.At(i, j))
		}
	}

	return out, nil
}

// RightJacobian returns the right Jacobian of se(3), using the standard
// identity J_r(τ) = J_l(-τ).
func (t Tangent) RightJacobian() (*mat.Dense, error) {
	neg, err := t.Neg()
	if err != nil {
		return nil, opErr("RightJacobian", err)
	}

	j, err := neg.LeftJacobian()
	if err != nil {
		return nil, opErr("RightJacobian", err)
	}

	return j, nil
}

// qBlock computes the Q correction of the SE(3) left Jacobian:
//
//	Q = ½P + c1·(WP + PW + WPW) + c2·(WWP + PWW - 3WPW) + c3·(WPWW + WWPW)
//
// with P = ρ^, W = θ^, θa = ‖θ‖ and
//
//	c1 = (θa - sin θa)/θa³                 → 1/6   - θa²/120
//	c2 = (θa² + 2cos θa - 2)/(2θa⁴)        → 1/24  - θa²/720
//	c3 = (2θa - 3sin θa + θa·cos θa)/(2θa⁵) → 1/120 - θa²/2520
//
// Inputs have length 3 (callers validate).
func qBlock(rho, theta []float64) *mat.Dense {
	p := hat3(rho)
	w := hat3(theta)

	t2 := theta[0]*theta[0] + theta[1]*theta[1] + theta[2]*theta[2]
	ta := math.Sqrt(t2)

	var c1, c2, c3 float64
	if ta < qSmallAngle {
		c1 = 1.0/6 - t2/120
		c2 = 1.0/24 - t2/720
		c3 = 1.0/120 - t2/2520
	} else {
		st, ct := math.Sin(ta), math.Cos(ta)
		t4 := t2 * t2
		c1 = (ta - st) / (t2 * ta)
		c2 = (t2 + 2*ct - 2) / (2 * t4)
		c3 = (2*ta - 3*st + ta*ct) / (2 * t4 * ta)
	}

	var wp, pw, wpw, wwp, pww, wpww, wwpw mat.Dense
	wp.Mul(w, p)
	pw.Mul(p, w)
	wpw.Mul(&wp, w)
	wwp.Mul(w, &wp)
	pww.Mul(&pw, w)
	wpww.Mul(&wpw, w)
	wwpw.Mul(w, &wpw)

	q := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := 0.5*p.At(i, j) +
				c1*(wp.At(i, j)+pw.At(i, j)+wpw.At(i, j)) +
				c2*(wwp.At(i, j)+pww.At(i, j)-3*wpw.At(i, j)) +
				c3*(wpww.At(i, j)+wwpw.At(i, j))
			q.Set(i, j, v)
		}
	}

	return q
}

// ComposeJacobians returns the derivatives of the composition g1·g2 with
// respect to each operand, as a pair (∂/∂g1, ∂/∂g2):
//
//	∂(g1·g2)/∂g1 = Adjoint(g2⁻¹) = [[R2ᵀ, -R2ᵀ·t2^], [0, R2ᵀ]]
//	∂(g1·g2)/∂g2 = I
//
// (the right operand enters through its own body frame, so its block is the
// identity by convention).
//
// Errors: ErrUninitialized, ErrDimensionMismatch, ErrUnsupportedDimension.
func ComposeJacobians(g1, g2 Pose) (*mat.Dense, *mat.Dense, error) {
	const op = "ComposeJacobians"

	if err := g1.valid(); err != nil {
		return nil, nil, opErr(op, err)
	}
	if err := g2.valid(); err != nil {
		return nil, nil, opErr(op, err)
	}
	if err := sameDim(g1.n, g2.n); err != nil {
		return nil, nil, opErr(op, err)
	}

	inv, err := g2.Inverse()
	if err != nil {
		return nil, nil, opErr(op, err)
	}
	dg1, err := inv.Adjoint()
	if err != nil {
		return nil, nil, opErr(op, err)
	}

	return dg1, eye(Dof(g1.n)), nil
}

// InverseJacobian returns the derivative of the inversion map g → g⁻¹,
// which is -Adjoint(g).
//
// Errors: ErrUninitialized, ErrUnsupportedDimension.
func InverseJacobian(g Pose) (*mat.Dense, error) {
	ad, err := g.Adjoint()
	if err != nil {
		return nil, opErr("InverseJacobian", err)
	}
	ad.Scale(-1, ad)

	return ad, nil
}

// ActJacobian returns the derivative of the group action g ⋉ x with respect
// to the group element, evaluated at the point x: for N=3 the 3×6 matrix
// [R, -R·x^]; for N=2 the 2×3 analogue with the planar generator.
//
// Errors: ErrUninitialized, ErrDimensionMismatch (len(x) ≠ N),
// ErrUnsupportedDimension.
func ActJacobian(g Pose, x []float64) (*mat.Dense, error) {
	const op = "ActJacobian"

	if err := g.valid(); err != nil {
		return nil, opErr(op, err)
	}
	if err := supportedDim(g.n); err != nil {
		return nil, opErr(op, err)
	}
	if len(x) != g.n {
		return nil, opErr(op, ErrDimensionMismatch)
	}

	if g.n == 2 {
		// Generator column: R · d/dθ(Exp(θ^)x)|₀ = R·(-x_y, x_x).
		out := mat.NewDense(2, 3, nil)
		for i := 0; i < 2; i++ {
			out.Set(i, 0, g.r.At(i, 0))
			out.Set(i, 1, g.r.At(i, 1))
			out.Set(i, 2, g.r.At(i, 0)*(-x[1])+g.r.At(i, 1)*x[0])
		}

		return out, nil
	}

	var rxk mat.Dense
	rxk.Mul(g.r, hat3(x))

	out := mat.NewDense(3, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, g.r.At(i, j))
			out.Set(i, j+3, -rxk.At(i, j))
		}
	}

	return out, nil
}

// RetractJacobians returns the derivatives of the retraction g ⊕ τ = g·Exp(τ)
// with respect to the pose and the tangent, as a pair: the composition
// Jacobian evaluated at (g, Exp(τ)), and the right Jacobian of τ. Chain rule
// through the retraction; N=3 only, since the tangent right Jacobian is.
//
// Errors: ErrUninitialized, ErrDimensionMismatch, ErrUnsupportedDimension.
func RetractJacobians(g Pose, tau Tangent) (*mat.Dense, *mat.Dense, error) {
	const op = "RetractJacobians"

	if err := g.valid(); err != nil {
		return nil, nil, opErr(op, err)
	}
	if err := tau.valid(); err != nil {
		return nil, nil, opErr(op, err)
	}
	if err := sameDim(g.n, tau.n); err != nil {
		return nil, nil, opErr(op, err)
	}
	if g.n != 3 {
		return nil, nil, opErr(op, ErrUnsupportedDimension)
	}

	e, err := Exp(tau)
	if err != nil {
		return nil, nil, opErr(op, err)
	}
	dg, _, err := ComposeJacobians(g, e)
	if err != nil {
		return nil, nil, opErr(op, err)
	}
	dtau, err := tau.RightJacobian()
	if err != nil {
		return nil, nil, opErr(op, err)
	}

	return dg, dtau, nil
}
