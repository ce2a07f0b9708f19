package so3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dim is the ambient dimension of SO(3) rotation matrices.
const Dim = 3

// Dof is the number of degrees of freedom of SO(3).
const Dof = 3

// DefaultEpsilon is the tolerance used by Vee when checking that the input
// matrix is skew-symmetric.
const DefaultEpsilon = 1e-9

// smallAngle is the cutoff below which the closed-form trigonometric
// coefficients of Exp, Log, LeftJacobian and LeftJacobianInv are replaced by
// the first two nonzero terms of their Taylor series. At the cutoff both
// branches agree to well below 1e-12 relative error, so the switch is
// continuous to machine precision.
const smallAngle = 1e-4

// nearPi is the width of the band below angle π in which Log switches to
// axis extraction from the symmetric part of the rotation. Inside this band
// the antisymmetric part is too small to carry the axis accurately.
const nearPi = 1e-6

// Hat maps a rotation vector w to its skew-symmetric matrix form w^,
// satisfying (w^)·x = w × x for every 3-vector x.
// Returns ErrBadLength unless len(w) == 3.
func Hat(w []float64) (*mat.Dense, error) {
	if len(w) != Dof {
		return nil, ErrBadLength
	}

	return mat.NewDense(3, 3, []float64{
		0, -w[2], w[1],
		w[2], 0, -w[0],
		-w[1], w[0], 0,
	}), nil
}

// Vee extracts the rotation vector from a 3×3 skew-symmetric matrix; it is
// the inverse of Hat. Returns ErrBadShape on wrong dimensions and
// ErrNotSkewSymmetric if the matrix violates skew symmetry within
// DefaultEpsilon.
func Vee(m mat.Matrix) ([]float64, error) {
	if r, c := m.Dims(); r != Dim || c != Dim {
		return nil, ErrBadShape
	}
	if !IsSkewSymmetric(m, DefaultEpsilon) {
		return nil, ErrNotSkewSymmetric
	}

	return []float64{m.At(2, 1), m.At(0, 2), m.At(1, 0)}, nil
}

// IsSkewSymmetric reports whether m is a 3×3 matrix satisfying mᵀ = -m
// within the absolute tolerance eps.
func IsSkewSymmetric(m mat.Matrix, eps float64) bool {
	if r, c := m.Dims(); r != Dim || c != Dim {
		return false
	}
	for i := 0; i < Dim; i++ {
		if math.Abs(m.At(i, i)) > eps {
			return false
		}
		for j := i + 1; j < Dim; j++ {
			if math.Abs(m.At(i, j)+m.At(j, i)) > eps {
				return false
			}
		}
	}

	return true
}

// Exp is the exponential map of SO(3): Rodrigues' formula
//
//	R = I + a·w^ + b·(w^)²,  a = sin θ / θ,  b = (1 - cos θ) / θ²,
//
// where θ = ‖w‖. For θ below smallAngle both coefficients use their Taylor
// limits, so Exp is finite for every input including w = 0.
// Returns ErrBadLength unless len(w) == 3.
func Exp(w []float64) (*mat.Dense, error) {
	if len(w) != Dof {
		return nil, ErrBadLength
	}

	t2 := w[0]*w[0] + w[1]*w[1] + w[2]*w[2]
	t := math.Sqrt(t2)

	var a, b float64
	if t < smallAngle {
		a = 1 - t2/6
		b = 0.5 - t2/24
	} else {
		a = math.Sin(t) / t
		sh := math.Sin(t / 2)
		b = 2 * sh * sh / t2
	}

	k, _ := Hat(w)

	return plusScaledSquare(a, b, k), nil
}

// Log is the logarithmic map of SO(3): it recovers the rotation vector w
// with ‖w‖ = angle ∈ [0, π] such that Exp(w) = r. The angle is returned
// alongside w since every caller needs it.
//
// Branches:
//   - angle < smallAngle: series for θ/sin θ applied to the antisymmetric part;
//   - generic: w = θ/(2 sin θ) · vee(r - rᵀ);
//   - π - angle < nearPi: axis magnitudes from the symmetric part
//     (r + rᵀ)/2 = cos θ·I + (1-cos θ)·aaᵀ, signs oriented along the
//     antisymmetric part while it is nonzero.
//
// At angle exactly π the axis sign is a branch choice: Exp maps both ±w to
// the same rotation, and Log picks one deterministically.
// r is assumed orthogonal; Log does not verify orthogonality.
// Returns ErrBadShape unless r is 3×3.
func Log(r mat.Matrix) ([]float64, float64, error) {
	if rows, cols := r.Dims(); rows != Dim || cols != Dim {
		return nil, 0, ErrBadShape
	}

	c := (r.At(0, 0) + r.At(1, 1) + r.At(2, 2) - 1) / 2
	c = math.Max(-1, math.Min(1, c))

	// Antisymmetric part: vee((r - rᵀ)/2) = sin θ · axis.
	sv := []float64{
		(r.At(2, 1) - r.At(1, 2)) / 2,
		(r.At(0, 2) - r.At(2, 0)) / 2,
		(r.At(1, 0) - r.At(0, 1)) / 2,
	}
	s := math.Min(1, math.Sqrt(sv[0]*sv[0]+sv[1]*sv[1]+sv[2]*sv[2]))
	angle := math.Atan2(s, c)

	w := make([]float64, Dof)
	switch {
	case angle < smallAngle:
		// θ / sin θ ≈ 1 + θ²/6.
		f := 1 + angle*angle/6
		for i := range w {
			w[i] = f * sv[i]
		}
	case math.Pi-angle > nearPi:
		f := angle / s
		for i := range w {
			w[i] = f * sv[i]
		}
	default:
		w = axisNearPi(r, c, sv)
		for i := range w {
			w[i] *= angle
		}
	}

	return w, angle, nil
}

// axisNearPi recovers the unit rotation axis from the symmetric part of r
// when sin θ is too small to carry it. (r + rᵀ)/2 - cos θ·I equals
// (1 - cos θ)·aaᵀ, a rank-one matrix whose largest diagonal entry pins the
// best-conditioned axis component.
func axisNearPi(r mat.Matrix, c float64, sv []float64) []float64 {
	onemc := 1 - c

	k := 0
	for i := 1; i < Dim; i++ {
		if r.At(i, i) > r.At(k, k) {
			k = i
		}
	}

	a := make([]float64, Dof)
	a[k] = math.Sqrt(math.Max(0, (r.At(k, k)-c)/onemc))
	for i := 0; i < Dim; i++ {
		if i != k {
			a[i] = (r.At(i, k) + r.At(k, i)) / (2 * onemc * a[k])
		}
	}

	// Keep the axis on the same side as the (possibly tiny) sine part.
	if sv[0]*a[0]+sv[1]*a[1]+sv[2]*a[2] < 0 {
		for i := range a {
			a[i] = -a[i]
		}
	}

	return a
}

// LeftJacobian returns the left Jacobian of SO(3) at the rotation vector w:
//
//	J_l = I + b·w^ + c·(w^)²,  b = (1 - cos θ)/θ²,  c = (θ - sin θ)/θ³.
//
// J_l relates an additive perturbation of w to the corresponding
// left-multiplied tangent of Exp(w); it also serves as the V-matrix that
// corrects the translation part of the SE(3) exponential. Taylor limits are
// substituted below smallAngle. Returns ErrBadLength unless len(w) == 3.
func LeftJacobian(w []float64) (*mat.Dense, error) {
	if len(w) != Dof {
		return nil, ErrBadLength
	}

	t2 := w[0]*w[0] + w[1]*w[1] + w[2]*w[2]
	t := math.Sqrt(t2)

	var b, c float64
	if t < smallAngle {
		b = 0.5 - t2/24
		c = 1.0/6 - t2/120
	} else {
		sh := math.Sin(t / 2)
		b = 2 * sh * sh / t2
		c = (t - math.Sin(t)) / (t2 * t)
	}

	k, _ := Hat(w)

	return plusScaledSquare(b, c, k), nil
}

// LeftJacobianInv returns the closed-form inverse of LeftJacobian:
//
//	J_l⁻¹ = I - w^/2 + e·(w^)²,  e = 1/θ² - (1 + cos θ)/(2θ sin θ).
//
// Using the closed form avoids a numeric 3×3 solve and is exact wherever
// J_l is invertible; J_l is genuinely singular only at θ = 2π, outside the
// [0, π] range produced by Log. Taylor limits are substituted below
// smallAngle. Returns ErrBadLength unless len(w) == 3.
func LeftJacobianInv(w []float64) (*mat.Dense, error) {
	if len(w) != Dof {
		return nil, ErrBadLength
	}

	t2 := w[0]*w[0] + w[1]*w[1] + w[2]*w[2]
	t := math.Sqrt(t2)

	var e float64
	if t < smallAngle {
		e = 1.0/12 + t2/720
	} else {
		e = 1/t2 - (1+math.Cos(t))/(2*t*math.Sin(t))
	}

	k, _ := Hat(w)

	return plusScaledSquare(-0.5, e, k), nil
}

// plusScaledSquare assembles I + a·k + b·k² for a skew matrix k.
func plusScaledSquare(a, b float64, k *mat.Dense) *mat.Dense {
	var k2 mat.Dense
	k2.Mul(k, k)

	out := mat.NewDense(Dim, Dim, nil)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			v := a*k.At(i, j) + b*k2.At(i, j)
			if i == j {
				v++
			}
			out.Set(i, j, v)
		}
	}

	return out
}
