package so3_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvlie/so3"
)

// eye returns the n×n identity matrix.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// scaled returns axis (not necessarily unit) scaled so that its norm is t.
func scaled(axis []float64, t float64) []float64 {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	out := make([]float64, 3)
	for i := range out {
		out[i] = axis[i] / n * t
	}

	return out
}

// quatRotate rotates x by the unit quaternion equivalent of the rotation
// vector w, as an independent reference for Exp.
func quatRotate(w, x []float64) []float64 {
	t := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
	q := quat.Number{Real: 1}
	if t > 0 {
		s := math.Sin(t/2) / t
		q = quat.Number{Real: math.Cos(t / 2), Imag: w[0] * s, Jmag: w[1] * s, Kmag: w[2] * s}
	}
	p := quat.Number{Imag: x[0], Jmag: x[1], Kmag: x[2]}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))

	return []float64{r.Imag, r.Jmag, r.Kmag}
}

// TestHatVee_RoundTrip verifies that Vee inverts Hat and vice versa.
func TestHatVee_RoundTrip(t *testing.T) {
	w := []float64{0.3, -1.2, 2.5}

	k, err := so3.Hat(w)
	require.NoError(t, err)
	require.True(t, so3.IsSkewSymmetric(k, 0))

	got, err := so3.Vee(k)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

// TestHatVee_Errors checks the precondition failures of Hat and Vee.
func TestHatVee_Errors(t *testing.T) {
	_, err := so3.Hat([]float64{1, 2})
	assert.ErrorIs(t, err, so3.ErrBadLength)

	_, err = so3.Vee(mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, so3.ErrBadShape)

	_, err = so3.Vee(eye(3))
	assert.ErrorIs(t, err, so3.ErrNotSkewSymmetric)
}

// TestExp_Zero checks that the zero vector maps to the identity rotation.
func TestExp_Zero(t *testing.T) {
	r, err := so3.Exp([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.True(t, mat.Equal(r, eye(3)))
}

// TestExp_IsRotation verifies RᵀR = I and det R = 1 across magnitudes,
// including values straddling the small-angle cutoff.
func TestExp_IsRotation(t *testing.T) {
	for _, theta := range []float64{1e-12, 1e-8, 1e-5, 1e-3, 0.5, 2.0, 3.1} {
		w := scaled([]float64{1, -2, 0.5}, theta)

		r, err := so3.Exp(w)
		require.NoError(t, err)

		var rtr mat.Dense
		rtr.Mul(r.T(), r)
		assert.True(t, mat.EqualApprox(&rtr, eye(3), 1e-12), "RᵀR at θ=%g", theta)
		assert.InDelta(t, 1.0, mat.Det(r), 1e-12, "det at θ=%g", theta)
	}
}

// TestExp_MatchesQuaternion cross-checks Rodrigues' formula against
// quaternion rotation of sample vectors.
func TestExp_MatchesQuaternion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xs := [][]float64{{1, 0, 0}, {0, 1, 0}, {0.3, -0.4, 1.2}}

	for i := 0; i < 50; i++ {
		w := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}

		r, err := so3.Exp(w)
		require.NoError(t, err)

		for _, x := range xs {
			want := quatRotate(w, x)
			for row := 0; row < 3; row++ {
				got := r.At(row, 0)*x[0] + r.At(row, 1)*x[1] + r.At(row, 2)*x[2]
				assert.InDelta(t, want[row], got, 1e-12)
			}
		}
	}
}

// TestLog_RoundTrip checks Log(Exp(w)) = w over the open domain (0, π),
// with magnitudes down to 1e-10 and up to just below π.
func TestLog_RoundTrip(t *testing.T) {
	axes := [][]float64{{1, 0, 0}, {0, 0, 1}, {1, 1, 1}, {-2, 0.5, 1.3}}
	thetas := []float64{1e-10, 1e-6, 1e-4, 0.1, 1.0, 2.5, 3.0, math.Pi - 1e-3, math.Pi - 1e-9}

	for _, axis := range axes {
		for _, theta := range thetas {
			w := scaled(axis, theta)

			r, err := so3.Exp(w)
			require.NoError(t, err)

			got, angle, err := so3.Log(r)
			require.NoError(t, err)
			assert.InDelta(t, theta, angle, 1e-9, "angle at θ=%g", theta)
			for i := range w {
				assert.InDelta(t, w[i], got[i], 1e-7, "θ=%g axis=%v component %d", theta, axis, i)
			}
		}
	}
}

// TestLog_AtPi checks the branch at exactly angle π: Log must return a
// vector of magnitude π that exponentiates back to the input rotation, even
// though the axis sign is a branch choice.
func TestLog_AtPi(t *testing.T) {
	for _, axis := range [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}, {0.2, -0.7, 0.4}} {
		w := scaled(axis, math.Pi)

		r, err := so3.Exp(w)
		require.NoError(t, err)

		got, angle, err := so3.Log(r)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, angle, 1e-9)

		back, err := so3.Exp(got)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(r, back, 1e-9), "axis %v", axis)
	}
}

// TestLeftJacobian_Inverse verifies J_l · J_l⁻¹ = I across magnitudes on
// both sides of the series cutoff.
func TestLeftJacobian_Inverse(t *testing.T) {
	for _, theta := range []float64{0, 1e-10, 1e-5, 1e-4, 1e-3, 0.7, 2.9} {
		w := scaled([]float64{0.3, 1.1, -0.6}, theta)

		jl, err := so3.LeftJacobian(w)
		require.NoError(t, err)
		ji, err := so3.LeftJacobianInv(w)
		require.NoError(t, err)

		var prod mat.Dense
		prod.Mul(jl, ji)
		assert.True(t, mat.EqualApprox(&prod, eye(3), 1e-9), "θ=%g", theta)
	}
}

// TestLeftJacobian_Property checks the defining property
// Exp(w + δ) ≈ Exp(J_l(w)·δ) · Exp(w) for small δ.
func TestLeftJacobian_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const h = 1e-6

	for i := 0; i < 20; i++ {
		w := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		d := []float64{h * rng.NormFloat64(), h * rng.NormFloat64(), h * rng.NormFloat64()}

		jl, err := so3.LeftJacobian(w)
		require.NoError(t, err)

		jld := []float64{
			jl.At(0, 0)*d[0] + jl.At(0, 1)*d[1] + jl.At(0, 2)*d[2],
			jl.At(1, 0)*d[0] + jl.At(1, 1)*d[1] + jl.At(1, 2)*d[2],
			jl.At(2, 0)*d[0] + jl.At(2, 1)*d[1] + jl.At(2, 2)*d[2],
		}

		wd := []float64{w[0] + d[0], w[1] + d[1], w[2] + d[2]}
		lhs, err := so3.Exp(wd)
		require.NoError(t, err)

		el, err := so3.Exp(jld)
		require.NoError(t, err)
		ew, err := so3.Exp(w)
		require.NoError(t, err)

		var rhs mat.Dense
		rhs.Mul(el, ew)

		assert.True(t, mat.EqualApprox(lhs, &rhs, 1e-10), "iteration %d", i)
	}
}

// TestLeftJacobian_CutoffContinuity compares the series and closed-form
// branches immediately on either side of the cutoff.
func TestLeftJacobian_CutoffContinuity(t *testing.T) {
	axis := []float64{1, 2, -1}
	below := scaled(axis, 0.99e-4)
	above := scaled(axis, 1.01e-4)

	jb, err := so3.LeftJacobian(below)
	require.NoError(t, err)
	ja, err := so3.LeftJacobian(above)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(jb, ja, 1e-8))
}
