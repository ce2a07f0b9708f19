package se_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlie/se"
)

// tangentWithAngle draws a random tangent of dimension 3 whose rotation
// part has exactly the given magnitude.
func tangentWithAngle(rng *rand.Rand, angle float64) se.Tangent {
	axis := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	norm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])

	coords := []float64{
		rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(),
		axis[0] / norm * angle, axis[1] / norm * angle, axis[2] / norm * angle,
	}
	tau, err := se.NewTangent(3, coords)
	if err != nil {
		panic(err)
	}

	return tau
}

// TestExp_ZeroTangent: the identity of se(3) must map to the identity pose.
func TestExp_ZeroTangent(t *testing.T) {
	tau, err := se.NewTangent(3, []float64{0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	g, err := se.Exp(tau)
	require.NoError(t, err)

	assert.True(t, mat.Equal(g.Rotation(), eye3()), "rotation must be the 3×3 identity")
	assert.Equal(t, []float64{0, 0, 0}, g.Translation())
}

// TestLog_PureTranslation: a pose with identity rotation and t = [1,2,3]
// must log to the coordinates [1,2,3,0,0,0].
func TestLog_PureTranslation(t *testing.T) {
	g, err := se.NewPose(eye3(), []float64{1, 2, 3})
	require.NoError(t, err)

	tau, err := se.Log(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 0, 0, 0}, tau.Coords())
}

// TestRoundTrip_LogExp checks log(exp(τ)) = τ for rotation magnitudes
// spanning (0, π), including values deep inside the small-angle regime and
// just below the cut locus.
func TestRoundTrip_LogExp(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	angles := []float64{1e-10, 1e-7, 1e-4, 1e-2, 0.5, 1.5, 2.8, math.Pi - 1e-4}

	for _, angle := range angles {
		for i := 0; i < 10; i++ {
			tau := tangentWithAngle(rng, angle)

			g, err := se.Exp(tau)
			require.NoError(t, err)
			back, err := se.Log(g)
			require.NoError(t, err)

			assert.True(t, back.EqualApprox(tau, 1e-9),
				"round trip at angle %g: want %v, got %v", angle, tau.Coords(), back.Coords())
		}
	}
}

// TestRoundTrip_ExpLog checks exp(log(g)) = g for random poses.
func TestRoundTrip_ExpLog(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	for _, n := range []int{2, 3} {
		for i := 0; i < 20; i++ {
			g := randPose(rng, n)

			tau, err := se.Log(g)
			require.NoError(t, err)
			back, err := se.Exp(tau)
			require.NoError(t, err)

			assert.True(t, back.EqualApprox(g, 1e-9), "n=%d", n)
		}
	}
}

// TestRoundTrip_SE2 exercises the planar path across magnitudes, including
// the V-matrix series regime.
func TestRoundTrip_SE2(t *testing.T) {
	for _, theta := range []float64{1e-12, 1e-6, 1e-4, 0.1, 1.0, -2.5, math.Pi - 1e-6} {
		tau, err := se.NewTangent(2, []float64{0.7, -1.3, theta})
		require.NoError(t, err)

		g, err := se.Exp(tau)
		require.NoError(t, err)
		back, err := se.Log(g)
		require.NoError(t, err)

		assert.True(t, back.EqualApprox(tau, 1e-9), "θ=%g: got %v", theta, back.Coords())
	}
}

// TestExpMatrix agrees with Exp on the vector form and rejects bad input.
func TestExpMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tau := randTangent(rng, 3, 0.6)

	m, err := tau.Hat()
	require.NoError(t, err)

	fromMat, err := se.ExpMatrix(m)
	require.NoError(t, err)
	fromVec, err := se.Exp(tau)
	require.NoError(t, err)

	assert.True(t, fromMat.EqualApprox(fromVec, 1e-12))

	_, err = se.ExpMatrix(mat.NewDense(3, 4, nil))
	assert.ErrorIs(t, err, se.ErrBadShape)
}

// TestExp_TranslationUsesV: for a screw motion the translation must be
// V(θ)·ρ, not ρ — checked against the integral definition via matrix
// exponential by scaling-and-squaring of the hat form.
func TestExp_TranslationUsesV(t *testing.T) {
	tau, err := se.NewTangent(3, []float64{1, 0, 0, 0, 0, math.Pi / 2})
	require.NoError(t, err)

	g, err := se.Exp(tau)
	require.NoError(t, err)

	h, err := tau.Hat()
	require.NoError(t, err)
	var em mat.Dense
	em.Exp(h) // gonum dense matrix exponential as an independent reference

	gm, err := g.Matrix()
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(gm, &em, 1e-9))
}

// TestExp_UnsupportedDimension: there is no closed-form V beyond N=3.
func TestExp_UnsupportedDimension(t *testing.T) {
	tau, err := se.NewTangent(4, make([]float64, se.Dof(4)))
	require.NoError(t, err)

	_, err = se.Exp(tau)
	assert.ErrorIs(t, err, se.ErrUnsupportedDimension)

	g, err := se.NewPose(mat.NewDense(4, 4, nil), make([]float64, 4))
	require.NoError(t, err)
	_, err = se.Log(g)
	assert.ErrorIs(t, err, se.ErrUnsupportedDimension)
}
