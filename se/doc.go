// Package se implements the Special Euclidean group SE(N) — rigid-body
// transformations (rotation + translation) in N-dimensional space — together
// with its Lie algebra se(N), the exponential/logarithmic maps connecting
// them, and the closed-form Jacobians needed for optimization on the
// manifold (pose-graph estimation, robotics state estimation).
//
// 🚀 What does se provide?
//
//	• Tangent — se(N) algebra element: dof(N) = N(N+1)/2 coordinates ordered
//	  [ρ (translation), θ (rotation)], with Hat/Vee conversion to and from
//	  the (N+1)×(N+1) matrix form, vector-space operations, and — for N=3 —
//	  the left/right Jacobian with the Q correction block.
//	• Pose — SE(N) group element: rotation block + translation vector, with
//	  Identity, Inverse, Compose, Act (group action on points), homogeneous
//	  Matrix form, Adjoint, Retract (⊕) and approximate equality.
//	• Exp / Log — the (locally bijective) maps between algebra and group,
//	  built from the so2/so3 rotation maps plus the V-matrix correction for
//	  the translation part.
//	• Jacobian layer — ComposeJacobians, InverseJacobian, ActJacobian,
//	  RetractJacobians: analytic derivatives for chain-rule propagation
//	  through group operations. No finite differencing anywhere.
//
// Dimension handling:
//
// N is a runtime field checked fail-fast at every boundary: operations
// between elements of mismatched N return ErrDimensionMismatch, never a
// silent coercion. Pure group operations (Compose, Inverse, Act, Matrix)
// work for any N ≥ 2; operations that need a rotation exp/log or hat/vee
// (Exp, Log, Hat, Vee, Adjoint, the Jacobian layer) are implemented for
// N ∈ {2, 3} and return ErrUnsupportedDimension otherwise — generalizing
// the V-matrix beyond N=3 needs the SO(N) left Jacobian and is deliberately
// out of scope.
//
// Domain of Log:
//
// Exp and Log are exact mutual inverses for rotation angles strictly below
// π. At angle π the rotation logarithm is a branch choice (Exp maps ±θ to
// the same rotation); Log stays finite and exp-consistent there, but the
// sign of the rotation part is convention, and round-trip identity with the
// original tangent is not guaranteed at the cut locus.
//
// Everything in this package is a pure function of value types: no shared
// mutable state, safe for concurrent use across independent inputs.
package se
