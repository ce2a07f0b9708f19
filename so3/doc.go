// Package so3 implements the rotation group SO(3) and its Lie algebra so(3):
// the rotation-vector (axis-angle) parameterization of 3-D rotations.
//
// 🚀 What does so3 provide?
//
//	• Hat / Vee            — 3-vector ↔ 3×3 skew-symmetric matrix
//	• Exp                  — Rodrigues' formula, rotation vector → matrix
//	• Log                  — trace-based inverse with a dedicated near-π branch
//	• LeftJacobian         — J_l(θ) = I + b·θ^ + c·θ^², closed form
//	• LeftJacobianInv      — closed-form inverse of J_l, no linear solve
//	• IsSkewSymmetric      — structural predicate used by Vee and callers
//
// Numeric policy:
//
// Every coefficient in Exp, LeftJacobian and LeftJacobianInv has a removable
// 0/0 singularity as the rotation angle approaches zero. Below the cutoff
// smallAngle each coefficient is replaced by the first two nonzero terms of
// its Taylor series, so no input — including the exact zero vector — can
// produce NaN or Inf. Above the cutoff, 1-cos θ is evaluated as 2·sin²(θ/2)
// to avoid cancellation. Log resolves the axis-direction ambiguity near
// angle π by extracting the axis from the symmetric part of the matrix.
//
// All angles are in radians; Log returns magnitudes on [0, π].
package so3
