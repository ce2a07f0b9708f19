// Package lvlie is a pure algebraic kernel for rigid-body transformations —
// the Special Euclidean group SE(N) and its Lie algebra se(N) — aimed at
// pose-graph estimation, SLAM and robotics state-estimation code.
//
// 🚀 What is lvlie?
//
//	A small, deterministic library that brings together:
//		• se(N) algebra: tangent vectors, hat/vee, vector-space operations
//		• SE(N) group: compose, invert, act on points, homogeneous form, adjoint
//		• Exponential & logarithmic maps between algebra and group
//		• Closed-form Jacobians: composition, inverse, action, retraction,
//		  and the SE(3) left/right Jacobian with the Q correction block
//		• SO(2)/SO(3) rotation primitives: Rodrigues exp, trace log,
//		  left Jacobian and its inverse
//
// ✨ Why choose lvlie?
//
//   - Fail-fast – every dimension mismatch is a sentinel error, never a
//     silent broadcast
//   - Numerically careful – every removable angle→0 singularity is replaced
//     by its Taylor limit below a documented cutoff; no NaN leaks
//   - Pure functions – value types, no shared mutable state, safe to call
//     from any number of goroutines
//   - gonum-native – all matrices are gonum/mat values, ready to feed into
//     downstream solvers
//
// Under the hood, everything is organized under three subpackages:
//
//	so2/ — SO(2) rotations: the trivial abelian case backing SE(2)
//	so3/ — SO(3) rotations: exp, log (with near-π branch), left Jacobian
//	se/  — se(N)/SE(N): algebra, group, exp/log maps and the Jacobian layer
//
// The packages are consumed bottom-up: an se.Tangent flows through se.Exp
// into an se.Pose, poses compose and act on points, and se.Log takes a pose
// back to its tangent coordinates. Jacobians are computed alongside these
// operations for use by external optimizers.
//
//	go get github.com/katalvlaran/lvlie/se
package lvlie
