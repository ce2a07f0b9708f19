// Package so2 implements the planar rotation group SO(2) and its
// one-dimensional Lie algebra so(2).
//
// SO(2) is abelian, so the whole package is elementary: the algebra is the
// real line, Hat/Vee move a single angle in and out of 2×2 skew-symmetric
// form, Exp builds the familiar cos/sin rotation matrix and Log recovers the
// angle with atan2 (principal branch, (-π, π]). There are no removable
// singularities anywhere.
//
// The package exists to back SE(2) in lvlie/se; it mirrors the so3 API so
// that se can treat both rotation subsystems uniformly.
package so2
