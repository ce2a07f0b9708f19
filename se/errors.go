// Package se: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the se
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package se

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "se: ..." so failures can be attributed at
// a glance in wrapped chains. Operations wrap sentinels at their boundary
// with opErr, keeping a stable "Op: se: ..." shape; callers still match the
// sentinel via errors.Is.

var (
	// ErrInvalidDimension indicates a dimension parameter below 2; SE(0) and
	// SE(1) have no rotation block and are not represented here.
	ErrInvalidDimension = errors.New("se: dimension must be at least 2")

	// ErrUnsupportedDimension marks operations whose closed forms are only
	// implemented for N ∈ {2, 3} (rotation maps, adjoint, Jacobians).
	ErrUnsupportedDimension = errors.New("se: operation requires dimension 2 or 3")

	// ErrDimensionMismatch indicates an operation between entities of
	// different dimension N, or a point/vector of the wrong length. Never a
	// silent truncation or broadcast.
	ErrDimensionMismatch = errors.New("se: dimension mismatch")

	// ErrBadVectorLength indicates a coordinate vector whose length does not
	// equal dof(N) = N(N+1)/2.
	ErrBadVectorLength = errors.New("se: coordinate vector length must equal N(N+1)/2")

	// ErrBadShape indicates a matrix argument of the wrong dimensions
	// (rotation block not N×N, full matrix not (N+1)×(N+1)).
	ErrBadShape = errors.New("se: matrix has wrong shape")

	// ErrNotSkewSymmetric indicates that the rotation block of a matrix-form
	// algebra element violates skew symmetry within DefaultEpsilon.
	ErrNotSkewSymmetric = errors.New("se: rotation block is not skew-symmetric")

	// ErrBadBottomRow indicates that the bottom row of a matrix-form element
	// is not [0 … 0] (algebra) or [0 … 0 1] (group) within DefaultEpsilon.
	ErrBadBottomRow = errors.New("se: bottom row has invalid entries")

	// ErrUninitialized indicates a zero-value Tangent or Pose; values must
	// come from a package constructor.
	ErrUninitialized = errors.New("se: value not constructed; use a package constructor")
)

// opErr wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func opErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
