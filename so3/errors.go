// Package so3: sentinel error set.
// All exported functions return these sentinels on precondition violations;
// tests and callers match them via errors.Is. No function panics on user
// input.

package so3

import "errors"

var (
	// ErrBadLength indicates that a rotation vector does not have length 3.
	ErrBadLength = errors.New("so3: rotation vector must have length 3")

	// ErrBadShape indicates that an input matrix is not 3×3.
	ErrBadShape = errors.New("so3: matrix must be 3×3")

	// ErrNotSkewSymmetric indicates that a matrix handed to Vee is not
	// skew-symmetric within DefaultEpsilon.
	ErrNotSkewSymmetric = errors.New("so3: matrix is not skew-symmetric")
)
