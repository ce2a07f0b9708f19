package so3_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlie/so3"
)

// ExampleExp rotates the x-axis a quarter turn about z.
func ExampleExp() {
	r, _ := so3.Exp([]float64{0, 0, math.Pi / 2})

	fmt.Printf("%.0f %.0f %.0f\n", r.At(0, 0), r.At(1, 0), r.At(2, 0))
	// Output: 0 1 0
}

// ExampleLog recovers a rotation vector and its angle.
func ExampleLog() {
	r, _ := so3.Exp([]float64{0.3, 0, 0})
	w, angle, _ := so3.Log(r)

	fmt.Printf("%.1f %.1f %.1f angle=%.1f\n", w[0], w[1], w[2], angle)
	// Output: 0.3 0.0 0.0 angle=0.3
}

// ExampleHat shows the skew-symmetric form of a rotation vector.
func ExampleHat() {
	k, _ := so3.Hat([]float64{1, 2, 3})

	fmt.Println(k.At(0, 1), k.At(0, 2), k.At(1, 2))
	// Output: -3 2 -1
}
