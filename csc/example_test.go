// Package csc_test: runnable documentation examples.
package csc_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlchol/csc"
)

// ExampleMatrix_MulVecSym multiplies the symmetric tridiagonal
// [[4,1,0],[1,4,1],[0,1,4]] (stored as its lower triangle) by a vector.
func ExampleMatrix_MulVecSym() {
	a, err := csc.New(
		3,
		[]int{0, 2, 4, 5},
		[]int{0, 1, 1, 2, 2},
		[]float64{4, 1, 4, 1, 4},
	)
	if err != nil {
		log.Fatal(err)
	}

	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	if err = a.MulVecSym(y, x); err != nil {
		log.Fatal(err)
	}
	fmt.Println(y)
	// Output:
	// [6 12 14]
}
