// Package ichol_test: runnable documentation examples.
package ichol_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlchol/csc"
	"github.com/katalvlaran/lvlchol/ichol"
)

// ExampleFactorize factorizes the SPD tridiagonal [[4,1,0],[1,4,1],[0,1,4]]
// with dropping disabled; the result is the exact Cholesky factor.
func ExampleFactorize() {
	a, err := csc.New(
		3,
		[]int{0, 2, 4, 5},
		[]int{0, 1, 1, 2, 2},
		[]float64{4, 1, 4, 1, 4},
	)
	if err != nil {
		log.Fatal(err)
	}

	f, err := ichol.Factorize(a)
	if err != nil {
		log.Fatal(err)
	}

	l := f.L()
	for j := 0; j < l.N; j++ {
		for p := l.Ap[j]; p < l.Ap[j+1]; p++ {
			fmt.Printf("L[%d][%d] = %.4f\n", l.Ai[p], j, l.Ax[p])
		}
	}
	// Output:
	// L[0][0] = 2.0000
	// L[1][0] = 0.5000
	// L[1][1] = 1.9365
	// L[2][1] = 0.5164
	// L[2][2] = 1.9322
}

// ExampleFactorize_dropTolerance shows the Jacobi degeneration: a drop
// tolerance above every off-diagonal contribution leaves only the diagonal.
func ExampleFactorize_dropTolerance() {
	a, err := csc.New(
		3,
		[]int{0, 2, 4, 5},
		[]int{0, 1, 1, 2, 2},
		[]float64{4, 1, 4, 1, 4},
	)
	if err != nil {
		log.Fatal(err)
	}

	f, err := ichol.Factorize(a, ichol.WithDropTolerance(10))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("nnz:", f.NNZ())
	l := f.L()
	for j := 0; j < l.N; j++ {
		fmt.Printf("L[%d][%d] = %.1f\n", j, j, l.Ax[l.Ap[j]])
	}
	// Output:
	// nnz: 3
	// L[0][0] = 2.0
	// L[1][1] = 2.0
	// L[2][2] = 2.0
}

// ExampleFactor_Solve applies the factor as a preconditioner: with dropping
// disabled, solving L·Lᵗ·z = A·x recovers x exactly (up to rounding).
func ExampleFactor_Solve() {
	a, err := csc.New(
		3,
		[]int{0, 2, 4, 5},
		[]int{0, 1, 1, 2, 2},
		[]float64{4, 1, 4, 1, 4},
	)
	if err != nil {
		log.Fatal(err)
	}

	f, err := ichol.Factorize(a)
	if err != nil {
		log.Fatal(err)
	}

	x := []float64{1, 2, 3}
	b := make([]float64, 3)
	_ = a.MulVecSym(b, x) // b = A·x

	z := make([]float64, 3)
	if err = f.Solve(z, b); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("z = [%.1f %.1f %.1f]\n", z[0], z[1], z[2])
	// Output:
	// z = [1.0 2.0 3.0]
}
