package ichol_test

import (
	"testing"

	"github.com/katalvlaran/lvlchol/ichol"
)

// benchmarkFactorize runs the factorization on a g×g grid Laplacian (n = g²)
// under the given options. It resets the timer after building the matrix and
// fails on unexpected errors.
func benchmarkFactorize(b *testing.B, g int, opts ...ichol.Option) {
	a := laplacian(b, g)

	b.ReportAllocs()
	b.ResetTimer() // ignore matrix construction
	for i := 0; i < b.N; i++ {
		if _, err := ichol.Factorize(a, opts...); err != nil {
			b.Fatalf("Factorize failed: %v", err)
		}
	}
}

// BenchmarkFactorize_CompleteSmall measures the no-dropping (complete)
// factorization on a 16×16 grid; fill-in dominates the cost here.
func BenchmarkFactorize_CompleteSmall(b *testing.B) {
	benchmarkFactorize(b, 16)
}

// BenchmarkFactorize_ThresholdMedium measures threshold dropping alone on a
// 32×32 grid.
func BenchmarkFactorize_ThresholdMedium(b *testing.B) {
	benchmarkFactorize(b, 32, ichol.WithDropTolerance(0.01))
}

// BenchmarkFactorize_ThresholdAndFillMedium measures the production-shaped
// configuration (threshold + fill cap) on a 32×32 grid.
func BenchmarkFactorize_ThresholdAndFillMedium(b *testing.B) {
	benchmarkFactorize(b, 32, ichol.WithDropTolerance(0.01), ichol.WithFillLimit(5))
}

// BenchmarkFactorize_FillOnlyLarge measures pure fill limiting on a 64×64
// grid (n = 4096), the regime where the partial selection earns its keep.
func BenchmarkFactorize_FillOnlyLarge(b *testing.B) {
	benchmarkFactorize(b, 64, ichol.WithFillLimit(5))
}

// BenchmarkSolve measures one preconditioner application on a 32×32 grid
// factor with a practical dropping configuration.
func BenchmarkSolve(b *testing.B) {
	a := laplacian(b, 32)
	f, err := ichol.Factorize(a, ichol.WithDropTolerance(0.01), ichol.WithFillLimit(5))
	if err != nil {
		b.Fatal(err)
	}
	r := make([]float64, a.N)
	z := make([]float64, a.N)
	for i := range r {
		r[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = f.Solve(z, r); err != nil {
			b.Fatal(err)
		}
	}
}
