package invariants_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/invariants"
)

// benchmarkCompute evaluates the transform for one body order.
func benchmarkCompute(b *testing.B, n int, withJacobian bool) {
	rng := rand.New(rand.NewSource(1))
	r := make([]float64, invariants.Edges(n))
	for i := range r {
		r[i] = 0.5 + 2.5*rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if withJacobian {
			_, _, _, _, err = invariants.ComputeAll(r)
		} else {
			_, _, err = invariants.Compute(r)
		}
		if err != nil {
			b.Fatalf("compute failed: %v", err)
		}
	}
}

func BenchmarkCompute_BodyOrder4(b *testing.B)    { benchmarkCompute(b, 4, false) }
func BenchmarkCompute_BodyOrder5(b *testing.B)    { benchmarkCompute(b, 5, false) }
func BenchmarkComputeAll_BodyOrder4(b *testing.B) { benchmarkCompute(b, 4, true) }
func BenchmarkComputeAll_BodyOrder5(b *testing.B) { benchmarkCompute(b, 5, true) }
