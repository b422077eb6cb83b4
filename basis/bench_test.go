package basis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/stretchr/testify/require"
)

func benchmarkEvaluate(b *testing.B, bodyOrder int) {
	rng := rand.New(rand.NewSource(42))
	term := benchTerm(b, rng, bodyOrder)
	r := randomDistances(rng, bodyOrder)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := term.Evaluate(r); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkGradient(b *testing.B, bodyOrder int) {
	rng := rand.New(rand.NewSource(42))
	term := benchTerm(b, rng, bodyOrder)
	r := randomDistances(rng, bodyOrder)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := term.Gradient(r); err != nil {
			b.Fatal(err)
		}
	}
}

// benchTerm mirrors randomTerm but hangs off *testing.B.
func benchTerm(b *testing.B, rng *rand.Rand, bodyOrder int) *basis.Term {
	b.Helper()

	dict, err := dictionary.New("exp(1.5)", "cos(4.5,6.0)")
	require.NoError(b, err)

	var tuples []basis.Tuple
	var coeffs []float64
	m := len(randomDistances(rng, bodyOrder))
	for k := 0; k < 8; k++ {
		tp := make(basis.Tuple, m+1)
		for j := 0; j < m; j++ {
			tp[j] = rng.Intn(3)
		}
		tuples = append(tuples, tp)
		coeffs = append(coeffs, rng.NormFloat64())
	}

	term, err := basis.New(bodyOrder, tuples, coeffs, dict)
	require.NoError(b, err)

	return term
}

func BenchmarkTermEvaluate_Body3(b *testing.B) { benchmarkEvaluate(b, 3) }
func BenchmarkTermEvaluate_Body4(b *testing.B) { benchmarkEvaluate(b, 4) }
func BenchmarkTermEvaluate_Body5(b *testing.B) { benchmarkEvaluate(b, 5) }

func BenchmarkTermGradient_Body3(b *testing.B) { benchmarkGradient(b, 3) }
func BenchmarkTermGradient_Body4(b *testing.B) { benchmarkGradient(b, 4) }
func BenchmarkTermGradient_Body5(b *testing.B) { benchmarkGradient(b, 5) }
