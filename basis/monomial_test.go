package basis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonomial_Value pins sparse evaluation: zero exponents skipped,
// exponent 1 multiplies directly.
func TestMonomial_Value(t *testing.T) {
	primary := []float64{2, 3, 5}

	assert.Equal(t, 1.0, basis.Monomial([]int{0, 0, 0}, primary), "degree-0 monomial is exactly 1")
	assert.Equal(t, 3.0, basis.Monomial([]int{0, 1, 0}, primary))
	assert.Equal(t, 4.0*5.0, basis.Monomial([]int{2, 0, 1}, primary))
	assert.Equal(t, 8.0*9.0*25.0, basis.Monomial([]int{3, 2, 2}, primary))
}

// TestMonomialD_ZeroTuple: value 1 and exactly zero gradient.
func TestMonomialD_ZeroTuple(t *testing.T) {
	v, g := basis.MonomialD([]int{0, 0, 0, 0}, []float64{1.1, 2.2, 3.3, 4.4})
	assert.Equal(t, 1.0, v)
	assert.Equal(t, []float64{0, 0, 0, 0}, g)
}

// TestMonomialD_FiniteDifference checks the product-rule gradient against
// central differences for random sparse tuples.
func TestMonomialD_FiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const h = 1e-7

	for trial := 0; trial < 20; trial++ {
		m := 3 + rng.Intn(5)
		primary := make([]float64, m)
		exps := make([]int, m)
		for i := range primary {
			primary[i] = 0.5 + 2*rng.Float64()
			if rng.Float64() < 0.6 {
				exps[i] = rng.Intn(4)
			}
		}

		v, g := basis.MonomialD(exps, primary)
		assert.InDelta(t, basis.Monomial(exps, primary), v, 1e-12)

		for i := range primary {
			plus := append([]float64(nil), primary...)
			minus := append([]float64(nil), primary...)
			plus[i] += h
			minus[i] -= h
			num := (basis.Monomial(exps, plus) - basis.Monomial(exps, minus)) / (2 * h)
			require.InDelta(t, num, g[i], 1e-5*(1+absf(num)),
				"exps=%v primary=%v slot=%d", exps, primary, i)
		}
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
