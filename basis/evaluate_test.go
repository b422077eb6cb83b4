package basis_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/katalvlaran/nbpoly/invariants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateMany_MatchesSingle: batch results agree with per-term calls,
// one-body constants included.
func TestEvaluateMany_MatchesSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	terms := []*basis.Term{
		basis.NewOneBody(0.75),
		randomTerm(t, rng, 3),
		randomTerm(t, rng, 3),
		randomTerm(t, rng, 3),
	}
	r := randomDistances(rng, 3)

	vals, err := basis.EvaluateMany(terms, r)
	require.NoError(t, err)
	require.Len(t, vals, len(terms))

	vals2, grads2, err := basis.GradientMany(terms, r)
	require.NoError(t, err)

	for i, term := range terms {
		want, gw, err := term.Gradient(r)
		require.NoError(t, err)
		assert.InDelta(t, want, vals[i], 1e-12*(1+math.Abs(want)), "term %d", i)
		assert.InDelta(t, want, vals2[i], 1e-12*(1+math.Abs(want)), "term %d", i)
		for j := range gw {
			assert.InDelta(t, gw[j], grads2[i][j], 1e-12*(1+math.Abs(gw[j])),
				"term %d edge %d", i, j)
		}
	}
}

// TestEvaluateMany_SharedTransform: terms sharing one Dictionary instance
// trigger exactly one transform pass (one call per edge) regardless of how
// many terms ride on it.
func TestEvaluateMany_SharedTransform(t *testing.T) {
	var calls int
	counting := func(r float64) (float64, float64) {
		calls++

		return 1 / r, -1 / (r * r)
	}
	plateau := func(r float64) (float64, float64) { return 1, 0 }
	dict := dictionary.NewCustom(counting, plateau, 100)

	var terms []*basis.Term
	for k := 1; k <= 5; k++ {
		term, err := basis.New(3, []basis.Tuple{{k, 0, 0, 0}}, []float64{1}, dict)
		require.NoError(t, err)
		terms = append(terms, term)
	}

	_, err := basis.EvaluateMany(terms, []float64{1.0, 1.5, 2.0})
	require.NoError(t, err)
	assert.Equal(t, invariants.Edges(3), calls)
}

// TestEvaluateMany_SharedSymbolicForm: distinctly allocated dictionaries
// with identical symbols produce identical batch values.
func TestEvaluateMany_SharedSymbolicForm(t *testing.T) {
	a, err := basis.New(3, []basis.Tuple{{1, 1, 0, 0}}, []float64{2},
		mustDict(t, "poly(2)", "cos(4.5,6.0)"))
	require.NoError(t, err)
	b, err := basis.New(3, []basis.Tuple{{1, 1, 0, 0}}, []float64{2},
		mustDict(t, "poly(2)", "cos(4.5,6.0)"))
	require.NoError(t, err)

	vals, err := basis.EvaluateMany([]*basis.Term{a, b}, []float64{1.1, 1.3, 0.9})
	require.NoError(t, err)
	assert.Equal(t, vals[0], vals[1])
}

// TestEvaluateMany_NumericCorruption: a transform emitting NaN poisons the
// batch and the error names the offending term.
func TestEvaluateMany_NumericCorruption(t *testing.T) {
	poisoned := func(r float64) (float64, float64) { return math.NaN(), 0 }
	plateau := func(r float64) (float64, float64) { return 1, 0 }
	dict := dictionary.NewCustom(poisoned, plateau, 100)

	bad, err := basis.New(2, []basis.Tuple{{1, 0}}, []float64{1}, dict)
	require.NoError(t, err)

	_, err = basis.EvaluateMany([]*basis.Term{bad}, []float64{1.0})
	assert.ErrorIs(t, err, basis.ErrNumericCorruption)

	_, _, err = basis.GradientMany([]*basis.Term{bad}, []float64{1.0})
	assert.ErrorIs(t, err, basis.ErrNumericCorruption)
}

// TestGradientMany_OneBody: constants carry zero gradients sized to the
// distance vector.
func TestGradientMany_OneBody(t *testing.T) {
	vals, grads, err := basis.GradientMany(
		[]*basis.Term{basis.NewOneBody(3)}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, vals)
	assert.Equal(t, []float64{0, 0, 0}, grads[0])
}
