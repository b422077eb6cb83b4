package basis_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCombine_Identity: combining a single term with outer weight 1 keeps
// its evaluation unchanged.
func TestCombine_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	term := randomTerm(t, rng, 3)

	combined, err := basis.Combine([]*basis.Term{term}, []float64{1})
	require.NoError(t, err)

	r := randomDistances(rng, 3)
	want, err := term.Evaluate(r)
	require.NoError(t, err)
	got, err := combined.Evaluate(r)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// TestCombine_ZeroWeight: a zero outer weight cancels every coefficient,
// leaving an empty term that evaluates to 0.
func TestCombine_ZeroWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	term := randomTerm(t, rng, 4)

	combined, err := basis.Combine([]*basis.Term{term}, []float64{0})
	require.NoError(t, err)
	assert.Zero(t, combined.Len())

	v, err := combined.Evaluate(randomDistances(rng, 4))
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestCombine_MergesDuplicates: identical tuples across inputs fold into
// one row with summed coefficients, and opposite weights cancel exactly.
func TestCombine_MergesDuplicates(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")
	a, err := basis.New(3,
		[]basis.Tuple{{1, 0, 0, 0}, {0, 1, 0, 0}}, []float64{2, 1}, dict)
	require.NoError(t, err)
	b, err := basis.New(3,
		[]basis.Tuple{{0, 1, 0, 0}, {0, 0, 1, 0}}, []float64{3, 4}, dict)
	require.NoError(t, err)

	combined, err := basis.Combine([]*basis.Term{a, b}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, combined.Len())

	// Rows come back sorted: (0,0,1,0), (0,1,0,0), (1,0,0,0).
	assert.Equal(t, []float64{2 * 4, 1*1 + 2*3, 1 * 2}, combined.Coefficients())

	// Exact cancellation drops the shared row entirely.
	cancelled, err := basis.Combine([]*basis.Term{a, b}, []float64{3, -1})
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled.Len())
}

// TestCombine_LinearCombination: Combine(ws, terms) evaluates to the dot
// product of weights with per-term values.
func TestCombine_LinearCombination(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	terms := []*basis.Term{randomTerm(t, rng, 4), randomTerm(t, rng, 4), randomTerm(t, rng, 4)}
	outer := []float64{0.5, -2, 1.25}

	combined, err := basis.Combine(terms, outer)
	require.NoError(t, err)

	r := randomDistances(rng, 4)
	var want float64
	for i, term := range terms {
		v, err := term.Evaluate(r)
		require.NoError(t, err)
		want += outer[i] * v
	}

	got, err := combined.Evaluate(r)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-10)
}

func TestCombine_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	_, err := basis.Combine(nil, nil)
	assert.ErrorIs(t, err, basis.ErrNoTerms)

	t3 := randomTerm(t, rng, 3)
	_, err = basis.Combine([]*basis.Term{t3}, []float64{1, 2})
	assert.ErrorIs(t, err, basis.ErrLengthMismatch)

	t4 := randomTerm(t, rng, 4)
	_, err = basis.Combine([]*basis.Term{t3, t4}, []float64{1, 1})
	assert.ErrorIs(t, err, basis.ErrBodyOrderMismatch)
}

// TestCombine_DictionaryWarning: mixing dictionaries with different symbols
// fires the warning hook; the first term's dictionary wins.
func TestCombine_DictionaryWarning(t *testing.T) {
	var captured []string
	basis.SetWarnFunc(func(format string, args ...any) {
		captured = append(captured, fmt.Sprintf(format, args...))
	})
	defer basis.SetWarnFunc(nil)

	a, err := basis.New(2, []basis.Tuple{{1, 0}}, []float64{1}, mustDict(t, "inv", "cos(4.5,6.0)"))
	require.NoError(t, err)
	b, err := basis.New(2, []basis.Tuple{{2, 0}}, []float64{1}, mustDict(t, "exp(1.5)", "cos(4.5,6.0)"))
	require.NoError(t, err)

	combined, err := basis.Combine([]*basis.Term{a, b}, []float64{1, 1})
	require.NoError(t, err)
	require.NotEmpty(t, captured)

	tr, _, err := combined.Dictionary().Names()
	require.NoError(t, err)
	assert.Equal(t, "inv", tr)
}

// TestCombine_OneBody: one-body constants sum through the outer weights.
func TestCombine_OneBody(t *testing.T) {
	combined, err := basis.Combine(
		[]*basis.Term{basis.NewOneBody(2), basis.NewOneBody(-0.5)},
		[]float64{1, 4})
	require.NoError(t, err)

	v, err := combined.Evaluate(nil)
	require.NoError(t, err)
	assert.Zero(t, v, "1·2 + 4·(−0.5) cancels")
}
