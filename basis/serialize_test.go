package basis_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestTerm_YAMLRoundTrip: marshal, unmarshal, and require identical
// evaluation on random inputs for every supported body order.
func TestTerm_YAMLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for bodyOrder := 2; bodyOrder <= 5; bodyOrder++ {
		term := randomTerm(t, rng, bodyOrder)

		blob, err := yaml.Marshal(term)
		require.NoError(t, err)

		var back basis.Term
		require.NoError(t, yaml.Unmarshal(blob, &back))
		assert.Equal(t, term.BodyOrder(), back.BodyOrder())
		assert.Equal(t, term.Tuples(), back.Tuples())

		for trial := 0; trial < 10; trial++ {
			r := randomDistances(rng, bodyOrder)
			want, err := term.Evaluate(r)
			require.NoError(t, err)
			got, err := back.Evaluate(r)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12*(1+math.Abs(want)),
				"bodyOrder=%d", bodyOrder)
		}
	}
}

// TestTerm_YAMLRoundTrip_OneBody: one-body terms persist with a null
// dictionary and come back as a single summed constant.
func TestTerm_YAMLRoundTrip_OneBody(t *testing.T) {
	blob, err := yaml.Marshal(basis.NewOneBody(-1.5))
	require.NoError(t, err)
	assert.Contains(t, string(blob), "dictionary: []")

	var back basis.Term
	require.NoError(t, yaml.Unmarshal(blob, &back))
	v, err := back.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, -1.5, v)
}

// TestTerm_Marshal_CustomDictionary: symbol-less dictionaries refuse to
// persist.
func TestTerm_Marshal_CustomDictionary(t *testing.T) {
	id := func(r float64) (float64, float64) { return r, 1 }
	one := func(r float64) (float64, float64) { return 1, 0 }
	dict := dictionary.NewCustom(id, one, 10)

	term, err := basis.New(2, []basis.Tuple{{1, 0}}, []float64{1}, dict)
	require.NoError(t, err)

	_, err = yaml.Marshal(term)
	assert.ErrorIs(t, err, dictionary.ErrNotSerializable)
}

// TestTerm_Unmarshal_Malformed: bad dictionary shapes and invalid tuples
// are rejected on the way in.
func TestTerm_Unmarshal_Malformed(t *testing.T) {
	var term basis.Term

	err := yaml.Unmarshal([]byte(`
bodyOrder: 3
tuples: [[1, 0, 0, 0]]
coefficients: [1.0]
dictionary: ["inv"]
`), &term)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte(`
bodyOrder: 3
tuples: [[1, 0, 0]]
coefficients: [1.0]
dictionary: ["inv", "cos(4.5,6.0)"]
`), &term)
	assert.ErrorIs(t, err, basis.ErrTupleShape)

	err = yaml.Unmarshal([]byte(`
bodyOrder: 3
tuples: [[1, 0, 0, 0]]
coefficients: [1.0]
dictionary: ["warp(2)", "cos(4.5,6.0)"]
`), &term)
	assert.ErrorIs(t, err, dictionary.ErrUnknownSymbol)
}
