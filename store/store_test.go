package store_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/katalvlaran/nbpoly/invariants"
	"github.com/katalvlaran/nbpoly/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sampleTerms(t *testing.T) []*basis.Term {
	t.Helper()
	dict, err := dictionary.New("poly(2)", "cos(4.5,6.0)")
	require.NoError(t, err)

	pair, err := basis.New(2, []basis.Tuple{{1, 0}, {3, 0}}, []float64{-1.5, 0.25}, dict)
	require.NoError(t, err)
	trimer, err := basis.New(3,
		[]basis.Tuple{{1, 0, 0, 0}, {0, 1, 0, 0}}, []float64{2, -0.5}, dict)
	require.NoError(t, err)

	return []*basis.Term{basis.NewOneBody(0.125), pair, trimer}
}

// TestStore_PutGet: a potential survives the round trip — order, body
// orders, and evaluation behavior intact.
func TestStore_PutGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	terms := sampleTerms(t)

	require.NoError(t, s.Put(ctx, "tin-dimer", terms))

	back, err := s.Get(ctx, "tin-dimer")
	require.NoError(t, err)
	require.Len(t, back, len(terms))

	rng := rand.New(rand.NewSource(7))
	for i, term := range terms {
		assert.Equal(t, term.BodyOrder(), back[i].BodyOrder(), "term %d", i)

		var r []float64
		if n := term.BodyOrder(); n > 1 {
			r = make([]float64, invariants.Edges(n))
			for j := range r {
				r[j] = 1 + 2*rng.Float64()
			}
		}

		want, err := term.Evaluate(r)
		require.NoError(t, err)
		got, err := back[i].Evaluate(r)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12*(1+math.Abs(want)), "term %d", i)
	}
}

// TestStore_PutReplaces: a second Put under the same name replaces, never
// appends.
func TestStore_PutReplaces(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	terms := sampleTerms(t)

	require.NoError(t, s.Put(ctx, "v1", terms))
	require.NoError(t, s.Put(ctx, "v1", terms[:1]))

	back, err := s.Get(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, back, 1)
}

// TestStore_Put_CustomDictionary: non-serializable terms abort the write
// and leave the previous contents untouched.
func TestStore_Put_CustomDictionary(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "pot", sampleTerms(t)))

	id := func(r float64) (float64, float64) { return r, 1 }
	one := func(r float64) (float64, float64) { return 1, 0 }
	custom, err := basis.New(2, []basis.Tuple{{1, 0}}, []float64{1},
		dictionary.NewCustom(id, one, 10))
	require.NoError(t, err)

	err = s.Put(ctx, "pot", []*basis.Term{custom})
	assert.ErrorIs(t, err, dictionary.ErrNotSerializable)

	back, err := s.Get(ctx, "pot")
	require.NoError(t, err)
	assert.Len(t, back, 3)
}

func TestStore_ListDelete(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	terms := sampleTerms(t)

	require.NoError(t, s.Put(ctx, "beta", terms))
	require.NoError(t, s.Put(ctx, "alpha", terms))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)

	require.NoError(t, s.Delete(ctx, "alpha"))
	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, names)

	assert.ErrorIs(t, s.Delete(ctx, "alpha"), store.ErrNotFound)

	_, err = s.Get(ctx, "alpha")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
