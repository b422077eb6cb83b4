package tuples_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/invariants"
	"github.com/katalvlaran/nbpoly/tuples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce enumerates every tuple with exponents and selector bounded by
// the degree cap, keeping the admissible ones. Exponents never exceed
// maxDeg because every primary degree is at least 1.
func bruteForce(t *testing.T, bodyOrder, maxDeg int) map[string]bool {
	t.Helper()

	pdeg, err := invariants.PrimaryDegrees(bodyOrder)
	require.NoError(t, err)
	nsec, err := invariants.NumSecondary(bodyOrder)
	require.NoError(t, err)

	admissible := map[string]bool{}
	tp := make(basis.Tuple, len(pdeg)+1)

	var walk func(slot int)
	walk = func(slot int) {
		if slot == len(pdeg) {
			for s := 0; s < nsec; s++ {
				tp[slot] = s
				deg, err := tuples.TotalDegree(bodyOrder, tp)
				require.NoError(t, err)
				if deg > 0 && deg <= maxDeg {
					admissible[fmt.Sprint(tp)] = true
				}
			}
			tp[slot] = 0

			return
		}
		for e := 0; e*pdeg[slot] <= maxDeg; e++ {
			tp[slot] = e
			walk(slot + 1)
		}
		tp[slot] = 0
	}
	walk(0)

	return admissible
}

// TestGenerate_MatchesBruteForce: the pruned odometer finds exactly the
// admissible set — no omissions (the zero-tuple continuation in
// particular keeps pure power tuples reachable), no extras, no duplicates.
func TestGenerate_MatchesBruteForce(t *testing.T) {
	cases := []struct{ bodyOrder, maxDeg int }{
		{2, 6},
		{3, 5},
		{4, 4},
		{5, 3},
	}

	for _, tc := range cases {
		pred, err := tuples.MaxDegree(tc.bodyOrder, tc.maxDeg)
		require.NoError(t, err)

		got, err := tuples.Generate(tc.bodyOrder, pred)
		require.NoError(t, err)

		want := bruteForce(t, tc.bodyOrder, tc.maxDeg)
		require.Len(t, got, len(want),
			"bodyOrder=%d maxDeg=%d", tc.bodyOrder, tc.maxDeg)

		seen := map[string]bool{}
		for _, tp := range got {
			key := fmt.Sprint(tp)
			assert.False(t, seen[key], "duplicate tuple %v", tp)
			seen[key] = true
			assert.True(t, want[key], "inadmissible tuple %v emitted", tp)
			assert.True(t, pred(tp))
		}
	}
}

// TestGenerate_PurePowers: the axis tuples (k,0,…,0) survive even though
// the all-zero tuple below them is rejected.
func TestGenerate_PurePowers(t *testing.T) {
	pred, err := tuples.MaxDegree(3, 4)
	require.NoError(t, err)
	got, err := tuples.Generate(3, pred)
	require.NoError(t, err)

	for k := 1; k <= 4; k++ {
		assert.Contains(t, got, basis.Tuple{k, 0, 0, 0})
	}
}

// TestGenerate_Deterministic: same inputs, same order.
func TestGenerate_Deterministic(t *testing.T) {
	pred, err := tuples.MaxDegree(4, 5)
	require.NoError(t, err)

	a, err := tuples.Generate(4, pred)
	require.NoError(t, err)
	b, err := tuples.Generate(4, pred)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := tuples.Generate(3, nil)
	assert.ErrorIs(t, err, tuples.ErrNilPredicate)

	pred, err := tuples.MaxDegree(3, 3)
	require.NoError(t, err)
	_, err = tuples.Generate(9, pred)
	assert.ErrorIs(t, err, invariants.ErrBodyOrder)

	_, err = tuples.MaxDegree(0, 3)
	assert.ErrorIs(t, err, invariants.ErrBodyOrder)
}

func TestTotalDegree(t *testing.T) {
	// Three-body primaries have degrees 1,2,3; the lone secondary is a
	// constant.
	deg, err := tuples.TotalDegree(3, basis.Tuple{2, 1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2*1+1*2+1*3, deg)

	// Four-body secondary 2 contributes degree 4 by itself.
	deg, err = tuples.TotalDegree(4, basis.Tuple{1, 0, 0, 0, 0, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 1+4, deg)

	_, err = tuples.TotalDegree(3, basis.Tuple{1, 0, 0})
	assert.ErrorIs(t, err, tuples.ErrTupleShape)

	_, err = tuples.TotalDegree(3, basis.Tuple{1, 0, 0, 5})
	assert.ErrorIs(t, err, tuples.ErrTupleShape)
}

// TestGenerate_ZeroDegreeCap: a cap below the cheapest admissible tuple
// yields an empty basis, not an error.
func TestGenerate_ZeroDegreeCap(t *testing.T) {
	pred, err := tuples.MaxDegree(3, 0)
	require.NoError(t, err)
	got, err := tuples.Generate(3, pred)
	require.NoError(t, err)
	assert.Empty(t, got)
}
