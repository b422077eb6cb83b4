package invariants_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/invariants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairOrder returns the lexicographic particle-pair ordering used for the
// distance vector of body order n.
func pairOrder(n int) [][2]int {
	var pairs [][2]int
	for a := 1; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	return pairs
}

// relabel applies a particle permutation to a distance vector: distance
// (a,b) moves to the slot of pair (perm[a], perm[b]).
func relabel(n int, r []float64, perm []int) []float64 {
	pairs := pairOrder(n)
	slot := map[[2]int]int{}
	for i, p := range pairs {
		slot[p] = i
	}

	out := make([]float64, len(r))
	for i, p := range pairs {
		a, b := perm[p[0]-1], perm[p[1]-1]
		if a > b {
			a, b = b, a
		}
		out[slot[[2]int{a, b}]] = r[i]
	}

	return out
}

// permutations yields all orderings of 1..n.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i + 1
	}
	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			p := make([]int, n)
			copy(p, base)
			out = append(out, p)

			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			rec(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	rec(0)

	return out
}

func randomDistances(rng *rand.Rand, m int) []float64 {
	r := make([]float64, m)
	for i := range r {
		r[i] = 0.5 + 2.5*rng.Float64()
	}

	return r
}

// TestCompute_ThreeBodyScenario pins the concrete elementary-symmetric
// values for distances (1.0, 1.2, 0.8).
func TestCompute_ThreeBodyScenario(t *testing.T) {
	primary, secondary, err := invariants.Compute([]float64{1.0, 1.2, 0.8})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, primary[0], 1e-14, "sum")
	assert.InDelta(t, 2.96, primary[1], 1e-14, "pairwise-product sum")
	assert.InDelta(t, 0.96, primary[2], 1e-14, "product")
	assert.Equal(t, []float64{1}, secondary, "constant placeholder only")
}

// TestCompute_PermutationInvariance verifies exact invariance of primary
// and secondary invariants under every particle relabeling for N=2,3,4 and
// under the full 120-element group for N=5.
func TestCompute_PermutationInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{2, 3, 4, 5} {
		m := invariants.Edges(n)
		for trial := 0; trial < 5; trial++ {
			r := randomDistances(rng, m)
			p0, s0, err := invariants.Compute(r)
			require.NoError(t, err)

			for _, perm := range permutations(n) {
				p1, s1, err := invariants.Compute(relabel(n, r, perm))
				require.NoError(t, err)
				for k := range p0 {
					assert.InEpsilon(t, p0[k], p1[k], 1e-10,
						"N=%d primary %d under %v", n, k, perm)
				}
				for k := range s0 {
					if s0[k] == 0 {
						assert.InDelta(t, s0[k], s1[k], 1e-10)

						continue
					}
					assert.InEpsilon(t, s0[k], s1[k], 1e-10,
						"N=%d secondary %d under %v", n, k, perm)
				}
			}
		}
	}
}

// TestCompute_EdgeCount rejects vectors whose length is not a valid M.
func TestCompute_EdgeCount(t *testing.T) {
	for _, m := range []int{0, 2, 4, 5, 7, 11} {
		_, _, err := invariants.Compute(make([]float64, m))
		assert.ErrorIs(t, err, invariants.ErrEdgeCount, "len=%d", m)
	}
}

// TestBodyOrder_Inversion checks edges→body-order inversion, including the
// degenerate m≤0 convention.
func TestBodyOrder_Inversion(t *testing.T) {
	for n := 2; n <= 12; n++ {
		assert.Equal(t, n, invariants.BodyOrder(invariants.Edges(n)), "n=%d", n)
	}
	assert.Equal(t, 1, invariants.BodyOrder(0))
	assert.Equal(t, 1, invariants.BodyOrder(-3))
}

// TestDegreeTables verifies the static degree tables and their sizes.
func TestDegreeTables(t *testing.T) {
	pd4, err := invariants.PrimaryDegrees(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 2, 3}, pd4)

	sd4, err := invariants.SecondaryDegrees(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4, 5, 6, 9}, sd4)

	pd5, err := invariants.PrimaryDegrees(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 3, 4, 4, 5, 5, 6}, pd5)

	s5, err := invariants.NumSecondary(5)
	require.NoError(t, err)
	assert.Equal(t, 133, s5)

	sd5, err := invariants.SecondaryDegrees(5)
	require.NoError(t, err)
	assert.Equal(t, 0, sd5[0], "constant at index 0")
	maxDeg := 0
	for _, d := range sd5 {
		if d > maxDeg {
			maxDeg = d
		}
	}
	assert.Equal(t, 9, maxDeg, "secondary degrees span up to 9")

	_, err = invariants.PrimaryDegrees(6)
	assert.ErrorIs(t, err, invariants.ErrBodyOrder)
	_, err = invariants.SecondaryDegrees(1)
	assert.ErrorIs(t, err, invariants.ErrBodyOrder)
}

// TestCompute_MatchesComputeAll guards the two code paths (plain and dual
// arithmetic) against drifting apart. High-degree N=5 invariants reach
// magnitudes of several thousand, so the comparison is relative.
func TestCompute_MatchesComputeAll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	sameSlice := func(want, got []float64, label string, n int) {
		for k := range want {
			if want[k] == 0 {
				assert.InDelta(t, want[k], got[k], 1e-12, "N=%d %s %d", n, label, k)

				continue
			}
			assert.InEpsilon(t, want[k], got[k], 1e-12, "N=%d %s %d", n, label, k)
		}
	}

	for _, n := range []int{2, 3, 4, 5} {
		r := randomDistances(rng, invariants.Edges(n))

		p0, s0, err := invariants.Compute(r)
		require.NoError(t, err)
		p1, s1, _, _, err := invariants.ComputeAll(r)
		require.NoError(t, err)

		sameSlice(p0, p1, "primary", n)
		sameSlice(s0, s1, "secondary", n)
	}
}
