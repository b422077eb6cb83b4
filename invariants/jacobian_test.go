package invariants_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/invariants"
	"github.com/stretchr/testify/require"
)

// centralDiff returns the central-difference Jacobians of Compute at r.
func centralDiff(t *testing.T, r []float64, h float64) (dP, dS [][]float64) {
	t.Helper()

	p0, s0, err := invariants.Compute(r)
	require.NoError(t, err)

	dP = make([][]float64, len(p0))
	for i := range dP {
		dP[i] = make([]float64, len(r))
	}
	dS = make([][]float64, len(s0))
	for i := range dS {
		dS[i] = make([]float64, len(r))
	}

	for j := range r {
		plus := append([]float64(nil), r...)
		minus := append([]float64(nil), r...)
		plus[j] += h
		minus[j] -= h

		pp, sp, err := invariants.Compute(plus)
		require.NoError(t, err)
		pm, sm, err := invariants.Compute(minus)
		require.NoError(t, err)

		for i := range pp {
			dP[i][j] = (pp[i] - pm[i]) / (2 * h)
		}
		for i := range sp {
			dS[i][j] = (sp[i] - sm[i]) / (2 * h)
		}
	}

	return dP, dS
}

// requireClose enforces the 1e-6 relative-error contract between analytic
// and numerical Jacobians, with an absolute floor for near-zero entries.
func requireClose(t *testing.T, want, got [][]float64, label string) {
	t.Helper()

	for i := range want {
		for j := range want[i] {
			scale := math.Max(1, math.Abs(want[i][j]))
			require.LessOrEqual(t, math.Abs(want[i][j]-got[i][j])/scale, 1e-6,
				"%s row %d col %d: want %g got %g", label, i, j, want[i][j], got[i][j])
		}
	}
}

// TestJacobian_FiniteDifference validates analytic/forward-mode Jacobians
// against central differences for every supported body order.
func TestJacobian_FiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, n := range []int{2, 3, 4, 5} {
		m := invariants.Edges(n)
		for trial := 0; trial < 3; trial++ {
			r := randomDistances(rng, m)

			dP, dS, err := invariants.Jacobian(r)
			require.NoError(t, err)

			numP, numS := centralDiff(t, r, 1e-6)
			requireClose(t, numP, dP, "primary")
			requireClose(t, numS, dS, "secondary")
		}
	}
}

// TestJacobian_EdgeCount propagates the length check.
func TestJacobian_EdgeCount(t *testing.T) {
	_, _, err := invariants.Jacobian(make([]float64, 4))
	require.ErrorIs(t, err, invariants.ErrEdgeCount)
}

// TestJacobian_TwoBody pins the trivial analytic case: d[r]/dr = 1 and the
// constant secondary has zero derivative.
func TestJacobian_TwoBody(t *testing.T) {
	dP, dS, err := invariants.Jacobian([]float64{1.7})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, dP)
	require.Equal(t, [][]float64{{0}}, dS)
}
