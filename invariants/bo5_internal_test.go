package invariants

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceEval recomputes an orbit contraction the slow, independent way:
// math.Pow on raw distances per gathered factor, no shared power table.
// The generated gather tables are provisional data; this guards the fast
// evaluator against both table corruption and evaluator bugs.
func referenceEval(c *orbitContraction, r []float64) float64 {
	var sum float64
	for k := range c.idx0 {
		term := math.Pow(r[c.idx0[k]], float64(c.pow[0]))
		term *= math.Pow(r[c.idx1[k]], float64(c.pow[1]))
		term *= math.Pow(r[c.idx2[k]], float64(c.pow[2]))
		term *= math.Pow(r[c.idx3[k]], float64(c.pow[3]))
		sum += term
	}

	return sum
}

// TestBodyOrder5_TablesCrossValidate cross-checks every generated table
// entry against the independent reference evaluation.
func TestBodyOrder5_TablesCrossValidate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 10; trial++ {
		r := make([]float64, 10)
		for i := range r {
			r[i] = 0.5 + 2.0*rng.Float64()
		}
		xp := powerTable(r)

		for i := range bo5Primary {
			want := referenceEval(&bo5Primary[i], r)
			require.InEpsilon(t, want, bo5Primary[i].eval(xp), 1e-12, "primary %d", i)
		}
		for i := range bo5Secondary {
			want := referenceEval(&bo5Secondary[i], r)
			if want == 0 {
				require.InDelta(t, want, bo5Secondary[i].eval(xp), 1e-12, "secondary %d", i)

				continue
			}
			require.InEpsilon(t, want, bo5Secondary[i].eval(xp), 1e-12, "secondary %d", i)
		}
	}
}

// TestBodyOrder5_TableShape enforces structural invariants of the generated
// data: parallel index lists, powers within the power-table range, edge
// indices within 0..9, constant secondary at slot 0, degree consistency.
func TestBodyOrder5_TableShape(t *testing.T) {
	check := func(c *orbitContraction) {
		n := len(c.idx0)
		require.Equal(t, n, len(c.idx1))
		require.Equal(t, n, len(c.idx2))
		require.Equal(t, n, len(c.idx3))
		degSum := 0
		for s, p := range c.pow {
			require.LessOrEqual(t, int(p), bo5MaxPow)
			degSum += int(p)
			var idx []uint8
			switch s {
			case 0:
				idx = c.idx0
			case 1:
				idx = c.idx1
			case 2:
				idx = c.idx2
			default:
				idx = c.idx3
			}
			for _, e := range idx {
				require.Less(t, int(e), 10)
			}
		}
		require.Equal(t, c.deg, degSum, "declared degree matches gathered powers")
	}

	for i := range bo5Primary {
		check(&bo5Primary[i])
	}
	for i := range bo5Secondary {
		check(&bo5Secondary[i])
	}

	require.Equal(t, 0, bo5Secondary[0].deg)
	require.Len(t, bo5Secondary[0].idx0, 1)
	ones := powerTable([]float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	require.Equal(t, 1.0, bo5Secondary[0].eval(ones), "index 0 is the constant placeholder")
}
