package basis_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompile_MatchesTerm: the compiled form reproduces raw Term values
// and gradients to rounding across body orders and random inputs.
func TestCompile_MatchesTerm(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for bodyOrder := 2; bodyOrder <= 5; bodyOrder++ {
		term := randomTerm(t, rng, bodyOrder)
		compiled, err := term.Compile()
		require.NoError(t, err)
		assert.Equal(t, term.BodyOrder(), compiled.BodyOrder())
		assert.Equal(t, term.Len(), compiled.Len())

		for trial := 0; trial < 5; trial++ {
			r := randomDistances(rng, bodyOrder)

			want, err := term.Evaluate(r)
			require.NoError(t, err)
			got, err := compiled.Evaluate(r)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-9*(1+math.Abs(want)),
				"bodyOrder=%d value", bodyOrder)

			wv, wg, err := term.Gradient(r)
			require.NoError(t, err)
			gv, gg, err := compiled.Gradient(r)
			require.NoError(t, err)
			require.InDelta(t, wv, gv, 1e-9*(1+math.Abs(wv)))
			for i := range wg {
				require.InDelta(t, wg[i], gg[i], 1e-9*(1+math.Abs(wg[i])),
					"bodyOrder=%d edge=%d", bodyOrder, i)
			}
		}
	}
}

func TestCompile_OneBody(t *testing.T) {
	_, err := basis.NewOneBody(1).Compile()
	assert.ErrorIs(t, err, basis.ErrBodyOrder)
}
