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

// mustDict builds a registry dictionary or fails the test.
func mustDict(t *testing.T, transform, cutoff string) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New(transform, cutoff)
	require.NoError(t, err)

	return d
}

// randomDistances fills a distance vector for the given body order,
// keeping every edge inside the cutoff plateau.
func randomDistances(rng *rand.Rand, bodyOrder int) []float64 {
	r := make([]float64, invariants.Edges(bodyOrder))
	for i := range r {
		r[i] = 1.0 + 2.0*rng.Float64()
	}

	return r
}

func TestNew_Validation(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")

	// both bounds of the supported 2..5 range surface the local sentinel
	_, err := basis.New(6, []basis.Tuple{{0, 0}}, []float64{1}, dict)
	assert.ErrorIs(t, err, basis.ErrBodyOrder)
	_, err = basis.New(1, []basis.Tuple{{0}}, []float64{1}, dict)
	assert.ErrorIs(t, err, basis.ErrBodyOrder)

	_, err = basis.New(2, []basis.Tuple{{1, 0}}, []float64{1, 2}, dict)
	assert.ErrorIs(t, err, basis.ErrLengthMismatch)

	_, err = basis.New(2, []basis.Tuple{{1, 0, 0}}, []float64{1}, dict)
	assert.ErrorIs(t, err, basis.ErrTupleShape)

	_, err = basis.New(2, []basis.Tuple{{1, 7}}, []float64{1}, dict)
	assert.ErrorIs(t, err, basis.ErrSecondaryIndex)

	_, err = basis.New(2, []basis.Tuple{{1, 0}}, []float64{1}, nil)
	assert.ErrorIs(t, err, basis.ErrNilDictionary)
}

// TestTerm_Evaluate_ThreeBody pins a hand-computed three-body value.
// Distances sit well below r1 of the cosine cutoff, so the envelope is 1
// and the term reduces to 2*(1/r12 + 1/r13 + 1/r23).
func TestTerm_Evaluate_ThreeBody(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")
	term, err := basis.New(3, []basis.Tuple{{1, 0, 0, 0}}, []float64{2}, dict)
	require.NoError(t, err)

	r := []float64{1.0, 1.2, 0.8}
	got, err := term.Evaluate(r)
	require.NoError(t, err)

	want := 2 * (1/1.0 + 1/1.2 + 1/0.8)
	assert.InDelta(t, want, got, 1e-12)
}

// TestTerm_Evaluate_OneBody: constant offset, ignores distances.
func TestTerm_Evaluate_OneBody(t *testing.T) {
	term := basis.NewOneBody(-3.25)

	v, err := term.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, -3.25, v)

	v, grad, err := term.Gradient([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, -3.25, v)
	assert.Equal(t, []float64{0, 0, 0}, grad)
}

func TestTerm_Evaluate_DistanceLength(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")
	term, err := basis.New(3, []basis.Tuple{{1, 0, 0, 0}}, []float64{1}, dict)
	require.NoError(t, err)

	_, err = term.Evaluate([]float64{1, 2})
	assert.ErrorIs(t, err, basis.ErrDistanceLength)

	_, _, err = term.Gradient([]float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, basis.ErrDistanceLength)
}

// TestTerm_Gradient_FiniteDifference validates the analytic gradient against
// central differences for body orders 2 through 5.
func TestTerm_Gradient_FiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const h = 1e-6

	for bodyOrder := 2; bodyOrder <= 5; bodyOrder++ {
		term := randomTerm(t, rng, bodyOrder)
		r := randomDistances(rng, bodyOrder)

		v, grad, err := term.Gradient(r)
		require.NoError(t, err)

		ev, err := term.Evaluate(r)
		require.NoError(t, err)
		require.InDelta(t, ev, v, 1e-12*(1+math.Abs(ev)))

		for i := range r {
			plus := append([]float64(nil), r...)
			minus := append([]float64(nil), r...)
			plus[i] += h
			minus[i] -= h

			vp, err := term.Evaluate(plus)
			require.NoError(t, err)
			vm, err := term.Evaluate(minus)
			require.NoError(t, err)

			num := (vp - vm) / (2 * h)
			scale := math.Abs(num)
			if scale < 1 {
				scale = 1
			}
			require.InDelta(t, num, grad[i], 2e-5*scale,
				"bodyOrder=%d edge=%d r=%v", bodyOrder, i, r)
		}
	}
}

// randomTerm assembles a few low-degree tuples for the given body order.
func randomTerm(t *testing.T, rng *rand.Rand, bodyOrder int) *basis.Term {
	t.Helper()

	nPrimary, err := invariants.PrimaryDegrees(bodyOrder)
	require.NoError(t, err)
	nSecondary, err := invariants.NumSecondary(bodyOrder)
	require.NoError(t, err)

	dict := mustDict(t, "exp(1.5)", "cos(4.5,6.0)")
	var tuples []basis.Tuple
	var coeffs []float64
	for k := 0; k < 4; k++ {
		tp := make(basis.Tuple, len(nPrimary)+1)
		for j := range nPrimary {
			tp[j] = rng.Intn(3)
		}
		tp[len(nPrimary)] = rng.Intn(nSecondary)
		tuples = append(tuples, tp)
		coeffs = append(coeffs, rng.NormFloat64())
	}

	term, err := basis.New(bodyOrder, tuples, coeffs, dict)
	require.NoError(t, err)

	return term
}

// TestTerm_Degree: atomic terms report their total degree, aggregates
// refuse the query.
func TestTerm_Degree(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")

	// Three-body primary degrees are 1,2,3 with a constant secondary:
	// (2,1,0,0) has degree 2·1 + 1·2 = 4.
	term, err := basis.New(3, []basis.Tuple{{2, 1, 0, 0}}, []float64{1}, dict)
	require.NoError(t, err)
	deg, err := term.Degree()
	require.NoError(t, err)
	assert.Equal(t, 4, deg)

	// Four-body secondary index 3 carries degree 5 on its own.
	term4, err := basis.New(4,
		[]basis.Tuple{{0, 0, 0, 0, 0, 0, 3}}, []float64{1}, dict)
	require.NoError(t, err)
	deg, err = term4.Degree()
	require.NoError(t, err)
	assert.Equal(t, 5, deg)

	agg, err := basis.New(3,
		[]basis.Tuple{{1, 0, 0, 0}, {0, 1, 0, 0}}, []float64{1, 1}, dict)
	require.NoError(t, err)
	_, err = agg.Degree()
	assert.ErrorIs(t, err, basis.ErrMixedDegree)
}

// TestTerm_CutoffEnvelope: any edge at or beyond the cutoff radius zeroes
// the term value and its gradient.
func TestTerm_CutoffEnvelope(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")
	term, err := basis.New(3, []basis.Tuple{{1, 1, 0, 0}}, []float64{1.5}, dict)
	require.NoError(t, err)

	v, grad, err := term.Gradient([]float64{1.0, 6.5, 1.2})
	require.NoError(t, err)
	assert.Zero(t, v)
	for i, g := range grad {
		assert.Zerof(t, g, "gradient component %d", i)
	}
}

func TestTerm_WithCoefficients(t *testing.T) {
	dict := mustDict(t, "inv", "cos(4.5,6.0)")
	term, err := basis.New(2, []basis.Tuple{{1, 0}, {2, 0}}, []float64{1, 1}, dict)
	require.NoError(t, err)

	scaled, err := term.WithCoefficients([]float64{3, -1})
	require.NoError(t, err)

	r := []float64{1.3}
	v1, err := term.Evaluate(r)
	require.NoError(t, err)
	v2, err := scaled.Evaluate(r)
	require.NoError(t, err)

	// Same tuples, independent coefficients.
	assert.NotEqual(t, v1, v2)
	assert.Equal(t, []float64{1, 1}, term.Coefficients())

	_, err = term.WithCoefficients([]float64{1})
	assert.ErrorIs(t, err, basis.ErrLengthMismatch)
}
