package dictionary_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkDerivative compares the reported derivative against a central
// difference at a handful of interior points.
func checkDerivative(t *testing.T, f dictionary.ScalarFunc, points []float64) {
	t.Helper()

	const h = 1e-6
	for _, r := range points {
		_, dv := f(r)
		vp, _ := f(r + h)
		vm, _ := f(r - h)
		num := (vp - vm) / (2 * h)
		assert.InDelta(t, num, dv, 1e-5*math.Max(1, math.Abs(num)), "at r=%g", r)
	}
}

// TestNew_RoundTrip builds every registry family and checks the symbolic
// pair survives unchanged.
func TestNew_RoundTrip(t *testing.T) {
	cases := [][2]string{
		{"poly(3)", "cos(4.5, 6.0)"},
		{"exp(1.5)", "sw(1.0, 5.5)"},
		{"inv", "spline(4.0, 6.5)"},
		{"invsqrt", "square(5.0)"},
		{"invsquare", "twosided(2.5, 1.8, 6.0, 2)"},
	}
	for _, c := range cases {
		d, err := dictionary.New(c[0], c[1])
		require.NoError(t, err, "%v", c)

		tr, cu, err := d.Names()
		require.NoError(t, err)
		assert.Equal(t, c[0], tr)
		assert.Equal(t, c[1], cu)
		assert.True(t, d.Serializable())
	}
}

// TestNew_UnknownSymbol covers unknown names and malformed argument lists.
func TestNew_UnknownSymbol(t *testing.T) {
	_, err := dictionary.New("morse(2)", "cos(4, 6)")
	assert.ErrorIs(t, err, dictionary.ErrUnknownSymbol)

	_, err = dictionary.New("poly(3)", "gauss(4)")
	assert.ErrorIs(t, err, dictionary.ErrUnknownSymbol)

	_, err = dictionary.New("poly(3, 4)", "cos(4, 6)")
	assert.ErrorIs(t, err, dictionary.ErrSymbolArgs)

	_, err = dictionary.New("poly(x)", "cos(4, 6)")
	assert.ErrorIs(t, err, dictionary.ErrSymbolArgs)

	// inner radius past the outer one
	_, err = dictionary.New("poly(3)", "cos(6, 4)")
	assert.ErrorIs(t, err, dictionary.ErrSymbolArgs)
}

// TestTransforms_Derivatives validates t and t' for each family.
func TestTransforms_Derivatives(t *testing.T) {
	points := []float64{0.8, 1.3, 2.4}
	for _, sym := range []string{"poly(3)", "exp(1.2)", "inv", "invsqrt", "invsquare"} {
		d, err := dictionary.New(sym, "cos(4.5, 6.0)")
		require.NoError(t, err, sym)
		checkDerivative(t, d.Transform, points)
	}

	// inv and invsqrt/invsquare are poly aliases; pin a couple of values
	d, _ := dictionary.New("inv", "cos(4.5, 6.0)")
	v, _ := d.Transform(2.0)
	assert.InDelta(t, 0.5, v, 1e-14)

	d, _ = dictionary.New("invsquare", "cos(4.5, 6.0)")
	v, _ = d.Transform(2.0)
	assert.InDelta(t, 0.25, v, 1e-14)
}

// TestCutoffs_EnvelopeShape validates the envelopes: 0 beyond rcut, taper
// derivative correct, plateau where the family has one.
func TestCutoffs_EnvelopeShape(t *testing.T) {
	cases := []struct {
		sym    string
		rcut   float64
		inside []float64
	}{
		{"cos(4.5, 6.0)", 6.0, []float64{4.8, 5.3, 5.9}},
		{"sw(1.0, 6.0)", 6.0, []float64{3.0, 4.5, 5.5}},
		{"spline(4.5, 6.0)", 6.0, []float64{4.8, 5.3, 5.9}},
		{"square(6.0)", 6.0, []float64{3.0, 4.5, 5.5}},
		{"twosided(2.5, 1.8, 6.0, 2)", 6.0, []float64{2.2, 3.0, 5.0}},
	}
	for _, c := range cases {
		d, err := dictionary.New("poly(3)", c.sym)
		require.NoError(t, err, c.sym)
		assert.Equal(t, c.rcut, d.CutoffRadius(), c.sym)

		v, dv := d.Cutoff(c.rcut + 0.5)
		assert.Zero(t, v, "%s past rcut", c.sym)
		assert.Zero(t, dv, "%s past rcut", c.sym)

		checkDerivative(t, d.Cutoff, c.inside)
	}

	// plateau families are exactly 1 with zero slope below r1
	for _, sym := range []string{"cos(4.5, 6.0)", "spline(4.5, 6.0)"} {
		d, _ := dictionary.New("poly(3)", sym)
		v, dv := d.Cutoff(3.0)
		assert.Equal(t, 1.0, v, sym)
		assert.Zero(t, dv, sym)
	}

	// twosided vanishes below its inner radius too
	d, _ := dictionary.New("poly(3)", "twosided(2.5, 1.8, 6.0, 2)")
	v, _ := d.Cutoff(1.5)
	assert.Zero(t, v)
	v, _ = d.Cutoff(2.5)
	assert.InDelta(t, 1.0, v, 1e-14, "normalized to 1 at rnn")
}

// TestNewCustom_NotSerializable: custom dictionaries evaluate but refuse
// symbolic serialization.
func TestNewCustom_NotSerializable(t *testing.T) {
	d := dictionary.NewCustom(
		func(r float64) (float64, float64) { return r, 1 },
		func(r float64) (float64, float64) { return 1, 0 },
		5.0,
	)

	v, dv := d.Transform(1.7)
	assert.Equal(t, 1.7, v)
	assert.Equal(t, 1.0, dv)
	assert.False(t, d.Serializable())

	_, _, err := d.Names()
	assert.ErrorIs(t, err, dictionary.ErrNotSerializable)
}

// TestCompatible covers instance equality, name equality and custom cases.
func TestCompatible(t *testing.T) {
	a, err := dictionary.New("poly(3)", "cos(4.5, 6.0)")
	require.NoError(t, err)
	b, err := dictionary.New("poly(3)", "cos(4.5, 6.0)")
	require.NoError(t, err)
	c, err := dictionary.New("poly(2)", "cos(4.5, 6.0)")
	require.NoError(t, err)

	assert.True(t, dictionary.Compatible(a, a), "same instance")
	assert.True(t, dictionary.Compatible(a, b), "equal canonical names")
	assert.False(t, dictionary.Compatible(a, c), "different transform")

	custom := dictionary.NewCustom(
		func(r float64) (float64, float64) { return r, 1 },
		func(r float64) (float64, float64) { return 1, 0 },
		5.0,
	)
	assert.True(t, dictionary.Compatible(custom, custom), "custom same instance")
	assert.False(t, dictionary.Compatible(custom, a), "custom vs symbolic")
}
