package basis

import (
	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/katalvlaran/nbpoly/invariants"
)

// Compiled is the fast fixed-form representation of a Term: one exponent
// row per monomial over the concatenated invariant vector z = primary ++
// secondary, with the secondary selector re-encoded as an exponent-1
// indicator column. A generic multivariate evaluator then handles value
// and gradient; results match the raw Term to floating-point rounding.
//
// Compilation is explicit and one-way: callers choose when to trade the
// Term's flexibility (merging, serialization) for evaluation speed.
type Compiled struct {
	bodyOrder int
	nPrimary  int
	exps      [][]int // rows × (P+S)
	coeffs    []float64
	dict      *dictionary.Dictionary
}

// Compile re-encodes the term into its fixed polynomial form. One-body
// terms have nothing to compile and yield ErrBodyOrder.
func (t *Term) Compile() (*Compiled, error) {
	if t.bodyOrder < 2 {
		return nil, ErrBodyOrder
	}

	p := invariants.Edges(t.bodyOrder)
	s, err := invariants.NumSecondary(t.bodyOrder)
	if err != nil {
		return nil, err
	}

	exps := make([][]int, len(t.tuples))
	for k, tp := range t.tuples {
		row := make([]int, p+s)
		copy(row, tp.Exponents())
		row[p+tp.Secondary()] = 1
		exps[k] = row
	}

	return &Compiled{
		bodyOrder: t.bodyOrder,
		nPrimary:  p,
		exps:      exps,
		coeffs:    append([]float64(nil), t.coeffs...),
		dict:      t.dict,
	}, nil
}

// BodyOrder reports the cluster size.
func (c *Compiled) BodyOrder() int { return c.bodyOrder }

// Dictionary returns the shared Dictionary.
func (c *Compiled) Dictionary() *dictionary.Dictionary { return c.dict }

// Len reports the number of monomial rows.
func (c *Compiled) Len() int { return len(c.exps) }

// Evaluate computes the compiled polynomial at a distance vector.
func (c *Compiled) Evaluate(r []float64) (float64, error) {
	st, err := newInvState(c.dict, r, c.bodyOrder, false)
	if err != nil {
		return 0, err
	}

	z := append(append([]float64(nil), st.primary...), st.secondary...)

	var w float64
	for k, row := range c.exps {
		w += c.coeffs[k] * Monomial(row, z)
	}

	return st.env * w, nil
}

// Gradient computes the compiled value and its distance-space gradient,
// contracting the generic polynomial gradient over z with the stacked
// primary/secondary Jacobians.
func (c *Compiled) Gradient(r []float64) (float64, []float64, error) {
	st, err := newInvState(c.dict, r, c.bodyOrder, true)
	if err != nil {
		return 0, nil, err
	}

	z := append(append([]float64(nil), st.primary...), st.secondary...)

	var w float64
	dWdZ := make([]float64, len(z))
	for k, row := range c.exps {
		mv, mg := MonomialD(row, z)
		w += c.coeffs[k] * mv
		for j := range mg {
			dWdZ[j] += c.coeffs[k] * mg[j]
		}
	}

	grad := make([]float64, st.m)
	for i := 0; i < st.m; i++ {
		var g float64
		for p := 0; p < c.nPrimary; p++ {
			g += dWdZ[p] * st.dPrimary[p][i]
		}
		for s := range st.dSecondary {
			g += dWdZ[c.nPrimary+s] * st.dSecondary[s][i]
		}
		grad[i] = st.dEnv[i]*w + st.env*g
	}

	return st.env * w, grad, nil
}
