package basis

import (
	"math"

	"github.com/katalvlaran/nbpoly/dictionary"
	"github.com/katalvlaran/nbpoly/invariants"
)

// Evaluator is the shared surface of the raw (Term) and compiled
// (Compiled) basis-function representations.
type Evaluator interface {
	// BodyOrder reports the cluster size N the function describes.
	BodyOrder() int
	// Dictionary returns the shared transform/cutoff bundle (nil for the
	// degenerate one-body constant).
	Dictionary() *dictionary.Dictionary
	// Evaluate computes the basis-function value at a distance vector.
	Evaluate(r []float64) (float64, error)
	// Gradient computes the value and its gradient over the distances.
	Gradient(r []float64) (float64, []float64, error)
}

// Term is a weighted sum of invariant monomials sharing one Dictionary and
// one body order. Terms are value objects: every operation returns a new
// Term and never mutates shared inputs.
type Term struct {
	bodyOrder int
	tuples    []Tuple
	coeffs    []float64
	dict      *dictionary.Dictionary
}

// New constructs a multi-body Term. It fails fast on construction-time
// invariant violations: body order outside the invariant engine's 2..5
// range, nil dictionary, unequal tuple/coefficient counts, malformed
// tuples, or a secondary selector outside the body order's
// secondary-invariant list.
func New(bodyOrder int, tuples []Tuple, coeffs []float64, dict *dictionary.Dictionary) (*Term, error) {
	if bodyOrder < invariants.MinBodyOrder || bodyOrder > invariants.MaxBodyOrder {
		return nil, ErrBodyOrder
	}
	if dict == nil {
		return nil, ErrNilDictionary
	}
	if len(tuples) != len(coeffs) {
		return nil, ErrLengthMismatch
	}

	m := invariants.Edges(bodyOrder)
	nsec, err := invariants.NumSecondary(bodyOrder)
	if err != nil {
		return nil, err
	}

	cp := make([]Tuple, len(tuples))
	for i, tp := range tuples {
		if len(tp) != m+1 {
			return nil, ErrTupleShape
		}
		for _, e := range tp.Exponents() {
			if e < 0 {
				return nil, ErrTupleShape
			}
		}
		if s := tp.Secondary(); s < 0 || s >= nsec {
			return nil, ErrSecondaryIndex
		}
		cp[i] = tp.Clone()
	}

	return &Term{
		bodyOrder: bodyOrder,
		tuples:    cp,
		coeffs:    append([]float64(nil), coeffs...),
		dict:      dict,
	}, nil
}

// NewOneBody returns the degenerate on-site constant: body order 1, a
// single empty tuple, no dictionary. It sits outside the invariant engine
// proper but participates in serialization and batch evaluation.
func NewOneBody(c float64) *Term {
	return &Term{bodyOrder: 1, tuples: []Tuple{{}}, coeffs: []float64{c}}
}

// BodyOrder reports the term's cluster size.
func (t *Term) BodyOrder() int { return t.bodyOrder }

// Dictionary returns the shared Dictionary (nil for one-body terms).
func (t *Term) Dictionary() *dictionary.Dictionary { return t.dict }

// Len reports the number of aggregated monomials.
func (t *Term) Len() int { return len(t.tuples) }

// Tuples returns a deep copy of the exponent tuples.
func (t *Term) Tuples() []Tuple {
	out := make([]Tuple, len(t.tuples))
	for i, tp := range t.tuples {
		out[i] = tp.Clone()
	}

	return out
}

// Coefficients returns a copy of the monomial coefficients.
func (t *Term) Coefficients() []float64 {
	return append([]float64(nil), t.coeffs...)
}

// WithCoefficients returns a new Term with the same tuples and dictionary
// but fresh coefficients — the handoff point for the fitting layer.
func (t *Term) WithCoefficients(coeffs []float64) (*Term, error) {
	if len(coeffs) != len(t.coeffs) {
		return nil, ErrLengthMismatch
	}
	out := *t
	out.coeffs = append([]float64(nil), coeffs...)
	out.tuples = t.Tuples()

	return &out, nil
}

// Degree returns the total polynomial degree of an atomic (single-tuple)
// term. Querying a term aggregating several tuples is a fatal misuse:
// degree is undefined there, and ErrMixedDegree says so.
func (t *Term) Degree() (int, error) {
	if len(t.tuples) != 1 {
		return 0, ErrMixedDegree
	}
	if t.bodyOrder == 1 {
		return 0, nil
	}

	pdeg, err := invariants.PrimaryDegrees(t.bodyOrder)
	if err != nil {
		return 0, err
	}
	sdeg, err := invariants.SecondaryDegrees(t.bodyOrder)
	if err != nil {
		return 0, err
	}

	deg := sdeg[t.tuples[0].Secondary()]
	for j, e := range t.tuples[0].Exponents() {
		deg += e * pdeg[j]
	}

	return deg, nil
}

// Evaluate computes env(r) · Σ_k c_k · secondary[α_k] · monomial_k(primary)
// where env is the product of the per-edge cutoff values.
func (t *Term) Evaluate(r []float64) (float64, error) {
	if t.bodyOrder == 1 {
		return sum(t.coeffs), nil
	}

	st, err := newInvState(t.dict, r, t.bodyOrder, false)
	if err != nil {
		return 0, err
	}

	return st.env * t.polyValue(st.primary, st.secondary), nil
}

// Gradient computes the value and its distance-space gradient: the cutoff
// product rule plus the invariant-chain contributions contracted through
// the primary/secondary Jacobians.
func (t *Term) Gradient(r []float64) (float64, []float64, error) {
	if t.bodyOrder == 1 {
		return sum(t.coeffs), make([]float64, len(r)), nil
	}

	st, err := newInvState(t.dict, r, t.bodyOrder, true)
	if err != nil {
		return 0, nil, err
	}

	w, dW := t.polyGradient(st)

	grad := make([]float64, len(r))
	for i := range grad {
		grad[i] = st.dEnv[i]*w + st.env*dW[i]
	}

	return st.env * w, grad, nil
}

// polyValue is the bare invariant-polynomial part, envelope excluded.
func (t *Term) polyValue(primary, secondary []float64) float64 {
	var w float64
	for k, tp := range t.tuples {
		w += t.coeffs[k] * secondary[tp.Secondary()] * Monomial(tp.Exponents(), primary)
	}

	return w
}

// polyGradient returns the polynomial part and its distance-space gradient.
// Both the primary contribution (coefficient·secondary·∇monomial) and the
// secondary contribution (coefficient·monomial·∇secondary) are pushed
// through the respective Jacobians.
func (t *Term) polyGradient(st *invState) (float64, []float64) {
	dWdP := make([]float64, len(st.primary))
	dWdS := make([]float64, len(st.secondary))

	var w float64
	for k, tp := range t.tuples {
		mv, mg := MonomialD(tp.Exponents(), st.primary)
		c := t.coeffs[k]
		s := tp.Secondary()

		w += c * st.secondary[s] * mv
		dWdS[s] += c * mv
		for p := range mg {
			dWdP[p] += c * st.secondary[s] * mg[p]
		}
	}

	dW := make([]float64, st.m)
	for i := 0; i < st.m; i++ {
		var g float64
		for p := range dWdP {
			g += dWdP[p] * st.dPrimary[p][i]
		}
		for s := range dWdS {
			g += dWdS[s] * st.dSecondary[s][i]
		}
		dW[i] = g
	}

	return w, dW
}

// invState holds the per-configuration intermediates shared by every term
// bound to the same Dictionary: transformed coordinates, invariants,
// Jacobians chained with t', and the cutoff envelope with its gradient.
type invState struct {
	m                    int
	primary, secondary   []float64
	dPrimary, dSecondary [][]float64
	env                  float64
	dEnv                 []float64
}

func newInvState(dict *dictionary.Dictionary, r []float64, bodyOrder int, withJacobian bool) (*invState, error) {
	m := invariants.Edges(bodyOrder)
	if len(r) != m {
		return nil, ErrDistanceLength
	}

	tr := make([]float64, m)
	dtr := make([]float64, m)
	fc := make([]float64, m)
	dfc := make([]float64, m)
	for i, ri := range r {
		tr[i], dtr[i] = dict.Transform(ri)
		fc[i], dfc[i] = dict.Cutoff(ri)
	}

	st := &invState{m: m}

	var err error
	if withJacobian {
		st.primary, st.secondary, st.dPrimary, st.dSecondary, err = invariants.ComputeAll(tr)
		if err != nil {
			return nil, err
		}
		// chain rule: the re-parametrization scales Jacobian columns by t'
		for _, row := range st.dPrimary {
			for i := range row {
				row[i] *= dtr[i]
			}
		}
		for _, row := range st.dSecondary {
			for i := range row {
				row[i] *= dtr[i]
			}
		}
	} else {
		st.primary, st.secondary, err = invariants.Compute(tr)
		if err != nil {
			return nil, err
		}
	}

	// envelope Π fc(r_i) and its gradient, built without dividing so a
	// vanished edge stays well-defined
	st.env = 1
	for _, f := range fc {
		st.env *= f
	}
	if withJacobian {
		st.dEnv = make([]float64, m)
		for i := range st.dEnv {
			p := dfc[i]
			for j := range fc {
				if j != i {
					p *= fc[j]
				}
			}
			st.dEnv[i] = p
		}
	}

	return st, nil
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

// finite reports whether every passed value is finite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
