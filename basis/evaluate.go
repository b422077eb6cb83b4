package basis

import (
	"fmt"

	"github.com/katalvlaran/nbpoly/dictionary"
)

// EvaluateMany computes one energy per term for a single configuration's
// distance vector. Terms sharing one Dictionary (same instance, or same
// symbolic form) cost a single invariant-transform evaluation: the
// transformed coordinates, invariants and envelope are computed once per
// distinct Dictionary and reused across the batch.
//
// A non-finite value anywhere in the assembled result is fatal
// (ErrNumericCorruption): the fitting layer must never see garbage.
func EvaluateMany(terms []*Term, r []float64) ([]float64, error) {
	cache := newStateCache(r, false)

	out := make([]float64, len(terms))
	for i, t := range terms {
		if t.bodyOrder == 1 {
			out[i] = sum(t.coeffs)

			continue
		}

		st, err := cache.get(t)
		if err != nil {
			return nil, err
		}
		out[i] = st.env * t.polyValue(st.primary, st.secondary)
		if !finite(out[i]) {
			return nil, fmt.Errorf("term %d: %w", i, ErrNumericCorruption)
		}
	}

	return out, nil
}

// GradientMany is the gradient analogue of EvaluateMany: per-term values
// and distance-space gradients, one invariant evaluation per Dictionary.
func GradientMany(terms []*Term, r []float64) ([]float64, [][]float64, error) {
	cache := newStateCache(r, true)

	vals := make([]float64, len(terms))
	grads := make([][]float64, len(terms))
	for i, t := range terms {
		if t.bodyOrder == 1 {
			vals[i] = sum(t.coeffs)
			grads[i] = make([]float64, len(r))

			continue
		}

		st, err := cache.get(t)
		if err != nil {
			return nil, nil, err
		}

		w, dW := t.polyGradient(st)
		vals[i] = st.env * w
		grads[i] = make([]float64, len(r))
		ok := finite(vals[i])
		for j := range dW {
			grads[i][j] = st.dEnv[j]*w + st.env*dW[j]
			ok = ok && finite(grads[i][j])
		}
		if !ok {
			return nil, nil, fmt.Errorf("term %d: %w", i, ErrNumericCorruption)
		}
	}

	return vals, grads, nil
}

// stateCache memoizes invState per Dictionary for one configuration.
// Symbolic dictionaries key by their canonical name pair, so distinctly
// allocated but identical dictionaries still share one evaluation; custom
// dictionaries key by instance.
type stateCache struct {
	r            []float64
	withJacobian bool
	byName       map[nameKey]*invState
	byPtr        map[ptrKey]*invState
}

// keys carry the body order alongside the dictionary identity: the same
// dictionary may back terms of different body orders, and their states
// must not alias.
type nameKey struct {
	transform, cutoff string
	bodyOrder         int
}

type ptrKey struct {
	dict      *dictionary.Dictionary
	bodyOrder int
}

func newStateCache(r []float64, withJacobian bool) *stateCache {
	return &stateCache{
		r:            r,
		withJacobian: withJacobian,
		byName:       map[nameKey]*invState{},
		byPtr:        map[ptrKey]*invState{},
	}
}

func (c *stateCache) get(t *Term) (*invState, error) {
	if tn, cn, err := t.dict.Names(); err == nil {
		key := nameKey{transform: tn, cutoff: cn, bodyOrder: t.bodyOrder}
		if st, ok := c.byName[key]; ok {
			return st, nil
		}
		st, err := newInvState(t.dict, c.r, t.bodyOrder, c.withJacobian)
		if err != nil {
			return nil, err
		}
		c.byName[key] = st

		return st, nil
	}

	key := ptrKey{dict: t.dict, bodyOrder: t.bodyOrder}
	if st, ok := c.byPtr[key]; ok {
		return st, nil
	}
	st, err := newInvState(t.dict, c.r, t.bodyOrder, c.withJacobian)
	if err != nil {
		return nil, err
	}
	c.byPtr[key] = st

	return st, nil
}
