package tuples

import (
	"errors"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/invariants"
)

var (
	// ErrNilPredicate — Generate needs a predicate to terminate; there is
	// no finite default.
	ErrNilPredicate = errors.New("tuples: nil predicate")
	// ErrTupleShape — the tuple's length does not match the body order's
	// primary-invariant count plus one selector slot.
	ErrTupleShape = errors.New("tuples: tuple shape does not match body order")
)

// Predicate decides whether a tuple belongs to the basis. Generate prunes
// on rejection, so predicates must be monotone: rejecting a tuple commits
// to rejecting every tuple with any digit raised.
type Predicate func(t basis.Tuple) bool

// TotalDegree computes the polynomial degree of a tuple for the given body
// order: the exponent-weighted sum of primary degrees plus the degree of
// the selected secondary invariant.
func TotalDegree(bodyOrder int, t basis.Tuple) (int, error) {
	pdeg, err := invariants.PrimaryDegrees(bodyOrder)
	if err != nil {
		return 0, err
	}
	sdeg, err := invariants.SecondaryDegrees(bodyOrder)
	if err != nil {
		return 0, err
	}
	if len(t) != len(pdeg)+1 {
		return 0, ErrTupleShape
	}
	s := t.Secondary()
	if s < 0 || s >= len(sdeg) {
		return 0, ErrTupleShape
	}

	deg := sdeg[s]
	for j, e := range t.Exponents() {
		deg += e * pdeg[j]
	}

	return deg, nil
}

// MaxDegree returns the canonical admission predicate for a body order:
// true when 0 < TotalDegree(t) ≤ maxDeg. The degree tables are captured
// once; the predicate itself does no lookups beyond simple sums.
func MaxDegree(bodyOrder, maxDeg int) (Predicate, error) {
	pdeg, err := invariants.PrimaryDegrees(bodyOrder)
	if err != nil {
		return nil, err
	}
	sdeg, err := invariants.SecondaryDegrees(bodyOrder)
	if err != nil {
		return nil, err
	}

	return func(t basis.Tuple) bool {
		if len(t) != len(pdeg)+1 {
			return false
		}
		deg := sdeg[t.Secondary()]
		for j, e := range t.Exponents() {
			deg += e * pdeg[j]
		}

		return deg > 0 && deg <= maxDeg
	}, nil
}

// Generate enumerates every tuple of the body order accepted by pred, in a
// deterministic odometer order. The tuple is a mixed-radix counter: the
// primary exponents are unbounded digits, the trailing secondary selector
// is bounded by the body order's secondary count.
//
// The walk keeps the index of the last-incremented digit. An accepted
// candidate is emitted and the sweep restarts at digit 0; a rejected one
// triggers a carry — digits up to the pointer reset to zero and the next
// digit advances — pruning the rejected tuple's entire upward subtree.
// Enumeration ends when the carry runs off the selector digit. The
// all-zero start tuple is checked for emission but never carried on, so
// rejecting it (as MaxDegree does) cannot cut off the axes above it.
func Generate(bodyOrder int, pred Predicate) ([]basis.Tuple, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	pdeg, err := invariants.PrimaryDegrees(bodyOrder)
	if err != nil {
		return nil, err
	}
	nsec, err := invariants.NumSecondary(bodyOrder)
	if err != nil {
		return nil, err
	}

	t := make(basis.Tuple, len(pdeg)+1)
	last := len(t) - 1 // the selector digit

	var out []basis.Tuple
	for {
		ok := t[last] < nsec && pred(t)
		if ok {
			out = append(out, t.Clone())
		}
		if ok || isZero(t) {
			t[0]++

			continue
		}

		// carry: zero out the swept digits, advance the next one
		pos := 0
		for ; pos < len(t) && t[pos] == 0; pos++ {
		}
		for i := 0; i <= pos; i++ {
			t[i] = 0
		}
		pos++
		if pos == len(t) {
			return out, nil
		}
		t[pos]++
	}
}

func isZero(t basis.Tuple) bool {
	for _, d := range t {
		if d != 0 {
			return false
		}
	}

	return true
}
