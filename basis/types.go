package basis

import "errors"

var (
	// ErrBodyOrder rejects construction of a multi-body term with a body
	// order the invariant engine does not support: below 2 (use NewOneBody
	// for the on-site constant) or above 5.
	ErrBodyOrder = errors.New("basis: unsupported body order")

	// ErrBodyOrderMismatch rejects combining terms of different body orders.
	ErrBodyOrderMismatch = errors.New("basis: body orders differ")

	// ErrNilDictionary rejects a multi-body term without a Dictionary.
	ErrNilDictionary = errors.New("basis: nil dictionary")

	// ErrLengthMismatch signals tuples/coefficients slices of unequal length.
	ErrLengthMismatch = errors.New("basis: tuples and coefficients lengths differ")

	// ErrTupleShape signals a tuple of the wrong length or with a negative
	// exponent.
	ErrTupleShape = errors.New("basis: malformed exponent tuple")

	// ErrSecondaryIndex signals a secondary selector outside [0, S−1].
	ErrSecondaryIndex = errors.New("basis: secondary invariant index out of range")

	// ErrDistanceLength signals a distance vector whose length does not
	// match the term's body order.
	ErrDistanceLength = errors.New("basis: distance vector length does not match body order")

	// ErrMixedDegree is returned when Degree is queried on a term that
	// aggregates more than one raw tuple; degree is only meaningful for
	// atomic basis functions.
	ErrMixedDegree = errors.New("basis: degree undefined on a multi-tuple term")

	// ErrNoTerms rejects combining an empty term list.
	ErrNoTerms = errors.New("basis: combine requires at least one term")

	// ErrNumericCorruption flags a non-finite value in an assembled result.
	// It is always fatal: aborting beats silently fitting garbage.
	ErrNumericCorruption = errors.New("basis: non-finite value in assembled result")
)

// Tuple is an exponent tuple of length M+1 for body order N (M = N(N−1)/2):
// entries 0..M−1 are nonnegative exponents over the primary invariants,
// entry M selects one secondary-invariant factor (0 = constant, none).
// Tuples order lexicographically; see Compare.
type Tuple []int

// Exponents returns the primary-invariant exponent slice (no copy).
func (t Tuple) Exponents() []int { return t[:len(t)-1] }

// Secondary returns the secondary-invariant selector.
func (t Tuple) Secondary() int { return t[len(t)-1] }

// Clone returns an independent copy.
func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	copy(out, t)

	return out
}

// Compare orders tuples lexicographically: -1, 0, +1.
func (t Tuple) Compare(o Tuple) int {
	for i := range t {
		if i >= len(o) {
			return 1
		}
		if t[i] != o[i] {
			if t[i] < o[i] {
				return -1
			}

			return 1
		}
	}
	if len(t) < len(o) {
		return -1
	}

	return 0
}

// Equal reports exact equality.
func (t Tuple) Equal(o Tuple) bool { return t.Compare(o) == 0 }
