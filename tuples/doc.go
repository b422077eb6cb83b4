// Package tuples enumerates the exponent tuples that index a polynomial
// basis: one non-negative exponent per primary invariant plus a trailing
// secondary-invariant selector, in the exact layout basis.Tuple uses.
//
// What tuples delivers:
//
//   - 🚀 Generate — exhaustive enumeration of every admissible tuple for a
//     body order, driven by a caller-supplied Predicate. The walk is a
//     mixed-radix odometer over the tuple's digits with a last-incremented
//     pointer: when a candidate fails the predicate, the whole subtree of
//     larger tuples sharing its higher digits is pruned in one carry.
//   - ✨ MaxDegree — the standard admission rule: total polynomial degree
//     above zero and at most a caller-chosen maximum.
//   - ✨ TotalDegree — the degree bookkeeping behind MaxDegree, exported
//     for callers that build their own predicates.
//
// Pruning is only sound for monotone predicates: once a predicate rejects
// a tuple it must reject every tuple obtained by raising any exponent (or
// the secondary selector, whose degree table is sorted ascending). All
// predicates built by this package are monotone in that sense; custom
// predicates must be too, or Generate will silently skip admissible
// tuples.
//
// The all-zero tuple is the one deliberate exception: it fails MaxDegree
// (degree 0) yet is never treated as a pruning point, otherwise the pure
// power tuples (k, 0, …, 0) above it would be unreachable.
//
// Enumeration is deterministic: two calls with the same body order and an
// equivalent predicate return the same tuples in the same order.
package tuples
