// Package invariants maps a vector of pairwise cluster distances to a
// minimal set of polynomial invariants under permutation of identical
// particles, and differentiates that map.
//
// 🚀 What does it compute?
//
//	For a cluster of N particles there are M = N(N−1)/2 pairwise distances,
//	ordered lexicographically by particle pair (for N=4:
//	r12,r13,r14,r23,r24,r34). Compute maps that vector to
//	  • primary invariants   — M generators of increasing polynomial degree
//	  • secondary invariants — the extra generators of the invariant ring,
//	    with the constant 1 at index 0 as the "no secondary factor" slot
//	and Jacobian/ComputeAll additionally return ∂invariant/∂distance.
//
// Body orders:
//   - N=2: primary [r], secondary [1].
//   - N=3: elementary symmetric polynomials e1,e2,e3.
//   - N=4: closed form after a fixed orthogonal 6×6 change of basis built
//     from the three perfect matchings of the cluster's edge graph.
//   - N=5: table-driven orbit contractions over precomputed index tables
//     (tables_bo5.go, generated offline — see tools/gen_bo5_tables.py).
//
// Derivatives are analytic for N≤3 and forward-mode (dual numbers) for
// N=4,5, so the table-driven contractions differentiate exactly.
//
// Every function here is pure: inputs are never mutated, only the returned
// slices are allocated, and the degree/index tables are immutable. Calls
// are safe from any number of goroutines with zero synchronization.
//
// Complexity: O(M) for N≤4; O(T) for N=5 where T is the total number of
// table terms (a few thousand). Jacobians multiply that by M.
package invariants
