// Package nbpoly builds permutation-invariant polynomial descriptors of
// N-body clusters and evaluates/differentiates polynomial basis functions
// over them — the core machinery of body-ordered interatomic potentials.
//
// 🚀 What is nbpoly?
//
//	A pure-Go engine that turns a vector of pairwise distances into a
//	minimal set of permutation invariants and lets you assemble fast,
//	differentiable polynomial basis functions on top of them:
//	  • Invariant transforms for body orders 2..5 (closed-form + table-driven)
//	  • Exact Jacobians (analytic or forward-mode dual numbers)
//	  • Sparse monomial evaluation with gradients
//	  • Basis-term aggregation, canonicalization and fast compilation
//	  • Pruned enumeration of admissible exponent tuples
//
// ✨ Why choose nbpoly?
//
//   - Deterministic — every evaluation is a pure function over immutable tables
//   - Differentiable — values and distance-space gradients in one pass
//   - Concurrent-ready — no shared mutable state, call it from any goroutine
//   - Serializable — symbolic dictionaries and terms round-trip to YAML/SQLite
//
// Package map:
//
//	invariants/ — distance vector → (primary, secondary) invariants + Jacobians
//	dictionary/ — distance transform ⊕ cutoff envelope bundles, symbolic registry
//	basis/      — monomials, basis terms, combine/compile, batch evaluation
//	tuples/     — exponent-tuple enumeration under monotone degree bounds
//	store/      — SQLite persistence for fitted term sets
//
// The fitting engine (design matrices, least squares) and configuration
// I/O are deliberately out of scope: nbpoly is the descriptor kernel those
// layers call into.
//
//	go get github.com/katalvlaran/nbpoly
package nbpoly
