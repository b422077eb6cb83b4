// Package basis assembles, evaluates and differentiates polynomial basis
// functions over the permutation invariants of an N-body cluster.
//
// 🚀 The moving parts:
//
//	Tuple    — an exponent multi-index over the primary invariants plus a
//	           trailing selector picking one secondary-invariant factor
//	           (0 = none, the constant placeholder).
//	Term     — a weighted sum of such monomials sharing one Dictionary and
//	           one body order; a value object: combining terms builds new
//	           terms, never mutates inputs.
//	Compiled — the fast fixed-form twin of a Term: an exponent matrix over
//	           the concatenated (primary ++ secondary) invariant vector.
//	           Compilation is explicit and one-way; both forms evaluate
//	           identically to floating-point rounding.
//
// Evaluation pipeline (one Term, distances r):
//
//  1. t_i, t'_i = Dictionary.Transform(r_i)      (re-parametrization)
//  2. invariants.ComputeAll(t)                   (values + Jacobians)
//  3. value = Σ_k c_k · secondary[α_k] · Π_j primary_j^{e_kj}
//  4. value *= Π_i fc(r_i)                       (cutoff envelope)
//
// Gradients run the same pass with the product rule between envelope and
// polynomial and the invariant Jacobians contracted back into distance
// space through t'.
//
// EvaluateMany/GradientMany are the entry points the fitting layer calls:
// terms sharing one Dictionary cost a single invariant-transform
// evaluation per configuration, not one per term.
//
// Everything here is a pure function over immutable inputs; Terms,
// Compiled forms and Dictionaries may be shared across goroutines freely.
package basis
