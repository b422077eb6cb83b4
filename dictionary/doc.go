// Package dictionary bundles a monotone distance re-parametrization and a
// cutoff envelope — each with its derivative — into the immutable object
// every basis function evaluates through.
//
// A Dictionary is built one of two ways:
//
//   - symbolically, from the registry of known families:
//
//     d, err := dictionary.New("poly(3)", "cos(4.5, 6.0)")
//
//     Such a Dictionary serializes to exactly the (transform, cutoff) string
//     pair it was built from, and is reconstructible from it.
//
//   - from raw functions via NewCustom, for transforms outside the registry.
//     A custom Dictionary works everywhere a symbolic one does but refuses
//     to serialize (ErrNotSerializable — raised at serialization time, not
//     at construction).
//
// Registry families (see registry.go for the exact formulas):
//
//	transforms: poly(p), exp(p), inv, invsqrt, invsquare
//	cutoffs:    cos(r1,rc), sw(L,rc), spline(r1,rc), square(rc),
//	            twosided(rnn,rin,rc,p)
//
// The registry is an explicit immutable lookup table passed into the
// factory, not an ambient mutable global: DefaultRegistry() hands back the
// built-in families, and (*Registry).New is the actual constructor.
//
// Dictionaries are immutable once constructed and safe to share across
// goroutines and basis terms.
package dictionary
