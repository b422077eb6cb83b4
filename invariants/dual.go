package invariants

// Forward-mode differentiation support. A dual carries a value together
// with its gradient w.r.t. the full input distance vector, so one pass
// through the transform yields one column-complete Jacobian row per
// invariant. The N=5 tables make hand-derived formulas impractical; the
// exactness of the Jacobian rests entirely on the product/sum rules below
// being applied to every intermediate, including gathers and dot products.
type dual struct {
	v float64
	g []float64
}

// dVar seeds input variable i of an m-dimensional gradient.
func dVar(v float64, i, m int) dual {
	d := dual{v: v, g: make([]float64, m)}
	d.g[i] = 1

	return d
}

// dConst lifts a constant: zero gradient.
func dConst(v float64, m int) dual {
	return dual{v: v, g: make([]float64, m)}
}

func dAdd(a, b dual) dual {
	out := dual{v: a.v + b.v, g: make([]float64, len(a.g))}
	for i := range out.g {
		out.g[i] = a.g[i] + b.g[i]
	}

	return out
}

func dSub(a, b dual) dual {
	out := dual{v: a.v - b.v, g: make([]float64, len(a.g))}
	for i := range out.g {
		out.g[i] = a.g[i] - b.g[i]
	}

	return out
}

// dMul applies the product rule (ab)' = a'b + ab'.
func dMul(a, b dual) dual {
	out := dual{v: a.v * b.v, g: make([]float64, len(a.g))}
	for i := range out.g {
		out.g[i] = a.g[i]*b.v + a.v*b.g[i]
	}

	return out
}

// dScale multiplies by a plain scalar.
func dScale(a dual, s float64) dual {
	out := dual{v: a.v * s, g: make([]float64, len(a.g))}
	for i := range out.g {
		out.g[i] = a.g[i] * s
	}

	return out
}

// dMulAdd accumulates acc += a·b in place, reusing acc's gradient storage.
// This is the inner-product rule used by the table-driven contractions.
func dMulAdd(acc, a, b dual) dual {
	acc.v += a.v * b.v
	for i := range acc.g {
		acc.g[i] += a.g[i]*b.v + a.v*b.g[i]
	}

	return acc
}
