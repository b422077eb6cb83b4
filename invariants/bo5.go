package invariants

// The 5-body transform has no closed form. Each invariant is an orbit
// contraction: gather up to four precomputed edge powers at fixed index
// lists and sum their products,
//
//	value = Σ_k xp[pow[0]][idx0[k]] · xp[pow[1]][idx1[k]] · xp[pow[2]][idx2[k]] · xp[pow[3]][idx3[k]]
//
// where xp[p] is the elementwise p-th power of the edge vector (xp[0] all
// ones). The index lists are orbit representatives under the 5-particle
// permutation group, generated offline (tools/gen_bo5_tables.py) and baked
// into tables_bo5.go; they are data, never recomputed.
type orbitContraction struct {
	deg  int
	pow  [4]uint8
	idx0 []uint8
	idx1 []uint8
	idx2 []uint8
	idx3 []uint8
}

// bo5MaxPow is the largest edge power any table entry gathers.
const bo5MaxPow = 6

// eval gathers and contracts against the power table xp.
func (c *orbitContraction) eval(xp [][]float64) float64 {
	a, b := xp[c.pow[0]], xp[c.pow[1]]
	d, e := xp[c.pow[2]], xp[c.pow[3]]

	var sum float64
	for k := range c.idx0 {
		sum += a[c.idx0[k]] * b[c.idx1[k]] * d[c.idx2[k]] * e[c.idx3[k]]
	}

	return sum
}

// evalDual is the forward-mode twin of eval: identical gather/multiply/dot
// structure, with the product rule threaded through every term.
func (c *orbitContraction) evalDual(xp [][]dual, m int) dual {
	a, b := xp[c.pow[0]], xp[c.pow[1]]
	d, e := xp[c.pow[2]], xp[c.pow[3]]

	sum := dConst(0, m)
	for k := range c.idx0 {
		sum = dMulAdd(sum, dMul(a[c.idx0[k]], b[c.idx1[k]]), dMul(d[c.idx2[k]], e[c.idx3[k]]))
	}

	return sum
}

// powerTable returns xp[p][i] = r[i]^p for p in 0..bo5MaxPow.
func powerTable(r []float64) [][]float64 {
	xp := make([][]float64, bo5MaxPow+1)
	xp[0] = make([]float64, len(r))
	for i := range xp[0] {
		xp[0][i] = 1
	}
	for p := 1; p <= bo5MaxPow; p++ {
		xp[p] = make([]float64, len(r))
		for i := range r {
			xp[p][i] = xp[p-1][i] * r[i]
		}
	}

	return xp
}

func powerTableDual(r []float64) [][]dual {
	m := len(r)
	xp := make([][]dual, bo5MaxPow+1)
	xp[0] = make([]dual, m)
	for i := range xp[0] {
		xp[0][i] = dConst(1, m)
	}
	xp[1] = make([]dual, m)
	for i := range r {
		xp[1][i] = dVar(r[i], i, m)
	}
	for p := 2; p <= bo5MaxPow; p++ {
		xp[p] = make([]dual, m)
		for i := range r {
			xp[p][i] = dMul(xp[p-1][i], xp[1][i])
		}
	}

	return xp
}

// invariants5 evaluates all 5-body invariants from the static tables.
func invariants5(r []float64) (primary, secondary []float64, err error) {
	xp := powerTable(r)

	primary = make([]float64, len(bo5Primary))
	for i := range bo5Primary {
		primary[i] = bo5Primary[i].eval(xp)
	}
	secondary = make([]float64, len(bo5Secondary))
	for i := range bo5Secondary {
		secondary[i] = bo5Secondary[i].eval(xp)
	}

	return primary, secondary, nil
}

// computeAll5 runs the contractions in dual arithmetic: values plus the
// full 10-column Jacobian in one pass.
func computeAll5(r []float64) (primary, secondary []float64, dPrimary, dSecondary [][]float64, err error) {
	m := len(r)
	xp := powerTableDual(r)

	prim := make([]dual, len(bo5Primary))
	for i := range bo5Primary {
		prim[i] = bo5Primary[i].evalDual(xp, m)
	}
	sec := make([]dual, len(bo5Secondary))
	for i := range bo5Secondary {
		sec[i] = bo5Secondary[i].evalDual(xp, m)
	}

	return splitDuals(prim, sec)
}
