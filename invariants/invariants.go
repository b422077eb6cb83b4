package invariants

// Compute maps a distance vector to its (primary, secondary) invariant
// vectors. The body order is inferred from len(r), which must be one of
// 1, 3, 6, 10 (body orders 2..5); anything else yields ErrEdgeCount.
//
// Contract: pure and deterministic; r is never mutated; the only
// allocations are the two returned slices.
func Compute(r []float64) (primary, secondary []float64, err error) {
	switch len(r) {
	case 1:
		return []float64{r[0]}, []float64{1}, nil
	case 3:
		return invariants3(r)
	case 6:
		return invariants4(r)
	case 10:
		return invariants5(r)
	default:
		return nil, nil, ErrEdgeCount
	}
}

// Jacobian returns ∂primary/∂r (P×M) and ∂secondary/∂r (S×M) for the
// distance vector r. Rows index invariants, columns index distances.
//
// N≤3 Jacobians are written analytically; N=4 and N=5 are produced by
// forward-mode differentiation of the full transform (see dual.go), so the
// long table-driven contractions differentiate exactly.
func Jacobian(r []float64) (dPrimary, dSecondary [][]float64, err error) {
	_, _, dPrimary, dSecondary, err = ComputeAll(r)

	return dPrimary, dSecondary, err
}

// ComputeAll returns invariant values and both Jacobians in a single pass,
// avoiding the duplicate transform evaluation of calling Compute and
// Jacobian separately.
func ComputeAll(r []float64) (primary, secondary []float64, dPrimary, dSecondary [][]float64, err error) {
	switch len(r) {
	case 1:
		return []float64{r[0]}, []float64{1},
			[][]float64{{1}}, [][]float64{{0}}, nil
	case 3:
		return computeAll3(r)
	case 6:
		return computeAll4(r)
	case 10:
		return computeAll5(r)
	default:
		return nil, nil, nil, nil, ErrEdgeCount
	}
}

// invariants3 computes the elementary symmetric polynomials of the three
// distances (r12, r13, r23): sum, pairwise-product sum, product. They are
// invariant under every relabeling of the three particles.
func invariants3(r []float64) (primary, secondary []float64, err error) {
	e1 := r[0] + r[1] + r[2]
	e2 := r[0]*r[1] + r[0]*r[2] + r[1]*r[2]
	e3 := r[0] * r[1] * r[2]

	return []float64{e1, e2, e3}, []float64{1}, nil
}

// computeAll3 adds the analytic Jacobian: ∂e1 is constant, ∂e2 linear and
// ∂e3 bilinear in the distances.
func computeAll3(r []float64) (primary, secondary []float64, dPrimary, dSecondary [][]float64, err error) {
	primary, secondary, _ = invariants3(r)
	dPrimary = [][]float64{
		{1, 1, 1},
		{r[1] + r[2], r[0] + r[2], r[0] + r[1]},
		{r[1] * r[2], r[0] * r[2], r[0] * r[1]},
	}
	dSecondary = [][]float64{{0, 0, 0}}

	return primary, secondary, dPrimary, dSecondary, nil
}
