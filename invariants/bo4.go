package invariants

import "math"

// The 4-body transform. The six edges of the cluster split into the three
// perfect matchings {r12,r34}, {r13,r24}, {r14,r23}; particle relabelings
// permute the matchings and may swap edges inside one. Matching sums span
// the totally symmetric coordinate Q1 plus the planar pair (Q5,Q6);
// matching differences give the sign-flipping triple (Q2,Q3,Q4). The rows
// below form an orthogonal 6×6 change of basis.
var (
	invSqrt2  = 1.0 / math.Sqrt2
	invSqrt6  = 1.0 / math.Sqrt(6)
	invSqrt12 = 1.0 / math.Sqrt(12)
)

// edgeToQ applies the orthogonal change of basis to the edge vector
// (r12, r13, r14, r23, r24, r34).
func edgeToQ(r []float64) (q1, q2, q3, q4, q5, q6 float64) {
	q1 = (r[0] + r[1] + r[2] + r[3] + r[4] + r[5]) * invSqrt6
	q2 = (r[0] - r[5]) * invSqrt2
	q3 = (r[1] - r[4]) * invSqrt2
	q4 = (r[2] - r[3]) * invSqrt2
	q5 = (r[1] + r[4] - r[2] - r[3]) * 0.5
	q6 = (2*r[0] + 2*r[5] - r[1] - r[4] - r[2] - r[3]) * invSqrt12

	return q1, q2, q3, q4, q5, q6
}

// invariants4 evaluates the closed-form 4-body invariants.
//
// Primary (degrees 1,2,3,4,2,3):
//
//	I1 = Q1
//	I2 = Q2²+Q3²+Q4²
//	I3 = Q2·Q3·Q4
//	I4 = Q2²Q3² + Q2²Q4² + Q3²Q4²
//	I5 = Q5²+Q6²
//	I6 = Q6(Q6²−3Q5²)
//
// Secondary (degrees 0,3,4,5,6,9): the constant plus the five mixed
// invariants pairing the planar vector (Q5,Q6) with its quadratic partner
// (f1,f2) built from the squared matching differences.
func invariants4(r []float64) (primary, secondary []float64, err error) {
	q1, q2, q3, q4, q5, q6 := edgeToQ(r)

	t1, t2, t3 := q2*q2, q3*q3, q4*q4
	f1 := (t2 - t3) * invSqrt2
	f2 := (2*t1 - t2 - t3) * invSqrt6

	primary = []float64{
		q1,
		t1 + t2 + t3,
		q2 * q3 * q4,
		t1*t2 + t1*t3 + t2*t3,
		q5*q5 + q6*q6,
		q6 * (q6*q6 - 3*q5*q5),
	}
	secondary = []float64{
		1,
		q5*f1 + q6*f2,
		(q5*q5-q6*q6)*f2 + 2*q5*q6*f1,
		(f1*f1-f2*f2)*q6 + 2*f1*f2*q5,
		f2 * (f2*f2 - 3*f1*f1),
		q5 * (q5*q5 - 3*q6*q6) * f1 * (f1*f1 - 3*f2*f2),
	}

	return primary, secondary, nil
}

// computeAll4 runs the same transform in dual arithmetic, producing values
// and the full Jacobian in one forward pass.
func computeAll4(r []float64) (primary, secondary []float64, dPrimary, dSecondary [][]float64, err error) {
	const m = 6

	x := make([]dual, m)
	for i := range x {
		x[i] = dVar(r[i], i, m)
	}

	q1 := dScale(dAdd(dAdd(dAdd(x[0], x[1]), dAdd(x[2], x[3])), dAdd(x[4], x[5])), invSqrt6)
	q2 := dScale(dSub(x[0], x[5]), invSqrt2)
	q3 := dScale(dSub(x[1], x[4]), invSqrt2)
	q4 := dScale(dSub(x[2], x[3]), invSqrt2)
	q5 := dScale(dSub(dAdd(x[1], x[4]), dAdd(x[2], x[3])), 0.5)
	q6 := dScale(dSub(dScale(dAdd(x[0], x[5]), 2), dAdd(dAdd(x[1], x[4]), dAdd(x[2], x[3]))), invSqrt12)

	t1, t2, t3 := dMul(q2, q2), dMul(q3, q3), dMul(q4, q4)
	f1 := dScale(dSub(t2, t3), invSqrt2)
	f2 := dScale(dSub(dSub(dScale(t1, 2), t2), t3), invSqrt6)

	q5q5, q6q6 := dMul(q5, q5), dMul(q6, q6)
	f1f1, f2f2 := dMul(f1, f1), dMul(f2, f2)

	prim := []dual{
		q1,
		dAdd(dAdd(t1, t2), t3),
		dMul(dMul(q2, q3), q4),
		dAdd(dAdd(dMul(t1, t2), dMul(t1, t3)), dMul(t2, t3)),
		dAdd(q5q5, q6q6),
		dMul(q6, dSub(q6q6, dScale(q5q5, 3))),
	}
	sec := []dual{
		dConst(1, m),
		dAdd(dMul(q5, f1), dMul(q6, f2)),
		dAdd(dMul(dSub(q5q5, q6q6), f2), dScale(dMul(dMul(q5, q6), f1), 2)),
		dAdd(dMul(dSub(f1f1, f2f2), q6), dScale(dMul(dMul(f1, f2), q5), 2)),
		dMul(f2, dSub(f2f2, dScale(f1f1, 3))),
		dMul(
			dMul(q5, dSub(q5q5, dScale(q6q6, 3))),
			dMul(f1, dSub(f1f1, dScale(f2f2, 3))),
		),
	}

	return splitDuals(prim, sec)
}

// splitDuals unzips dual vectors into value slices and Jacobian rows.
func splitDuals(prim, sec []dual) (primary, secondary []float64, dPrimary, dSecondary [][]float64, err error) {
	primary = make([]float64, len(prim))
	dPrimary = make([][]float64, len(prim))
	for i, d := range prim {
		primary[i] = d.v
		dPrimary[i] = d.g
	}

	secondary = make([]float64, len(sec))
	dSecondary = make([][]float64, len(sec))
	for i, d := range sec {
		secondary[i] = d.v
		dSecondary[i] = d.g
	}

	return primary, secondary, dPrimary, dSecondary, nil
}
