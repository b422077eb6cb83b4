package basis

// Monomial evaluates Π_j primary[j]^exps[j]. Zero exponents contribute
// nothing and exponent 1 multiplies directly, so the cost is proportional
// to the number of nonzero entries — generated tuples are mostly sparse.
// Extra trailing entries of exps beyond len(primary) (the secondary
// selector slot of a full Tuple) are ignored.
func Monomial(exps []int, primary []float64) float64 {
	v := 1.0
	for j := range primary {
		switch e := exps[j]; {
		case e == 0:
		case e == 1:
			v *= primary[j]
		default:
			v *= intPow(primary[j], e)
		}
	}

	return v
}

// MonomialD evaluates the monomial together with its gradient over the
// primary invariants: ∂/∂primary[i] = exps[i]·primary[i]^(exps[i]−1) ·
// Π_{j≠i} primary[j]^exps[j]. A degree-0 monomial returns value 1 and an
// exactly zero gradient.
func MonomialD(exps []int, primary []float64) (float64, []float64) {
	grad := make([]float64, len(primary))

	// factor values of the nonzero-exponent slots
	var nz []int
	for j := range primary {
		if exps[j] != 0 {
			nz = append(nz, j)
		}
	}
	if len(nz) == 0 {
		return 1, grad
	}

	factors := make([]float64, len(nz))
	for k, j := range nz {
		factors[k] = intPow(primary[j], exps[j])
	}

	// prefix[k] = Π factors[<k], suffix[k] = Π factors[>k]
	prefix := make([]float64, len(nz)+1)
	prefix[0] = 1
	for k := range factors {
		prefix[k+1] = prefix[k] * factors[k]
	}
	suffix := 1.0
	for k := len(nz) - 1; k >= 0; k-- {
		j := nz[k]
		grad[j] = float64(exps[j]) * intPow(primary[j], exps[j]-1) * prefix[k] * suffix
		suffix *= factors[k]
	}

	return prefix[len(nz)], grad
}

// intPow raises x to a small nonnegative integer power by repeated
// multiplication; exponents here are single-digit polynomial degrees.
func intPow(x float64, e int) float64 {
	v := 1.0
	for ; e > 0; e-- {
		v *= x
	}

	return v
}
