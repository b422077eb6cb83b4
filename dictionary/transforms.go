package dictionary

import "math"

// Transform families. Every builder returns t(r) together with t'(r); the
// basis layer chains t' into the invariant Jacobian column per column.

// polyTransform is t(r) = r^(−p), the classic inverse-power coordinate.
func polyTransform(p float64) ScalarFunc {
	return func(r float64) (float64, float64) {
		v := math.Pow(r, -p)

		return v, -p * v / r
	}
}

// expTransform is t(r) = exp(−p·r).
func expTransform(p float64) ScalarFunc {
	return func(r float64) (float64, float64) {
		v := math.Exp(-p * r)

		return v, -p * v
	}
}

func buildTransform(name string, args []float64) (ScalarFunc, error) {
	switch name {
	case "poly":
		if len(args) != 1 || args[0] <= 0 {
			return nil, ErrSymbolArgs
		}

		return polyTransform(args[0]), nil
	case "exp":
		if len(args) != 1 || args[0] <= 0 {
			return nil, ErrSymbolArgs
		}

		return expTransform(args[0]), nil
	case "inv":
		if len(args) != 0 {
			return nil, ErrSymbolArgs
		}

		return polyTransform(1), nil
	case "invsqrt":
		if len(args) != 0 {
			return nil, ErrSymbolArgs
		}

		return polyTransform(0.5), nil
	case "invsquare":
		if len(args) != 0 {
			return nil, ErrSymbolArgs
		}

		return polyTransform(2), nil
	default:
		return nil, ErrUnknownSymbol
	}
}
