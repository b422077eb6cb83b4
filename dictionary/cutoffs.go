package dictionary

import "math"

// Cutoff envelope families. Each builder returns (fc, rcut) where fc
// evaluates the envelope and its derivative and is identically zero for
// r ≥ rcut.

// cosCutoff is 1 below r1, a half-cosine taper on [r1, rc], 0 beyond.
func cosCutoff(r1, rc float64) ScalarFunc {
	width := rc - r1

	return func(r float64) (float64, float64) {
		switch {
		case r <= r1:
			return 1, 0
		case r >= rc:
			return 0, 0
		default:
			s := (r - r1) / width

			return 0.5 * (1 + math.Cos(math.Pi*s)), -0.5 * math.Pi * math.Sin(math.Pi*s) / width
		}
	}
}

// swCutoff is the Stillinger–Weber envelope exp(L/(r−rc)) for r < rc.
func swCutoff(l, rc float64) ScalarFunc {
	return func(r float64) (float64, float64) {
		if r >= rc {
			return 0, 0
		}
		v := math.Exp(l / (r - rc))

		return v, -l / ((r - rc) * (r - rc)) * v
	}
}

// splineCutoff is the C² quintic step from 1 at r1 down to 0 at rc.
func splineCutoff(r1, rc float64) ScalarFunc {
	width := rc - r1

	return func(r float64) (float64, float64) {
		switch {
		case r <= r1:
			return 1, 0
		case r >= rc:
			return 0, 0
		default:
			s := (r - r1) / width
			v := 1 - s*s*s*(10-15*s+6*s*s)
			dv := -30 * s * s * (1 - s) * (1 - s) / width

			return v, dv
		}
	}
}

// squareCutoff is (r−rc)² inside the radius, 0 outside.
func squareCutoff(rc float64) ScalarFunc {
	return func(r float64) (float64, float64) {
		if r >= rc {
			return 0, 0
		}

		return (r - rc) * (r - rc), 2 * (r - rc)
	}
}

// twosidedCutoff vanishes outside the open interval (rin, rc) and is
// normalized to 1 at the nominal nearest-neighbour distance rnn:
//
//	fc(r) = [ (r−rin)(rc−r) / ((rnn−rin)(rc−rnn)) ]^p
func twosidedCutoff(rnn, rin, rc, p float64) ScalarFunc {
	norm := (rnn - rin) * (rc - rnn)

	return func(r float64) (float64, float64) {
		if r <= rin || r >= rc {
			return 0, 0
		}
		u := (r - rin) * (rc - r) / norm
		v := math.Pow(u, p)
		// d/dr log u = 1/(r−rin) − 1/(rc−r)
		dv := p * v * (1/(r-rin) - 1/(rc-r))

		return v, dv
	}
}

func buildCutoff(name string, args []float64) (ScalarFunc, float64, error) {
	switch name {
	case "cos":
		if len(args) != 2 || args[0] >= args[1] {
			return nil, 0, ErrSymbolArgs
		}

		return cosCutoff(args[0], args[1]), args[1], nil
	case "sw":
		if len(args) != 2 || args[0] <= 0 || args[1] <= 0 {
			return nil, 0, ErrSymbolArgs
		}

		return swCutoff(args[0], args[1]), args[1], nil
	case "spline":
		if len(args) != 2 || args[0] >= args[1] {
			return nil, 0, ErrSymbolArgs
		}

		return splineCutoff(args[0], args[1]), args[1], nil
	case "square":
		if len(args) != 1 || args[0] <= 0 {
			return nil, 0, ErrSymbolArgs
		}

		return squareCutoff(args[0]), args[0], nil
	case "twosided":
		if len(args) != 4 || !(args[1] < args[0] && args[0] < args[2]) || args[3] <= 0 {
			return nil, 0, ErrSymbolArgs
		}

		return twosidedCutoff(args[0], args[1], args[2], args[3]), args[2], nil
	default:
		return nil, 0, ErrUnknownSymbol
	}
}
