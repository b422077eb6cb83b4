package dictionary

import (
	"strconv"
	"strings"
)

// Registry is an immutable lookup of symbolic transform/cutoff families.
// It replaces any notion of a global mutable registry: callers hold a
// *Registry value and pass symbols through it.
type Registry struct {
	transforms map[string]func(args []float64) (ScalarFunc, error)
	cutoffs    map[string]func(args []float64) (ScalarFunc, float64, error)
}

// DefaultRegistry returns the built-in symbol families:
//
//	transforms: poly(p), exp(p), inv, invsqrt, invsquare
//	cutoffs:    cos(r1,rc), sw(L,rc), spline(r1,rc), square(rc),
//	            twosided(rnn,rin,rc,p)
func DefaultRegistry() *Registry {
	wrapT := func(name string) func([]float64) (ScalarFunc, error) {
		return func(args []float64) (ScalarFunc, error) { return buildTransform(name, args) }
	}
	wrapC := func(name string) func([]float64) (ScalarFunc, float64, error) {
		return func(args []float64) (ScalarFunc, float64, error) { return buildCutoff(name, args) }
	}

	return &Registry{
		transforms: map[string]func([]float64) (ScalarFunc, error){
			"poly": wrapT("poly"), "exp": wrapT("exp"),
			"inv": wrapT("inv"), "invsqrt": wrapT("invsqrt"), "invsquare": wrapT("invsquare"),
		},
		cutoffs: map[string]func([]float64) (ScalarFunc, float64, error){
			"cos": wrapC("cos"), "sw": wrapC("sw"), "spline": wrapC("spline"),
			"square": wrapC("square"), "twosided": wrapC("twosided"),
		},
	}
}

// New builds a Dictionary from symbolic descriptors against this registry.
// The returned Dictionary serializes back to exactly (transformSym,
// cutoffSym).
func (reg *Registry) New(transformSym, cutoffSym string) (*Dictionary, error) {
	tName, tArgs, err := parseSymbol(transformSym)
	if err != nil {
		return nil, err
	}
	build, ok := reg.transforms[tName]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	transform, err := build(tArgs)
	if err != nil {
		return nil, err
	}

	cName, cArgs, err := parseSymbol(cutoffSym)
	if err != nil {
		return nil, err
	}
	buildC, ok := reg.cutoffs[cName]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	cutoff, rcut, err := buildC(cArgs)
	if err != nil {
		return nil, err
	}

	return &Dictionary{
		transform:     transform,
		cutoff:        cutoff,
		rcut:          rcut,
		transformName: transformSym,
		cutoffName:    cutoffSym,
	}, nil
}

// New builds a Dictionary against the default registry; see Registry.New.
func New(transformSym, cutoffSym string) (*Dictionary, error) {
	return DefaultRegistry().New(transformSym, cutoffSym)
}

// parseSymbol splits "name(a, b)" into its name and numeric arguments.
// Bare names ("inv") parse with no arguments.
func parseSymbol(sym string) (string, []float64, error) {
	s := strings.TrimSpace(sym)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		if s == "" {
			return "", nil, ErrUnknownSymbol
		}

		return s, nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, ErrSymbolArgs
	}

	name := strings.TrimSpace(s[:open])
	body := strings.TrimSpace(s[open+1 : len(s)-1])
	if name == "" {
		return "", nil, ErrUnknownSymbol
	}
	if body == "" {
		return name, nil, nil
	}

	parts := strings.Split(body, ",")
	args := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", nil, ErrSymbolArgs
		}
		args[i] = v
	}

	return name, args, nil
}
