package basis

import (
	"log"
	"sort"

	"github.com/katalvlaran/nbpoly/dictionary"
)

// WarnFunc consumes recoverable diagnostics (dictionary mismatches during
// Combine). The default sink is the standard logger.
type WarnFunc func(format string, args ...any)

var warn WarnFunc = log.Printf

// SetWarnFunc replaces the package warning sink; nil silences warnings.
// Set it once at startup — the hook is not synchronized.
func SetWarnFunc(f WarnFunc) {
	if f == nil {
		f = func(string, ...any) {}
	}
	warn = f
}

// Combine builds one canonical Term out of several: every (tuple,
// coefficient·outer) pair is collected, sorted lexicographically by tuple,
// duplicates merged by coefficient summation and exact zeros dropped. The
// result is duplicate-free and fit for persistence or comparison.
//
// All inputs must share the body order (ErrBodyOrderMismatch otherwise).
// Dictionary disagreement is recoverable: a representational mismatch
// (distinct instances, identical symbolic form) or an outright mismatch is
// reported through the warning hook and evaluation proceeds with the first
// term's Dictionary.
func Combine(terms []*Term, outer []float64) (*Term, error) {
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	if len(terms) != len(outer) {
		return nil, ErrLengthMismatch
	}

	first := terms[0]
	for _, t := range terms[1:] {
		if t.bodyOrder != first.bodyOrder {
			return nil, ErrBodyOrderMismatch
		}
		checkDictionaries(first.dict, t.dict)
	}

	// gather scaled rows
	type row struct {
		tuple Tuple
		coeff float64
	}
	var rows []row
	for k, t := range terms {
		for i, tp := range t.tuples {
			rows = append(rows, row{tuple: tp.Clone(), coeff: t.coeffs[i] * outer[k]})
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].tuple.Compare(rows[j].tuple) < 0 })

	var (
		tuples []Tuple
		coeffs []float64
	)
	for i := 0; i < len(rows); {
		j := i
		c := 0.0
		for ; j < len(rows) && rows[j].tuple.Equal(rows[i].tuple); j++ {
			c += rows[j].coeff
		}
		if c != 0 {
			tuples = append(tuples, rows[i].tuple)
			coeffs = append(coeffs, c)
		}
		i = j
	}

	if first.bodyOrder == 1 {
		return NewOneBody(sum(coeffs)), nil
	}

	return &Term{
		bodyOrder: first.bodyOrder,
		tuples:    tuples,
		coeffs:    coeffs,
		dict:      first.dict,
	}, nil
}

// checkDictionaries flags (never fails) dictionary disagreement.
func checkDictionaries(a, b *dictionary.Dictionary) {
	if a == b {
		return
	}
	if dictionary.Compatible(a, b) {
		warn("basis: combining terms with distinctly-allocated dictionaries of identical symbolic form; using the first term's dictionary")

		return
	}
	warn("basis: combining terms with mismatched dictionaries; using the first term's dictionary")
}
