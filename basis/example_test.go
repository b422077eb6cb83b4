package basis_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/nbpoly/basis"
	"github.com/katalvlaran/nbpoly/dictionary"
)

// ExampleTerm_Evaluate builds a three-body term over inverse-distance
// coordinates and evaluates it inside the cutoff plateau, where the
// envelope is exactly 1.
func ExampleTerm_Evaluate() {
	dict, err := dictionary.New("inv", "cos(4.5,6.0)")
	if err != nil {
		log.Fatal(err)
	}

	// 2 · (1/r12 + 1/r13 + 1/r23)
	term, err := basis.New(3, []basis.Tuple{{1, 0, 0, 0}}, []float64{2}, dict)
	if err != nil {
		log.Fatal(err)
	}

	v, err := term.Evaluate([]float64{1.0, 1.2, 0.8})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("energy: %.4f\n", v)

	_, grad, err := term.Gradient([]float64{1.0, 1.2, 0.8})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("dE/dr12: %.4f\n", grad[0])

	// Output:
	// energy: 6.1667
	// dE/dr12: -2.0000
}

// ExampleCombine merges two terms over the same basis into one canonical,
// duplicate-free term.
func ExampleCombine() {
	dict, err := dictionary.New("inv", "cos(4.5,6.0)")
	if err != nil {
		log.Fatal(err)
	}

	a, _ := basis.New(3, []basis.Tuple{{1, 0, 0, 0}}, []float64{2}, dict)
	b, _ := basis.New(3, []basis.Tuple{{1, 0, 0, 0}, {0, 1, 0, 0}}, []float64{1, 3}, dict)

	merged, err := basis.Combine([]*basis.Term{a, b}, []float64{1, 1})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("rows: %d, coefficients: %v\n", merged.Len(), merged.Coefficients())

	// Output:
	// rows: 2, coefficients: [3 3]
}
