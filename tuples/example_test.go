package tuples_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/nbpoly/tuples"
)

// ExampleGenerate enumerates the two-body basis up to total degree 3: the
// single primary invariant has degree 1, so the admissible tuples are the
// pure powers 1 through 3.
func ExampleGenerate() {
	pred, err := tuples.MaxDegree(2, 3)
	if err != nil {
		log.Fatal(err)
	}

	basisTuples, err := tuples.Generate(2, pred)
	if err != nil {
		log.Fatal(err)
	}
	for _, tp := range basisTuples {
		fmt.Println(tp)
	}

	// Output:
	// [1 0]
	// [2 0]
	// [3 0]
}
