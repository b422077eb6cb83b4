package dictionary_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/nbpoly/dictionary"
)

// ExampleNew builds a dictionary from registry symbols and shows the exact
// symbolic pair surviving for serialization. Halfway through the cosine
// taper the envelope is exactly one half.
func ExampleNew() {
	d, err := dictionary.New("poly(3)", "cos(4.5,6.0)")
	if err != nil {
		log.Fatal(err)
	}

	tr, cu, err := d.Names()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("transform %s, cutoff %s, rcut %.1f\n", tr, cu, d.CutoffRadius())

	fc, _ := d.Cutoff(5.25)
	fmt.Printf("fc(5.25) = %.3f\n", fc)

	// Output:
	// transform poly(3), cutoff cos(4.5,6.0), rcut 6.0
	// fc(5.25) = 0.500
}
