package invariants_test

import (
	"fmt"

	"github.com/katalvlaran/nbpoly/invariants"
)

// ExampleCompute maps the three distances of a trimer to its elementary
// symmetric invariants: sum, pairwise-product sum, product.
func ExampleCompute() {
	primary, secondary, err := invariants.Compute([]float64{1.0, 1.2, 0.8})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("primary=%.2f\nsecondary=%.0f\n", primary, secondary)
	// Output:
	// primary=[3.00 2.96 0.96]
	// secondary=[1]
}

// ExampleBodyOrder recovers the cluster size from an edge count.
func ExampleBodyOrder() {
	fmt.Println(invariants.BodyOrder(6), invariants.BodyOrder(10))
	// Output: 4 5
}
