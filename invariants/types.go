package invariants

import (
	"errors"
	"math"
)

var (
	// ErrEdgeCount is returned when the length of a distance vector does not
	// equal N(N−1)/2 for any supported body order N in 2..5.
	ErrEdgeCount = errors.New("invariants: edge count does not match a supported body order")

	// ErrBodyOrder is returned when a degree table is requested for a body
	// order outside the supported 2..5 range.
	ErrBodyOrder = errors.New("invariants: unsupported body order")
)

// MinBodyOrder and MaxBodyOrder bound the hard-coded invariant engines.
const (
	MinBodyOrder = 2
	MaxBodyOrder = 5
)

// Edges returns the number of pairwise distances M = n(n−1)/2 for a cluster
// of body order n.
func Edges(n int) int {
	return n * (n - 1) / 2
}

// BodyOrder inverts Edges: given m distances it returns the body order
// round(0.5+sqrt(0.25+2m)). For m ≤ 0 it returns 1, the degenerate on-site
// case; callers must not read anything further into that value.
func BodyOrder(m int) int {
	if m <= 0 {
		return 1
	}

	return int(math.Round(0.5 + math.Sqrt(0.25+2.0*float64(m))))
}

// Static degree tables, one per body order. The degree of each invariant is
// fixed by construction and never recomputed at runtime.
var (
	primaryDegrees = map[int][]int{
		2: {1},
		3: {1, 2, 3},
		4: {1, 2, 3, 4, 2, 3},
		5: bo5PrimaryDegrees(),
	}
	secondaryDegrees = map[int][]int{
		2: {0},
		3: {0},
		4: {0, 3, 4, 5, 6, 9},
		5: bo5SecondaryDegrees(),
	}
)

// PrimaryDegrees returns the polynomial degrees of the primary invariants of
// body order n. The returned slice is a copy and may be mutated freely.
func PrimaryDegrees(n int) ([]int, error) {
	d, ok := primaryDegrees[n]
	if !ok {
		return nil, ErrBodyOrder
	}

	out := make([]int, len(d))
	copy(out, d)

	return out, nil
}

// SecondaryDegrees returns the polynomial degrees of the secondary
// invariants of body order n, including the constant at index 0.
func SecondaryDegrees(n int) ([]int, error) {
	d, ok := secondaryDegrees[n]
	if !ok {
		return nil, ErrBodyOrder
	}

	out := make([]int, len(d))
	copy(out, d)

	return out, nil
}

// NumSecondary returns the size of the secondary-invariant list of body
// order n (1 for N≤3, 6 for N=4, 133 for N=5).
func NumSecondary(n int) (int, error) {
	d, ok := secondaryDegrees[n]
	if !ok {
		return 0, ErrBodyOrder
	}

	return len(d), nil
}

func bo5PrimaryDegrees() []int {
	d := make([]int, len(bo5Primary))
	for i := range bo5Primary {
		d[i] = bo5Primary[i].deg
	}

	return d
}

func bo5SecondaryDegrees() []int {
	d := make([]int, len(bo5Secondary))
	for i := range bo5Secondary {
		d[i] = bo5Secondary[i].deg
	}

	return d
}
