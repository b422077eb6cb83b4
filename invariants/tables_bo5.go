// Code generated by tools/gen_bo5_tables.py (edge-orbit enumeration under
// the 5-particle permutation group). DO NOT EDIT.

package invariants

// bo5Primary and bo5Secondary hold the precomputed orbit-contraction tables
// for the 5-body invariants. Each entry sums, over the orbit of one generator
// monomial, the product of up to four gathered edge powers:
//
//	value = sum_k xp[pow[0]][idx0[k]] * xp[pow[1]][idx1[k]] * xp[pow[2]][idx2[k]] * xp[pow[3]][idx3[k]]
//
// where xp[p] is the elementwise p-th power of the (transformed) edge vector
// and xp[0] is the all-ones vector. Index lists are orbit representatives and
// are never recomputed at runtime.

var bo5Primary = [10]orbitContraction{
	{
		deg:  1,
		pow:  [4]uint8{1, 0, 0, 0},
		idx0: []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		idx1: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  2,
		pow:  [4]uint8{2, 0, 0, 0},
		idx0: []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		idx1: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  2,
		pow:  [4]uint8{1, 1, 0, 0},
		idx0: []uint8{8, 7, 7, 6, 6, 5, 5, 5, 4, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 8, 9, 7, 6, 8, 7, 6, 5, 9, 8, 6, 9, 7, 5, 3, 8, 7, 4, 3, 2, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  3,
		pow:  [4]uint8{3, 0, 0, 0},
		idx0: []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		idx1: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  3,
		pow:  [4]uint8{1, 1, 1, 0},
		idx0: []uint8{7, 5, 4, 4, 2, 1, 1, 0, 0, 0},
		idx1: []uint8{8, 6, 6, 5, 3, 3, 2, 3, 2, 1},
		idx2: []uint8{9, 9, 8, 7, 9, 8, 7, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  4,
		pow:  [4]uint8{4, 0, 0, 0},
		idx0: []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		idx1: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  4,
		pow:  [4]uint8{2, 2, 0, 0},
		idx0: []uint8{8, 7, 7, 6, 6, 5, 5, 5, 4, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 8, 9, 7, 6, 8, 7, 6, 5, 9, 8, 6, 9, 7, 5, 3, 8, 7, 4, 3, 2, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{5, 0, 0, 0},
		idx0: []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		idx1: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{2, 2, 1, 0},
		idx0: []uint8{8, 7, 7, 6, 5, 5, 6, 5, 4, 4, 4, 4, 3, 2, 2, 3, 2, 1, 1, 1, 1, 3, 2, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 9, 6, 8, 7, 8, 6, 7, 5, 9, 9, 3, 8, 7, 8, 3, 7, 2, 6, 5, 4, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{7, 8, 9, 5, 6, 9, 4, 4, 6, 8, 5, 7, 2, 3, 9, 1, 1, 3, 8, 2, 7, 0, 0, 0, 3, 6, 2, 5, 1, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{6, 0, 0, 0},
		idx0: []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		idx1: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

var bo5Secondary = [133]orbitContraction{
	{
		deg:  0,
		pow:  [4]uint8{0, 0, 0, 0},
		idx0: []uint8{0},
		idx1: []uint8{0},
		idx2: []uint8{0},
		idx3: []uint8{0},
	},
	{
		deg:  2,
		pow:  [4]uint8{1, 1, 0, 0},
		idx0: []uint8{6, 5, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 0, 0, 0},
		idx1: []uint8{7, 8, 9, 7, 5, 4, 8, 6, 4, 9, 6, 5, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  3,
		pow:  [4]uint8{1, 1, 1, 0},
		idx0: []uint8{6, 5, 4, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{8, 7, 7, 5, 8, 6, 6, 7, 5, 5, 7, 4, 4, 2, 5, 4, 4, 2, 1, 1},
		idx2: []uint8{9, 9, 8, 6, 9, 9, 8, 9, 9, 7, 8, 8, 7, 3, 6, 6, 5, 3, 3, 2},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  3,
		pow:  [4]uint8{2, 1, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  3,
		pow:  [4]uint8{1, 1, 1, 0},
		idx0: []uint8{3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{6, 5, 5, 4, 4, 4, 6, 6, 5, 4, 4, 4, 3, 6, 6, 5, 5, 5, 4, 3, 2, 8, 7, 7, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{7, 8, 7, 9, 7, 5, 8, 7, 8, 9, 8, 6, 4, 9, 7, 9, 8, 6, 9, 5, 6, 9, 9, 8, 7, 8, 9, 7, 8, 9},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg: 3,
		pow: [4]uint8{2, 1, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 3,
		pow: [4]uint8{1, 1, 1, 0},
		idx0: []uint8{
			6, 6, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 7, 8, 7, 6, 6, 8, 7, 6, 6, 5, 5, 7, 7, 5, 5, 4, 4, 8, 7, 6, 5, 4, 4, 3, 3, 3, 3, 8, 7,
			6, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 6, 6, 5, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1,
		},
		idx2: []uint8{
			9, 8, 9, 8, 8, 7, 9, 9, 9, 7, 9, 8, 9, 8, 9, 6, 8, 6, 9, 8, 9, 6, 7, 5, 8, 7, 6, 5, 9, 9,
			8, 7, 6, 5, 9, 7, 6, 4, 9, 8, 5, 4, 9, 8, 9, 7, 8, 7, 9, 8, 5, 4, 9, 7, 6, 4, 8, 7, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg:  4,
		pow:  [4]uint8{1, 1, 1, 1},
		idx0: []uint8{3, 2, 1, 0, 0},
		idx1: []uint8{6, 5, 4, 4, 1},
		idx2: []uint8{8, 7, 7, 5, 2},
		idx3: []uint8{9, 9, 8, 6, 3},
	},
	{
		deg:  4,
		pow:  [4]uint8{1, 1, 1, 1},
		idx0: []uint8{3, 2, 2, 1, 1, 1, 0, 0, 0, 0},
		idx1: []uint8{4, 4, 3, 5, 3, 2, 7, 3, 2, 1},
		idx2: []uint8{5, 6, 4, 6, 5, 6, 8, 6, 5, 4},
		idx3: []uint8{7, 8, 9, 9, 8, 7, 9, 7, 8, 9},
	},
	{
		deg:  4,
		pow:  [4]uint8{2, 2, 0, 0},
		idx0: []uint8{6, 5, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 0, 0, 0},
		idx1: []uint8{7, 8, 9, 7, 5, 4, 8, 6, 4, 9, 6, 5, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  4,
		pow:  [4]uint8{1, 1, 1, 1},
		idx0: []uint8{5, 4, 4, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{6, 6, 5, 3, 3, 3, 3, 2, 2, 3, 3, 2, 2, 1, 1},
		idx2: []uint8{7, 7, 8, 7, 5, 7, 4, 8, 4, 5, 4, 6, 4, 6, 5},
		idx3: []uint8{8, 9, 9, 8, 6, 9, 6, 9, 5, 9, 8, 9, 7, 8, 7},
	},
	{
		deg:  4,
		pow:  [4]uint8{2, 1, 1, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  4,
		pow:  [4]uint8{3, 1, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  4,
		pow:  [4]uint8{2, 1, 1, 0},
		idx0: []uint8{7, 5, 4, 3, 3, 3, 6, 8, 4, 4, 2, 2, 2, 6, 5, 9, 5, 6, 1, 1, 1, 7, 8, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 6, 4, 4, 1, 1, 1, 1, 1, 6, 5, 5, 0, 0, 0, 0, 0, 0, 8, 7, 7},
		idx2: []uint8{6, 8, 9, 7, 7, 5, 7, 5, 9, 3, 8, 8, 6, 7, 8, 4, 3, 2, 9, 9, 6, 6, 5, 4, 3, 2, 1, 9, 9, 8},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg: 4,
		pow: [4]uint8{3, 1, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{2, 1, 1, 0},
		idx0: []uint8{
			9, 8, 6, 9, 7, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 8, 6, 6, 3, 3, 3, 9, 7, 9, 7, 5, 5, 2, 2, 2,
			8, 7, 8, 7, 4, 4, 3, 2, 1, 1, 1, 1, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 8, 5, 5, 7, 4, 4, 4, 4, 7, 5, 3, 3, 3, 3, 3, 3, 8, 6, 6, 2, 2, 2, 2, 2, 2, 7, 5, 5,
			1, 1, 1, 1, 1, 1, 1, 1, 7, 4, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 2, 1, 1,
		},
		idx2: []uint8{
			8, 9, 9, 7, 9, 9, 7, 8, 5, 6, 8, 6, 8, 9, 6, 6, 9, 8, 9, 9, 8, 7, 9, 5, 5, 9, 7, 9, 9, 7,
			7, 8, 4, 4, 8, 7, 2, 3, 8, 8, 7, 3, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2, 6, 6, 5, 3, 3, 2,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{2, 1, 1, 0},
		idx0: []uint8{
			9, 8, 9, 7, 6, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 6, 8, 6, 9, 7, 9, 5, 7, 5, 3, 3, 2, 2, 8, 7,
			8, 7, 4, 4, 3, 3, 2, 2, 1, 1, 1, 1, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 5, 5, 5, 6, 4, 4, 4, 4, 6, 5, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			7, 7, 8, 8, 8, 7, 9, 9, 9, 9, 7, 8, 7, 7, 5, 5, 4, 4, 8, 8, 6, 6, 4, 4, 8, 6, 7, 5, 9, 9,
			6, 5, 6, 5, 9, 6, 9, 5, 7, 4, 8, 4, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7, 5, 4, 6, 4, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{1, 1, 1, 1},
		idx0: []uint8{
			6, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 7, 6, 6, 7, 6, 6, 5, 5, 5, 5, 5, 7, 5, 4, 7, 5, 4, 3, 3, 3, 3, 7, 4, 4, 3, 3, 3, 3, 2,
			2, 2, 2, 2, 2, 2, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		},
		idx2: []uint8{
			8, 8, 8, 7, 8, 8, 7, 7, 7, 6, 6, 6, 8, 6, 6, 8, 6, 5, 8, 7, 6, 5, 8, 6, 5, 8, 7, 6, 4, 7,
			7, 5, 4, 3, 3, 3, 6, 6, 5, 6, 6, 5, 4, 5, 5, 5, 4, 3, 3, 3, 4, 4, 4, 4, 3, 3, 3, 2, 2, 2,
		},
		idx3: []uint8{
			9, 9, 9, 9, 9, 9, 8, 9, 8, 9, 8, 7, 9, 9, 8, 9, 9, 7, 9, 9, 9, 9, 9, 8, 7, 9, 8, 8, 8, 9,
			8, 7, 7, 9, 8, 7, 9, 8, 7, 9, 8, 6, 6, 9, 7, 6, 5, 9, 6, 5, 8, 7, 6, 5, 8, 6, 4, 7, 5, 4,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{1, 1, 1, 1},
		idx0: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 5, 5, 5, 4, 4, 4, 4, 6, 6, 5, 5, 5, 4, 4, 4, 4, 3, 3, 6, 6, 5, 5, 4, 4, 4, 4, 4, 3,
			3, 2, 2, 2, 2, 2, 6, 5, 5, 5, 4, 4, 4, 4, 4, 3, 3, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1,
		},
		idx2: []uint8{
			7, 7, 8, 7, 6, 8, 7, 6, 5, 8, 7, 8, 7, 6, 7, 7, 5, 5, 6, 5, 8, 7, 7, 7, 8, 7, 6, 5, 5, 6,
			4, 5, 4, 3, 3, 3, 8, 7, 6, 6, 7, 6, 6, 5, 5, 8, 4, 7, 4, 3, 3, 3, 7, 5, 3, 3, 3, 2, 2, 2,
		},
		idx3: []uint8{
			9, 8, 9, 9, 8, 9, 8, 9, 6, 9, 9, 9, 8, 7, 9, 8, 9, 6, 8, 7, 9, 8, 9, 8, 9, 9, 7, 8, 6, 9,
			7, 9, 8, 6, 5, 4, 9, 9, 8, 7, 8, 9, 7, 9, 8, 9, 5, 9, 6, 8, 7, 4, 8, 6, 9, 7, 5, 9, 8, 6,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{2, 1, 1, 0},
		idx0: []uint8{
			6, 8, 7, 5, 9, 7, 5, 4, 4, 3, 3, 3, 8, 7, 6, 5, 9, 8, 6, 4, 4, 3, 2, 2, 2, 2, 9, 7, 6, 9,
			8, 6, 5, 5, 4, 3, 2, 1, 1, 1, 1, 1, 9, 8, 9, 8, 7, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 6, 5, 4, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 6, 5, 4, 3, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			7, 5, 5, 7, 4, 4, 4, 7, 5, 7, 8, 9, 6, 6, 8, 8, 4, 4, 4, 8, 6, 4, 7, 8, 9, 4, 6, 6, 9, 5,
			5, 5, 9, 6, 9, 5, 6, 7, 8, 9, 5, 6, 8, 9, 7, 7, 9, 8, 7, 8, 9, 7, 8, 9, 7, 8, 9, 7, 8, 9,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{1, 1, 1, 1},
		idx0: []uint8{
			3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			5, 5, 4, 4, 4, 4, 6, 5, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 6, 5, 5, 5, 4, 4, 3, 3, 3, 3, 3, 3,
			2, 2, 2, 2, 2, 2, 6, 6, 5, 5, 4, 4, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1,
		},
		idx2: []uint8{
			7, 6, 7, 6, 5, 5, 7, 6, 8, 6, 6, 5, 6, 5, 4, 4, 4, 4, 7, 8, 6, 6, 6, 5, 6, 5, 5, 5, 4, 4,
			6, 6, 5, 5, 4, 4, 7, 7, 8, 7, 8, 7, 7, 7, 5, 5, 4, 4, 8, 7, 6, 6, 4, 4, 8, 7, 6, 6, 5, 5,
		},
		idx3: []uint8{
			8, 7, 9, 7, 9, 8, 8, 8, 9, 9, 7, 8, 7, 8, 8, 7, 6, 5, 9, 9, 8, 7, 9, 9, 7, 9, 7, 6, 9, 5,
			9, 8, 8, 6, 9, 6, 9, 8, 9, 8, 9, 9, 9, 8, 8, 7, 9, 7, 9, 8, 8, 7, 9, 8, 9, 9, 9, 7, 9, 8,
		},
	},
	{
		deg: 4,
		pow: [4]uint8{2, 1, 1, 0},
		idx0: []uint8{
			7, 7, 6, 6, 8, 8, 8, 7, 6, 5, 5, 5, 9, 9, 9, 7, 6, 9, 8, 5, 4, 4, 4, 4, 7, 7, 5, 5, 4, 4,
			3, 3, 3, 3, 3, 3, 8, 8, 6, 6, 4, 4, 8, 7, 6, 5, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 9, 9, 6, 5,
			6, 5, 9, 7, 6, 4, 3, 3, 9, 8, 5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 8, 9, 7, 8, 7,
			9, 8, 5, 4, 3, 3, 9, 7, 6, 4, 2, 2, 8, 7, 6, 5, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 7, 7, 5, 5, 5, 5, 5, 8, 7, 6, 4, 4, 4, 4, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 3, 3, 3,
			7, 7, 5, 5, 4, 4, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 8, 7, 6, 5, 4, 4, 3, 3, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 8, 7, 6, 5, 4, 4, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			9, 8, 9, 8, 9, 7, 6, 6, 7, 9, 8, 8, 8, 7, 6, 6, 7, 5, 5, 8, 9, 9, 9, 9, 9, 8, 9, 6, 8, 6,
			9, 8, 9, 6, 8, 6, 9, 7, 9, 5, 7, 5, 3, 3, 3, 3, 7, 5, 9, 8, 9, 6, 7, 5, 8, 6, 8, 7, 8, 7,
			4, 4, 3, 3, 3, 3, 7, 4, 2, 2, 2, 2, 8, 4, 9, 9, 8, 7, 6, 5, 9, 6, 9, 5, 6, 6, 5, 5, 4, 4,
			3, 3, 3, 3, 5, 4, 2, 2, 2, 2, 6, 4, 1, 1, 1, 1, 6, 5, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg:  5,
		pow:  [4]uint8{2, 1, 1, 1},
		idx0: []uint8{3, 4, 2, 5, 6, 1, 7, 8, 9, 0},
		idx1: []uint8{4, 2, 4, 1, 1, 5, 0, 0, 0, 7},
		idx2: []uint8{5, 3, 6, 3, 2, 6, 3, 2, 1, 8},
		idx3: []uint8{7, 9, 8, 8, 7, 9, 6, 5, 4, 9},
	},
	{
		deg:  5,
		pow:  [4]uint8{2, 1, 1, 1},
		idx0: []uint8{9, 8, 6, 3, 9, 7, 5, 2, 8, 7, 4, 1, 6, 5, 4, 3, 2, 1, 0, 0},
		idx1: []uint8{3, 3, 3, 6, 2, 2, 2, 5, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 4, 1},
		idx2: []uint8{6, 6, 8, 8, 5, 5, 7, 7, 4, 4, 7, 7, 4, 4, 5, 1, 1, 2, 5, 2},
		idx3: []uint8{8, 9, 9, 9, 7, 9, 9, 9, 7, 8, 8, 8, 5, 6, 6, 2, 3, 3, 6, 3},
	},
	{
		deg:  5,
		pow:  [4]uint8{3, 1, 1, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{4, 1, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{3, 2, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{3, 1, 1, 0},
		idx0: []uint8{7, 5, 4, 3, 3, 3, 6, 8, 4, 4, 2, 2, 2, 6, 5, 9, 5, 6, 1, 1, 1, 7, 8, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 6, 4, 4, 1, 1, 1, 1, 1, 6, 5, 5, 0, 0, 0, 0, 0, 0, 8, 7, 7},
		idx2: []uint8{6, 8, 9, 7, 7, 5, 7, 5, 9, 3, 8, 8, 6, 7, 8, 4, 3, 2, 9, 9, 6, 6, 5, 4, 3, 2, 1, 9, 9, 8},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{2, 2, 1, 0},
		idx0: []uint8{5, 4, 4, 3, 3, 3, 6, 4, 4, 2, 2, 2, 2, 6, 5, 5, 1, 1, 1, 1, 1, 8, 7, 7, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 7, 5, 6, 8, 9, 8, 8, 6, 7, 5, 9, 3, 9, 9, 6, 7, 8, 4, 3, 2, 9, 9, 8, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{3, 3, 3, 7, 5, 4, 2, 2, 2, 6, 8, 4, 4, 1, 1, 1, 6, 5, 9, 5, 6, 0, 0, 0, 7, 8, 9, 7, 8, 9},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  5,
		pow:  [4]uint8{2, 1, 1, 1},
		idx0: []uint8{7, 5, 4, 8, 6, 4, 9, 3, 2, 9, 6, 5, 8, 3, 7, 2, 1, 1, 9, 8, 7, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{4, 4, 5, 4, 4, 6, 3, 4, 4, 5, 5, 6, 3, 5, 2, 6, 5, 6, 7, 7, 8, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{5, 7, 7, 6, 8, 8, 4, 9, 9, 6, 9, 9, 5, 8, 6, 7, 8, 7, 8, 9, 9, 7, 7, 8, 8, 9, 9, 7, 8, 9},
	},
	{
		deg: 5,
		pow: [4]uint8{4, 1, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{3, 2, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{3, 1, 1, 0},
		idx0: []uint8{
			9, 8, 6, 9, 7, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 8, 6, 6, 3, 3, 3, 9, 7, 9, 7, 5, 5, 2, 2, 2,
			8, 7, 8, 7, 4, 4, 3, 2, 1, 1, 1, 1, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 8, 5, 5, 7, 4, 4, 4, 4, 7, 5, 3, 3, 3, 3, 3, 3, 8, 6, 6, 2, 2, 2, 2, 2, 2, 7, 5, 5,
			1, 1, 1, 1, 1, 1, 1, 1, 7, 4, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 2, 1, 1,
		},
		idx2: []uint8{
			8, 9, 9, 7, 9, 9, 7, 8, 5, 6, 8, 6, 8, 9, 6, 6, 9, 8, 9, 9, 8, 7, 9, 5, 5, 9, 7, 9, 9, 7,
			7, 8, 4, 4, 8, 7, 2, 3, 8, 8, 7, 3, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2, 6, 6, 5, 3, 3, 2,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 2, 1, 0},
		idx0: []uint8{
			8, 6, 6, 7, 5, 5, 7, 5, 4, 4, 4, 4, 8, 6, 6, 3, 3, 3, 3, 3, 3, 7, 5, 5, 2, 2, 2, 2, 2, 2,
			7, 4, 4, 2, 1, 1, 1, 1, 1, 1, 1, 1, 5, 4, 4, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			9, 9, 8, 9, 9, 7, 8, 6, 8, 7, 6, 5, 9, 9, 8, 9, 8, 9, 8, 6, 6, 9, 9, 7, 9, 7, 9, 7, 5, 5,
			8, 8, 7, 3, 8, 7, 8, 7, 4, 4, 3, 2, 6, 6, 5, 3, 3, 2, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1,
		},
		idx2: []uint8{
			6, 8, 9, 5, 7, 9, 4, 4, 7, 8, 5, 6, 3, 3, 3, 8, 9, 6, 6, 9, 8, 2, 2, 2, 7, 9, 5, 5, 9, 7,
			1, 1, 1, 1, 7, 8, 4, 4, 8, 7, 2, 3, 0, 0, 0, 0, 0, 0, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{3, 1, 1, 0},
		idx0: []uint8{
			9, 8, 9, 7, 6, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 6, 8, 6, 9, 7, 9, 5, 7, 5, 3, 3, 2, 2, 8, 7,
			8, 7, 4, 4, 3, 3, 2, 2, 1, 1, 1, 1, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 5, 5, 5, 6, 4, 4, 4, 4, 6, 5, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			7, 7, 8, 8, 8, 7, 9, 9, 9, 9, 7, 8, 7, 7, 5, 5, 4, 4, 8, 8, 6, 6, 4, 4, 8, 6, 7, 5, 9, 9,
			6, 5, 6, 5, 9, 6, 9, 5, 7, 4, 8, 4, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7, 5, 4, 6, 4, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			7, 8, 6, 5, 9, 6, 9, 8, 7, 5, 4, 4, 7, 5, 4, 8, 6, 4, 3, 3, 2, 2, 9, 6, 5, 3, 3, 9, 8, 7,
			2, 2, 1, 1, 1, 1, 9, 8, 7, 3, 3, 9, 6, 5, 2, 2, 8, 6, 4, 7, 5, 4, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 3, 3, 3, 2, 2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			8, 7, 7, 8, 7, 7, 5, 5, 5, 7, 8, 7, 8, 6, 6, 7, 5, 5, 7, 5, 8, 6, 7, 4, 4, 7, 4, 2, 2, 2,
			7, 4, 8, 6, 7, 5, 5, 4, 4, 5, 4, 2, 2, 2, 5, 4, 1, 1, 1, 1, 1, 1, 4, 4, 6, 6, 5, 5, 4, 4,
		},
		idx3: []uint8{
			9, 9, 9, 9, 8, 8, 6, 6, 6, 8, 9, 9, 9, 9, 8, 9, 9, 7, 9, 9, 9, 9, 8, 8, 7, 8, 8, 3, 3, 3,
			8, 7, 9, 8, 9, 7, 6, 6, 5, 6, 6, 3, 3, 3, 6, 5, 3, 3, 3, 2, 2, 2, 6, 5, 9, 8, 9, 7, 8, 7,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			6, 8, 7, 5, 9, 7, 9, 8, 6, 5, 4, 4, 3, 3, 3, 8, 7, 6, 5, 2, 2, 2, 9, 7, 6, 4, 9, 8, 5, 4,
			3, 2, 1, 1, 1, 1, 9, 8, 5, 4, 9, 7, 6, 4, 3, 2, 8, 7, 6, 5, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 5, 5, 7, 4, 4, 4, 4, 4, 4, 7, 5, 7, 5, 4, 2, 2, 2, 2, 7, 5, 4, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 7, 4, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 2, 1, 1,
		},
		idx2: []uint8{
			8, 6, 6, 8, 6, 6, 5, 5, 5, 6, 8, 6, 8, 6, 6, 3, 3, 3, 3, 8, 6, 5, 3, 3, 3, 3, 2, 2, 2, 2,
			2, 3, 8, 6, 5, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 3, 2, 6, 6, 5, 3, 3, 2,
		},
		idx3: []uint8{
			9, 9, 9, 9, 8, 8, 7, 7, 7, 8, 9, 9, 9, 9, 8, 9, 9, 9, 9, 9, 9, 7, 8, 8, 8, 8, 7, 7, 7, 7,
			7, 8, 9, 8, 7, 9, 6, 6, 6, 6, 5, 5, 5, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 9, 8, 7, 9, 8, 7,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 2, 1, 0},
		idx0: []uint8{
			6, 6, 6, 5, 5, 5, 6, 5, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3,
			2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 7, 7, 8, 8, 8, 7, 8, 9, 9, 9, 9, 7, 7, 5, 5, 4, 4, 7, 5, 8, 8, 6, 6, 4, 4, 8, 6, 7, 4,
			8, 4, 9, 9, 6, 5, 6, 5, 9, 6, 9, 5, 5, 4, 6, 4, 6, 5, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7,
		},
		idx2: []uint8{
			9, 8, 5, 9, 7, 6, 4, 4, 8, 7, 6, 5, 9, 8, 9, 6, 8, 6, 2, 2, 9, 7, 9, 5, 7, 5, 3, 3, 1, 1,
			1, 1, 8, 7, 8, 7, 4, 4, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			8, 7, 6, 5, 9, 7, 6, 9, 8, 5, 4, 4, 8, 7, 6, 5, 3, 3, 2, 2, 9, 7, 6, 4, 3, 3, 9, 8, 5, 4,
			2, 2, 1, 1, 1, 1, 9, 5, 8, 4, 3, 3, 9, 6, 7, 4, 2, 2, 8, 6, 7, 5, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			5, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			6, 6, 7, 7, 6, 6, 7, 5, 5, 8, 7, 8, 3, 3, 3, 3, 7, 5, 7, 5, 3, 3, 3, 3, 7, 4, 2, 2, 2, 2,
			8, 4, 7, 4, 8, 4, 3, 3, 3, 3, 5, 4, 2, 2, 2, 2, 6, 4, 1, 1, 1, 1, 6, 5, 5, 4, 6, 4, 6, 5,
		},
		idx3: []uint8{
			7, 8, 8, 8, 7, 9, 9, 8, 9, 9, 9, 9, 7, 8, 5, 6, 8, 6, 8, 6, 7, 9, 4, 6, 9, 6, 8, 9, 4, 5,
			9, 5, 9, 6, 9, 5, 5, 9, 4, 8, 9, 8, 6, 9, 4, 7, 9, 7, 6, 8, 5, 7, 8, 7, 9, 8, 9, 7, 8, 7,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			9, 8, 9, 9, 6, 8, 8, 6, 6, 9, 9, 9, 7, 5, 7, 7, 5, 5, 3, 2, 8, 8, 7, 7, 8, 7, 4, 4, 4, 3,
			3, 2, 2, 1, 1, 1, 6, 6, 5, 5, 6, 5, 4, 4, 4, 3, 3, 2, 2, 3, 2, 1, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 2, 1, 1, 1,
		},
		idx2: []uint8{
			6, 6, 5, 5, 5, 4, 4, 4, 4, 6, 6, 5, 5, 6, 4, 4, 4, 4, 6, 5, 6, 6, 5, 5, 4, 4, 6, 5, 5, 6,
			2, 5, 3, 4, 4, 3, 8, 5, 7, 6, 4, 4, 7, 6, 5, 8, 2, 7, 3, 1, 1, 7, 3, 2, 4, 4, 3, 5, 3, 2,
		},
		idx3: []uint8{
			7, 7, 8, 7, 8, 9, 7, 9, 5, 8, 7, 8, 8, 7, 9, 8, 9, 6, 8, 7, 9, 7, 9, 8, 9, 9, 7, 8, 6, 9,
			6, 9, 5, 7, 8, 4, 9, 8, 9, 7, 9, 9, 8, 7, 8, 9, 8, 9, 7, 9, 9, 8, 7, 8, 5, 6, 4, 6, 5, 6,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			7, 7, 5, 5, 4, 4, 3, 3, 3, 6, 8, 8, 6, 4, 4, 3, 2, 2, 2, 2, 6, 5, 9, 9, 6, 5, 3, 6, 5, 4,
			2, 1, 1, 1, 1, 1, 8, 7, 9, 7, 9, 8, 3, 8, 7, 4, 2, 9, 7, 5, 9, 8, 6, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 2, 2, 2, 6, 4, 4, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 6, 5, 4, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			6, 6, 8, 6, 8, 6, 7, 7, 5, 7, 5, 5, 5, 7, 5, 5, 8, 7, 5, 6, 7, 7, 4, 4, 4, 4, 4, 2, 2, 2,
			4, 8, 7, 5, 6, 5, 5, 5, 4, 4, 4, 4, 4, 2, 2, 2, 4, 1, 1, 1, 1, 1, 1, 5, 8, 7, 7, 8, 7, 7,
		},
		idx3: []uint8{
			9, 8, 9, 8, 9, 9, 9, 8, 6, 9, 9, 7, 7, 9, 9, 7, 9, 8, 6, 8, 8, 8, 8, 7, 7, 8, 7, 3, 3, 3,
			8, 9, 9, 6, 9, 9, 6, 6, 6, 6, 5, 5, 5, 3, 3, 3, 6, 3, 3, 3, 2, 2, 2, 6, 9, 9, 8, 9, 9, 8,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 2, 1, 0},
		idx0: []uint8{
			6, 5, 4, 3, 3, 3, 3, 3, 3, 3, 3, 3, 6, 5, 4, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 6, 5, 4, 3,
			2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 8, 9, 7, 7, 5, 5, 7, 5, 4, 4, 4, 7, 8, 9, 4, 8, 6, 6, 8, 8, 6, 4, 4, 4, 4, 7, 8, 9, 5,
			6, 9, 6, 6, 9, 6, 5, 5, 5, 9, 5, 6, 7, 8, 9, 7, 8, 9, 9, 8, 9, 8, 7, 7, 7, 8, 9, 7, 8, 9,
		},
		idx2: []uint8{
			3, 3, 3, 6, 5, 8, 7, 4, 4, 9, 7, 5, 2, 2, 2, 2, 6, 8, 7, 5, 4, 4, 9, 8, 6, 3, 1, 1, 1, 1,
			1, 6, 9, 7, 5, 5, 9, 8, 6, 4, 3, 2, 0, 0, 0, 0, 0, 0, 8, 9, 7, 7, 9, 8, 6, 5, 4, 3, 2, 1,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{3, 1, 1, 0},
		idx0: []uint8{
			6, 8, 7, 5, 9, 7, 5, 4, 4, 3, 3, 3, 8, 7, 6, 5, 9, 8, 6, 4, 4, 3, 2, 2, 2, 2, 9, 7, 6, 9,
			8, 6, 5, 5, 4, 3, 2, 1, 1, 1, 1, 1, 9, 8, 9, 8, 7, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 6, 5, 4, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 6, 5, 4, 3, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			7, 5, 5, 7, 4, 4, 4, 7, 5, 7, 8, 9, 6, 6, 8, 8, 4, 4, 4, 8, 6, 4, 7, 8, 9, 4, 6, 6, 9, 5,
			5, 5, 9, 6, 9, 5, 6, 7, 8, 9, 5, 6, 8, 9, 7, 7, 9, 8, 7, 8, 9, 7, 8, 9, 7, 8, 9, 7, 8, 9,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			9, 8, 9, 7, 9, 9, 6, 5, 8, 7, 8, 8, 6, 7, 7, 6, 6, 5, 5, 5, 4, 4, 4, 4, 9, 8, 9, 6, 8, 6,
			9, 7, 9, 5, 7, 5, 9, 9, 9, 9, 3, 3, 2, 2, 8, 7, 8, 7, 4, 4, 8, 8, 8, 8, 3, 3, 7, 7, 7, 7,
			3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 6, 5, 6, 5, 4, 4, 6, 6, 6, 6, 3, 3, 5, 5, 5, 5, 3, 3,
			2, 2, 2, 2, 4, 4, 4, 4, 3, 3, 2, 2, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 5, 5, 5, 5, 5, 6, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 6, 5, 5, 5, 3, 3, 3, 3, 3, 3,
			2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1,
		},
		idx2: []uint8{
			7, 7, 7, 8, 6, 6, 8, 7, 7, 8, 6, 6, 8, 5, 5, 5, 5, 7, 6, 6, 7, 7, 6, 6, 7, 7, 5, 5, 4, 4,
			7, 8, 5, 6, 4, 4, 3, 3, 3, 3, 8, 6, 7, 5, 7, 8, 4, 4, 6, 5, 3, 3, 3, 3, 8, 6, 2, 2, 2, 2,
			2, 2, 7, 5, 3, 3, 7, 4, 7, 4, 3, 3, 5, 6, 4, 4, 6, 5, 3, 3, 3, 3, 6, 6, 2, 2, 2, 2, 2, 2,
			5, 5, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 4, 4, 3, 3, 2, 2, 5, 4, 5, 4, 3, 3, 4, 4, 3, 3, 2, 2,
		},
		idx3: []uint8{
			8, 9, 8, 9, 8, 7, 9, 9, 9, 9, 9, 7, 9, 9, 8, 9, 8, 9, 9, 7, 8, 8, 8, 7, 8, 9, 6, 9, 6, 8,
			8, 9, 6, 9, 5, 7, 8, 7, 6, 5, 9, 9, 9, 9, 9, 9, 6, 5, 8, 7, 9, 7, 6, 4, 9, 8, 9, 8, 5, 4,
			9, 8, 9, 7, 9, 7, 8, 8, 8, 7, 8, 7, 9, 9, 8, 7, 8, 7, 9, 8, 5, 4, 9, 8, 9, 7, 6, 4, 9, 6,
			9, 7, 9, 5, 8, 7, 6, 5, 8, 6, 7, 5, 8, 7, 8, 4, 7, 4, 6, 6, 6, 5, 6, 5, 6, 5, 6, 4, 5, 4,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 2, 1, 0},
		idx0: []uint8{
			7, 7, 6, 6, 8, 7, 6, 5, 5, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 4, 4, 4, 4, 7, 7, 5, 5, 4, 4,
			3, 3, 3, 3, 3, 3, 8, 7, 6, 5, 4, 4, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 8, 7, 6, 5,
			4, 4, 3, 3, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 6, 6, 5, 5, 4, 4,
			3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			9, 8, 9, 8, 9, 8, 8, 9, 7, 7, 6, 6, 9, 9, 9, 9, 8, 7, 7, 6, 6, 8, 5, 5, 9, 8, 9, 6, 8, 6,
			9, 8, 9, 6, 8, 6, 9, 8, 9, 6, 7, 5, 8, 6, 9, 7, 9, 5, 7, 5, 7, 5, 3, 3, 3, 3, 9, 9, 8, 7,
			6, 5, 9, 6, 9, 5, 8, 7, 8, 7, 4, 4, 7, 4, 3, 3, 3, 3, 8, 4, 2, 2, 2, 2, 9, 8, 9, 7, 8, 7,
			9, 8, 9, 7, 8, 7, 6, 6, 5, 5, 4, 4, 5, 4, 3, 3, 3, 3, 6, 4, 2, 2, 2, 2, 6, 5, 1, 1, 1, 1,
		},
		idx2: []uint8{
			6, 6, 7, 7, 5, 5, 5, 8, 8, 6, 8, 7, 4, 4, 4, 4, 9, 9, 6, 9, 7, 5, 9, 8, 3, 3, 3, 3, 3, 3,
			7, 7, 5, 5, 4, 4, 2, 2, 2, 2, 2, 2, 2, 2, 8, 8, 6, 6, 4, 4, 3, 3, 8, 7, 6, 5, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 9, 9, 6, 5, 6, 5, 3, 3, 9, 7, 6, 4, 2, 2, 9, 8, 5, 4, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 9, 8, 9, 7, 8, 7, 3, 3, 9, 8, 5, 4, 2, 2, 9, 7, 6, 4, 1, 1, 8, 7, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{3, 1, 1, 0},
		idx0: []uint8{
			7, 7, 6, 6, 8, 8, 8, 7, 6, 5, 5, 5, 9, 9, 9, 7, 6, 9, 8, 5, 4, 4, 4, 4, 7, 7, 5, 5, 4, 4,
			3, 3, 3, 3, 3, 3, 8, 8, 6, 6, 4, 4, 8, 7, 6, 5, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 9, 9, 6, 5,
			6, 5, 9, 7, 6, 4, 3, 3, 9, 8, 5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 8, 9, 7, 8, 7,
			9, 8, 5, 4, 3, 3, 9, 7, 6, 4, 2, 2, 8, 7, 6, 5, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 7, 7, 5, 5, 5, 5, 5, 8, 7, 6, 4, 4, 4, 4, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 3, 3, 3,
			7, 7, 5, 5, 4, 4, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 8, 7, 6, 5, 4, 4, 3, 3, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 8, 7, 6, 5, 4, 4, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			9, 8, 9, 8, 9, 7, 6, 6, 7, 9, 8, 8, 8, 7, 6, 6, 7, 5, 5, 8, 9, 9, 9, 9, 9, 8, 9, 6, 8, 6,
			9, 8, 9, 6, 8, 6, 9, 7, 9, 5, 7, 5, 3, 3, 3, 3, 7, 5, 9, 8, 9, 6, 7, 5, 8, 6, 8, 7, 8, 7,
			4, 4, 3, 3, 3, 3, 7, 4, 2, 2, 2, 2, 8, 4, 9, 9, 8, 7, 6, 5, 9, 6, 9, 5, 6, 6, 5, 5, 4, 4,
			3, 3, 3, 3, 5, 4, 2, 2, 2, 2, 6, 4, 1, 1, 1, 1, 6, 5, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			6, 6, 8, 7, 8, 5, 9, 7, 9, 5, 4, 4, 3, 3, 3, 3, 3, 3, 8, 7, 6, 7, 5, 5, 9, 8, 9, 6, 4, 4,
			8, 6, 7, 5, 2, 2, 2, 2, 2, 2, 9, 7, 6, 9, 8, 5, 7, 8, 6, 5, 4, 4, 9, 6, 7, 4, 9, 5, 8, 4,
			3, 3, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 9, 8, 9, 7, 6, 5, 8, 7, 6, 5, 4, 4, 9, 8, 5, 4, 9, 7,
			6, 4, 3, 3, 2, 2, 8, 7, 6, 5, 3, 3, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 6, 6, 5, 5, 4, 4, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
			2, 2, 2, 2, 6, 5, 5, 5, 4, 4, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 6, 5, 4, 4, 4, 4, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 5, 4, 4, 4, 4, 2, 2, 1, 1, 1, 1,
		},
		idx2: []uint8{
			7, 7, 5, 5, 5, 7, 4, 4, 4, 4, 7, 5, 7, 7, 8, 6, 8, 6, 6, 6, 8, 5, 8, 7, 4, 4, 4, 4, 7, 5,
			3, 3, 3, 3, 7, 8, 7, 6, 7, 5, 6, 6, 8, 5, 5, 7, 4, 4, 4, 4, 8, 7, 3, 3, 3, 3, 2, 2, 2, 2,
			2, 2, 3, 3, 7, 7, 8, 7, 6, 5, 3, 3, 6, 6, 5, 5, 5, 6, 4, 4, 4, 4, 6, 5, 3, 3, 3, 3, 2, 2,
			2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 6, 6, 6, 6, 5, 5, 3, 3, 3, 3, 2, 2,
		},
		idx3: []uint8{
			9, 8, 9, 9, 6, 9, 8, 8, 6, 6, 8, 6, 9, 8, 9, 8, 9, 9, 9, 9, 9, 6, 9, 8, 7, 7, 5, 5, 8, 6,
			6, 8, 5, 7, 9, 9, 8, 7, 9, 9, 8, 8, 9, 7, 7, 9, 6, 5, 5, 6, 9, 9, 6, 9, 4, 7, 5, 9, 4, 8,
			5, 4, 6, 4, 8, 8, 9, 9, 7, 8, 6, 5, 8, 9, 7, 9, 7, 8, 7, 8, 7, 8, 9, 9, 8, 9, 4, 5, 7, 9,
			4, 6, 7, 4, 8, 4, 7, 8, 5, 6, 7, 5, 8, 6, 9, 5, 9, 6, 8, 7, 9, 7, 9, 8, 8, 7, 9, 7, 9, 8,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			8, 7, 6, 5, 9, 7, 6, 9, 8, 5, 4, 4, 8, 7, 6, 5, 9, 8, 9, 7, 6, 5, 4, 4, 8, 7, 6, 5, 3, 3,
			3, 3, 2, 2, 2, 2, 9, 7, 9, 8, 8, 7, 6, 5, 6, 5, 4, 4, 9, 7, 6, 4, 3, 3, 3, 3, 9, 8, 5, 4,
			2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 9, 8, 6, 6, 9, 7, 5, 5, 8, 7, 4, 4, 9, 8, 5, 4, 3, 3,
			3, 3, 9, 7, 6, 4, 2, 2, 2, 2, 8, 7, 6, 5, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
			2, 2, 3, 3, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 3, 3, 3, 3, 2, 2, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1,
		},
		idx2: []uint8{
			5, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 6, 6, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 3, 3, 3, 3, 6, 5,
			4, 4, 6, 5, 4, 4, 6, 6, 5, 5, 5, 5, 5, 6, 4, 4, 6, 5, 3, 3, 3, 3, 6, 5, 5, 4, 2, 2, 2, 2,
			6, 5, 5, 4, 6, 5, 4, 4, 6, 5, 4, 4, 6, 6, 7, 7, 5, 5, 8, 7, 4, 4, 8, 7, 3, 3, 3, 3, 7, 7,
			5, 4, 2, 2, 2, 2, 8, 7, 6, 4, 1, 1, 1, 1, 8, 7, 6, 5, 5, 5, 4, 4, 6, 6, 4, 4, 6, 6, 5, 5,
		},
		idx3: []uint8{
			7, 8, 7, 7, 7, 9, 7, 5, 5, 9, 7, 8, 7, 8, 8, 8, 8, 9, 6, 6, 9, 8, 7, 8, 4, 4, 4, 4, 7, 8,
			8, 6, 7, 8, 7, 5, 7, 9, 8, 9, 6, 6, 8, 7, 9, 9, 9, 9, 5, 5, 5, 5, 7, 9, 6, 9, 6, 6, 6, 6,
			9, 8, 6, 9, 7, 7, 9, 5, 8, 8, 9, 6, 7, 7, 9, 8, 8, 8, 9, 8, 9, 9, 9, 9, 7, 7, 7, 7, 9, 8,
			8, 9, 8, 8, 8, 8, 9, 8, 7, 9, 9, 9, 9, 9, 9, 9, 7, 8, 8, 7, 9, 7, 8, 7, 9, 8, 9, 7, 9, 8,
		},
	},
	{
		deg: 5,
		pow: [4]uint8{2, 1, 1, 1},
		idx0: []uint8{
			7, 5, 7, 5, 4, 4, 3, 3, 3, 3, 3, 3, 6, 8, 6, 8, 4, 4, 7, 6, 8, 5, 4, 4, 4, 4, 3, 3, 2, 2,
			2, 2, 2, 2, 2, 2, 6, 6, 5, 5, 9, 9, 7, 6, 5, 5, 5, 9, 5, 4, 3, 3, 6, 6, 8, 6, 5, 9, 6, 4,
			2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 7, 7, 8, 8, 9, 9, 7, 7, 8, 7, 5, 9, 7, 4, 3, 3, 8, 8,
			8, 7, 6, 9, 8, 4, 2, 2, 9, 9, 9, 7, 6, 9, 8, 5, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 5, 5, 4, 4, 4, 4, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 6, 5,
			4, 4, 4, 4, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 6, 5, 5, 5, 4, 4, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			5, 7, 4, 4, 7, 5, 7, 6, 7, 6, 5, 5, 7, 5, 4, 4, 8, 6, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 7, 6,
			8, 6, 6, 5, 4, 4, 7, 5, 8, 6, 4, 4, 3, 3, 3, 3, 3, 3, 3, 3, 5, 4, 2, 2, 2, 2, 2, 2, 2, 2,
			6, 4, 7, 8, 6, 6, 6, 5, 5, 5, 6, 5, 6, 6, 5, 5, 4, 4, 3, 3, 3, 3, 3, 3, 3, 3, 5, 4, 2, 2,
			2, 2, 2, 2, 2, 2, 6, 4, 1, 1, 1, 1, 1, 1, 1, 1, 6, 5, 7, 7, 8, 7, 8, 7, 7, 7, 8, 7, 8, 7,
		},
		idx3: []uint8{
			6, 8, 6, 8, 9, 9, 8, 7, 9, 7, 9, 8, 8, 6, 7, 5, 9, 9, 6, 7, 5, 8, 8, 7, 6, 5, 7, 5, 8, 8,
			9, 9, 7, 8, 8, 6, 9, 7, 9, 8, 6, 5, 6, 7, 9, 7, 6, 4, 4, 9, 7, 5, 9, 8, 5, 5, 8, 4, 4, 9,
			8, 6, 9, 9, 8, 7, 9, 9, 9, 6, 9, 6, 9, 8, 9, 7, 8, 7, 9, 8, 5, 5, 8, 4, 4, 9, 7, 7, 9, 7,
			6, 6, 7, 4, 4, 9, 8, 8, 8, 7, 6, 6, 7, 5, 5, 8, 9, 9, 9, 8, 9, 8, 9, 9, 9, 8, 9, 8, 9, 9,
		},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 2, 0},
		idx0: []uint8{7, 5, 4, 4, 2, 1, 1, 0, 0, 0},
		idx1: []uint8{8, 6, 6, 5, 3, 3, 2, 3, 2, 1},
		idx2: []uint8{9, 9, 8, 7, 9, 8, 7, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{3, 1, 1, 1},
		idx0: []uint8{3, 4, 2, 5, 6, 1, 7, 8, 9, 0},
		idx1: []uint8{4, 2, 4, 1, 1, 5, 0, 0, 0, 7},
		idx2: []uint8{5, 3, 6, 3, 2, 6, 3, 2, 1, 8},
		idx3: []uint8{7, 9, 8, 8, 7, 9, 6, 5, 4, 9},
	},
	{
		deg:  6,
		pow:  [4]uint8{3, 3, 0, 0},
		idx0: []uint8{6, 5, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 0, 0, 0},
		idx1: []uint8{7, 8, 9, 7, 5, 4, 8, 6, 4, 9, 6, 5, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 2, 0},
		idx0: []uint8{6, 5, 4, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{8, 7, 7, 5, 8, 6, 6, 7, 5, 5, 7, 4, 4, 2, 5, 4, 4, 2, 1, 1},
		idx2: []uint8{9, 9, 8, 6, 9, 9, 8, 9, 9, 7, 8, 8, 7, 3, 6, 6, 5, 3, 3, 2},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{3, 1, 1, 1},
		idx0: []uint8{9, 8, 6, 3, 9, 7, 5, 2, 8, 7, 4, 1, 6, 5, 4, 3, 2, 1, 0, 0},
		idx1: []uint8{3, 3, 3, 6, 2, 2, 2, 5, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 4, 1},
		idx2: []uint8{6, 6, 8, 8, 5, 5, 7, 7, 4, 4, 7, 7, 4, 4, 5, 1, 1, 2, 5, 2},
		idx3: []uint8{8, 9, 9, 9, 7, 9, 9, 9, 7, 8, 8, 8, 5, 6, 6, 2, 3, 3, 6, 3},
	},
	{
		deg:  6,
		pow:  [4]uint8{3, 3, 0, 0},
		idx0: []uint8{8, 7, 7, 6, 6, 5, 5, 5, 4, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 8, 9, 7, 6, 8, 7, 6, 5, 9, 8, 6, 9, 7, 5, 3, 8, 7, 4, 3, 2, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{4, 1, 1, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{5, 1, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{4, 2, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 1, 1},
		idx0: []uint8{6, 5, 6, 5, 4, 4, 3, 3, 2, 2, 3, 3, 2, 2, 1, 1, 1, 1, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 8, 7, 8, 9, 9, 7, 5, 8, 6, 7, 4, 8, 4, 9, 6, 9, 5, 5, 4, 6, 4, 6, 5, 9, 8, 9, 7, 8, 7},
		idx2: []uint8{5, 6, 4, 4, 6, 5, 2, 2, 3, 3, 1, 1, 1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1},
		idx3: []uint8{8, 7, 9, 9, 7, 8, 8, 6, 7, 5, 9, 6, 9, 5, 7, 4, 8, 4, 9, 8, 9, 7, 8, 7, 5, 4, 6, 4, 6, 5},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 1, 1},
		idx0: []uint8{8, 6, 6, 3, 3, 3, 7, 5, 5, 2, 2, 2, 7, 4, 4, 1, 1, 1, 5, 4, 4, 2, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 8, 6, 9, 9, 7, 9, 7, 5, 8, 8, 7, 8, 7, 4, 6, 6, 5, 3, 3, 2, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{3, 3, 3, 6, 6, 8, 2, 2, 2, 5, 5, 7, 1, 1, 1, 4, 4, 7, 0, 0, 0, 0, 0, 0, 4, 4, 5, 1, 1, 2},
		idx3: []uint8{6, 8, 9, 8, 9, 9, 5, 7, 9, 7, 9, 9, 4, 7, 8, 7, 8, 8, 4, 5, 6, 1, 2, 3, 5, 6, 6, 2, 3, 3},
	},
	{
		deg:  6,
		pow:  [4]uint8{4, 1, 1, 0},
		idx0: []uint8{7, 5, 4, 3, 3, 3, 6, 8, 4, 4, 2, 2, 2, 6, 5, 9, 5, 6, 1, 1, 1, 7, 8, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 6, 4, 4, 1, 1, 1, 1, 1, 6, 5, 5, 0, 0, 0, 0, 0, 0, 8, 7, 7},
		idx2: []uint8{6, 8, 9, 7, 7, 5, 7, 5, 9, 3, 8, 8, 6, 7, 8, 4, 3, 2, 9, 9, 6, 6, 5, 4, 3, 2, 1, 9, 9, 8},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{3, 1, 1, 1},
		idx0: []uint8{7, 5, 4, 8, 6, 4, 9, 3, 2, 9, 6, 5, 8, 3, 7, 2, 1, 1, 9, 8, 7, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{4, 4, 5, 4, 4, 6, 3, 4, 4, 5, 5, 6, 3, 5, 2, 6, 5, 6, 7, 7, 8, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{5, 7, 7, 6, 8, 8, 4, 9, 9, 6, 9, 9, 5, 8, 6, 7, 8, 7, 8, 9, 9, 7, 7, 8, 8, 9, 9, 7, 8, 9},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 1, 1},
		idx0: []uint8{5, 4, 4, 6, 4, 4, 3, 2, 2, 6, 5, 5, 3, 2, 1, 1, 1, 1, 8, 7, 7, 3, 2, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 7, 5, 8, 8, 6, 9, 9, 3, 9, 9, 6, 8, 7, 8, 3, 7, 2, 9, 9, 8, 6, 5, 4, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{3, 3, 3, 2, 2, 2, 2, 3, 4, 1, 1, 1, 1, 1, 3, 5, 2, 6, 0, 0, 0, 0, 0, 0, 3, 6, 2, 5, 1, 4},
		idx3: []uint8{4, 5, 7, 4, 6, 8, 4, 4, 9, 5, 6, 9, 5, 6, 5, 8, 6, 7, 7, 8, 9, 7, 8, 9, 7, 7, 8, 8, 9, 9},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 2, 0},
		idx0: []uint8{3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{6, 5, 5, 4, 4, 4, 6, 6, 5, 4, 4, 4, 3, 6, 6, 5, 5, 5, 4, 3, 2, 8, 7, 7, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{7, 8, 7, 9, 7, 5, 8, 7, 8, 9, 8, 6, 4, 9, 7, 9, 8, 6, 9, 5, 6, 9, 9, 8, 7, 8, 9, 7, 8, 9},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  6,
		pow:  [4]uint8{2, 2, 1, 1},
		idx0: []uint8{3, 3, 3, 4, 3, 2, 2, 2, 2, 5, 3, 6, 2, 1, 1, 1, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 5, 4, 9, 4, 8, 6, 4, 4, 8, 5, 7, 6, 9, 6, 5, 5, 6, 7, 7, 8, 8, 9, 9, 9, 8, 7, 7, 8, 9},
		idx2: []uint8{4, 4, 5, 2, 2, 4, 4, 6, 3, 1, 1, 1, 1, 5, 5, 6, 3, 2, 0, 0, 0, 0, 0, 0, 7, 7, 8, 3, 2, 1},
		idx3: []uint8{5, 7, 7, 3, 9, 6, 8, 8, 9, 3, 8, 2, 7, 6, 9, 9, 8, 7, 3, 6, 2, 5, 1, 4, 8, 9, 9, 6, 5, 4},
	},
	{
		deg: 6,
		pow: [4]uint8{5, 1, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{4, 2, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{3, 2, 1, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 6, 9, 6, 5, 5, 8, 6, 7, 5, 8, 6, 7, 5, 4, 4, 4, 4, 9, 3, 9, 3, 2, 2,
			8, 3, 7, 2, 8, 3, 7, 2, 1, 1, 1, 1, 6, 3, 5, 2, 4, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 9, 5, 5, 9, 6, 6, 8, 5, 7, 4, 4, 4, 4, 8, 6, 7, 5, 3, 9, 2, 2, 9, 3,
			3, 8, 2, 7, 1, 1, 1, 1, 8, 3, 7, 2, 3, 6, 2, 5, 1, 4, 0, 0, 0, 0, 0, 0, 6, 3, 5, 2, 4, 1,
		},
		idx2: []uint8{
			7, 7, 8, 9, 8, 9, 5, 5, 6, 9, 6, 9, 4, 4, 4, 4, 6, 8, 5, 7, 6, 8, 5, 7, 2, 2, 3, 9, 3, 9,
			1, 1, 1, 1, 3, 8, 2, 7, 3, 8, 2, 7, 0, 0, 0, 0, 0, 0, 3, 6, 2, 5, 1, 4, 3, 6, 2, 5, 1, 4,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{4, 1, 1, 0},
		idx0: []uint8{
			9, 8, 6, 9, 7, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 8, 6, 6, 3, 3, 3, 9, 7, 9, 7, 5, 5, 2, 2, 2,
			8, 7, 8, 7, 4, 4, 3, 2, 1, 1, 1, 1, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 8, 5, 5, 7, 4, 4, 4, 4, 7, 5, 3, 3, 3, 3, 3, 3, 8, 6, 6, 2, 2, 2, 2, 2, 2, 7, 5, 5,
			1, 1, 1, 1, 1, 1, 1, 1, 7, 4, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 2, 1, 1,
		},
		idx2: []uint8{
			8, 9, 9, 7, 9, 9, 7, 8, 5, 6, 8, 6, 8, 9, 6, 6, 9, 8, 9, 9, 8, 7, 9, 5, 5, 9, 7, 9, 9, 7,
			7, 8, 4, 4, 8, 7, 2, 3, 8, 8, 7, 3, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2, 6, 6, 5, 3, 3, 2,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{4, 1, 1, 0},
		idx0: []uint8{
			9, 8, 9, 7, 6, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 6, 8, 6, 9, 7, 9, 5, 7, 5, 3, 3, 2, 2, 8, 7,
			8, 7, 4, 4, 3, 3, 2, 2, 1, 1, 1, 1, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 5, 5, 5, 6, 4, 4, 4, 4, 6, 5, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			7, 7, 8, 8, 8, 7, 9, 9, 9, 9, 7, 8, 7, 7, 5, 5, 4, 4, 8, 8, 6, 6, 4, 4, 8, 6, 7, 5, 9, 9,
			6, 5, 6, 5, 9, 6, 9, 5, 7, 4, 8, 4, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7, 5, 4, 6, 4, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{2, 2, 1, 1},
		idx0: []uint8{
			8, 7, 6, 5, 7, 6, 5, 5, 4, 4, 4, 4, 8, 6, 6, 7, 5, 5, 3, 3, 2, 2, 7, 4, 4, 3, 3, 2, 2, 2,
			1, 1, 1, 1, 1, 1, 5, 4, 4, 3, 3, 2, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			9, 9, 9, 9, 8, 8, 7, 6, 8, 7, 6, 5, 9, 9, 8, 9, 9, 7, 9, 9, 9, 9, 8, 8, 7, 8, 8, 7, 7, 3,
			8, 8, 7, 7, 3, 2, 6, 6, 5, 6, 6, 5, 5, 3, 4, 4, 3, 2, 6, 6, 5, 5, 3, 2, 4, 4, 3, 2, 1, 1,
		},
		idx2: []uint8{
			6, 5, 5, 6, 4, 4, 4, 4, 6, 5, 5, 6, 3, 3, 3, 2, 2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1,
			3, 3, 2, 2, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 2, 3, 1, 1, 1, 1, 3, 2,
		},
		idx3: []uint8{
			7, 8, 8, 7, 9, 9, 9, 9, 7, 8, 8, 7, 7, 5, 4, 8, 6, 4, 8, 6, 7, 5, 9, 6, 5, 9, 6, 9, 5, 9,
			7, 4, 8, 4, 8, 7, 9, 8, 7, 9, 8, 9, 7, 9, 8, 7, 8, 7, 5, 4, 6, 4, 6, 5, 6, 5, 6, 5, 4, 4,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{3, 1, 1, 1},
		idx0: []uint8{
			7, 8, 6, 5, 9, 6, 9, 8, 7, 5, 4, 4, 7, 5, 4, 8, 6, 4, 3, 3, 2, 2, 9, 6, 5, 3, 3, 9, 8, 7,
			2, 2, 1, 1, 1, 1, 9, 8, 7, 3, 3, 9, 6, 5, 2, 2, 8, 6, 4, 7, 5, 4, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 3, 3, 3, 2, 2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			8, 7, 7, 8, 7, 7, 5, 5, 5, 7, 8, 7, 8, 6, 6, 7, 5, 5, 7, 5, 8, 6, 7, 4, 4, 7, 4, 2, 2, 2,
			7, 4, 8, 6, 7, 5, 5, 4, 4, 5, 4, 2, 2, 2, 5, 4, 1, 1, 1, 1, 1, 1, 4, 4, 6, 6, 5, 5, 4, 4,
		},
		idx3: []uint8{
			9, 9, 9, 9, 8, 8, 6, 6, 6, 8, 9, 9, 9, 9, 8, 9, 9, 7, 9, 9, 9, 9, 8, 8, 7, 8, 8, 3, 3, 3,
			8, 7, 9, 8, 9, 7, 6, 6, 5, 6, 6, 3, 3, 3, 6, 5, 3, 3, 3, 2, 2, 2, 6, 5, 9, 8, 9, 7, 8, 7,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{2, 2, 2, 0},
		idx0: []uint8{
			6, 6, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 7, 8, 7, 6, 6, 8, 7, 6, 6, 5, 5, 7, 7, 5, 5, 4, 4, 8, 7, 6, 5, 4, 4, 3, 3, 3, 3, 8, 7,
			6, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 6, 6, 5, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1,
		},
		idx2: []uint8{
			9, 8, 9, 8, 8, 7, 9, 9, 9, 7, 9, 8, 9, 8, 9, 6, 8, 6, 9, 8, 9, 6, 7, 5, 8, 7, 6, 5, 9, 9,
			8, 7, 6, 5, 9, 7, 6, 4, 9, 8, 5, 4, 9, 8, 9, 7, 8, 7, 9, 8, 5, 4, 9, 7, 6, 4, 8, 7, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{2, 2, 1, 1},
		idx0: []uint8{
			6, 6, 5, 5, 6, 6, 5, 5, 4, 4, 4, 4, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 3, 3, 3, 2, 2, 2, 1, 1,
			1, 1, 1, 1, 1, 1, 3, 3, 3, 2, 2, 2, 3, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 7, 8, 8, 7, 7, 8, 8, 9, 9, 9, 9, 7, 5, 4, 7, 5, 8, 6, 4, 8, 6, 7, 4, 7, 8, 4, 8, 9, 6,
			5, 9, 6, 9, 5, 9, 5, 4, 5, 6, 4, 6, 4, 4, 6, 5, 6, 5, 9, 8, 7, 9, 8, 9, 7, 9, 8, 7, 8, 7,
		},
		idx2: []uint8{
			8, 5, 7, 6, 4, 4, 4, 4, 7, 6, 5, 5, 8, 6, 6, 2, 2, 7, 5, 5, 3, 3, 1, 1, 1, 1, 1, 1, 7, 4,
			4, 3, 3, 2, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 3, 3, 2, 2, 2, 1, 1, 1, 1,
		},
		idx3: []uint8{
			9, 9, 9, 9, 8, 5, 7, 6, 8, 8, 7, 6, 9, 9, 8, 9, 9, 9, 9, 7, 9, 9, 8, 8, 2, 7, 7, 3, 8, 8,
			7, 8, 8, 7, 7, 3, 6, 6, 2, 5, 5, 3, 1, 1, 4, 4, 3, 2, 6, 6, 5, 6, 6, 5, 5, 3, 4, 4, 3, 2,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{3, 1, 1, 1},
		idx0: []uint8{
			6, 8, 7, 5, 9, 7, 9, 8, 6, 5, 4, 4, 3, 3, 3, 8, 7, 6, 5, 2, 2, 2, 9, 7, 6, 4, 9, 8, 5, 4,
			3, 2, 1, 1, 1, 1, 9, 8, 5, 4, 9, 7, 6, 4, 3, 2, 8, 7, 6, 5, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			7, 5, 5, 7, 4, 4, 4, 4, 4, 4, 7, 5, 7, 5, 4, 2, 2, 2, 2, 7, 5, 4, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 7, 4, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 2, 1, 1,
		},
		idx2: []uint8{
			8, 6, 6, 8, 6, 6, 5, 5, 5, 6, 8, 6, 8, 6, 6, 3, 3, 3, 3, 8, 6, 5, 3, 3, 3, 3, 2, 2, 2, 2,
			2, 3, 8, 6, 5, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 3, 2, 6, 6, 5, 3, 3, 2,
		},
		idx3: []uint8{
			9, 9, 9, 9, 8, 8, 7, 7, 7, 8, 9, 9, 9, 9, 8, 9, 9, 9, 9, 9, 9, 7, 8, 8, 8, 8, 7, 7, 7, 7,
			7, 8, 9, 8, 7, 9, 6, 6, 6, 6, 5, 5, 5, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 9, 8, 7, 9, 8, 7,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{3, 1, 1, 1},
		idx0: []uint8{
			8, 7, 6, 5, 9, 7, 6, 9, 8, 5, 4, 4, 8, 7, 6, 5, 3, 3, 2, 2, 9, 7, 6, 4, 3, 3, 9, 8, 5, 4,
			2, 2, 1, 1, 1, 1, 9, 5, 8, 4, 3, 3, 9, 6, 7, 4, 2, 2, 8, 6, 7, 5, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			5, 5, 5, 6, 4, 4, 4, 4, 4, 4, 6, 5, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			6, 6, 7, 7, 6, 6, 7, 5, 5, 8, 7, 8, 3, 3, 3, 3, 7, 5, 7, 5, 3, 3, 3, 3, 7, 4, 2, 2, 2, 2,
			8, 4, 7, 4, 8, 4, 3, 3, 3, 3, 5, 4, 2, 2, 2, 2, 6, 4, 1, 1, 1, 1, 6, 5, 5, 4, 6, 4, 6, 5,
		},
		idx3: []uint8{
			7, 8, 8, 8, 7, 9, 9, 8, 9, 9, 9, 9, 7, 8, 5, 6, 8, 6, 8, 6, 7, 9, 4, 6, 9, 6, 8, 9, 4, 5,
			9, 5, 9, 6, 9, 5, 5, 9, 4, 8, 9, 8, 6, 9, 4, 7, 9, 7, 6, 8, 5, 7, 8, 7, 9, 8, 9, 7, 8, 7,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{2, 2, 1, 1},
		idx0: []uint8{
			7, 6, 5, 5, 7, 6, 8, 5, 4, 4, 4, 4, 7, 5, 3, 3, 2, 2, 2, 2, 7, 4, 3, 3, 8, 4, 2, 2, 1, 1,
			1, 1, 1, 1, 1, 1, 5, 4, 3, 3, 6, 4, 2, 2, 6, 5, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 8, 7, 6, 9, 9, 9, 9, 7, 6, 8, 5, 8, 6, 8, 6, 7, 5, 3, 3, 9, 6, 9, 6, 9, 5, 9, 5, 7, 4,
			3, 3, 8, 4, 2, 2, 9, 8, 9, 8, 9, 7, 9, 7, 8, 7, 8, 7, 5, 4, 3, 3, 6, 4, 2, 2, 6, 5, 1, 1,
		},
		idx2: []uint8{
			5, 5, 6, 7, 4, 4, 4, 4, 6, 7, 5, 8, 2, 2, 2, 2, 3, 3, 7, 5, 1, 1, 1, 1, 1, 1, 1, 1, 3, 3,
			7, 4, 2, 2, 8, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 5, 4, 2, 2, 6, 4, 1, 1, 6, 5,
		},
		idx3: []uint8{
			6, 7, 8, 8, 6, 7, 5, 8, 9, 9, 9, 9, 3, 3, 7, 5, 8, 6, 8, 6, 3, 3, 7, 4, 2, 2, 8, 4, 9, 6,
			9, 6, 9, 5, 9, 5, 3, 3, 5, 4, 2, 2, 6, 4, 1, 1, 6, 5, 9, 8, 9, 8, 9, 7, 9, 7, 8, 7, 8, 7,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{3, 1, 1, 1},
		idx0: []uint8{
			9, 8, 9, 9, 6, 8, 8, 6, 6, 9, 9, 9, 7, 5, 7, 7, 5, 5, 3, 2, 8, 8, 7, 7, 8, 7, 4, 4, 4, 3,
			3, 2, 2, 1, 1, 1, 6, 6, 5, 5, 6, 5, 4, 4, 4, 3, 3, 2, 2, 3, 2, 1, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			3, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 2, 1, 1, 1,
		},
		idx2: []uint8{
			6, 6, 5, 5, 5, 4, 4, 4, 4, 6, 6, 5, 5, 6, 4, 4, 4, 4, 6, 5, 6, 6, 5, 5, 4, 4, 6, 5, 5, 6,
			2, 5, 3, 4, 4, 3, 8, 5, 7, 6, 4, 4, 7, 6, 5, 8, 2, 7, 3, 1, 1, 7, 3, 2, 4, 4, 3, 5, 3, 2,
		},
		idx3: []uint8{
			7, 7, 8, 7, 8, 9, 7, 9, 5, 8, 7, 8, 8, 7, 9, 8, 9, 6, 8, 7, 9, 7, 9, 8, 9, 9, 7, 8, 6, 9,
			6, 9, 5, 7, 8, 4, 9, 8, 9, 7, 9, 9, 8, 7, 8, 9, 8, 9, 7, 9, 9, 8, 7, 8, 5, 6, 4, 6, 5, 6,
		},
	},
	{
		deg: 6,
		pow: [4]uint8{2, 2, 1, 1},
		idx0: []uint8{
			7, 7, 5, 5, 4, 4, 3, 3, 3, 6, 8, 7, 5, 4, 4, 2, 2, 2, 2, 2, 6, 5, 8, 7, 4, 4, 3, 2, 1, 1,
			1, 1, 1, 1, 1, 1, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			9, 8, 9, 6, 8, 6, 9, 8, 6, 9, 9, 8, 6, 7, 5, 9, 7, 5, 3, 3, 8, 7, 9, 9, 6, 5, 6, 5, 8, 7,
			4, 3, 3, 4, 2, 2, 8, 7, 9, 9, 7, 8, 8, 7, 9, 9, 7, 8, 6, 5, 4, 3, 3, 4, 2, 2, 5, 6, 1, 1,
		},
		idx2: []uint8{
			3, 3, 3, 3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 2, 2, 6, 4, 4, 6, 5, 1, 1, 1, 1, 1, 1, 1, 1, 6, 5,
			5, 6, 4, 2, 5, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 7, 7, 8, 4, 2, 7, 4, 1, 1, 7, 5,
		},
		idx3: []uint8{
			6, 6, 8, 8, 9, 9, 7, 7, 5, 7, 5, 5, 7, 9, 9, 8, 8, 6, 8, 7, 7, 8, 4, 4, 7, 8, 2, 3, 9, 9,
			6, 9, 7, 3, 9, 8, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2, 9, 9, 8, 9, 5, 3, 9, 6, 3, 2, 8, 6,
		},
	},
	{
		deg:  7,
		pow:  [4]uint8{2, 2, 2, 1},
		idx0: []uint8{4, 4, 2, 5, 1, 1, 7, 0, 0, 0},
		idx1: []uint8{5, 6, 3, 6, 3, 2, 8, 3, 2, 1},
		idx2: []uint8{7, 8, 9, 9, 8, 7, 9, 6, 5, 4},
		idx3: []uint8{3, 2, 4, 1, 5, 6, 0, 7, 8, 9},
	},
	{
		deg:  7,
		pow:  [4]uint8{4, 1, 1, 1},
		idx0: []uint8{3, 4, 2, 5, 6, 1, 7, 8, 9, 0},
		idx1: []uint8{4, 2, 4, 1, 1, 5, 0, 0, 0, 7},
		idx2: []uint8{5, 3, 6, 3, 2, 6, 3, 2, 1, 8},
		idx3: []uint8{7, 9, 8, 8, 7, 9, 6, 5, 4, 9},
	},
	{
		deg:  7,
		pow:  [4]uint8{4, 1, 1, 1},
		idx0: []uint8{9, 8, 6, 3, 9, 7, 5, 2, 8, 7, 4, 1, 6, 5, 4, 3, 2, 1, 0, 0},
		idx1: []uint8{3, 3, 3, 6, 2, 2, 2, 5, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 4, 1},
		idx2: []uint8{6, 6, 8, 8, 5, 5, 7, 7, 4, 4, 7, 7, 4, 4, 5, 1, 1, 2, 5, 2},
		idx3: []uint8{8, 9, 9, 9, 7, 9, 9, 9, 7, 8, 8, 8, 5, 6, 6, 2, 3, 3, 6, 3},
	},
	{
		deg:  7,
		pow:  [4]uint8{2, 2, 2, 1},
		idx0: []uint8{6, 3, 3, 3, 5, 2, 2, 2, 4, 1, 1, 1, 4, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{8, 8, 6, 6, 7, 7, 5, 5, 7, 7, 4, 4, 5, 2, 5, 4, 4, 2, 1, 1},
		idx2: []uint8{9, 9, 9, 8, 9, 9, 9, 7, 8, 8, 8, 7, 6, 3, 6, 6, 5, 3, 3, 2},
		idx3: []uint8{3, 6, 8, 9, 2, 5, 7, 9, 1, 4, 7, 8, 0, 0, 4, 5, 6, 1, 2, 3},
	},
	{
		deg:  7,
		pow:  [4]uint8{5, 1, 1, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{3, 3, 1, 0},
		idx0: []uint8{8, 7, 7, 6, 5, 5, 6, 5, 4, 4, 4, 4, 3, 2, 2, 3, 2, 1, 1, 1, 1, 3, 2, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 9, 6, 8, 7, 8, 6, 7, 5, 9, 9, 3, 8, 7, 8, 3, 7, 2, 6, 5, 4, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{7, 8, 9, 5, 6, 9, 4, 4, 6, 8, 5, 7, 2, 3, 9, 1, 1, 3, 8, 2, 7, 0, 0, 0, 3, 6, 2, 5, 1, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{3, 2, 2, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{6, 1, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{5, 2, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{4, 3, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{5, 1, 1, 0},
		idx0: []uint8{7, 5, 4, 3, 3, 3, 6, 8, 4, 4, 2, 2, 2, 6, 5, 9, 5, 6, 1, 1, 1, 7, 8, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 6, 4, 4, 1, 1, 1, 1, 1, 6, 5, 5, 0, 0, 0, 0, 0, 0, 8, 7, 7},
		idx2: []uint8{6, 8, 9, 7, 7, 5, 7, 5, 9, 3, 8, 8, 6, 7, 8, 4, 3, 2, 9, 9, 6, 6, 5, 4, 3, 2, 1, 9, 9, 8},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{3, 3, 1, 0},
		idx0: []uint8{5, 4, 4, 3, 3, 3, 6, 4, 4, 2, 2, 2, 2, 6, 5, 5, 1, 1, 1, 1, 1, 8, 7, 7, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 7, 5, 6, 8, 9, 8, 8, 6, 7, 5, 9, 3, 9, 9, 6, 7, 8, 4, 3, 2, 9, 9, 8, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{3, 3, 3, 7, 5, 4, 2, 2, 2, 6, 8, 4, 4, 1, 1, 1, 6, 5, 9, 5, 6, 0, 0, 0, 7, 8, 9, 7, 8, 9},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{4, 1, 1, 1},
		idx0: []uint8{7, 5, 4, 8, 6, 4, 9, 3, 2, 9, 6, 5, 8, 3, 7, 2, 1, 1, 9, 8, 7, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{4, 4, 5, 4, 4, 6, 3, 4, 4, 5, 5, 6, 3, 5, 2, 6, 5, 6, 7, 7, 8, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{5, 7, 7, 6, 8, 8, 4, 9, 9, 6, 9, 9, 5, 8, 6, 7, 8, 7, 8, 9, 9, 7, 7, 8, 8, 9, 9, 7, 8, 9},
	},
	{
		deg:  7,
		pow:  [4]uint8{3, 2, 2, 0},
		idx0: []uint8{7, 5, 4, 3, 3, 3, 6, 8, 4, 4, 2, 2, 2, 6, 5, 9, 5, 6, 1, 1, 1, 7, 8, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 6, 4, 4, 1, 1, 1, 1, 1, 6, 5, 5, 0, 0, 0, 0, 0, 0, 8, 7, 7},
		idx2: []uint8{6, 8, 9, 7, 7, 5, 7, 5, 9, 3, 8, 8, 6, 7, 8, 4, 3, 2, 9, 9, 6, 6, 5, 4, 3, 2, 1, 9, 9, 8},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  7,
		pow:  [4]uint8{3, 2, 1, 1},
		idx0: []uint8{7, 5, 4, 9, 3, 8, 6, 4, 2, 8, 3, 7, 2, 9, 6, 5, 1, 1, 6, 3, 5, 2, 4, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 4, 4, 2, 2, 2, 4, 5, 5, 6, 6, 1, 1, 1, 5, 6, 7, 7, 8, 8, 9, 9, 0, 0, 0, 7, 8, 9},
		idx2: []uint8{4, 4, 5, 2, 2, 4, 4, 6, 3, 1, 1, 1, 1, 5, 5, 6, 3, 2, 0, 0, 0, 0, 0, 0, 7, 7, 8, 3, 2, 1},
		idx3: []uint8{5, 7, 7, 3, 9, 6, 8, 8, 9, 3, 8, 2, 7, 6, 9, 9, 8, 7, 3, 6, 2, 5, 1, 4, 8, 9, 9, 6, 5, 4},
	},
	{
		deg:  7,
		pow:  [4]uint8{2, 2, 2, 1},
		idx0: []uint8{3, 3, 3, 3, 2, 2, 2, 2, 2, 3, 2, 1, 1, 1, 1, 1, 1, 1, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{5, 4, 4, 4, 6, 4, 4, 4, 3, 5, 6, 6, 5, 5, 5, 3, 6, 2, 6, 5, 4, 8, 7, 7, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{7, 7, 5, 9, 8, 8, 6, 9, 4, 8, 7, 9, 9, 6, 8, 5, 7, 6, 7, 8, 9, 9, 9, 8, 7, 7, 8, 8, 9, 9},
		idx3: []uint8{4, 5, 7, 2, 4, 6, 8, 3, 9, 1, 1, 5, 6, 9, 3, 8, 2, 7, 0, 0, 0, 7, 8, 9, 3, 6, 2, 5, 1, 4},
	},
	{
		deg:  7,
		pow:  [4]uint8{3, 2, 1, 1},
		idx0: []uint8{3, 3, 3, 4, 4, 4, 2, 2, 2, 5, 5, 6, 6, 5, 6, 1, 1, 1, 7, 7, 8, 8, 9, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{7, 5, 4, 9, 3, 2, 8, 6, 4, 8, 3, 7, 2, 1, 1, 9, 6, 5, 6, 3, 5, 2, 4, 1, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{4, 4, 5, 2, 2, 3, 4, 4, 6, 1, 1, 1, 1, 3, 2, 5, 5, 6, 0, 0, 0, 0, 0, 0, 3, 2, 1, 7, 7, 8},
		idx3: []uint8{5, 7, 7, 3, 9, 9, 6, 8, 8, 3, 8, 2, 7, 8, 7, 6, 9, 9, 3, 6, 2, 5, 1, 4, 6, 5, 4, 8, 9, 9},
	},
	{
		deg: 7,
		pow: [4]uint8{6, 1, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{5, 2, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{4, 3, 0, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 8, 6, 6, 9, 7, 6, 5, 5, 5, 8, 7, 6, 5, 4, 4, 4, 4, 9, 8, 6, 3, 3, 3,
			9, 7, 5, 3, 2, 2, 2, 2, 8, 7, 4, 3, 2, 1, 1, 1, 1, 1, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 6, 9, 8, 5, 5, 5, 9, 7, 6, 4, 4, 4, 4, 8, 7, 6, 5, 3, 3, 3, 9, 8, 6,
			2, 2, 2, 2, 9, 7, 5, 3, 1, 1, 1, 1, 1, 8, 7, 4, 3, 2, 0, 0, 0, 0, 0, 0, 6, 5, 4, 3, 2, 1,
		},
		idx2: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{4, 2, 1, 0},
		idx0: []uint8{
			9, 8, 9, 8, 7, 7, 9, 6, 9, 6, 5, 5, 8, 6, 7, 5, 8, 6, 7, 5, 4, 4, 4, 4, 9, 3, 9, 3, 2, 2,
			8, 3, 7, 2, 8, 3, 7, 2, 1, 1, 1, 1, 6, 3, 5, 2, 4, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 9, 7, 7, 9, 8, 6, 9, 5, 5, 9, 6, 6, 8, 5, 7, 4, 4, 4, 4, 8, 6, 7, 5, 3, 9, 2, 2, 9, 3,
			3, 8, 2, 7, 1, 1, 1, 1, 8, 3, 7, 2, 3, 6, 2, 5, 1, 4, 0, 0, 0, 0, 0, 0, 6, 3, 5, 2, 4, 1,
		},
		idx2: []uint8{
			7, 7, 8, 9, 8, 9, 5, 5, 6, 9, 6, 9, 4, 4, 4, 4, 6, 8, 5, 7, 6, 8, 5, 7, 2, 2, 3, 9, 3, 9,
			1, 1, 1, 1, 3, 8, 2, 7, 3, 8, 2, 7, 0, 0, 0, 0, 0, 0, 3, 6, 2, 5, 1, 4, 3, 6, 2, 5, 1, 4,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{5, 1, 1, 0},
		idx0: []uint8{
			9, 8, 6, 9, 7, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 8, 6, 6, 3, 3, 3, 9, 7, 9, 7, 5, 5, 2, 2, 2,
			8, 7, 8, 7, 4, 4, 3, 2, 1, 1, 1, 1, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 8, 5, 5, 7, 4, 4, 4, 4, 7, 5, 3, 3, 3, 3, 3, 3, 8, 6, 6, 2, 2, 2, 2, 2, 2, 7, 5, 5,
			1, 1, 1, 1, 1, 1, 1, 1, 7, 4, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 4, 2, 1, 1,
		},
		idx2: []uint8{
			8, 9, 9, 7, 9, 9, 7, 8, 5, 6, 8, 6, 8, 9, 6, 6, 9, 8, 9, 9, 8, 7, 9, 5, 5, 9, 7, 9, 9, 7,
			7, 8, 4, 4, 8, 7, 2, 3, 8, 8, 7, 3, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2, 6, 6, 5, 3, 3, 2,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{3, 3, 1, 0},
		idx0: []uint8{
			8, 6, 6, 7, 5, 5, 7, 5, 4, 4, 4, 4, 8, 6, 6, 3, 3, 3, 3, 3, 3, 7, 5, 5, 2, 2, 2, 2, 2, 2,
			7, 4, 4, 2, 1, 1, 1, 1, 1, 1, 1, 1, 5, 4, 4, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			9, 9, 8, 9, 9, 7, 8, 6, 8, 7, 6, 5, 9, 9, 8, 9, 8, 9, 8, 6, 6, 9, 9, 7, 9, 7, 9, 7, 5, 5,
			8, 8, 7, 3, 8, 7, 8, 7, 4, 4, 3, 2, 6, 6, 5, 3, 3, 2, 6, 5, 6, 5, 4, 4, 3, 2, 3, 2, 1, 1,
		},
		idx2: []uint8{
			6, 8, 9, 5, 7, 9, 4, 4, 7, 8, 5, 6, 3, 3, 3, 8, 9, 6, 6, 9, 8, 2, 2, 2, 7, 9, 5, 5, 9, 7,
			1, 1, 1, 1, 7, 8, 4, 4, 8, 7, 2, 3, 0, 0, 0, 0, 0, 0, 5, 6, 4, 4, 6, 5, 2, 3, 1, 1, 3, 2,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{5, 1, 1, 0},
		idx0: []uint8{
			9, 8, 9, 7, 6, 5, 8, 7, 6, 5, 4, 4, 9, 8, 9, 6, 8, 6, 9, 7, 9, 5, 7, 5, 3, 3, 2, 2, 8, 7,
			8, 7, 4, 4, 3, 3, 2, 2, 1, 1, 1, 1, 6, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			6, 6, 5, 5, 5, 6, 4, 4, 4, 4, 6, 5, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1,
		},
		idx2: []uint8{
			7, 7, 8, 8, 8, 7, 9, 9, 9, 9, 7, 8, 7, 7, 5, 5, 4, 4, 8, 8, 6, 6, 4, 4, 8, 6, 7, 5, 9, 9,
			6, 5, 6, 5, 9, 6, 9, 5, 7, 4, 8, 4, 9, 8, 9, 7, 8, 7, 9, 8, 9, 7, 8, 7, 5, 4, 6, 4, 6, 5,
		},
		idx3: []uint8{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		deg: 7,
		pow: [4]uint8{2, 2, 2, 1},
		idx0: []uint8{
			7, 7, 5, 5, 7, 5, 4, 4, 4, 4, 4, 4, 7, 5, 4, 7, 5, 4, 2, 2, 2, 2, 7, 4, 4, 2, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 5, 4, 4, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		idx1: []uint8{
			8, 8, 6, 6, 8, 6, 6, 6, 6, 5, 5, 5, 8, 6, 6, 8, 6, 5, 3, 3, 3, 3, 8, 6, 5, 3, 3, 3, 3, 3,
			3, 2, 2, 2, 2, 2, 6, 6, 5, 3, 3, 2, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 3, 2, 1, 1, 1, 1, 1, 1,
		},
		idx2: []uint8{
			9, 9, 9, 9, 9, 9, 8, 8, 8, 7, 7, 7, 9, 9, 8, 9, 9, 7, 9, 9, 9, 9, 9, 8, 7, 9, 8, 8, 8, 8,
			8, 7, 7, 7, 7, 7, 9, 8, 7, 9, 8, 7, 6, 6, 6, 6, 6, 5, 5, 5, 5, 5, 6, 5, 4, 4, 4, 4, 4, 4,
		},
		idx3: []uint8{
			6, 5, 8, 7, 4, 4, 9, 7, 5, 9, 8, 6, 3, 3, 3, 2, 2, 2, 8, 7, 6, 5, 1, 1, 1, 1, 9, 7, 6, 4,
			2, 9, 8, 5, 4, 3, 0, 0, 0, 0, 0, 0, 9, 8, 5, 4, 2, 9, 7, 6, 4, 3, 1, 1, 8, 7, 6, 5, 3, 2,
		},
	},
	{
		deg:  8,
		pow:  [4]uint8{2, 2, 2, 2},
		idx0: []uint8{3, 2, 1, 0, 0},
		idx1: []uint8{6, 5, 4, 4, 1},
		idx2: []uint8{8, 7, 7, 5, 2},
		idx3: []uint8{9, 9, 8, 6, 3},
	},
	{
		deg:  8,
		pow:  [4]uint8{2, 2, 2, 2},
		idx0: []uint8{3, 2, 2, 1, 1, 1, 0, 0, 0, 0},
		idx1: []uint8{4, 4, 3, 5, 3, 2, 7, 3, 2, 1},
		idx2: []uint8{5, 6, 4, 6, 5, 6, 8, 6, 5, 4},
		idx3: []uint8{7, 8, 9, 9, 8, 7, 9, 7, 8, 9},
	},
	{
		deg:  8,
		pow:  [4]uint8{5, 1, 1, 1},
		idx0: []uint8{3, 4, 2, 5, 6, 1, 7, 8, 9, 0},
		idx1: []uint8{4, 2, 4, 1, 1, 5, 0, 0, 0, 7},
		idx2: []uint8{5, 3, 6, 3, 2, 6, 3, 2, 1, 8},
		idx3: []uint8{7, 9, 8, 8, 7, 9, 6, 5, 4, 9},
	},
	{
		deg:  8,
		pow:  [4]uint8{4, 4, 0, 0},
		idx0: []uint8{6, 5, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 0, 0, 0},
		idx1: []uint8{7, 8, 9, 7, 5, 4, 8, 6, 4, 9, 6, 5, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{2, 2, 2, 2},
		idx0: []uint8{5, 4, 4, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{6, 6, 5, 3, 3, 3, 3, 2, 2, 3, 3, 2, 2, 1, 1},
		idx2: []uint8{7, 7, 8, 7, 5, 7, 4, 8, 4, 5, 4, 6, 4, 6, 5},
		idx3: []uint8{8, 9, 9, 8, 6, 9, 6, 9, 5, 9, 8, 9, 7, 8, 7},
	},
	{
		deg:  8,
		pow:  [4]uint8{5, 1, 1, 1},
		idx0: []uint8{9, 8, 6, 3, 9, 7, 5, 2, 8, 7, 4, 1, 6, 5, 4, 3, 2, 1, 0, 0},
		idx1: []uint8{3, 3, 3, 6, 2, 2, 2, 5, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 4, 1},
		idx2: []uint8{6, 6, 8, 8, 5, 5, 7, 7, 4, 4, 7, 7, 4, 4, 5, 1, 1, 2, 5, 2},
		idx3: []uint8{8, 9, 9, 9, 7, 9, 9, 9, 7, 8, 8, 8, 5, 6, 6, 2, 3, 3, 6, 3},
	},
	{
		deg:  8,
		pow:  [4]uint8{4, 4, 0, 0},
		idx0: []uint8{8, 7, 7, 6, 6, 5, 5, 5, 4, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 8, 9, 7, 6, 8, 7, 6, 5, 9, 8, 6, 9, 7, 5, 3, 8, 7, 4, 3, 2, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{6, 1, 1, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{4, 2, 2, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{3, 3, 2, 0},
		idx0: []uint8{8, 7, 7, 6, 5, 5, 6, 5, 4, 4, 4, 4, 3, 2, 2, 3, 2, 1, 1, 1, 1, 3, 2, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 9, 6, 8, 7, 8, 6, 7, 5, 9, 9, 3, 8, 7, 8, 3, 7, 2, 6, 5, 4, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{7, 8, 9, 5, 6, 9, 4, 4, 6, 8, 5, 7, 2, 3, 9, 1, 1, 3, 8, 2, 7, 0, 0, 0, 3, 6, 2, 5, 1, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{6, 2, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{5, 3, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{3, 3, 1, 1},
		idx0: []uint8{6, 5, 6, 5, 4, 4, 3, 3, 2, 2, 3, 3, 2, 2, 1, 1, 1, 1, 3, 3, 2, 2, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 8, 7, 8, 9, 9, 7, 5, 8, 6, 7, 4, 8, 4, 9, 6, 9, 5, 5, 4, 6, 4, 6, 5, 9, 8, 9, 7, 8, 7},
		idx2: []uint8{5, 6, 4, 4, 6, 5, 2, 2, 3, 3, 1, 1, 1, 1, 3, 3, 2, 2, 0, 0, 0, 0, 0, 0, 3, 3, 2, 2, 1, 1},
		idx3: []uint8{8, 7, 9, 9, 7, 8, 8, 6, 7, 5, 9, 6, 9, 5, 7, 4, 8, 4, 9, 8, 9, 7, 8, 7, 5, 4, 6, 4, 6, 5},
	},
	{
		deg:  8,
		pow:  [4]uint8{3, 3, 1, 1},
		idx0: []uint8{8, 6, 6, 3, 3, 3, 7, 5, 5, 2, 2, 2, 7, 4, 4, 1, 1, 1, 5, 4, 4, 2, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 8, 6, 9, 9, 7, 9, 7, 5, 8, 8, 7, 8, 7, 4, 6, 6, 5, 3, 3, 2, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{3, 3, 3, 6, 6, 8, 2, 2, 2, 5, 5, 7, 1, 1, 1, 4, 4, 7, 0, 0, 0, 0, 0, 0, 4, 4, 5, 1, 1, 2},
		idx3: []uint8{6, 8, 9, 8, 9, 9, 5, 7, 9, 7, 9, 9, 4, 7, 8, 7, 8, 8, 4, 5, 6, 1, 2, 3, 5, 6, 6, 2, 3, 3},
	},
	{
		deg:  8,
		pow:  [4]uint8{6, 1, 1, 0},
		idx0: []uint8{7, 5, 4, 3, 3, 3, 6, 8, 4, 4, 2, 2, 2, 6, 5, 9, 5, 6, 1, 1, 1, 7, 8, 9, 7, 8, 9, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 5, 4, 4, 2, 2, 2, 2, 6, 4, 4, 1, 1, 1, 1, 1, 6, 5, 5, 0, 0, 0, 0, 0, 0, 8, 7, 7},
		idx2: []uint8{6, 8, 9, 7, 7, 5, 7, 5, 9, 3, 8, 8, 6, 7, 8, 4, 3, 2, 9, 9, 6, 6, 5, 4, 3, 2, 1, 9, 9, 8},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  8,
		pow:  [4]uint8{5, 1, 1, 1},
		idx0: []uint8{7, 5, 4, 8, 6, 4, 9, 3, 2, 9, 6, 5, 8, 3, 7, 2, 1, 1, 9, 8, 7, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{4, 4, 5, 4, 4, 6, 3, 4, 4, 5, 5, 6, 3, 5, 2, 6, 5, 6, 7, 7, 8, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{5, 7, 7, 6, 8, 8, 4, 9, 9, 6, 9, 9, 5, 8, 6, 7, 8, 7, 8, 9, 9, 7, 7, 8, 8, 9, 9, 7, 8, 9},
	},
	{
		deg:  8,
		pow:  [4]uint8{3, 3, 1, 1},
		idx0: []uint8{5, 4, 4, 6, 4, 4, 3, 2, 2, 6, 5, 5, 3, 2, 1, 1, 1, 1, 8, 7, 7, 3, 2, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 7, 5, 8, 8, 6, 9, 9, 3, 9, 9, 6, 8, 7, 8, 3, 7, 2, 9, 9, 8, 6, 5, 4, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{3, 3, 3, 2, 2, 2, 2, 3, 4, 1, 1, 1, 1, 1, 3, 5, 2, 6, 0, 0, 0, 0, 0, 0, 3, 6, 2, 5, 1, 4},
		idx3: []uint8{4, 5, 7, 4, 6, 8, 4, 4, 9, 5, 6, 9, 5, 6, 5, 8, 6, 7, 7, 8, 9, 7, 8, 9, 7, 7, 8, 8, 9, 9},
	},
	{
		deg:  9,
		pow:  [4]uint8{3, 3, 3, 0},
		idx0: []uint8{7, 5, 4, 4, 2, 1, 1, 0, 0, 0},
		idx1: []uint8{8, 6, 6, 5, 3, 3, 2, 3, 2, 1},
		idx2: []uint8{9, 9, 8, 7, 9, 8, 7, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{3, 2, 2, 2},
		idx0: []uint8{3, 4, 2, 5, 6, 1, 7, 8, 9, 0},
		idx1: []uint8{4, 2, 4, 1, 1, 5, 0, 0, 0, 7},
		idx2: []uint8{5, 3, 6, 3, 2, 6, 3, 2, 1, 8},
		idx3: []uint8{7, 9, 8, 8, 7, 9, 6, 5, 4, 9},
	},
	{
		deg:  9,
		pow:  [4]uint8{6, 1, 1, 1},
		idx0: []uint8{3, 4, 2, 5, 6, 1, 7, 8, 9, 0},
		idx1: []uint8{4, 2, 4, 1, 1, 5, 0, 0, 0, 7},
		idx2: []uint8{5, 3, 6, 3, 2, 6, 3, 2, 1, 8},
		idx3: []uint8{7, 9, 8, 8, 7, 9, 6, 5, 4, 9},
	},
	{
		deg:  9,
		pow:  [4]uint8{3, 3, 3, 0},
		idx0: []uint8{6, 5, 4, 4, 3, 3, 3, 2, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{8, 7, 7, 5, 8, 6, 6, 7, 5, 5, 7, 4, 4, 2, 5, 4, 4, 2, 1, 1},
		idx2: []uint8{9, 9, 8, 6, 9, 9, 8, 9, 9, 7, 8, 8, 7, 3, 6, 6, 5, 3, 3, 2},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{6, 1, 1, 1},
		idx0: []uint8{9, 8, 6, 3, 9, 7, 5, 2, 8, 7, 4, 1, 6, 5, 4, 3, 2, 1, 0, 0},
		idx1: []uint8{3, 3, 3, 6, 2, 2, 2, 5, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 4, 1},
		idx2: []uint8{6, 6, 8, 8, 5, 5, 7, 7, 4, 4, 7, 7, 4, 4, 5, 1, 1, 2, 5, 2},
		idx3: []uint8{8, 9, 9, 9, 7, 9, 9, 9, 7, 8, 8, 8, 5, 6, 6, 2, 3, 3, 6, 3},
	},
	{
		deg:  9,
		pow:  [4]uint8{3, 2, 2, 2},
		idx0: []uint8{9, 8, 6, 3, 9, 7, 5, 2, 8, 7, 4, 1, 6, 5, 4, 3, 2, 1, 0, 0},
		idx1: []uint8{3, 3, 3, 6, 2, 2, 2, 5, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 4, 1},
		idx2: []uint8{6, 6, 8, 8, 5, 5, 7, 7, 4, 4, 7, 7, 4, 4, 5, 1, 1, 2, 5, 2},
		idx3: []uint8{8, 9, 9, 9, 7, 9, 9, 9, 7, 8, 8, 8, 5, 6, 6, 2, 3, 3, 6, 3},
	},
	{
		deg:  9,
		pow:  [4]uint8{4, 4, 1, 0},
		idx0: []uint8{8, 7, 7, 6, 5, 5, 6, 5, 4, 4, 4, 4, 3, 2, 2, 3, 2, 1, 1, 1, 1, 3, 2, 1, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{9, 9, 8, 9, 9, 6, 8, 7, 8, 6, 7, 5, 9, 9, 3, 8, 7, 8, 3, 7, 2, 6, 5, 4, 6, 3, 5, 2, 4, 1},
		idx2: []uint8{7, 8, 9, 5, 6, 9, 4, 4, 6, 8, 5, 7, 2, 3, 9, 1, 1, 3, 8, 2, 7, 0, 0, 0, 3, 6, 2, 5, 1, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{5, 2, 2, 0},
		idx0: []uint8{9, 8, 7, 9, 6, 5, 8, 6, 7, 5, 4, 4, 9, 3, 2, 8, 3, 7, 2, 1, 1, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{7, 7, 8, 5, 5, 6, 4, 4, 4, 4, 6, 5, 2, 2, 3, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{8, 9, 9, 6, 9, 9, 6, 8, 5, 7, 8, 7, 3, 9, 9, 3, 8, 2, 7, 8, 7, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{6, 3, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{5, 4, 0, 0},
		idx0: []uint8{7, 6, 8, 5, 9, 4, 7, 5, 4, 3, 3, 3, 8, 6, 4, 2, 2, 2, 9, 6, 5, 1, 1, 1, 9, 8, 7, 0, 0, 0},
		idx1: []uint8{6, 7, 5, 8, 4, 9, 3, 3, 3, 7, 5, 4, 2, 2, 2, 8, 6, 4, 1, 1, 1, 9, 6, 5, 0, 0, 0, 9, 8, 7},
		idx2: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{4, 4, 1, 0},
		idx0: []uint8{5, 4, 4, 3, 3, 3, 6, 4, 4, 2, 2, 2, 2, 6, 5, 5, 1, 1, 1, 1, 1, 8, 7, 7, 0, 0, 0, 0, 0, 0},
		idx1: []uint8{7, 7, 5, 6, 8, 9, 8, 8, 6, 7, 5, 9, 3, 9, 9, 6, 7, 8, 4, 3, 2, 9, 9, 8, 6, 5, 4, 3, 2, 1},
		idx2: []uint8{3, 3, 3, 7, 5, 4, 2, 2, 2, 6, 8, 4, 4, 1, 1, 1, 6, 5, 9, 5, 6, 0, 0, 0, 7, 8, 9, 7, 8, 9},
		idx3: []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		deg:  9,
		pow:  [4]uint8{6, 1, 1, 1},
		idx0: []uint8{7, 5, 4, 8, 6, 4, 9, 3, 2, 9, 6, 5, 8, 3, 7, 2, 1, 1, 9, 8, 7, 6, 3, 5, 2, 4, 1, 0, 0, 0},
		idx1: []uint8{3, 3, 3, 2, 2, 2, 2, 2, 3, 1, 1, 1, 1, 1, 1, 1, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 1},
		idx2: []uint8{4, 4, 5, 4, 4, 6, 3, 4, 4, 5, 5, 6, 3, 5, 2, 6, 5, 6, 7, 7, 8, 3, 6, 2, 5, 1, 4, 6, 5, 4},
		idx3: []uint8{5, 7, 7, 6, 8, 8, 4, 9, 9, 6, 9, 9, 5, 8, 6, 7, 8, 7, 8, 9, 9, 7, 7, 8, 8, 9, 9, 7, 8, 9},
	},
}
