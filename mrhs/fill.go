package mrhs

import (
	"fmt"

	"github.com/smilkos/mrhs-solver/gf2"
)

// FillRandom fills every block's M and S with independent uniform bits.
// Grounded on mrhs.c's fill_mrhs_random.
func FillRandom(sys *System, rng gf2.RandSource) {
	for i := range sys.M {
		gf2.RandomBitMatrix(rng, sys.M[i])
		gf2.RandomBitMatrix(rng, sys.S[i])
	}
}

// FillRandomSparse fills every block's M with one uniformly placed 1 per
// column and its S with independent uniform bits. Grounded on mrhs.c's
// fill_mrhs_random_sparse.
func FillRandomSparse(sys *System, rng gf2.RandSource) {
	for i := range sys.M {
		gf2.RandomSparseColsBitMatrix(rng, sys.M[i])
		gf2.RandomBitMatrix(rng, sys.S[i])
	}
}

// FillRandomSparseExtra behaves as FillRandomSparse, then scatters
// density extra 1 bits across each block's M on top of the sparse
// layout, thickening the coefficient structure while keeping most of it
// sparse. Grounded on mrhs.c's fill_mrhs_random_sparse_extra.
func FillRandomSparseExtra(sys *System, rng gf2.RandSource, density int) {
	FillRandomSparse(sys, rng)
	for i := range sys.M {
		m := sys.M[i]
		for j := 0; j < density && m.NRows() > 0 && m.NCols() > 0; j++ {
			m.SetBit(rng.Intn(m.NRows()), rng.Intn(m.NCols()), true)
		}
	}
}

// FillAND lays out an AND-gate/filter structure across the system's m
// blocks: the first m-l blocks are AND gates (M gets two randomly placed
// input columns and one output column fixed to variable row key+block,
// S is the fixed 4-row AND truth table), the last l blocks are plain
// random filter equations reusing the same AND truth table for S. key is
// the number of key/input variable rows preceding the first output row.
// Requires n == key+m-l (m = number of blocks, l = filter block count);
// a violation is refused with ErrShape before anything is mutated.
// Grounded on mrhs.c's fill_mrhs_and.
func FillAND(sys *System, rng gf2.RandSource, key, l int) error {
	m := len(sys.M)
	if l < 0 || l > m || sys.N != key+m-l {
		return fmt.Errorf("mrhs: FillAND: n=%d, want key(%d)+m(%d)-l(%d)=%d: %w", sys.N, key, m, l, key+m-l, ErrShape)
	}
	for i := 0; i < m-l; i++ {
		if err := gf2.RandomANDColsBitMatrix(rng, sys.M[i], key+i); err != nil {
			return err
		}
	}
	for i := m - l; i < m; i++ {
		gf2.RandomBitMatrix(rng, sys.M[i])
	}
	for i := 0; i < m; i++ {
		if err := gf2.RandomANDBitMatrix(sys.S[i]); err != nil {
			return err
		}
	}
	return nil
}

// FillANDSparse behaves as FillAND but lays sparse AND-input columns
// (RandomSparseANDColsBitMatrix, density extra 1 bits) into the M of each
// of the first m-l AND-gate blocks; the last l blocks are plain random
// filter equations, as in FillAND. Requires n == key+m-l, refused with
// ErrShape before any mutation. Grounded on mrhs.c's fill_mrhs_and_sparse.
func FillANDSparse(sys *System, rng gf2.RandSource, key, l, density int) error {
	m := len(sys.M)
	if l < 0 || l > m || sys.N != key+m-l {
		return fmt.Errorf("mrhs: FillANDSparse: n=%d, want key(%d)+m(%d)-l(%d)=%d: %w", sys.N, key, m, l, key+m-l, ErrShape)
	}
	for i := 0; i < m-l; i++ {
		if err := gf2.RandomSparseANDColsBitMatrix(rng, sys.M[i], key+i, density); err != nil {
			return err
		}
	}
	for i := m - l; i < m; i++ {
		gf2.RandomBitMatrix(rng, sys.M[i])
	}
	for i := 0; i < m; i++ {
		if err := gf2.RandomANDBitMatrix(sys.S[i]); err != nil {
			return err
		}
	}
	return nil
}

// EnsureRandomSolution draws a uniform x in GF(2)^n and, for every
// block, forces x·Mᵢ to appear as a row of Sᵢ (overwriting a uniformly
// chosen row if it is missing). The returned vector is therefore
// guaranteed to satisfy every block. Grounded on mrhs.c's
// ensure_random_solution.
func EnsureRandomSolution(sys *System, rng gf2.RandSource) *gf2.BitVector {
	x := gf2.RandomBitVector(rng, sys.N)
	for i := range sys.M {
		r := gf2.MultiplyVectorMatrix(x, sys.M[i])
		sys.S[i].EnsureBlockIn(rng, r)
	}
	return x
}
