package gf2

// RandSource is the slice of golang.org/x/exp/rand.Rand this package
// needs. Every filler takes one explicitly instead of touching a
// process-global source, per the re-architecture spec.md §9 calls for:
// callers construct their own rand.Rand (seeded or not) and pass it in,
// so tests can reproduce a run bit for bit.
type RandSource interface {
	Intn(n int) int
	Uint64() uint64
}

// RandomBitVector fills a fresh length-n BitVector with independent
// uniform bits. Grounded on mrhs.c's random_bv.
func RandomBitVector(rng RandSource, n int) *BitVector {
	v := NewBitVector(n)
	for i := 0; i < n; i++ {
		if rng.Uint64()&1 == 1 {
			v.Set(i, true)
		}
	}
	return v
}

// RandomBitMatrix fills every row of m with independent uniform bits.
// Grounded on mrhs.c's random_bm.
func RandomBitMatrix(rng RandSource, m *BitMatrix) {
	mask := FullMask(m.NCols())
	for r := 0; r < m.NRows(); r++ {
		m.SetRow(r, Block(rng.Uint64())&mask)
	}
}

// RandomUniqueBitMatrix fills every row of m with a uniform value, redrawing
// on collision so that all rows end up pairwise distinct. The caller must
// ensure NRows() <= 2^NCols(). Grounded on mrhs.c's random_unique_bm.
func RandomUniqueBitMatrix(rng RandSource, m *BitMatrix) error {
	if m.NRows() > 1<<uint(m.NCols()) {
		return ErrShape
	}
	mask := FullMask(m.NCols())
	seen := make(map[Block]bool, m.NRows())
	for r := 0; r < m.NRows(); r++ {
		for {
			v := Block(rng.Uint64()) & mask
			if !seen[v] {
				seen[v] = true
				m.SetRow(r, v)
				break
			}
		}
	}
	return nil
}

// RandomSparseColsBitMatrix gives every column of m exactly one set bit,
// in an independently and uniformly chosen row. Grounded on
// mrhs.c's random_sparse_cols_bm.
func RandomSparseColsBitMatrix(rng RandSource, m *BitMatrix) {
	for r := 0; r < m.NRows(); r++ {
		m.SetRow(r, 0)
	}
	for c := 0; c < m.NCols(); c++ {
		if m.NRows() == 0 {
			break
		}
		r := rng.Intn(m.NRows())
		m.SetBit(r, c, true)
	}
}

// RandomANDBitMatrix fills m with the fixed 4-row AND truth table (x, y,
// z=x&y), used as the RHS block of an AND-gate constraint. m must have
// exactly 3 columns and at least 4 rows; rows beyond the first 4 are left
// untouched by this call. Grounded on mrhs.c's random_and_bm — despite
// the name, the AND truth table is a constant, not actually randomized.
func RandomANDBitMatrix(m *BitMatrix) error {
	if m.NCols() != 3 || m.NRows() < 4 {
		return ErrShape
	}
	rows := [4]Block{0b000, 0b010, 0b001, 0b111}
	for i, v := range rows {
		m.SetRow(i, v)
	}
	return nil
}

// RandomANDColsBitMatrix lays out the coefficient columns for an AND gate
// with output variable row r: the x and y input columns each get a
// single 1 in an independently chosen row, and the z (output) column
// gets its 1 fixed at row r. m must have exactly 3 columns.
// Grounded on mrhs.c's random_and_cols_bm.
func RandomANDColsBitMatrix(rng RandSource, m *BitMatrix, r int) error {
	if m.NCols() != 3 || r < 0 || r >= m.NRows() {
		return ErrShape
	}
	for row := 0; row < m.NRows(); row++ {
		m.SetRow(row, 0)
	}
	if m.NRows() > 0 {
		m.SetBit(rng.Intn(m.NRows()), 0, true)
		m.SetBit(rng.Intn(m.NRows()), 1, true)
	}
	m.SetBit(r, 2, true)
	return nil
}

// RandomSparseANDColsBitMatrix builds an AND-gate column layout as
// RandomANDColsBitMatrix does, then scatters density additional
// independent 1 bits across the matrix, matching mrhs.c's sparse variant
// of fill_mrhs_and (fill_mrhs_and_sparse).
func RandomSparseANDColsBitMatrix(rng RandSource, m *BitMatrix, r, density int) error {
	if err := RandomANDColsBitMatrix(rng, m, r); err != nil {
		return err
	}
	for i := 0; i < density && m.NRows() > 0; i++ {
		m.SetBit(rng.Intn(m.NRows()), rng.Intn(m.NCols()), true)
	}
	return nil
}
