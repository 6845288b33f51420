package mrhs

import (
	"fmt"

	"github.com/smilkos/mrhs-solver/gf2"
)

// EchelonResult records the outcome of Echelonize: how many pivots each
// block claimed, which global variable row backs each pivot bit, and
// (optionally) the accumulated row-operation transform.
type EchelonResult struct {
	// Pivots holds pi, the number of pivot columns block i claimed.
	Pivots []int
	// TotalPivots is P, the sum of Pivots.
	TotalPivots int
	// PivotRows[i][k] is the global variable row backing the k-th pivot
	// discovered in block i; bit (li-1-k) of a chosen candidate for
	// block i directly gives that row's value.
	PivotRows [][]int
	// A is the accumulated row-operation transform (nil unless
	// requested), such that applying it to the original joint M and then
	// permuting each block's columns by ColumnPerm reproduces the
	// echelonized one.
	A *gf2.WideMatrix
	// ColumnPerm[i][c] is the original column of block i's M (and S) that
	// Echelonize moved to column c.
	ColumnPerm [][]int
}

// FreeRows returns n - P, the number of variables no block's pivot ever
// claims. Their value is unconstrained by every equation: every column
// of every block has a zero coefficient there, an invariant Echelonize
// guarantees by construction (see solver/engine.go's design note on why
// this makes them safe to leave unenumerated).
func (r *EchelonResult) FreeRows(n int) int { return n - r.TotalPivots }

// Echelonize performs joint Gaussian elimination across every block's M,
// processing blocks in order and picking pivots left to right within
// each. A pivot column is swapped to the current top of its block's free
// (low) columns and then cleared everywhere else via row XOR; the exact
// same row XOR is mirrored across every other block's M (since blocks
// share the same n-row variable space) and, if computeA is set, into A.
// S is only ever column-swapped in step with its own block's M, never
// row-operated on. Grounded on mrhs.solver.h's echelonize doc comment
// and spec's §4.F.1 component design.
func Echelonize(sys *System, computeA bool) *EchelonResult {
	n := sys.N
	res := &EchelonResult{
		Pivots:     make([]int, len(sys.M)),
		PivotRows:  make([][]int, len(sys.M)),
		ColumnPerm: make([][]int, len(sys.M)),
	}
	if computeA {
		res.A = gf2.Identity(n)
	}

	bbm, err := gf2.NewBlockBitMatrix(sys.M)
	if err != nil {
		// Every block shares sys.N rows by construction; a mismatch here
		// means the caller handed Echelonize a System an earlier step
		// (RemoveEmpty, LinearSubstitution) failed to keep consistent.
		panic(fmt.Sprintf("mrhs: Echelonize: %v", err))
	}

	pivotRow := 0
	for i, m := range sys.M {
		li := m.NCols()
		free := li
		var pivotRows []int
		perm := make([]int, li)
		for c := range perm {
			perm[c] = c
		}
		col := 0
		for col < free && pivotRow < n {
			rowFound := -1
			for r := pivotRow; r < n; r++ {
				if m.GetBit(r, col) {
					rowFound = r
					break
				}
			}
			if rowFound == -1 {
				col++
				continue
			}
			if rowFound != pivotRow {
				bbm.SwapRows(pivotRow, rowFound)
				if res.A != nil {
					res.A.SwapRows(pivotRow, rowFound)
				}
			}
			for r := 0; r < n; r++ {
				if r == pivotRow {
					continue
				}
				if m.GetBit(r, col) {
					bbm.XorRowInto(r, pivotRow)
					if res.A != nil {
						res.A.XorRowInto(r, pivotRow)
					}
				}
			}
			free--
			m.SwapColumns(col, free)
			sys.S[i].SwapColumns(col, free)
			perm[col], perm[free] = perm[free], perm[col]
			pivotRows = append(pivotRows, pivotRow)
			pivotRow++
		}
		res.Pivots[i] = len(pivotRows)
		res.PivotRows[i] = pivotRows
		res.ColumnPerm[i] = perm
	}
	res.TotalPivots = pivotRow
	return res
}

// LinearSubstitution applies the linear equation given by column (a
// length-N BitVector of coefficients) and rhs: it eliminates the variable
// at column's lowest set bit wherever that variable appears with a 1
// coefficient across every block, XORing column into that column of Mᵢ
// and folding rhs into the matching column of Sᵢ. A zero column is a
// no-op. Returns the number of (block, column) sites updated.
// Grounded on mrhs.c's linear_substitution.
func LinearSubstitution(sys *System, column *gf2.BitVector, rhs bool) int {
	pivot := column.FindNonzero(0)
	if pivot < 0 {
		return 0
	}
	count := 0
	for i, m := range sys.M {
		for c := 0; c < m.NCols(); c++ {
			if m.GetBit(pivot, c) {
				m.AddColumn(c, column)
				sys.S[i].AddConstant(c, rhs)
				count++
			}
		}
	}
	return count
}

// RemoveLinear finds every block whose S has collapsed to a single row
// (k=1, meaning that block is no longer a genuine choice but a plain
// linear equation Mᵢx = the one remaining row) and substitutes each of
// its columns' equations into the rest of the system via
// LinearSubstitution. Returns the number of substitutions performed.
// Grounded on mrhs.c's remove_linear.
func RemoveLinear(sys *System) int {
	count := 0
	for i, sBlock := range sys.S {
		if sBlock.NRows() != 1 {
			continue
		}
		m := sys.M[i]
		for c := 0; c < m.NCols(); c++ {
			column := m.GetColumn(c)
			rhs := sBlock.GetBit(0, c)
			count += LinearSubstitution(sys, column, rhs)
		}
	}
	return count
}

// RemoveEmpty drops every block whose M has become all-zero (every
// remaining variable it once referenced has been substituted away) and
// compacts the shared row space down to the rows still referenced by at
// least one surviving block. Returns the number of blocks removed.
// Grounded on mrhs.c's remove_empty.
func RemoveEmpty(sys *System) int {
	before := len(sys.M)
	activeRows := gf2.NewBitVector(sys.N)

	i := 0
	for i < len(sys.M) {
		active := sys.M[i].GetActiveRows()
		if active.IsNonZero() {
			activeRows.Or(active)
			i++
			continue
		}
		sys.M = append(sys.M[:i], sys.M[i+1:]...)
		sys.S = append(sys.S[:i], sys.S[i+1:]...)
	}

	for _, m := range sys.M {
		m.RemoveRows(activeRows)
	}
	sys.N = activeRows.PopCount()
	return before - len(sys.M)
}
