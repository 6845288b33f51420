package solver

import "github.com/smilkos/mrhs-solver/gf2"

// Assignment is a solution as the search finds it: one chosen RHS value
// per block, plus how many variable rows were left free (never claimed
// by any block's pivot). ToVector expands it into a full GF(2)^n vector
// given the block widths and pivot-row maps Echelonize recorded.
type Assignment struct {
	Values   []gf2.Block
	FreeRows int
}

// ToVector reconstructs one representative full solution x in GF(2)^n of
// the echelonized system (Echelonize's row operations are not undone, so
// x is expressed in the echelonized variable coordinates): bit r is set
// wherever some block's pivot claims row r and that block's chosen value
// has the corresponding bit set. blockWidths[i] is li,
// pivotRows[i][k] is the global row backing the k-th pivot of block i
// (bit li-1-k of Values[i]). Free rows (unclaimed by any pivot) are left
// zero; per the FreeRows count, any of the 2^FreeRows assignments to
// them is equally valid, since every equation's coefficient at a free
// row is zero by construction.
func (a Assignment) ToVector(n int, blockWidths []int, pivotRows [][]int) *gf2.BitVector {
	x := gf2.NewBitVector(n)
	for i, v := range a.Values {
		li := blockWidths[i]
		for k, row := range pivotRows[i] {
			if v.Test(li - 1 - k) {
				x.Set(row, true)
			}
		}
	}
	return x
}

// ReportFunc is invoked once per full assignment the search finds, with a
// 1-based, monotonically increasing counter. Grounded on mrhs.solver.h's
// solve callback signature.
type ReportFunc func(counter int64, assignment Assignment)

// Solve walks the prepared ActiveListEntry tables depth first,
// non-recursively: at each block it filters candidates by matching the
// block's index-part mask against the running accumulator, applies the
// chosen candidate's contribution to every later block's accumulator,
// and backtracks by restoring the accumulator and advancing the
// exhausted depth's cursor. Returns the number of full assignments
// found (the leaf count; multiply by 2^freeRows for the count of full
// GF(2)^n vectors, since free rows are never enumerated — see
// mrhs.EchelonResult.FreeRows). Grounded on mrhs.solver.h's solve
// signature and spec's §4.H non-recursive backtracking design.
func Solve(ales []*ActiveListEntry, freeRows int, report ReportFunc) (leaves, xorOps int64) {
	m := len(ales)
	if m == 0 {
		return 0, 0
	}

	u := make([]gf2.Block, m)
	saved := make([][]gf2.Block, m)
	for d := range saved {
		saved[d] = make([]gf2.Block, m)
	}

	descend := func(d int) {
		idx := u[d] & ales[d].Mask
		ales[d].Next = ales[d].LUT[idx]
	}

	d := 0
	descend(0)
	movingDown := true
	var counter int64

	for d >= 0 {
		if movingDown {
			if d == m {
				counter++
				if report != nil {
					report(counter, snapshotAssignment(ales, freeRows))
				}
				movingDown = false
				d--
				continue
			}
			if ales[d].Next == noEntry {
				movingDown = false
				d--
				continue
			}
			entry := ales[d].arena.get(ales[d].Next)
			ales[d].Val = entry.Value
			copy(saved[d], u)
			for j := entry.First; j < m; j++ {
				u[j] ^= entry.SMRow[j]
			}
			xorOps += int64(m - entry.First)
			d++
			if d < m {
				descend(d)
			}
			movingDown = true
			continue
		}

		// Backtracking into depth d: undo depth d's chosen entry and
		// advance its cursor to the next candidate in its bucket.
		copy(u, saved[d])
		entry := ales[d].arena.get(ales[d].Next)
		ales[d].Next = entry.Next
		movingDown = true
	}

	return counter, xorOps
}

func snapshotAssignment(ales []*ActiveListEntry, freeRows int) Assignment {
	values := make([]gf2.Block, len(ales))
	for i, a := range ales {
		values[i] = a.Val
	}
	return Assignment{Values: values, FreeRows: freeRows}
}
