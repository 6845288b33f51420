// Package solver implements the Raddum–Zajac lookup-table search over an
// echelonized MRHS system: per-block candidate tables keyed by their
// index-part bits, and a non-recursive backtracking walk that combines
// them into full solutions.
package solver

import "github.com/smilkos/mrhs-solver/gf2"

// noEntry is the arena sentinel meaning "no further entry", playing the
// role of a nil *TableEntry without an actual pointer.
const noEntry int32 = -1

// TableEntry is one candidate RHS row for a block, prepared for the
// search: which value it represents, what it contributes to every other
// block's running accumulator once chosen, and the arena-index link to
// the next entry sharing its bucket. Grounded on mrhs.solver.h's
// TableEntry struct, re-architected per spec.md §9's design note: instead
// of a non-owning *TableEntry next pointer and a non-owning sm_row
// pointer into the echelonized BBM, both are replaced with values or
// indices this entry owns outright — the same flat-arena idiom
// constraint/newstuff.go's NEWCS uses for its CallData/Instructions
// (offset-addressed rather than pointer-linked).
type TableEntry struct {
	// Value is the full RHS row this entry represents.
	Value gf2.Block
	// SMRow[d] is this candidate's contribution to block d's running
	// accumulator, folded in when the candidate is chosen. It is
	// precomputed once during Prepare from the echelonized joint
	// matrix's pivot rows, per the "copy the needed block value" option
	// spec.md §9 recommends over the original's non-owning pointer.
	SMRow []gf2.Block
	// First is, with pruning enabled, the smallest later block index d
	// such that SMRow[d] != 0, or len(SMRow) if this candidate never
	// contributes downstream; with pruning disabled it is simply the next
	// block index. The engine starts applying contributions at First
	// instead of at 0, skipping known-zero updates.
	First int
	// Next is the arena index of the next entry in the same bucket, or
	// noEntry at the end of the chain.
	Next int32
}

// arena is the owning, append-only backing store for one block's
// TableEntry values, indexed by int32 instead of linked via pointers.
type arena struct {
	entries []TableEntry
}

func newArena(capacity int) *arena {
	return &arena{entries: make([]TableEntry, 0, capacity)}
}

// add appends e and returns its arena index.
func (a *arena) add(e TableEntry) int32 {
	a.entries = append(a.entries, e)
	return int32(len(a.entries) - 1)
}

func (a *arena) get(idx int32) *TableEntry {
	return &a.entries[idx]
}

func (a *arena) len() int { return len(a.entries) }
