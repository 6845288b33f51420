package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/smilkos/mrhs-solver/gf2"
	"github.com/smilkos/mrhs-solver/mrhs"
	"golang.org/x/exp/slices"
)

// ActiveListEntry is the per-block search state built by Prepare: the
// mask isolating that block's index-part bits, the lookup table bucketing
// candidates by those bits, and the cursor/accumulator bookkeeping the
// engine mutates while walking. Grounded on mrhs.solver.h's
// ActiveListEntry struct.
type ActiveListEntry struct {
	// Mask isolates the low FreeBits bits of a candidate: its index part.
	Mask gf2.Block
	// LUT maps an index-part value to the arena index of the first
	// TableEntry in its bucket, or noEntry if the bucket is empty.
	LUT []int32
	arena *arena

	// Pivots is pi, FreeBits is li-pi, NCols is li.
	Pivots   int
	FreeBits int
	NCols    int

	// Val is the RHS value of the candidate currently selected at this
	// depth, valid only while the engine has descended past it.
	Val gf2.Block
	// Next is the cursor: the arena index of the next TableEntry to try
	// in the current bucket, or noEntry when the bucket is exhausted.
	Next int32
}

// PrepareOptions configures Prepare.
type PrepareOptions struct {
	// EnablePruning turns on TableEntry.First-based skipping of
	// known-zero accumulator updates. Defaults to true; exposed as a
	// flag per spec.md §9's note that this optimization's exact
	// semantics are best validated independently before trusting it
	// unconditionally.
	EnablePruning bool
}

// DefaultPrepareOptions returns the recommended settings.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{EnablePruning: true}
}

type candidate struct {
	value     gf2.Block
	bucketKey gf2.Block
}

// Prepare builds one ActiveListEntry per block from an echelonized
// system, bucket-sorting each block's deduplicated RHS candidates by
// their (self-adjusted) index-part bits and precomputing each
// candidate's downstream accumulator contribution. Grounded on
// mrhs.solver.h's prepare doc comment.
func Prepare(sys *mrhs.System, res *mrhs.EchelonResult, opts PrepareOptions) []*ActiveListEntry {
	ales := make([]*ActiveListEntry, len(sys.M))
	for i, m := range sys.M {
		li := m.NCols()
		pi := res.Pivots[i]
		free := li - pi
		mask := gf2.FullMask(free)
		pivotRows := res.PivotRows[i]

		ale := &ActiveListEntry{
			Mask:     mask,
			LUT:      make([]int32, 1<<uint(free)),
			arena:    newArena(sys.S[i].NRows()),
			Pivots:   pi,
			FreeBits: free,
			NCols:    li,
		}
		for b := range ale.LUT {
			ale.LUT[b] = noEntry
		}

		seen := make(map[gf2.Block]bool, sys.S[i].NRows())
		var candidates []candidate
		for row := 0; row < sys.S[i].NRows(); row++ {
			v := sys.S[i].Row(row)
			if seen[v] {
				continue
			}
			seen[v] = true
			selfAdjust := pivotContribution(v, li, pivotRows, m)
			candidates = append(candidates, candidate{value: v, bucketKey: (v ^ selfAdjust) & mask})
		}
		if dropped := sys.S[i].NRows() - len(candidates); dropped > 0 {
			log.Debug().Int("block", i).Int("dropped", dropped).Msg("solver: duplicate rhs rows deduplicated")
		}
		slices.SortFunc(candidates, func(a, b candidate) bool { return a.bucketKey < b.bucketKey })

		for _, c := range candidates {
			smRow := make([]gf2.Block, len(sys.M))
			for d := range sys.M {
				if d == i {
					continue
				}
				smRow[d] = pivotContribution(c.value, li, pivotRows, sys.M[d])
			}
			first := len(sys.M)
			if opts.EnablePruning {
				for d := i + 1; d < len(sys.M); d++ {
					if smRow[d] != 0 {
						first = d
						break
					}
				}
			} else if i+1 < len(sys.M) {
				first = i + 1
			}
			idx := ale.arena.add(TableEntry{Value: c.value, SMRow: smRow, First: first, Next: noEntry})
			entry := ale.arena.get(idx)
			entry.Next = ale.LUT[c.bucketKey]
			ale.LUT[c.bucketKey] = idx
		}

		ales[i] = ale
	}
	return ales
}

// pivotContribution is the XOR, over the pivot bits set in v (read from
// the high Pivots bits of an li-wide value, most-significant bit first),
// of target's row at the corresponding global pivot row. Used both to
// self-adjust a block's own bucket key (target = the block's own M) and
// to compute a candidate's contribution to another block's accumulator
// (target = that block's M).
func pivotContribution(v gf2.Block, li int, pivotRows []int, target *gf2.BitMatrix) gf2.Block {
	var acc gf2.Block
	for j, row := range pivotRows {
		if v.Test(li - 1 - j) {
			acc ^= target.Row(row)
		}
	}
	return acc
}

// FreeALEs releases the arenas and lookup tables owned by ales. In Go
// this is a formality (the garbage collector reclaims them once
// unreferenced) rather than a required call, but it is provided to mirror
// mrhs.solver.h's free_ales and to let long-running callers drop large
// tables promptly instead of waiting on GC pressure to notice.
func FreeALEs(ales []*ActiveListEntry) {
	for _, a := range ales {
		a.LUT = nil
		a.arena = nil
	}
}
