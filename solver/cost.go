package solver

import "github.com/smilkos/mrhs-solver/mrhs"

// blockCost holds the per-block quantities the estimators combine: |Si|,
// pi (pivots claimed) and li (block width, so li-pi is the free/index
// width).
type blockCost struct {
	size, pivots, width int
}

func costs(sys *mrhs.System, res *mrhs.EchelonResult) []blockCost {
	out := make([]blockCost, sys.NBlocks())
	for i := range out {
		out[i] = blockCost{size: sys.S[i].NRows(), pivots: res.Pivots[i], width: sys.M[i].NCols()}
	}
	return out
}

// GetExpected returns Ntotal, the analytic estimate of how many leaf
// assignments the search will visit: sum_{i=2..m} Pi-1, the running sum
// of partial products of the survival factor |Sj|*2^(pj-lj) taken over
// every prefix of blocks shorter than the full system. A single-block
// system (m=1) has no terms and Ntotal is 0. Grounded on
// mrhs.solver.h's get_expected doc comment.
func GetExpected(sys *mrhs.System, res *mrhs.EchelonResult) float64 {
	cs := costs(sys, res)
	m := len(cs)
	total := 0.0
	prefix := 1.0
	for k := 1; k < m; k++ {
		prefix *= float64(cs[k-1].size) * pow2(cs[k-1].pivots-cs[k-1].width)
		total += prefix
	}
	return total
}

// GetXor1 estimates the number of Block-XOR operations Solve will
// perform to maintain the accumulator: sum_{i=2..m} (m-i+1) Pi-1, the
// same running sum of partial products as GetExpected, each term
// weighted by how many later blocks a candidate surviving to that depth
// still has to update (the naive count ignoring TableEntry.First
// pruning). Grounded on mrhs.solver.h's get_xor1 doc comment.
func GetXor1(sys *mrhs.System, res *mrhs.EchelonResult) float64 {
	cs := costs(sys, res)
	m := len(cs)
	total := 0.0
	prefix := 1.0
	for k := 1; k < m; k++ {
		prefix *= float64(cs[k-1].size) * pow2(cs[k-1].pivots-cs[k-1].width)
		total += prefix * float64(m-k)
	}
	return total
}

// GetXor2 refines GetXor1 by scaling each depth's contribution with
// (1 - 2^-p{i-1}), the probability that the block just added to the
// prefix contributed at least one pivot bit worth pruning on: sum_{i=2..m}
// (1 - 2^-p{i-1}) (m-i+1) Pi-1. Unlike a first-gap average, this is a
// pure function of the pivot counts already recorded in EchelonResult,
// so it runs on an echelonized-but-not-yet-Prepared system. Grounded on
// mrhs.solver.h's get_xor2 doc comment.
func GetXor2(sys *mrhs.System, res *mrhs.EchelonResult) float64 {
	cs := costs(sys, res)
	m := len(cs)
	total := 0.0
	prefix := 1.0
	for k := 1; k < m; k++ {
		last := cs[k-1]
		prefix *= float64(last.size) * pow2(last.pivots-last.width)
		total += prefix * (1 - pow2(-last.pivots)) * float64(m-k)
	}
	return total
}

// TotalSolutions scales a leaf count by the free rows the search never
// enumerates, giving the count of full GF(2)^n vectors satisfying every
// block (testable property #8).
func TotalSolutions(leaves int64, freeRows int) int64 {
	return leaves << uint(freeRows)
}

func pow2(exp int) float64 {
	if exp >= 0 {
		return float64(uint64(1) << uint(exp))
	}
	v := 1.0
	for i := 0; i < -exp; i++ {
		v /= 2
	}
	return v
}
