package mrhs

import (
	"fmt"

	"github.com/smilkos/mrhs-solver/gf2"
)

// System is a Multiple Right-Hand Side system: n shared variables, split
// into m blocks. Block i asserts that x·Mᵢ (an li-bit code word) must
// equal one of the rows of Sᵢ. Grounded on mrhs.c's MRHS_system.
type System struct {
	N int
	M []*gf2.BitMatrix
	S []*gf2.BitMatrix
}

// NBlocks returns the number of blocks.
func (s *System) NBlocks() int { return len(s.M) }

// CreateFixed builds a system of m blocks that all share the same block
// width l and RHS row count k. Grounded on mrhs.c's create_mrhs_fixed.
func CreateFixed(n, m, l, k int) (*System, error) {
	if n <= 0 || m <= 0 {
		return &System{N: n}, nil
	}
	widths := make([]int, m)
	sizes := make([]int, m)
	for i := range widths {
		widths[i] = l
		sizes[i] = k
	}
	return CreateVariable(n, widths, sizes)
}

// CreateVariable builds a system whose blocks may each have a distinct
// width l[i] and RHS row count k[i]. Zero blocks or zero rows are
// DegenerateInput (spec.md §7): rather than an error, CreateVariable
// returns an empty system with null M/S, mirroring
// create_mrhs_variable's nblocks==0 short-circuit. Grounded on mrhs.c's
// create_mrhs_variable.
func CreateVariable(n int, l, k []int) (*System, error) {
	if n <= 0 || len(l) == 0 {
		return &System{N: n}, nil
	}
	if len(l) != len(k) {
		return nil, fmt.Errorf("mrhs: CreateVariable: len(l)=%d != len(k)=%d: %w", len(l), len(k), ErrShape)
	}
	sys := &System{N: n, M: make([]*gf2.BitMatrix, len(l)), S: make([]*gf2.BitMatrix, len(l))}
	for i := range l {
		mBlock, err := gf2.NewBitMatrix(n, l[i])
		if err != nil {
			return nil, fmt.Errorf("mrhs: CreateVariable: block %d M: %w", i, err)
		}
		sBlock, err := gf2.NewBitMatrix(k[i], l[i])
		if err != nil {
			return nil, fmt.Errorf("mrhs: CreateVariable: block %d S: %w", i, err)
		}
		sys.M[i] = mBlock
		sys.S[i] = sBlock
	}
	return sys, nil
}

// BlockWidths returns li for every block.
func (s *System) BlockWidths() []int {
	widths := make([]int, len(s.M))
	for i, m := range s.M {
		widths[i] = m.NCols()
	}
	return widths
}

// RHSCounts returns ki (the number of candidate rows) for every block.
func (s *System) RHSCounts() []int {
	counts := make([]int, len(s.S))
	for i, sb := range s.S {
		counts[i] = sb.NRows()
	}
	return counts
}

// Clone returns a deep, independent copy.
func (s *System) Clone() *System {
	out := &System{N: s.N, M: make([]*gf2.BitMatrix, len(s.M)), S: make([]*gf2.BitMatrix, len(s.S))}
	for i := range s.M {
		out.M[i] = s.M[i].Clone()
		out.S[i] = s.S[i].Clone()
	}
	return out
}
