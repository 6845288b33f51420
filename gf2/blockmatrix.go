package gf2

import "fmt"

// BlockBitMatrix is several BitMatrix values placed side by side, sharing
// a row count: block j's columns are read as bits [start_j, start_j+l_j)
// of a single logical row. Grounded on mrhs.solver.h's echelonize(_bbm
// *pbbm, ...) signature and spec's "joint coefficient BBM (Mᵢ stacked
// horizontally)" description.
type BlockBitMatrix struct {
	nrows  int
	blocks []*BitMatrix
}

// NewBlockBitMatrix assembles blocks that must all share the same row
// count.
func NewBlockBitMatrix(blocks []*BitMatrix) (*BlockBitMatrix, error) {
	if len(blocks) == 0 {
		return &BlockBitMatrix{}, nil
	}
	nrows := blocks[0].NRows()
	for _, b := range blocks {
		if b.NRows() != nrows {
			return nil, fmt.Errorf("gf2: NewBlockBitMatrix: row count mismatch: %w", ErrShape)
		}
	}
	return &BlockBitMatrix{nrows: nrows, blocks: blocks}, nil
}

// NBlocks returns the number of constituent blocks.
func (bb *BlockBitMatrix) NBlocks() int { return len(bb.blocks) }

// NRows returns the shared row count.
func (bb *BlockBitMatrix) NRows() int { return bb.nrows }

// Block returns the i-th constituent BitMatrix.
func (bb *BlockBitMatrix) Block(i int) *BitMatrix { return bb.blocks[i] }

// TotalCols returns the sum of every block's column count (the width of
// one logical joint row).
func (bb *BlockBitMatrix) TotalCols() int {
	total := 0
	for _, b := range bb.blocks {
		total += b.NCols()
	}
	return total
}

// XorRowInto applies the row operation dst ^= src across every block at
// once: a row operation on the joint matrix touches all blocks' columns
// simultaneously, since they share the same underlying variable space.
func (bb *BlockBitMatrix) XorRowInto(dst, src int) {
	for _, b := range bb.blocks {
		b.XorRowInto(dst, src)
	}
}

// SwapRows exchanges two rows across every block.
func (bb *BlockBitMatrix) SwapRows(a, b int) {
	for _, blk := range bb.blocks {
		blk.SwapRows(a, b)
	}
}
