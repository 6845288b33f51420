package gf2

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestBitVectorXorInvolution checks that XOR-ing the same vector into
// another twice is the identity, i.e. GF(2) addition really is its own
// inverse for BitVector.
func TestBitVectorXorInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("xor-xor is identity", prop.ForAll(
		func(bitsA, bitsB []bool) bool {
			n := len(bitsA)
			if len(bitsB) < n {
				n = len(bitsB)
			}
			a, b := NewBitVector(n), NewBitVector(n)
			for i := 0; i < n; i++ {
				a.Set(i, bitsA[i])
				b.Set(i, bitsB[i])
			}
			orig := a.Clone()
			a.Xor(b)
			a.Xor(b)
			return a.Equal(orig)
		},
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

// TestBlockSwappedInvolution checks that swapping the same two positions
// twice restores the original Block.
func TestBlockSwappedInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("double swap is identity", prop.ForAll(
		func(v uint64, a, c uint8) bool {
			b := Block(v)
			ai, ci := int(a%64), int(c%64)
			return b.Swapped(ai, ci).Swapped(ai, ci) == b
		},
		gen.UInt64(),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestBitMatrixSwapColumnsInvolution checks that swapping the same two
// columns twice restores the original matrix contents.
func TestBitMatrixSwapColumnsInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("double column swap is identity", prop.ForAll(
		func(rows []uint8, a, c uint8) bool {
			m, err := NewBitMatrix(len(rows), 8)
			if err != nil {
				return true
			}
			for i, r := range rows {
				m.SetRow(i, Block(r))
			}
			before := m.Clone()
			ai, ci := int(a%8), int(c%8)
			m.SwapColumns(ai, ci)
			m.SwapColumns(ai, ci)
			for i := range rows {
				if m.Row(i) != before.Row(i) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
