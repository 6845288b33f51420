package gf2

import (
	"github.com/bits-and-blooms/bitset"
)

// BitVector is an arbitrary-length GF(2) vector, backed by bitset.BitSet
// instead of a hand-rolled []uint64 so that it inherits a tested,
// word-packed Set/Test/NextSet/Count implementation. Grounded on
// mrhs.c's _bv (create_bv, random_bv, find_nonzero, is_non_zero_bv, or_bv).
type BitVector struct {
	n    int
	bits *bitset.BitSet
}

// NewBitVector returns a zeroed vector of length n.
func NewBitVector(n int) *BitVector {
	if n < 0 {
		panic("gf2: negative bit vector length")
	}
	return &BitVector{n: n, bits: bitset.New(uint(n))}
}

// Len returns the vector's length.
func (v *BitVector) Len() int { return v.n }

// Get reports the bit at position i.
func (v *BitVector) Get(i int) bool { return v.bits.Test(uint(i)) }

// Set assigns the bit at position i.
func (v *BitVector) Set(i int, val bool) { v.bits.SetTo(uint(i), val) }

// Clone returns an independent copy.
func (v *BitVector) Clone() *BitVector {
	return &BitVector{n: v.n, bits: v.bits.Clone()}
}

// IsNonZero reports whether any bit is set.
func (v *BitVector) IsNonZero() bool { return v.bits.Any() }

// PopCount returns the number of set bits.
func (v *BitVector) PopCount() int { return int(v.bits.Count()) }

// FindNonzero returns the smallest set index >= start, or -1 if none.
func (v *BitVector) FindNonzero(start int) int {
	if start < 0 {
		start = 0
	}
	idx, ok := v.bits.NextSet(uint(start))
	if !ok {
		return -1
	}
	return int(idx)
}

// Or performs an in-place union: v |= other. Used to merge active-row
// masks across blocks in remove_empty.
func (v *BitVector) Or(other *BitVector) {
	v.bits.InPlaceUnion(other.bits)
}

// Xor performs an in-place symmetric difference: v ^= other. Implemented
// by toggling every bit other has set, rather than relying on a
// XOR-specific bitset method, since GF(2) addition is exactly that
// toggle regardless of the backing library's exact surface.
func (v *BitVector) Xor(other *BitVector) {
	for i, ok := other.bits.NextSet(0); ok; i, ok = other.bits.NextSet(i + 1) {
		v.bits.SetTo(i, !v.bits.Test(i))
	}
}

// Equal reports whether v and other have the same length and hold the
// same bits; vectors of different lengths are never equal.
func (v *BitVector) Equal(other *BitVector) bool {
	return v.bits.Equal(other.bits)
}
