package gf2

import "testing"

func TestBitVectorGetSet(t *testing.T) {
	v := NewBitVector(10)
	v.Set(3, true)
	v.Set(7, true)
	for i := 0; i < 10; i++ {
		want := i == 3 || i == 7
		if got := v.Get(i); got != want {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestBitVectorFindNonzero(t *testing.T) {
	v := NewBitVector(20)
	if idx := v.FindNonzero(0); idx != -1 {
		t.Fatalf("FindNonzero on zero vector = %d, want -1", idx)
	}
	v.Set(5, true)
	v.Set(12, true)
	if idx := v.FindNonzero(0); idx != 5 {
		t.Fatalf("FindNonzero(0) = %d, want 5", idx)
	}
	if idx := v.FindNonzero(6); idx != 12 {
		t.Fatalf("FindNonzero(6) = %d, want 12", idx)
	}
	if idx := v.FindNonzero(13); idx != -1 {
		t.Fatalf("FindNonzero(13) = %d, want -1", idx)
	}
}

func TestBitVectorOrXor(t *testing.T) {
	a := NewBitVector(8)
	a.Set(1, true)
	b := NewBitVector(8)
	b.Set(1, true)
	b.Set(2, true)

	union := a.Clone()
	union.Or(b)
	if !union.Get(1) || !union.Get(2) {
		t.Fatal("Or should set both bits")
	}

	xor := a.Clone()
	xor.Xor(b)
	if xor.Get(1) {
		t.Fatal("Xor should clear the shared bit")
	}
	if !xor.Get(2) {
		t.Fatal("Xor should keep the non-shared bit")
	}
}

func TestBitVectorIsNonZeroPopCount(t *testing.T) {
	v := NewBitVector(5)
	if v.IsNonZero() {
		t.Fatal("fresh vector should be zero")
	}
	v.Set(0, true)
	v.Set(4, true)
	if !v.IsNonZero() {
		t.Fatal("expected non-zero")
	}
	if pc := v.PopCount(); pc != 2 {
		t.Fatalf("PopCount() = %d, want 2", pc)
	}
}
