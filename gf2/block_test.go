package gf2

import "testing"

func TestFullMask(t *testing.T) {
	cases := []struct {
		ncols int
		want  Block
	}{
		{0, 0},
		{1, 1},
		{3, 0b111},
		{64, ^Block(0)},
	}
	for _, c := range cases {
		if got := FullMask(c.ncols); got != c.want {
			t.Errorf("FullMask(%d) = %#x, want %#x", c.ncols, got, c.want)
		}
	}
}

func TestBlockTestWith(t *testing.T) {
	var b Block
	b = b.With(3, true)
	if !b.Test(3) {
		t.Fatal("expected bit 3 set")
	}
	if b.Test(2) {
		t.Fatal("expected bit 2 clear")
	}
	b = b.With(3, false)
	if b != 0 {
		t.Fatalf("expected zero after clearing, got %#x", b)
	}
}

func TestBlockWeight(t *testing.T) {
	if w := Block(0b1011).Weight(); w != 3 {
		t.Fatalf("Weight() = %d, want 3", w)
	}
}

func TestBlockSwapped(t *testing.T) {
	b := Block(0b0010) // bit 1 set
	s := b.Swapped(1, 3)
	if s.Test(1) || !s.Test(3) {
		t.Fatalf("Swapped(1,3) on %#x = %#x, want bit 3 set only", b, s)
	}
	if s2 := b.Swapped(0, 0); s2 != b {
		t.Fatalf("Swapped with equal indices should be a no-op")
	}
}
