package bitboard

import (
	"testing"
)

func TestPrecompute(t *testing.T) {
	c := Precompute(11, 9)
	if n := len(c.Mask.Cells(nil)); n != 99 {
		t.Error("c.mask(11x9):", n)
	}
	if !c.Mask.Has(98) || c.Mask.Has(99) {
		t.Errorf("c.mask(11x9): %x", c.Mask)
	}

	c = Precompute(8, 8)
	if c.Mask[0] != ^uint64(0) || c.Mask[1] != 0 {
		t.Errorf("c.mask(8x8): %x", c.Mask)
	}
}

func TestPrecomputeTooLarge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Precompute(12, 11)
}

func TestSet(t *testing.T) {
	var s Set
	for _, i := range []int{0, 5, 63, 64, 98, 127} {
		s = s.With(i)
	}
	if !s.Has(64) || s.Has(65) {
		t.Errorf("has: %x", s)
	}
	var drop Set
	s = s.AndNot(drop.With(64))
	if s.Has(64) {
		t.Errorf("andnot: %x", s)
	}
	got := s.Cells(nil)
	want := []int{0, 5, 63, 98, 127}
	if len(got) != len(want) {
		t.Fatalf("cells=%v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cells=%v want %v", got, want)
		}
	}
	if len(s.AndNot(s).Cells(nil)) != 0 {
		t.Error("andnot self")
	}
}
