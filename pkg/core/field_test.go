package core

import (
	"slices"
	"testing"
)

func TestFieldRowMajorLayout(t *testing.T) {
	f := NewField(4, 3)
	f.Set(1, 2, 7)
	if got := f.Cells()[2*4+1]; got != 7 {
		t.Fatalf("expected row-major storage, got %v at index 9", got)
	}
	if f.Index(3, 1) != 7 {
		t.Fatalf("Index(3,1) = %d, expected 7", f.Index(3, 1))
	}
	if !f.In(3, 2) || f.In(4, 0) || f.In(0, -1) {
		t.Fatal("In reports wrong bounds")
	}
}

func TestFieldWindowCopies(t *testing.T) {
	f := NewField(4, 4)
	for i := range f.Cells() {
		f.Cells()[i] = float64(i)
	}
	win := f.Window(1, 3, 2, 4)
	if !slices.Equal(win, []float64{9, 10, 13, 14}) {
		t.Fatalf("unexpected window %v", win)
	}
	win[0] = -1
	if f.At(1, 2) != 9 {
		t.Fatal("Window must return a copy")
	}
	if f.Window(2, 2, 0, 4) != nil {
		t.Fatal("empty window should be nil")
	}
}

func TestFieldCloneEqual(t *testing.T) {
	f := NewFilledField(3, 2, 1.5)
	c := f.Clone()
	if !f.Equal(c) {
		t.Fatal("clone should equal source")
	}
	c.Set(0, 0, 2)
	if f.Equal(c) {
		t.Fatal("mutating the clone must not affect the source")
	}
	f.Clear()
	for _, v := range f.Cells() {
		if v != 0 {
			t.Fatal("Clear left non-zero samples")
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 16; i++ {
		if a.IntRange(0, 100) != b.IntRange(0, 100) {
			t.Fatal("same seed produced different ints")
		}
		x := a.FloatRange(1, 2)
		if x != b.FloatRange(1, 2) {
			t.Fatal("same seed produced different floats")
		}
		if x < 1 || x >= 2 {
			t.Fatalf("FloatRange out of bounds: %v", x)
		}
	}
	if a.IntRange(5, 3) != 5 {
		t.Fatal("IntRange with hi < lo should return lo")
	}
}
