package core

import "testing"

func TestPairRotateSwapsWithoutCopy(t *testing.T) {
	initial, _ := NewGrid(4, 4, Padded)
	initial.Set(1, 1, 1)

	p, err := NewPair(initial)
	if err != nil {
		t.Fatal(err)
	}
	if p.Current() != initial {
		t.Fatal("pair must adopt the initial grid as current")
	}
	next := p.Next()
	if !next.SameShape(initial) {
		t.Fatal("secondary buffer must match the initial shape")
	}
	if next.Population() != 0 {
		t.Fatal("secondary buffer must start zeroed")
	}

	p.Rotate()
	if p.Current() != next || p.Next() != initial {
		t.Fatal("Rotate must swap pointers")
	}
	p.Rotate()
	if p.Current() != initial {
		t.Fatal("two rotations must restore the original roles")
	}

	p.Release()
	if p.Current() != nil || p.Next() != nil {
		t.Fatal("Release must drop both buffers")
	}
}

func TestNewPairNil(t *testing.T) {
	if _, err := NewPair(nil); err == nil {
		t.Fatal("expected error for nil grid")
	}
}
