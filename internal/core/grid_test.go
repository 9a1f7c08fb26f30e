package core

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		g, err := NewGrid(dims[0], dims[1], Padded)
		if g != nil {
			t.Fatalf("NewGrid(%d,%d) returned a grid", dims[0], dims[1])
		}
		if !errors.Is(err, ErrDimension) {
			t.Fatalf("NewGrid(%d,%d) err = %v, want ErrDimension", dims[0], dims[1], err)
		}
	}
}

func TestNewGridOverflowIsAllocationError(t *testing.T) {
	for _, tc := range []struct {
		w, h int
		b    Boundary
	}{
		{1 << 40, 1 << 40, Clipped},
		{math.MaxInt, 2, Padded},
		{2, math.MaxInt, Padded},
		{math.MaxInt - 1, math.MaxInt - 1, Padded},
		{4000000, 4000000, Padded},
		{MaxCells, 2, Clipped},
	} {
		g, err := NewGrid(tc.w, tc.h, tc.b)
		if g != nil {
			t.Fatalf("NewGrid(%d,%d,%v) returned a grid with stride %d", tc.w, tc.h, tc.b, g.Stride())
		}
		if !errors.Is(err, ErrAllocation) {
			t.Fatalf("NewGrid(%d,%d,%v) err = %v, want ErrAllocation", tc.w, tc.h, tc.b, err)
		}
	}
}

func TestNewGridCountsBorderAgainstLimit(t *testing.T) {
	// The logical cells fit, the border pushes the backing slice over.
	if _, err := NewGrid(MaxCells/4-1, 2, Padded); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
}

func TestPaddedLayout(t *testing.T) {
	g, err := NewGrid(3, 2, Padded)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(g.Cells()); got != 5*4 {
		t.Fatalf("padded backing length %d, want 20", got)
	}
	if g.Stride() != 5 || g.Offset() != 1 {
		t.Fatalf("stride/offset = %d/%d, want 5/1", g.Stride(), g.Offset())
	}
	if got := g.Index(0, 0); got != 6 {
		t.Fatalf("Index(0,0) = %d, want 6", got)
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, 1)
		}
	}
	// Writes outside the logical range must never reach the border.
	g.Set(-1, 0, 1)
	g.Set(3, 1, 1)
	g.Set(0, 2, 1)

	cells := g.Cells()
	for py := 0; py < 4; py++ {
		for px := 0; px < 5; px++ {
			border := px == 0 || py == 0 || px == 4 || py == 3
			v := cells[py*5+px]
			if border && v != 0 {
				t.Fatalf("border cell (%d,%d) = %d", px, py, v)
			}
			if !border && v != 1 {
				t.Fatalf("interior cell (%d,%d) = %d", px, py, v)
			}
		}
	}
}

func TestGetSet(t *testing.T) {
	for _, b := range []Boundary{Clipped, Padded} {
		g, err := NewGrid(4, 3, b)
		if err != nil {
			t.Fatal(err)
		}
		g.Set(1, 2, 7)
		if got := g.Get(1, 2); got != 1 {
			t.Fatalf("%v: Get after Set(7) = %d, want 1", b, got)
		}
		g.Set(1, 2, 0)
		if got := g.Get(1, 2); got != 0 {
			t.Fatalf("%v: Get after Set(0) = %d", b, got)
		}
		for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
			if got := g.Get(p[0], p[1]); got != 0 {
				t.Fatalf("%v: out-of-range Get(%d,%d) = %d", b, p[0], p[1], got)
			}
		}
	}
}

func TestEqualIgnoresBoundary(t *testing.T) {
	a, _ := NewGrid(5, 4, Clipped)
	b, _ := NewGrid(5, 4, Padded)
	for _, p := range [][2]int{{0, 0}, {4, 3}, {2, 1}} {
		a.Set(p[0], p[1], 1)
		b.Set(p[0], p[1], 1)
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("grids with identical cells should be equal")
	}
	b.Set(3, 3, 1)
	if a.Equal(b) {
		t.Fatal("grids differing in one cell should not be equal")
	}
	if a.Population() != 3 || b.Population() != 4 {
		t.Fatalf("populations %d/%d, want 3/4", a.Population(), b.Population())
	}
}

func TestCopyFromAndLogical(t *testing.T) {
	src, _ := NewGrid(3, 2, Clipped)
	src.Set(0, 0, 1)
	src.Set(2, 1, 1)
	dst, _ := NewGrid(3, 2, Padded)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	want := []uint8{1, 0, 0, 0, 0, 1}
	if got := dst.Logical(nil); !slices.Equal(got, want) {
		t.Fatalf("Logical = %v, want %v", got, want)
	}

	other, _ := NewGrid(2, 3, Padded)
	if err := other.CopyFrom(src); !errors.Is(err, ErrDimension) {
		t.Fatalf("CopyFrom mismatched dims err = %v", err)
	}

	dst.Clear()
	if dst.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
}

func TestParseBoundary(t *testing.T) {
	cases := map[string]Boundary{"clipped": Clipped, "Padded": Padded, " pad ": Padded}
	for in, want := range cases {
		got, err := ParseBoundary(in)
		if err != nil || got != want {
			t.Fatalf("ParseBoundary(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseBoundary("torus"); err == nil {
		t.Fatal("expected error for unsupported policy")
	}
}

func TestDiff(t *testing.T) {
	prev, _ := NewGrid(3, 3, Clipped)
	cur, _ := NewGrid(3, 3, Padded)
	prev.Set(0, 0, 1)
	prev.Set(1, 1, 1)
	cur.Set(1, 1, 1)
	cur.Set(2, 2, 1)
	cur.Set(2, 1, 1)
	got := Diff(prev, cur)
	if got.Births != 2 || got.Deaths != 1 || got.Net() != 1 {
		t.Fatalf("Diff = %+v", got)
	}
}
