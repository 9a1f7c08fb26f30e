package core

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbour lookups outside the grid are resolved.
type Boundary uint8

const (
	// Clipped treats out-of-range neighbours as dead via range checks.
	Clipped Boundary = iota
	// Padded stores a permanently dead one-cell border around the grid so
	// kernels can read neighbours without range checks.
	Padded
)

func (b Boundary) String() string {
	switch b {
	case Clipped:
		return "clipped"
	case Padded:
		return "padded"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary maps a policy name onto a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clipped", "clip":
		return Clipped, nil
	case "padded", "pad", "zero-padded":
		return Padded, nil
	}
	return Clipped, fmt.Errorf("unknown boundary policy %q", s)
}

// Grid stores a binary cell field in row-major order. In padded mode the
// backing slice carries a one-cell dead border that no method ever writes.
type Grid struct {
	W, H int

	boundary Boundary
	stride   int
	offset   int
	data     []uint8
}

// MaxCells caps the backing slice of a single grid, border included. Larger
// requests fail with ErrAllocation before anything is allocated, so a
// header claiming absurd dimensions cannot exhaust memory.
const MaxCells = 1 << 30

// NewGrid allocates a zero-filled grid with the given logical dimensions.
func NewGrid(w, h int, b Boundary) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimension, w, h)
	}
	if b != Clipped && b != Padded {
		return nil, fmt.Errorf("%w: unknown boundary %v", ErrDimension, b)
	}
	// Bounding each side first keeps the border and the product from overflowing.
	if w > MaxCells || h > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, w, h, MaxCells)
	}
	pw, ph, offset := w, h, 0
	if b == Padded {
		pw, ph, offset = w+2, h+2, 1
	}
	if pw > MaxCells/ph {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, pw, ph, MaxCells)
	}

	data := make([]uint8, pw*ph)
	return &Grid{W: w, H: h, boundary: b, stride: pw, offset: offset, data: data}, nil
}

// Boundary reports the policy the grid was allocated with.
func (g *Grid) Boundary() Boundary { return g.boundary }

// Size returns the logical dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Stride is the physical row length of the backing slice.
func (g *Grid) Stride() int { return g.stride }

// Offset is 1 for padded grids and 0 otherwise.
func (g *Grid) Offset() int { return g.offset }

// Cells exposes the physical backing slice, border included.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the physical index of logical cell (x, y).
func (g *Grid) Index(x, y int) int { return (y+g.offset)*g.stride + x + g.offset }

// Row returns the W logical cells of row y, aliasing the backing slice.
func (g *Grid) Row(y int) []uint8 {
	start := g.Index(0, y)
	return g.data[start : start+g.W : start+g.W]
}

// InBounds reports whether (x, y) addresses a logical cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y), or 0 when the coordinates are outside the grid.
func (g *Grid) Get(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores 1 for any non-zero v and 0 otherwise. Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	if v != 0 {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for y := 0; y < g.H; y++ {
		for _, c := range g.Row(y) {
			n += int(c)
		}
	}
	return n
}

// SameShape reports whether two grids share dimensions and boundary policy.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.W == o.W && g.H == o.H && g.boundary == o.boundary
}

// Equal compares logical cells only, so a padded and a clipped grid holding
// the same pattern are equal.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for y := 0; y < g.H; y++ {
		a, b := g.Row(y), o.Row(y)
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}

// Clear kills every logical cell.
func (g *Grid) Clear() {
	for y := 0; y < g.H; y++ {
		clear(g.Row(y))
	}
}

// CopyFrom copies the logical cells of src, which must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrDimension, src.W, src.H, g.W, g.H)
	}
	for y := 0; y < g.H; y++ {
		copy(g.Row(y), src.Row(y))
	}
	return nil
}

// Logical appends the logical cells in row-major order to dst.
func (g *Grid) Logical(dst []uint8) []uint8 {
	for y := 0; y < g.H; y++ {
		dst = append(dst, g.Row(y)...)
	}
	return dst
}

// String renders the grid with 'O' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for _, c := range g.Row(y) {
			if c != 0 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
