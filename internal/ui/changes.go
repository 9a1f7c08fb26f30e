package ui

import "life-frames/internal/core"

// Per-cell transition codes, usable as palette indices.
const (
	Steady uint8 = iota
	Born
	Died
)

// Changes classifies every logical cell of cur against prev, appending one
// code per cell in row-major order to dst[:0]. Grids of different sizes
// yield all Steady.
func Changes(dst []uint8, prev, cur *core.Grid) []uint8 {
	dst = dst[:0]
	if prev == nil || cur == nil {
		return dst
	}
	if prev.W != cur.W || prev.H != cur.H {
		return append(dst, make([]uint8, cur.W*cur.H)...)
	}
	for y := 0; y < cur.H; y++ {
		a, b := prev.Row(y), cur.Row(y)
		for x := range b {
			switch {
			case a[x] == 0 && b[x] != 0:
				dst = append(dst, Born)
			case a[x] != 0 && b[x] == 0:
				dst = append(dst, Died)
			default:
				dst = append(dst, Steady)
			}
		}
	}
	return dst
}
