package kernel

import "life-frames/internal/core"

// Scalar evaluates one cell at a time. It is the reference every other
// kernel must match bit for bit.
type Scalar struct{}

// Name returns the kernel identifier.
func (Scalar) Name() string { return "scalar" }

// StepRows advances rows [y0, y1).
func (Scalar) StepRows(cur, next *core.Grid, y0, y1 int) core.Counts {
	if cur.Boundary() == core.Padded {
		return paddedRows(cur, next, y0, y1)
	}
	return clippedRows(cur, next, y0, y1)
}

func clippedRows(cur, next *core.Grid, y0, y1 int) core.Counts {
	var births, deaths int
	src, dst := cur.Cells(), next.Cells()
	w, h := cur.W, cur.H
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			c := src[i]
			v := lifeRule[c][clippedSum(src, w, h, x, y)]
			dst[i] = v
			if v != c {
				if v != 0 {
					births++
				} else {
					deaths++
				}
			}
		}
	}
	return core.Counts{Births: births, Deaths: deaths}
}

// clippedSum counts live neighbours of (x, y) in an unpadded w*h slice,
// skipping coordinates outside the grid.
func clippedSum(src []uint8, w, h, x, y int) uint8 {
	var n uint8
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			n += src[row+nx]
		}
	}
	return n
}

func paddedRows(cur, next *core.Grid, y0, y1 int) core.Counts {
	var births, deaths int
	src, dst := cur.Cells(), next.Cells()
	s := cur.Stride()
	for y := y0; y < y1; y++ {
		start := cur.Index(0, y)
		for i := start; i < start+cur.W; i++ {
			c := src[i]
			v := lifeRule[c][paddedSum(src, s, i)]
			dst[i] = v
			if v != c {
				if v != 0 {
					births++
				} else {
					deaths++
				}
			}
		}
	}
	return core.Counts{Births: births, Deaths: deaths}
}

// paddedSum counts live neighbours of physical index i. The dead border
// guarantees all eight reads are in range.
func paddedSum(src []uint8, s, i int) uint8 {
	return src[i-s-1] + src[i-s] + src[i-s+1] +
		src[i-1] + src[i+1] +
		src[i+s-1] + src[i+s] + src[i+s+1]
}
