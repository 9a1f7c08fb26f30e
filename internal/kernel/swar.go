package kernel

import (
	"encoding/binary"
	"math/bits"

	"life-frames/internal/core"
)

// SWAR evaluates eight cells per step by packing them into the byte lanes of
// a uint64. Neighbour sums never exceed 8, so lanes cannot carry into each
// other. Cells that do not fill a whole lane word use the scalar path.
type SWAR struct{}

const lsb = 0x0101010101010101

// Name returns the kernel identifier.
func (SWAR) Name() string { return "swar" }

// StepRows advances rows [y0, y1).
func (SWAR) StepRows(cur, next *core.Grid, y0, y1 int) core.Counts {
	if cur.Boundary() == core.Padded {
		return swarPadded(cur, next, y0, y1)
	}
	return swarClipped(cur, next, y0, y1)
}

func load(src []uint8, i int) uint64 { return binary.LittleEndian.Uint64(src[i : i+8]) }

// laneZero sets the low bit of every lane holding zero. Lanes must be < 16.
func laneZero(v uint64) uint64 { return ^(v | v>>1 | v>>2 | v>>3) & lsb }

// laneRule applies the life rule lanewise to 0/1 cells and their neighbour sums.
func laneRule(cell, sum uint64) uint64 {
	return laneZero(sum^(3*lsb)) | (cell & laneZero(sum^(2*lsb)))
}

// word steps the eight cells starting at physical index p, where a and b
// are the offsets of the rows above and below.
func word(src, dst []uint8, p, a, b int) (births, deaths int) {
	sum := load(src, p-a-1) + load(src, p-a) + load(src, p-a+1) +
		load(src, p-1) + load(src, p+1) +
		load(src, p+b-1) + load(src, p+b) + load(src, p+b+1)
	c := load(src, p)
	v := laneRule(c, sum)
	binary.LittleEndian.PutUint64(dst[p:p+8], v)
	return bits.OnesCount64(v &^ c), bits.OnesCount64(c &^ v)
}

func swarPadded(cur, next *core.Grid, y0, y1 int) core.Counts {
	var births, deaths int
	src, dst := cur.Cells(), next.Cells()
	s, w := cur.Stride(), cur.W
	for y := y0; y < y1; y++ {
		start := cur.Index(0, y)
		x := 0
		for ; x+8 <= w; x += 8 {
			b, d := word(src, dst, start+x, s, s)
			births += b
			deaths += d
		}
		for i := start + x; i < start+w; i++ {
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

func swarClipped(cur, next *core.Grid, y0, y1 int) core.Counts {
	var births, deaths int
	src, dst := cur.Cells(), next.Cells()
	w, h := cur.W, cur.H
	scalar := func(x, y int) {
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
	for y := y0; y < y1; y++ {
		x := 0
		if y > 0 && y < h-1 {
			// Interior rows: column 0 and the right edge stay scalar so
			// every vector load stays inside the row it reads.
			scalar(0, y)
			row := y * w
			for x = 1; x+9 <= w; x += 8 {
				b, d := word(src, dst, row+x, w, w)
				births += b
				deaths += d
			}
		}
		for ; x < w; x++ {
			scalar(x, y)
		}
	}
	return core.Counts{Births: births, Deaths: deaths}
}
