// Package render turns grids into pixels for video frames and viewers.
package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"life-frames/internal/core"
)

// Default colours: live cells white on black.
var (
	On  color.Color = color.White
	Off color.Color = color.Black
)

// FillBinaryRGBA writes one RGBA pixel per cell into buf: on for live cells,
// off for dead ones.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	FillPaletteRGBA(buf, cells, []color.RGBA{toRGBA(off), toRGBA(on)})
}

// FillPaletteRGBA writes palette[code] for every cell code into buf. Codes
// past the end of the palette use its last entry; an empty palette clears
// the pixels to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[4*i : 4*i+4 : 4*i+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Image rasterises g at one pixel per cell.
func Image(g *core.Grid, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		FillBinaryRGBA(img.Pix[y*img.Stride:], g.Row(y), on, off)
	}
	return img
}

// Scale enlarges src by an integer factor with nearest-neighbour sampling so
// cell edges stay sharp.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
