//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life-frames/internal/core"
	"life-frames/internal/render"
)

var changePalette = []color.RGBA{
	Steady: {},
	Born:   {R: 64, G: 200, B: 96, A: 160},
	Died:   {R: 223, G: 64, B: 64, A: 160},
}

// Overlay tints the cells that were born or died in the last step.
type Overlay struct {
	scale int
	show  bool

	prev  *core.Grid
	codes []uint8
	img   *ebiten.Image
	buf   []byte
}

// NewOverlay constructs a hidden overlay.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale}
}

// Update toggles visibility with the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Capture remembers g as the generation before the next step.
func (o *Overlay) Capture(g *core.Grid) {
	if g == nil {
		return
	}
	if o.prev == nil || o.prev.W != g.W || o.prev.H != g.H {
		prev, err := core.NewGrid(g.W, g.H, core.Clipped)
		if err != nil {
			return
		}
		o.prev = prev
	}
	o.prev.CopyFrom(g)
}

// Draw tints the transitions between the captured grid and cur.
func (o *Overlay) Draw(screen *ebiten.Image, cur *core.Grid) {
	if !o.show || o.prev == nil || cur == nil {
		return
	}
	total := cur.W * cur.H
	if o.img == nil || o.img.Bounds().Dx() != cur.W || o.img.Bounds().Dy() != cur.H {
		o.img = ebiten.NewImage(cur.W, cur.H)
		o.buf = make([]byte, 4*total)
	}
	o.codes = Changes(o.codes, o.prev, cur)
	render.FillPaletteRGBA(o.buf, o.codes, changePalette)
	o.img.ReplacePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
