// Package video assembles a frame sequence into a Motion-JPEG AVI file.
package video

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"log"

	"github.com/icza/mjpeg"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
	"life-frames/internal/render"
	"life-frames/internal/sim"
)

// Options control the encoded video.
type Options struct {
	FPS     int
	Scale   int
	Quality int
	On, Off color.Color
	Logger  *log.Logger
}

// DefaultOptions returns 60 fps, 1 pixel per cell and high JPEG quality.
func DefaultOptions() Options {
	return Options{FPS: 60, Scale: 1, Quality: 90, On: render.On, Off: render.Off}
}

// AssembleDir encodes every file in dir ending in ext, in name order.
func AssembleDir(dir, ext, out string, opts Options) (int, error) {
	frames, err := sim.ListFrames(dir, ext)
	if err != nil {
		return 0, err
	}
	if len(frames) == 0 {
		return 0, fmt.Errorf("%w: no %s frames in %s", core.ErrFileOpen, ext, dir)
	}
	return Assemble(frames, out, opts)
}

// Assemble encodes frames into out and returns the number of frames written.
// All frames must share the dimensions of the first.
func Assemble(frames []string, out string, opts Options) (n int, err error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("no frames to assemble")
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 90
	}
	if opts.On == nil {
		opts.On = render.On
	}
	if opts.Off == nil {
		opts.Off = render.Off
	}

	first, err := pbm.ReadFile(frames[0], core.Clipped)
	if err != nil {
		return 0, err
	}
	w, h := first.W*opts.Scale, first.H*opts.Scale
	aw, err := mjpeg.New(out, int32(w), int32(h), int32(opts.FPS))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}
	defer func() {
		if cerr := aw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %v", core.ErrFileOpen, out, cerr)
		}
	}()

	var buf bytes.Buffer
	jopts := &jpeg.Options{Quality: opts.Quality}
	g := first
	for i, path := range frames {
		if i > 0 {
			if g, err = pbm.ReadFile(path, core.Clipped); err != nil {
				return n, err
			}
			if g.W != first.W || g.H != first.H {
				return n, fmt.Errorf("%w: %s is %dx%d, first frame is %dx%d",
					core.ErrDimension, path, g.W, g.H, first.W, first.H)
			}
		}
		buf.Reset()
		img := render.Scale(render.Image(g, opts.On, opts.Off), opts.Scale)
		if err := jpeg.Encode(&buf, img, jopts); err != nil {
			return n, fmt.Errorf("encoding %s: %w", path, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return n, fmt.Errorf("adding %s: %w", path, err)
		}
		n++
		if opts.Logger != nil && n%100 == 0 {
			opts.Logger.Printf("encoded %d/%d frames", n, len(frames))
		}
	}
	return n, nil
}
