package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
)

// ListFrames returns the files in dir ending in ext, sorted by name. With
// DirSink naming this is generation order.
func ListFrames(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// Playback replays a directory of frames as a core.Sim.
type Playback struct {
	frames   []string
	boundary core.Boundary
	idx      int
	cur      *core.Grid
}

// NewPlayback lists the frames in dir and loads the first one.
func NewPlayback(dir, ext string) (*Playback, error) {
	frames, err := ListFrames(dir, ext)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no %s frames in %s", core.ErrFileOpen, ext, dir)
	}
	p := &Playback{frames: frames, boundary: core.Clipped}
	if err := p.Rewind(); err != nil {
		return nil, err
	}
	return p, nil
}

// Name returns the simulation identifier.
func (p *Playback) Name() string { return "playback" }

// Size returns the frame dimensions.
func (p *Playback) Size() core.Size { return p.cur.Size() }

// Generation returns the index of the displayed frame.
func (p *Playback) Generation() int { return p.idx }

// Current returns the displayed frame.
func (p *Playback) Current() *core.Grid { return p.cur }

// Frames returns the number of frames available.
func (p *Playback) Frames() int { return len(p.frames) }

// Done reports whether the last frame is displayed.
func (p *Playback) Done() bool { return p.idx >= len(p.frames)-1 }

// Rewind reloads the first frame.
func (p *Playback) Rewind() error {
	g, err := pbm.ReadFile(p.frames[0], p.boundary)
	if err != nil {
		return err
	}
	p.idx, p.cur = 0, g
	return nil
}

// Step loads the next frame and reports the transitions from the previous
// one. At the last frame it is a no-op.
func (p *Playback) Step() (core.Counts, error) {
	if p.Done() {
		return core.Counts{}, nil
	}
	g, err := pbm.ReadFile(p.frames[p.idx+1], p.boundary)
	if err != nil {
		return core.Counts{}, err
	}
	if g.W != p.cur.W || g.H != p.cur.H {
		return core.Counts{}, fmt.Errorf("%w: %s is %dx%d, previous frames are %dx%d",
			core.ErrDimension, p.frames[p.idx+1], g.W, g.H, p.cur.W, p.cur.H)
	}
	c := core.Diff(p.cur, g)
	p.idx++
	p.cur = g
	return c, nil
}
