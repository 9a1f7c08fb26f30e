// Package app hosts the interactive front-ends: live sessions and frame
// playback shown in an ebiten window.
package app

import (
	"flag"
	"fmt"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
	"life-frames/internal/sim"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Input    string
	Frames   string
	Ext      string
	Boundary string
	Kernel   string
	Workers  int
	Scale    int
	TPS      int
	HUD      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := sim.DefaultConfig()
	return &Config{
		Input:    d.Input,
		Ext:      d.Ext,
		Boundary: d.Boundary,
		Kernel:   d.Kernel,
		Scale:    3,
		TPS:      10,
		HUD:      160,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "initial PBM bitmap for a live session")
	fs.StringVar(&c.Frames, "frames", c.Frames, "directory of frames to play back instead of simulating")
	fs.StringVar(&c.Ext, "ext", c.Ext, "frame file extension for playback")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary policy: padded or clipped")
	fs.StringVar(&c.Kernel, "kernel", c.Kernel, "step kernel")
	fs.IntVar(&c.Workers, "workers", c.Workers, "kernel workers (0 = NumCPU)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "stats panel width in pixels (0 hides it)")
}

// Open builds the simulation the configuration describes: a playback of
// Frames when set, otherwise a live session seeded from Input.
func (c *Config) Open() (core.Sim, error) {
	if c.Frames != "" {
		return sim.NewPlayback(c.Frames, c.Ext)
	}
	b, err := core.ParseBoundary(c.Boundary)
	if err != nil {
		return nil, err
	}
	g, err := pbm.ReadFile(c.Input, b)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.Input, err)
	}
	rc := sim.DefaultConfig()
	rc.Kernel, rc.Workers = c.Kernel, c.Workers
	exec, err := rc.Executor()
	if err != nil {
		return nil, err
	}
	return sim.NewSession(g, exec)
}
