package app

import "life-frames/internal/core"

// Controls holds the playback state shared by the ebiten and terminal
// front-ends. Input handling maps keys onto its methods.
type Controls struct {
	Sim   core.Sim
	Clock *core.FixedStep
	Last  core.Counts

	paused   bool
	tickOnce bool
}

// NewControls wraps sim with a clock running at tps generations per second.
func NewControls(sim core.Sim, tps int) *Controls {
	return &Controls{Sim: sim, Clock: core.NewFixedStep(tps)}
}

// Paused reports whether automatic stepping is suspended.
func (c *Controls) Paused() bool { return c.paused }

// TogglePause flips the paused state.
func (c *Controls) TogglePause() { c.paused = !c.paused }

// StepOnce advances exactly one generation on the next Tick, even when paused.
func (c *Controls) StepOnce() { c.tickOnce = true }

// Faster doubles the tick rate, up to 240.
func (c *Controls) Faster() {
	if tps := c.Clock.TPS() * 2; tps <= 240 {
		c.Clock.SetTPS(tps)
	}
}

// Slower halves the tick rate, down to 1.
func (c *Controls) Slower() {
	if tps := c.Clock.TPS() / 2; tps >= 1 {
		c.Clock.SetTPS(tps)
	}
}

// Rewind restarts a playback. Live sessions cannot rewind and ignore it.
func (c *Controls) Rewind() error {
	r, ok := c.Sim.(interface{ Rewind() error })
	if !ok {
		return nil
	}
	c.Last = core.Counts{}
	return r.Rewind()
}

// Done reports whether the simulation has nothing further to show.
func (c *Controls) Done() bool {
	d, ok := c.Sim.(interface{ Done() bool })
	return ok && d.Done()
}

// Tick advances the simulation when due and reports whether it stepped.
// before, when non-nil, sees the current grid ahead of the step.
func (c *Controls) Tick(before func(*core.Grid)) (bool, error) {
	due := c.Clock.ShouldStep()
	if c.Done() || (c.paused && !c.tickOnce) || (!c.tickOnce && !due) {
		c.tickOnce = false
		return false, nil
	}
	c.tickOnce = false
	if before != nil {
		before(c.Sim.Current())
	}
	counts, err := c.Sim.Step()
	if err != nil {
		return false, err
	}
	c.Last = counts
	return true, nil
}
