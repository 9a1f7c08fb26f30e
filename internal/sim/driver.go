// Package sim orchestrates simulation runs: loading the initial bitmap,
// stepping generations and emitting one frame per generation.
package sim

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
)

// State is a stage of the driver's run.
type State int

const (
	StateLoading State = iota
	StateReady
	StateStepping
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateStepping:
		return "stepping"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StageError identifies the stage, and frame when relevant, at which a run aborted.
type StageError struct {
	Stage State
	Frame int
	Err   error
}

func (e *StageError) Error() string {
	if e.Stage == StateLoading {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s (frame %d): %v", e.Stage, e.Frame, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrAlreadyRun is returned when Run is called on a driver that has left
// the loading state. Restarting means building a new driver.
var ErrAlreadyRun = errors.New("driver already ran")

// Summary describes a completed run.
type Summary struct {
	Width, Height int
	Generations   int
	Frames        int
	Population    int
	Totals        core.Counts
	// History holds one entry per generation, including generation 0, when
	// Config.Stats is set.
	History []core.StepStats
	Elapsed time.Duration
}

// Driver runs Loading -> Ready -> Stepping -> Done, aborting on the first
// error. Frames written before an abort are left in place.
type Driver struct {
	cfg    Config
	sink   FrameSink
	logger *log.Logger
	state  State
}

// NewDriver constructs a driver. A nil sink writes numbered files into
// cfg.OutputDir; a nil logger disables logging.
func NewDriver(cfg Config, sink FrameSink, logger *log.Logger) *Driver {
	if sink == nil {
		sink = NewDirSink(cfg)
	}
	return &Driver{cfg: cfg, sink: sink, logger: logger}
}

// State reports the stage the driver is in.
func (d *Driver) State() State { return d.state }

// Run loads cfg.Input and simulates it.
func (d *Driver) Run() (*Summary, error) {
	if d.state != StateLoading {
		return nil, ErrAlreadyRun
	}
	if err := d.cfg.Validate(); err != nil {
		return nil, d.abort(0, err)
	}
	b, _ := core.ParseBoundary(d.cfg.Boundary)
	g, err := pbm.ReadFile(d.cfg.Input, b)
	if err != nil {
		return nil, d.abort(0, err)
	}
	d.logf("loaded %s: width = %d, height = %d", d.cfg.Input, g.W, g.H)
	return d.simulate(g)
}

// RunGrid simulates an in-memory initial grid instead of reading cfg.Input.
// The driver takes ownership of g.
func (d *Driver) RunGrid(g *core.Grid) (*Summary, error) {
	if d.state != StateLoading {
		return nil, ErrAlreadyRun
	}
	if err := d.cfg.Validate(); err != nil {
		return nil, d.abort(0, err)
	}
	if g == nil {
		return nil, d.abort(0, fmt.Errorf("%w: nil initial grid", core.ErrDimension))
	}
	return d.simulate(g)
}

func (d *Driver) simulate(g *core.Grid) (*Summary, error) {
	start := time.Now()
	exec, err := d.cfg.Executor()
	if err != nil {
		return nil, d.abort(0, err)
	}

	d.state = StateReady
	if err := d.sink.WriteFrame(0, g); err != nil {
		return nil, d.abort(0, err)
	}
	sess, err := NewSession(g, exec)
	if err != nil {
		return nil, d.abort(0, err)
	}
	defer sess.Release()

	sum := &Summary{Width: g.W, Height: g.H, Generations: d.cfg.Generations, Frames: 1}
	if d.cfg.Stats {
		sum.History = make([]core.StepStats, 0, d.cfg.Generations+1)
		sum.History = append(sum.History, sess.Stats())
	}

	d.state = StateStepping
	n := d.cfg.Generations
	pending := false
	for i := 1; i <= n; i++ {
		var emit errgroup.Group
		if pending {
			cur, idx := sess.Current(), i-1
			emit.Go(func() error { return d.sink.WriteFrame(idx, cur) })
		}
		counts, _ := sess.Step()
		if err := emit.Wait(); err != nil {
			return nil, d.abort(i-1, err)
		}
		if pending {
			sum.Frames++
		}

		sum.Totals = sum.Totals.Add(counts)
		if d.cfg.Stats {
			sum.History = append(sum.History, sess.Stats())
			d.logf("generation %d: births %d, deaths %d, population %d", i, counts.Births, counts.Deaths, sess.Population())
		}

		if d.cfg.Overlap {
			pending = true
			continue
		}
		if err := d.sink.WriteFrame(i, sess.Current()); err != nil {
			return nil, d.abort(i, err)
		}
		sum.Frames++
	}
	if pending {
		if err := d.sink.WriteFrame(n, sess.Current()); err != nil {
			return nil, d.abort(n, err)
		}
		sum.Frames++
	}

	sum.Population = sess.Population()
	sum.Elapsed = time.Since(start)
	d.state = StateDone
	d.logf("%d generations on %s/%s in %s (births %d, deaths %d)",
		n, d.cfg.Kernel, d.cfg.Boundary, sum.Elapsed.Round(time.Millisecond), sum.Totals.Births, sum.Totals.Deaths)
	return sum, nil
}

func (d *Driver) abort(frame int, err error) error {
	stage := d.state
	d.state = StateAborted
	return &StageError{Stage: stage, Frame: frame, Err: err}
}

func (d *Driver) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}
