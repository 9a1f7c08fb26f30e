package sim

import (
	"life-frames/internal/core"
	"life-frames/internal/kernel"
)

// Session steps a grid in memory. It owns both buffers of the generation
// pair and lends them to the executor one step at a time.
type Session struct {
	pair *core.Pair
	exec *kernel.Executor

	gen  int
	pop  int
	last core.Counts
}

// NewSession adopts initial as generation 0 and allocates the second buffer.
func NewSession(initial *core.Grid, exec *kernel.Executor) (*Session, error) {
	pair, err := core.NewPair(initial)
	if err != nil {
		return nil, err
	}
	if exec == nil {
		exec = kernel.NewExecutor(nil, 0)
	}
	return &Session{pair: pair, exec: exec, pop: initial.Population()}, nil
}

// Name identifies the kernel driving the session.
func (s *Session) Name() string { return s.exec.Kernel.Name() }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.pair.Current().Size() }

// Generation returns the index of the current grid.
func (s *Session) Generation() int { return s.gen }

// Current returns the latest generation. Callers must treat it as read-only.
func (s *Session) Current() *core.Grid { return s.pair.Current() }

// Population returns the number of live cells in the current generation.
func (s *Session) Population() int { return s.pop }

// Last returns the transitions of the most recent step.
func (s *Session) Last() core.Counts { return s.last }

// Stats summarises the current generation.
func (s *Session) Stats() core.StepStats {
	return core.StepStats{Generation: s.gen, Population: s.pop, Births: s.last.Births, Deaths: s.last.Deaths}
}

// Step computes the next generation and makes it current. It never fails;
// the error result satisfies core.Sim.
func (s *Session) Step() (core.Counts, error) {
	c := s.exec.Step(s.pair.Current(), s.pair.Next())
	s.pair.Rotate()
	s.gen++
	s.pop += c.Net()
	s.last = c
	return c, nil
}

// Release drops both buffers. The session cannot be used afterwards.
func (s *Session) Release() { s.pair.Release() }
