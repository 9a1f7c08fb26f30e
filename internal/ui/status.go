package ui

import (
	"fmt"

	"life-frames/internal/core"
)

// Status is the snapshot shown by the HUD panel and the terminal status line.
type Status struct {
	Name       string
	Generation int
	Population int
	Last       core.Counts
	TPS        int
	Paused     bool
	Done       bool
}

// Snapshot reads the displayed state of sim.
func Snapshot(sim core.Sim, last core.Counts, tps int, paused bool) Status {
	s := Status{
		Name:       sim.Name(),
		Generation: sim.Generation(),
		Last:       last,
		TPS:        tps,
		Paused:     paused,
	}
	if g := sim.Current(); g != nil {
		s.Population = g.Population()
	}
	if d, ok := sim.(interface{ Done() bool }); ok {
		s.Done = d.Done()
	}
	return s
}

func (s Status) state() string {
	switch {
	case s.Done:
		return "done"
	case s.Paused:
		return "paused"
	default:
		return "running"
	}
}

// Lines renders the status one field per line.
func (s Status) Lines() []string {
	return []string{
		s.Name,
		fmt.Sprintf("gen    %d", s.Generation),
		fmt.Sprintf("pop    %d", s.Population),
		fmt.Sprintf("births %d", s.Last.Births),
		fmt.Sprintf("deaths %d", s.Last.Deaths),
		fmt.Sprintf("tps    %d", s.TPS),
		s.state(),
	}
}

// Line renders the status on a single line.
func (s Status) Line() string {
	return fmt.Sprintf("%s  gen %d  pop %d  +%d -%d  %d tps  [%s]",
		s.Name, s.Generation, s.Population, s.Last.Births, s.Last.Deaths, s.TPS, s.state())
}
