package core

// Size describes the logical dimensions of a grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of logical cells.
func (s Size) Cells() int { return s.W * s.H }

// Sim is anything that produces a sequence of generations: a live session
// stepping a kernel, or a playback of frames already on disk.
type Sim interface {
	Name() string
	Size() Size
	Generation() int
	Current() *Grid
	Step() (Counts, error)
}
