package core

import "fmt"

// Pair holds the two buffers of a double-buffered simulation. Current is
// read-only for a step and Next is write-only; Rotate swaps the roles.
type Pair struct {
	cur, nxt *Grid
}

// NewPair adopts initial as the current buffer and allocates a zero-filled
// secondary buffer with the same dimensions and boundary policy.
func NewPair(initial *Grid) (*Pair, error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: nil initial grid", ErrDimension)
	}
	nxt, err := NewGrid(initial.W, initial.H, initial.Boundary())
	if err != nil {
		return nil, err
	}
	return &Pair{cur: initial, nxt: nxt}, nil
}

// Current returns the read side.
func (p *Pair) Current() *Grid { return p.cur }

// Next returns the write side.
func (p *Pair) Next() *Grid { return p.nxt }

// Rotate makes the buffer just written the new read side.
func (p *Pair) Rotate() { p.cur, p.nxt = p.nxt, p.cur }

// Release drops both buffers so they can be collected.
func (p *Pair) Release() { p.cur, p.nxt = nil, nil }
