package pattern

import (
	"math/rand/v2"

	"life-frames/internal/core"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Fill sets each logical cell alive with the given probability and kills the rest.
func (r *RNG) Fill(g *core.Grid, density float64) {
	for y := 0; y < g.H; y++ {
		row := g.Row(y)
		for x := range row {
			row[x] = 0
			if r.r.Float64() < density {
				row[x] = 1
			}
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
