// Package pattern seeds grids with random fills and well-known Life patterns.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"life-frames/internal/core"
)

// Pattern is a set of live cells relative to the top-left of its bounding box.
type Pattern struct {
	Name string
	W, H int
	live [][2]int
}

// Parse builds a pattern from rows where 'O', '*', '#' or '1' mark live cells
// and anything else is dead.
func Parse(name, rows string) Pattern {
	p := Pattern{Name: name}
	for y, line := range strings.Split(strings.Trim(rows, "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if len(line) > p.W {
			p.W = len(line)
		}
		for x, ch := range line {
			switch ch {
			case 'O', '*', '#', '1':
				p.live = append(p.live, [2]int{x, y})
			}
		}
		p.H = y + 1
	}
	return p
}

// Cells returns the live offsets of the pattern.
func (p Pattern) Cells() [][2]int { return p.live }

// Stamp writes the pattern's live cells with its top-left corner at (x, y).
// Cells falling outside g are dropped.
func (p Pattern) Stamp(g *core.Grid, x, y int) {
	for _, c := range p.live {
		g.Set(x+c[0], y+c[1], 1)
	}
}

// Centre stamps the pattern in the middle of g.
func (p Pattern) Centre(g *core.Grid) {
	p.Stamp(g, (g.W-p.W)/2, (g.H-p.H)/2)
}

var (
	// Blinker is the period-2 oscillator in its horizontal phase.
	Blinker = Parse("blinker", "OOO")
	// Glider travels one cell down and right every four generations.
	Glider = Parse("glider", `
.O.
..O
OOO`)
	// Block is the smallest still life.
	Block = Parse("block", `
OO
OO`)
	// RPentomino is a methuselah that stabilises after 1103 generations.
	RPentomino = Parse("r-pentomino", `
.OO
OO.
.O.`)
	// Acorn is a methuselah that runs for 5206 generations.
	Acorn = Parse("acorn", `
.O.....
...O...
OO..OOO`)
	// GosperGun emits a glider every 30 generations.
	GosperGun = Parse("gosper-gun", `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`)
)

var named = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Blinker, Glider, Block, RPentomino, Acorn, GosperGun} {
		named[p.Name] = p
	}
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, error) {
	p, ok := named[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
