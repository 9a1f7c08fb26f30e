// Package kernel computes Game of Life generations.
//
// A Kernel fills a band of rows of the next grid from the current grid. Every
// cell depends only on the current grid, so bands are independent and the
// Executor runs them concurrently. Kernels never retain either grid after
// StepRows returns.
package kernel

import (
	"fmt"
	"sort"
	"strings"

	"life-frames/internal/core"
)

// Kernel computes rows [y0, y1) of next from cur and reports the transitions
// it wrote. cur and next share dimensions and boundary policy.
type Kernel interface {
	Name() string
	StepRows(cur, next *core.Grid, y0, y1 int) core.Counts
}

// lifeRule maps (current state, live neighbour count) to the next state:
// births on 3, survival on 2 or 3.
var lifeRule = [2][9]uint8{
	{0, 0, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 1, 1, 0, 0, 0, 0, 0},
}

var kernels = map[string]Kernel{}

// Register adds a kernel under the provided name. Names are case-insensitive.
func Register(name string, k Kernel) {
	if name == "" || k == nil {
		return
	}
	kernels[strings.ToLower(name)] = k
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Kernel, error) {
	k, ok := kernels[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown kernel %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return k, nil
}

// Names lists the registered kernels in sorted order.
func Names() []string {
	out := make([]string, 0, len(kernels))
	for name := range kernels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register("scalar", Scalar{})
	Register("swar", SWAR{})
}
