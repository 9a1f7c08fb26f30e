package kernel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"life-frames/internal/core"
)

// Band is a half-open range of rows handed to one worker.
type Band struct {
	Y0, Y1 int
}

// Bands splits h rows into at most n contiguous bands of near-equal height.
func Bands(h, n int) []Band {
	if n > h {
		n = h
	}
	if n < 1 {
		n = 1
	}
	out := make([]Band, 0, n)
	base, extra := h/n, h%n
	y := 0
	for i := 0; i < n; i++ {
		rows := base
		if i < extra {
			rows++
		}
		out = append(out, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return out
}

// Executor runs a kernel over a whole grid, fanning rows out to workers and
// joining before it returns.
type Executor struct {
	Kernel  Kernel
	Workers int
}

// NewExecutor returns an Executor; workers <= 0 selects runtime.NumCPU().
func NewExecutor(k Kernel, workers int) *Executor {
	if k == nil {
		k = SWAR{}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Executor{Kernel: k, Workers: workers}
}

// Step writes the generation following cur into next and returns the total
// births and deaths. Mismatched or aliased buffers are a programming error
// and panic with an error wrapping core.ErrDimension.
func (e *Executor) Step(cur, next *core.Grid) core.Counts {
	if cur == nil || next == nil || !cur.SameShape(next) {
		panic(fmt.Errorf("%w: step buffers differ in shape", core.ErrDimension))
	}
	if cur == next || &cur.Cells()[0] == &next.Cells()[0] {
		panic(fmt.Errorf("%w: step buffers alias each other", core.ErrDimension))
	}

	bands := Bands(cur.H, e.Workers)
	if len(bands) == 1 {
		return e.Kernel.StepRows(cur, next, 0, cur.H)
	}

	counts := make([]core.Counts, len(bands))
	var eg errgroup.Group
	for i, b := range bands {
		eg.Go(func() error {
			counts[i] = e.Kernel.StepRows(cur, next, b.Y0, b.Y1)
			return nil
		})
	}
	_ = eg.Wait()

	var total core.Counts
	for _, c := range counts {
		total = total.Add(c)
	}
	return total
}
