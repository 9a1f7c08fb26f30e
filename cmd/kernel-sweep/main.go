package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"life-frames/internal/core"
	"life-frames/internal/kernel"
	"life-frames/internal/sim"
	"life-frames/pkg/pattern"
)

type scenario struct {
	kernel   string
	boundary core.Boundary
	workers  int
}

func (s scenario) String() string {
	return fmt.Sprintf("%s/%s workers=%d", s.kernel, s.boundary, s.workers)
}

type scenarioResult struct {
	scenario   scenario
	elapsed    time.Duration
	population int
	final      *core.Grid
	err        error
}

// cellsPerSecond is the throughput of one scenario over the whole run.
func (r scenarioResult) cellsPerSecond(cells, steps int) float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(cells) * float64(steps) / r.elapsed.Seconds()
}

func main() {
	width := flag.Int("w", 1920, "grid width")
	height := flag.Int("h", 1080, "grid height")
	steps := flag.Int("steps", 100, "generations per scenario")
	density := flag.Float64("density", 0.35, "initial live fraction")
	seed := flag.Int64("seed", 1337, "seed for the initial grid")
	parallel := flag.Int("parallel", 1, "scenarios run at once (timings are only comparable at 1)")
	flag.Parse()

	workerOptions := []int{1, 2, 4, runtime.NumCPU()}
	sort.Ints(workerOptions)
	var sets []scenario
	for _, name := range kernel.Names() {
		for _, b := range []core.Boundary{core.Clipped, core.Padded} {
			last := 0
			for _, w := range workerOptions {
				if w == last {
					continue
				}
				last = w
				sets = append(sets, scenario{kernel: name, boundary: b, workers: w})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d steps, %d at once)\n", len(sets), *width, *height, *steps, *parallel)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*parallel, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *width, *height, *steps, *density, *seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.scenario, res.err)
		}
		all = append(all, res)
	}

	// Every scenario must land on the same final generation.
	ref := all[0]
	for _, res := range all[1:] {
		if !res.final.Equal(ref.final) {
			log.Fatalf("%s disagrees with %s after %d steps", res.scenario, ref.scenario, *steps)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].elapsed < all[j].elapsed })
	cells := *width * *height
	fmt.Printf("\nAll scenarios agree (final population %d). Fastest first:\n", ref.population)
	for i, res := range all {
		fmt.Printf("%2d) %-28s %10s  %8.1f Mcells/s\n",
			i+1, res.scenario, res.elapsed.Round(time.Microsecond), res.cellsPerSecond(cells, *steps)/1e6)
	}
}

func runScenario(sc scenario, w, h, steps int, density float64, seed int64) scenarioResult {
	res := scenarioResult{scenario: sc}
	g, err := core.NewGrid(w, h, sc.boundary)
	if err != nil {
		res.err = err
		return res
	}
	pattern.NewRNG(seed).Fill(g, density)

	k, err := kernel.Lookup(sc.kernel)
	if err != nil {
		res.err = err
		return res
	}
	sess, err := sim.NewSession(g, kernel.NewExecutor(k, sc.workers))
	if err != nil {
		res.err = err
		return res
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		sess.Step()
	}
	res.elapsed = time.Since(start)
	res.population = sess.Population()
	res.final = sess.Current()
	return res
}
