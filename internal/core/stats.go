package core

// Counts tallies cell transitions during one or more steps.
type Counts struct {
	Births int
	Deaths int
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{Births: c.Births + o.Births, Deaths: c.Deaths + o.Deaths}
}

// Net is the population change implied by the counts.
func (c Counts) Net() int { return c.Births - c.Deaths }

// StepStats records the outcome of one generation.
type StepStats struct {
	Generation int
	Population int
	Births     int
	Deaths     int
}

// Diff counts 0->1 and 1->0 transitions between two grids of equal size.
func Diff(prev, cur *Grid) Counts {
	var c Counts
	if prev == nil || cur == nil || prev.W != cur.W || prev.H != cur.H {
		return c
	}
	for y := 0; y < cur.H; y++ {
		a, b := prev.Row(y), cur.Row(y)
		for x := range b {
			switch {
			case a[x] == 0 && b[x] != 0:
				c.Births++
			case a[x] != 0 && b[x] == 0:
				c.Deaths++
			}
		}
	}
	return c
}
