// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

// Edge is a majority as it was processed by the closure, with Rank being
// its zero-based position in the sorted majority list.
type Edge struct {
	Majority
	Rank int `json:"rank"`
}

// Closure is the transitive reachability built by locking majorities in
// strength order. A cell only ever goes from unreachable to reachable.
type Closure struct {
	n     int
	reach []bool
	// prev[x*n+y] is the option preceding y on a witness path from x.
	prev []int

	Accepted []Edge
	Skipped  []Edge
}

// ComputeClosure processes the pre-sorted majorities in order. A majority is
// skipped when its loser can already reach its winner, since locking it in
// would close a cycle against stronger majorities. Otherwise it is accepted
// and everything reaching the winner now reaches everything the loser does.
func ComputeClosure(optionCount int, majorities []Majority) *Closure {
	c := &Closure{
		n:     optionCount,
		reach: make([]bool, optionCount*optionCount),
		prev:  make([]int, optionCount*optionCount),
	}
	for i := range c.prev {
		c.prev[i] = -1
	}
	for i := 0; i < optionCount; i++ {
		c.reach[c.cell(i, i)] = true
	}

	for rank, m := range majorities {
		edge := Edge{Majority: m, Rank: rank}
		if c.Reaches(m.Loser, m.Winner) {
			c.Skipped = append(c.Skipped, edge)
			continue
		}
		c.Accepted = append(c.Accepted, edge)
		c.lock(m.Winner, m.Loser)
	}
	return c
}

// lock adds u -> v. The table is transitively closed before the call and
// v cannot reach u, so neither row v nor column u changes while rows are
// extended; a single pass over (x, w) reaches the fixed point.
func (c *Closure) lock(u, v int) {
	for x := 0; x < c.n; x++ {
		if !c.reach[c.cell(x, u)] || c.reach[c.cell(x, v)] {
			continue
		}
		for w := 0; w < c.n; w++ {
			if !c.reach[c.cell(v, w)] || c.reach[c.cell(x, w)] {
				continue
			}
			c.reach[c.cell(x, w)] = true
			if w == v {
				c.prev[c.cell(x, w)] = u
			} else {
				c.prev[c.cell(x, w)] = c.prev[c.cell(v, w)]
			}
		}
	}
}

func (c *Closure) cell(x, y int) int {
	return x*c.n + y
}

// Size is the number of options the closure was built for.
func (c *Closure) Size() int {
	return c.n
}

// Reaches reports whether x reaches y through accepted majorities.
func (c *Closure) Reaches(x, y int) bool {
	return c.reach[c.cell(x, y)]
}

// Reachable counts the options x reaches, itself included.
func (c *Closure) Reachable(x int) int {
	count := 0
	for y := 0; y < c.n; y++ {
		if c.reach[c.cell(x, y)] {
			count++
		}
	}
	return count
}

// Path returns a witness path of accepted majorities from x to y, starting
// with x and ending with y, or nil if y is unreachable.
func (c *Closure) Path(x, y int) []int {
	if !c.Reaches(x, y) {
		return nil
	}
	path := []int{y}
	for y != x {
		y = c.prev[c.cell(x, y)]
		path = append(path, y)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Scores returns Reachable for every option.
func (c *Closure) Scores() []float64 {
	scores := make([]float64, c.n)
	for x := range scores {
		scores[x] = float64(c.Reachable(x))
	}
	return scores
}
