// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeClosure_CondorcetCycle(t *testing.T) {
	majorities := BuildMajorities(RankBallots(condorcetBallots(), 3), 3)
	c := ComputeClosure(3, majorities)

	require.Len(t, c.Accepted, 2)
	require.Len(t, c.Skipped, 1)
	assert.Equal(t, Edge{Majority: majorities[0], Rank: 0}, c.Accepted[0])
	assert.Equal(t, Edge{Majority: majorities[1], Rank: 1}, c.Accepted[1])
	assert.Equal(t, Edge{Majority: majorities[2], Rank: 2}, c.Skipped[0])
	assert.Equal(t, 2, c.Skipped[0].Winner)
	assert.Equal(t, 0, c.Skipped[0].Loser)

	assert.Equal(t, []float64{3, 2, 1}, c.Scores())
	assert.Equal(t, []int{0, 1, 2}, c.Path(0, 2))
	assert.Nil(t, c.Path(2, 0))
}

func TestComputeClosure_Trivial(t *testing.T) {
	c := ComputeClosure(1, nil)
	assert.Equal(t, []float64{1}, c.Scores())
	assert.Equal(t, []int{0}, c.Path(0, 0))

	c = ComputeClosure(2, nil)
	assert.Equal(t, []float64{1, 1}, c.Scores())
	assert.Empty(t, c.Accepted)
	assert.Empty(t, c.Skipped)

	c = ComputeClosure(0, nil)
	assert.Empty(t, c.Scores())
}

func TestComputeClosure_RedundantMajorityIsAccepted(t *testing.T) {
	majorities := []Majority{
		{For: 5, Against: 0, Winner: 0, Loser: 1},
		{For: 4, Against: 1, Winner: 1, Loser: 2},
		{For: 3, Against: 2, Winner: 0, Loser: 2},
	}
	c := ComputeClosure(3, majorities)
	assert.Len(t, c.Accepted, 3)
	assert.Empty(t, c.Skipped)
	assert.Equal(t, []float64{3, 2, 1}, c.Scores())
	assert.Equal(t, []int{0, 1, 2}, c.Path(0, 2))
}

func TestComputeClosure_LongChainIsIterative(t *testing.T) {
	const n = 400
	majorities := make([]Majority, 0, n-1)
	for i := n - 2; i >= 0; i-- {
		majorities = append(majorities, Majority{For: 1, Winner: i, Loser: i + 1})
	}
	// closing edge from the tail back to the head must be refused
	majorities = append(majorities, Majority{For: 1, Winner: n - 1, Loser: 0})

	c := ComputeClosure(n, majorities)
	assert.Len(t, c.Accepted, n-1)
	assert.Len(t, c.Skipped, 1)
	assert.Equal(t, n, c.Reachable(0))
	assert.Equal(t, 1, c.Reachable(n-1))
	assert.Len(t, c.Path(0, n-1), n)
}

// naiveClosure is Floyd-Warshall over the accepted edges.
func naiveClosure(n int, edges []Edge) [][]bool {
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
		reach[i][i] = true
	}
	for _, e := range edges {
		reach[e.Winner][e.Loser] = true
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if reach[i][k] && reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}
	return reach
}

func TestComputeClosure_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.IntN(7)
		majorities := BuildMajorities(RankBallots(randomBallots(rng, 1+rng.IntN(12), n), n), n)
		c := ComputeClosure(n, majorities)

		require.Equal(t, len(majorities), len(c.Accepted)+len(c.Skipped))

		t.Run("matches transitive closure of accepted edges", func(t *testing.T) {
			want := naiveClosure(n, c.Accepted)
			for x := 0; x < n; x++ {
				for y := 0; y < n; y++ {
					assert.Equal(t, want[x][y], c.Reaches(x, y), "reach[%d][%d]", x, y)
				}
			}
		})

		t.Run("accepted edges form no cycle", func(t *testing.T) {
			for _, e := range c.Accepted {
				assert.False(t, c.Reaches(e.Loser, e.Winner), "accepted %v closes a cycle", e.Majority)
			}
		})

		t.Run("skipped edges would have closed a cycle", func(t *testing.T) {
			for _, e := range c.Skipped {
				before := ComputeClosure(n, majorities[:e.Rank])
				assert.True(t, before.Reaches(e.Loser, e.Winner))
			}
		})

		t.Run("reachability only grows", func(t *testing.T) {
			prev := ComputeClosure(n, nil)
			for k := 1; k <= len(majorities); k++ {
				next := ComputeClosure(n, majorities[:k])
				for x := 0; x < n; x++ {
					for y := 0; y < n; y++ {
						if prev.Reaches(x, y) {
							assert.True(t, next.Reaches(x, y))
						}
					}
				}
				prev = next
			}
		})

		t.Run("scores count self", func(t *testing.T) {
			for _, s := range c.Scores() {
				assert.GreaterOrEqual(t, s, 1.0)
			}
		})

		t.Run("witness paths follow accepted edges", func(t *testing.T) {
			accepted := make(map[[2]int]bool)
			for _, e := range c.Accepted {
				accepted[[2]int{e.Winner, e.Loser}] = true
			}
			for x := 0; x < n; x++ {
				for y := 0; y < n; y++ {
					path := c.Path(x, y)
					if !c.Reaches(x, y) {
						assert.Nil(t, path)
						continue
					}
					require.NotEmpty(t, path)
					assert.Equal(t, x, path[0])
					assert.Equal(t, y, path[len(path)-1])
					for i := 1; i < len(path); i++ {
						assert.True(t, accepted[[2]int{path[i-1], path[i]}], "step %d->%d", path[i-1], path[i])
					}
				}
			}
		})
	}
}
