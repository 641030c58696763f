// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"cmp"
	"fmt"
	"slices"
)

// Majority is a pairwise contest won by Winner over Loser. For is always
// greater than Against; tied contests never produce a Majority.
type Majority struct {
	For     int `json:"votes_for"`
	Against int `json:"votes_against"`
	// Wins is the winner's total pairwise preferences over every option.
	Wins   int `json:"wins"`
	Winner int `json:"winner"`
	Loser  int `json:"loser"`
}

// Margin is the net number of voters preferring the winner.
func (m Majority) Margin() int {
	return m.For - m.Against
}

func (m Majority) String() string {
	return fmt.Sprintf("%d>%d (%d-%d)", m.Winner, m.Loser, m.For, m.Against)
}

// compareMajorities orders stronger majorities first: more votes for, then
// fewer votes against, then more total wins, then lower winner index, then
// lower loser index.
func compareMajorities(a, b Majority) int {
	if c := cmp.Compare(b.For, a.For); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Against, b.Against); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Winner, b.Winner); c != 0 {
		return c
	}
	return cmp.Compare(a.Loser, b.Loser)
}

// CompareRankings counts, for each ordered pair (i, j), how many voters rank
// i strictly above j. Pairs where either option is unranked, or both share a
// rank, count for neither side.
func CompareRankings(rankings []Ranking, optionCount int) [][]int {
	comparisons := make([][]int, optionCount)
	for i := range comparisons {
		comparisons[i] = make([]int, optionCount)
	}

	for _, r := range rankings {
		for i := 0; i < optionCount; i++ {
			for j := i + 1; j < optionCount; j++ {
				above, ok := r.Prefers(i, j)
				if !ok {
					continue
				}
				if above {
					comparisons[i][j]++
				} else if below, _ := r.Prefers(j, i); below {
					comparisons[j][i]++
				}
			}
		}
	}
	return comparisons
}

// Majorities reduces a comparison matrix to its sorted majorities.
func Majorities(comparisons [][]int) []Majority {
	n := len(comparisons)
	wins := make([]int, n)
	for k := range comparisons {
		for _, c := range comparisons[k] {
			wins[k] += c
		}
	}

	var majorities []Majority
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			forI, forJ := comparisons[i][j], comparisons[j][i]
			switch {
			case forI > forJ:
				majorities = append(majorities, Majority{For: forI, Against: forJ, Wins: wins[i], Winner: i, Loser: j})
			case forJ > forI:
				majorities = append(majorities, Majority{For: forJ, Against: forI, Wins: wins[j], Winner: j, Loser: i})
			}
		}
	}

	slices.SortFunc(majorities, compareMajorities)
	return majorities
}

// BuildMajorities compares every ranking pairwise and returns the sorted
// majorities.
func BuildMajorities(rankings []Ranking, optionCount int) []Majority {
	return Majorities(CompareRankings(rankings, optionCount))
}
