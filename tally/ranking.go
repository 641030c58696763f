// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"cmp"
	"slices"
)

// Ranking is a ballot turned into rank scores. Larger scores are more
// preferred; options without an opinion keep an absent score.
type Ranking struct {
	// Scores is aligned with the option list.
	Scores []Weight
	// Order lists option indexes from most to least preferred, abstentions last.
	Order []int
}

// NormalizeRanking converts raw weights into rank scores.
//
// With collapseTies, equal weights share a score using competition ranking:
// on the descending order a group of k tied options at position p all take
// rank p and the next group starts at p+k; the score is present+1-rank, so
// [5, 5, 3, _] becomes [3, 3, 1, _]. Without collapseTies every present
// option gets a distinct score by its position in the stable sort.
func NormalizeRanking(weights []Weight, optionCount int, collapseTies bool) Ranking {
	slots := fit(weights, optionCount)

	present := make([]int, 0, optionCount)
	absent := make([]int, 0)
	for i, w := range slots {
		if w.Valid {
			present = append(present, i)
		} else {
			absent = append(absent, i)
		}
	}

	slices.SortStableFunc(present, func(a, b int) int {
		return cmp.Compare(slots[b].Value, slots[a].Value)
	})

	scores := make([]Weight, optionCount)
	n := len(present)
	rank := 0
	for pos, i := range present {
		if !collapseTies {
			scores[i] = Score(float64(n - pos))
			continue
		}
		if pos == 0 || slots[i].Value != slots[present[pos-1]].Value {
			rank = pos + 1
		}
		scores[i] = Score(float64(n + 1 - rank))
	}

	return Ranking{
		Scores: scores,
		Order:  append(present, absent...),
	}
}

// Prefers reports whether the ranking puts option i strictly above option j.
// The second result is false when either option has no opinion.
func (r Ranking) Prefers(i, j int) (bool, bool) {
	a, b := r.Scores[i], r.Scores[j]
	if !a.Valid || !b.Valid {
		return false, false
	}
	return a.Value > b.Value, true
}

// RankBallots normalizes every ballot with tied weights collapsed.
func RankBallots(ballots []Ballot, optionCount int) []Ranking {
	rankings := make([]Ranking, len(ballots))
	for i, b := range ballots {
		rankings[i] = NormalizeRanking(b.Weights, optionCount, true)
	}
	return rankings
}
