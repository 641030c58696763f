// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"math"
	"slices"
)

// Norm selects the vector norm used to put each voter's scores on a common
// scale. Values other than L0 and LInf are treated as p of an Lp norm.
type Norm float64

const (
	// L0 counts nonzero weights. No registered method uses it.
	L0 Norm = 0
	// L1 is the sum of absolute values.
	L1 Norm = 1
	// L2 is the Euclidean norm.
	L2 Norm = 2
)

// LInf is the maximum absolute value.
var LInf = Norm(math.Inf(1))

func (p Norm) String() string {
	switch {
	case math.IsInf(float64(p), 1):
		return "L∞"
	case p == L0:
		return "L0"
	default:
		return "L" + Score(float64(p)).String()
	}
}

// magnitude computes the norm over present weights only.
func (p Norm) magnitude(weights []Weight) float64 {
	var norm float64
	for _, w := range weights {
		if !w.Valid {
			continue
		}
		abs := math.Abs(w.Value)
		switch {
		case math.IsInf(float64(p), 1):
			norm = math.Max(norm, abs)
		case p == L0:
			if w.Value != 0 {
				norm++
			}
		default:
			norm += math.Pow(abs, float64(p))
		}
	}
	if !math.IsInf(float64(p), 1) && p != L0 {
		norm = math.Pow(norm, 1/float64(p))
	}
	return math.Abs(norm)
}

// NormalizeScores rescales one voter's present weights to
// len(weights) * w / norm. A zero norm maps every present weight to 0.
// Absent weights stay absent.
func NormalizeScores(weights []Weight, p Norm) []Weight {
	out := make([]Weight, len(weights))
	norm := p.magnitude(weights)
	scale := float64(len(weights))
	for i, w := range weights {
		switch {
		case !w.Valid:
		case norm == 0:
			out[i] = Score(0)
		default:
			out[i] = Score(scale * w.Value / norm)
		}
	}
	return out
}

// Combinator folds the normalized values different voters gave one option.
type Combinator int

const (
	Sum Combinator = iota
	Mean
	Median
)

func (c Combinator) String() string {
	switch c {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Median:
		return "median"
	default:
		return "unknown"
	}
}

// Combine applies c to values. An empty list combines to 0.
func Combine(values []float64, c Combinator) float64 {
	if len(values) == 0 {
		return 0
	}
	switch c {
	case Mean:
		return mean(values)
	case Median:
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		return percentile(sorted, 0.5)
	default:
		var total float64
		for _, v := range values {
			total += v
		}
		return total
	}
}

// RescaleScores maps scores onto integers no larger than maxScore by
// flooring score * maxScore / max(scores). When no score is positive the
// largest magnitude is used instead so ordering survives, and all-zero
// input stays zero.
func RescaleScores(scores []float64, maxScore int) []float64 {
	out := make([]float64, len(scores))
	var top, magnitude float64
	for i, s := range scores {
		if i == 0 || s > top {
			top = s
		}
		magnitude = math.Max(magnitude, math.Abs(s))
	}
	if top <= 0 {
		top = magnitude
	}
	if top == 0 {
		return out
	}
	for i, s := range scores {
		if s == top {
			out[i] = float64(maxScore)
			continue
		}
		out[i] = math.Floor(s * float64(maxScore) / top)
	}
	return out
}

// percentile calculates the p-th percentile of sorted data, interpolating
// linearly between the closest ranks. p is in [0, 1].
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// cardinalScores is the score-method pipeline: normalize every ballot under
// p, combine each option's present values with c, then rescale.
func cardinalScores(optionCount int, ballots []Ballot, p Norm, c Combinator, maxScore int) []float64 {
	perOption := make([][]float64, optionCount)
	for _, b := range ballots {
		for i, w := range NormalizeScores(fit(b.Weights, optionCount), p) {
			if w.Valid {
				perOption[i] = append(perOption[i], w.Value)
			}
		}
	}

	combined := make([]float64, optionCount)
	for i, values := range perOption {
		combined[i] = Combine(values, c)
	}
	return RescaleScores(combined, maxScore)
}
