// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "strconv"

// Weight is one slot of a ballot. The zero value means the voter gave no
// opinion on the option, which is different from an explicit zero or false.
type Weight struct {
	Value float64
	Valid bool
}

// Abstain is the "no opinion" weight.
var Abstain = Weight{}

// Score returns a present weight holding v.
func Score(v float64) Weight {
	return Weight{Value: v, Valid: true}
}

// Approve returns a present weight of 1 for true and 0 for false.
func Approve(b bool) Weight {
	if b {
		return Weight{Value: 1, Valid: true}
	}
	return Weight{Value: 0, Valid: true}
}

// Truthy reports whether the weight counts as approval.
func (w Weight) Truthy() bool {
	return w.Valid && w.Value != 0
}

// MarshalJSON encodes absent weights as null and present ones as numbers.
func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, w.Value, 'g', -1, 64), nil
}

func (w Weight) String() string {
	if !w.Valid {
		return "-"
	}
	return strconv.FormatFloat(w.Value, 'g', -1, 64)
}

// Ballot is one voter's weights, indexed by option position.
type Ballot struct {
	Voter   string
	Weights []Weight
}

// slot returns the weight for option i, treating missing slots as absent.
func (b Ballot) slot(i int) Weight {
	if i < len(b.Weights) {
		return b.Weights[i]
	}
	return Abstain
}

// fit returns exactly optionCount weights. Slots past the option count are
// dropped so ballots cast before an option list shrank, or after it grew,
// still tally.
func fit(weights []Weight, optionCount int) []Weight {
	out := make([]Weight, optionCount)
	copy(out, weights)
	return out
}
