// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"slices"
)

// Method names a tally method.
type Method string

const (
	Approval    Method = "approval"
	Borda       Method = "borda"
	RankedPairs Method = "ranked_pairs"

	SumScore    Method = "sum_score"
	MeanScore   Method = "mean_score"
	MedianScore Method = "median_score"

	SumScoreInfinity    Method = "sum_score_infinity"
	MeanScoreInfinity   Method = "mean_score_infinity"
	MedianScoreInfinity Method = "median_score_infinity"

	SumScoreManhattan    Method = "sum_score_manhattan"
	MeanScoreManhattan   Method = "mean_score_manhattan"
	MedianScoreManhattan Method = "median_score_manhattan"
)

// system is one entry of the method table.
type system struct {
	label  string
	scores func(optionCount int, ballots []Ballot, cfg Config) []float64
	// closure is set for methods that can explain their result as a graph.
	closure func(optionCount int, ballots []Ballot) *Closure
}

func scoreSystem(label string, p Norm, c Combinator) system {
	return system{
		label: label,
		scores: func(optionCount int, ballots []Ballot, cfg Config) []float64 {
			return cardinalScores(optionCount, ballots, p, c, cfg.MaxScore)
		},
	}
}

// systems is fixed at compile time and never mutated.
var systems = map[Method]system{
	Approval:    {label: "Approval", scores: approvalScores},
	Borda:       {label: "Borda Count", scores: bordaScores},
	RankedPairs: {label: "Ranked Pairs", scores: rankedPairsScores, closure: rankedPairsClosure},

	SumScore:    scoreSystem("Sum Score", L2, Sum),
	MeanScore:   scoreSystem("Mean Score", L2, Mean),
	MedianScore: scoreSystem("Median Score", L2, Median),

	SumScoreInfinity:    scoreSystem("Sum Score (L∞)", LInf, Sum),
	MeanScoreInfinity:   scoreSystem("Mean Score (L∞)", LInf, Mean),
	MedianScoreInfinity: scoreSystem("Median Score (L∞)", LInf, Median),

	SumScoreManhattan:    scoreSystem("Sum Score (L1)", L1, Sum),
	MeanScoreManhattan:   scoreSystem("Mean Score (L1)", L1, Mean),
	MedianScoreManhattan: scoreSystem("Median Score (L1)", L1, Median),
}

// Methods lists every registered method, sorted by name.
func Methods() []Method {
	methods := make([]Method, 0, len(systems))
	for m := range systems {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// ParseMethod resolves a method name.
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	if _, ok := systems[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m, nil
}

// Label is the human readable name, or the raw name for unknown methods.
func (m Method) Label() string {
	if s, ok := systems[m]; ok {
		return s.label
	}
	return string(m)
}

// Visualizes reports whether the method can explain its result as a graph.
func (m Method) Visualizes() bool {
	return systems[m].closure != nil
}

// GenerateScores computes one score per option. With no ballots every
// option scores 0.
func (m Method) GenerateScores(optionCount int, ballots []Ballot, cfg Config) ([]float64, error) {
	s, ok := systems[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
	if len(ballots) == 0 {
		return make([]float64, optionCount), nil
	}
	return s.scores(optionCount, ballots, cfg.withDefaults()), nil
}

func approvalScores(optionCount int, ballots []Ballot, _ Config) []float64 {
	scores := make([]float64, optionCount)
	for _, b := range ballots {
		for i := range scores {
			if b.slot(i).Truthy() {
				scores[i]++
			}
		}
	}
	return scores
}

func bordaScores(optionCount int, ballots []Ballot, _ Config) []float64 {
	scores := make([]float64, optionCount)
	for _, r := range RankBallots(ballots, optionCount) {
		for i, w := range r.Scores {
			if w.Valid {
				scores[i] += w.Value
			}
		}
	}
	return scores
}

func rankedPairsClosure(optionCount int, ballots []Ballot) *Closure {
	majorities := BuildMajorities(RankBallots(ballots, optionCount), optionCount)
	return ComputeClosure(optionCount, majorities)
}

func rankedPairsScores(optionCount int, ballots []Ballot, _ Config) []float64 {
	return rankedPairsClosure(optionCount, ballots).Scores()
}

// Kind is a poll profile: the methods a poll accepts and the one used when
// the caller does not pick.
type Kind string

const (
	KindApproval Kind = "approval"
	KindMulti    Kind = "multi"
)

var kinds = map[Kind]struct {
	supported []Method
	def       Method
}{
	KindApproval: {supported: []Method{Approval}, def: Approval},
	KindMulti: {
		supported: []Method{
			Approval, Borda, RankedPairs,
			SumScore, MedianScore, MeanScore,
			MeanScoreInfinity, MedianScoreInfinity, SumScoreInfinity,
			MedianScoreManhattan, SumScoreManhattan, MeanScoreManhattan,
		},
		def: MeanScoreInfinity,
	},
}

// Kinds lists the poll profiles.
func Kinds() []Kind {
	return []Kind{KindApproval, KindMulti}
}

// ParseKind resolves a poll kind; the empty string means KindMulti.
func ParseKind(name string) (Kind, error) {
	if name == "" {
		return KindMulti, nil
	}
	k := Kind(name)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Supported returns the methods a poll of this kind accepts.
func (k Kind) Supported() []Method {
	return slices.Clone(kinds[k].supported)
}

// Default returns the method used when none is requested.
func (k Kind) Default() Method {
	return kinds[k].def
}

// Supports reports whether m is in the kind's supported set.
func (k Kind) Supports(m Method) bool {
	return slices.Contains(kinds[k].supported, m)
}

// Resolve picks the method for a tally: the default when name is empty,
// otherwise the named method if this kind supports it.
func (k Kind) Resolve(name string) (Method, error) {
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	if name == "" {
		return k.Default(), nil
	}
	m, err := ParseMethod(name)
	if err != nil {
		return "", err
	}
	if !k.Supports(m) {
		return "", fmt.Errorf("%w: %s polls do not support %q", ErrUnsupportedMethod, k, name)
	}
	return m, nil
}
