// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scores(t *testing.T, m Method, optionCount int, ballots []Ballot) []float64 {
	t.Helper()
	got, err := m.GenerateScores(optionCount, ballots, Config{})
	require.NoError(t, err)
	require.Len(t, got, optionCount)
	return got
}

func TestApprovalScores(t *testing.T) {
	ballots := []Ballot{
		{Voter: "a", Weights: ws(true, false, true)},
		{Voter: "b", Weights: ws(true, true, false)},
		{Voter: "c", Weights: ws(false, true, true)},
	}
	assert.Equal(t, []float64{2, 2, 2}, scores(t, Approval, 3, ballots))

	ballots = append(ballots, Ballot{Voter: "d", Weights: ws(nil, true, true, true)})
	assert.Equal(t, []float64{2, 3, 3}, scores(t, Approval, 3, ballots), "weights past the option list are ignored")
}

func TestBordaScores(t *testing.T) {
	ballots := []Ballot{
		{Voter: "a", Weights: ws(2, 1)},
		{Voter: "b", Weights: ws(1, 2)},
	}
	assert.Equal(t, []float64{3, 3}, scores(t, Borda, 2, ballots))

	ballots = []Ballot{
		{Voter: "a", Weights: ws(5, 5, 3, nil)},
		{Voter: "b", Weights: ws(nil, 1, 2, 3)},
	}
	assert.Equal(t, []float64{3, 4, 3, 3}, scores(t, Borda, 4, ballots))
}

func TestRankedPairsScores(t *testing.T) {
	tied := []Ballot{
		{Voter: "a", Weights: ws(2, 1)},
		{Voter: "b", Weights: ws(1, 2)},
	}
	assert.Equal(t, []float64{1, 1}, scores(t, RankedPairs, 2, tied))

	assert.Equal(t, []float64{3, 2, 1}, scores(t, RankedPairs, 3, condorcetBallots()))

	single := []Ballot{{Voter: "a", Weights: ws(4)}}
	assert.Equal(t, []float64{1}, scores(t, RankedPairs, 1, single))
}

func TestScoreMethods(t *testing.T) {
	ballots := []Ballot{
		{Voter: "a", Weights: ws(10, 5, nil)},
		{Voter: "b", Weights: ws(2, 4, 4)},
	}
	tests := []struct {
		method Method
		want   []float64
	}{
		{MeanScoreInfinity, []float64{75, 75, 100}},
		{SumScoreInfinity, []float64{100, 100, 66}},
		{MedianScoreInfinity, []float64{75, 75, 100}},
		{SumScoreManhattan, []float64{100, 84, 46}},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.want, scores(t, tt.method, 3, ballots))
		})
	}
}

func TestScoreMethods_ExactIntegers(t *testing.T) {
	ballots := []Ballot{{Voter: "a", Weights: ws(100, 57)}}
	assert.Equal(t, []float64{100, 57}, scores(t, SumScoreInfinity, 2, ballots))
}

func TestScoreMethods_AbsentIsNotZero(t *testing.T) {
	// b never scored option 2, so its mean comes from a alone
	ballots := []Ballot{
		{Voter: "a", Weights: ws(1, 1, 1)},
		{Voter: "b", Weights: ws(2, 1, nil)},
	}
	got := scores(t, MeanScoreInfinity, 3, ballots)
	// a: [3, 3, 3]; b: [3, 1.5, _] -> means 3, 2.25, 3
	assert.Equal(t, []float64{100, 75, 100}, got)
}

func TestGenerateScores_NoBallots(t *testing.T) {
	for _, m := range Methods() {
		t.Run(string(m), func(t *testing.T) {
			assert.Equal(t, []float64{0, 0, 0}, scores(t, m, 3, nil))
		})
	}
}

func TestGenerateScores_UnknownMethod(t *testing.T) {
	_, err := Method("plurality").GenerateScores(2, nil, Config{})
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestMethods(t *testing.T) {
	methods := Methods()
	assert.Len(t, methods, 12)
	assert.True(t, slices.IsSorted(methods))
	for _, m := range methods {
		assert.NotEqual(t, string(m), m.Label(), "%s has no label", m)
		parsed, err := ParseMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.True(t, RankedPairs.Visualizes())
	assert.False(t, Borda.Visualizes())
	assert.Equal(t, "Mean Score (L∞)", MeanScoreInfinity.Label())
}

func TestKind_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		method  string
		want    Method
		wantErr error
	}{
		{"approval default", KindApproval, "", Approval, nil},
		{"multi default", KindMulti, "", MeanScoreInfinity, nil},
		{"multi explicit", KindMulti, "ranked_pairs", RankedPairs, nil},
		{"approval rejects borda", KindApproval, "borda", "", ErrUnsupportedMethod},
		{"unknown method", KindMulti, "plurality", "", ErrUnknownMethod},
		{"unknown kind", Kind("weird"), "", "", ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kind.Resolve(tt.method)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindMulti, k)

	k, err = ParseKind("approval")
	require.NoError(t, err)
	assert.Equal(t, KindApproval, k)

	_, err = ParseKind("ranked")
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.Len(t, KindMulti.Supported(), 12)
	assert.Equal(t, []Method{Approval}, KindApproval.Supported())
}
