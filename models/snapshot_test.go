// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/tally"
)

func TestDecodeSnapshot_YAML(t *testing.T) {
	doc := `
id: lunch
question: Where to?
kind: approval
options: [Pizza, Sushi]
ballots:
  - voter: ann
    weights: [true, false]
  - voter: bob
    weights: [~, on]
`
	s, err := DecodeSnapshot(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "lunch", s.ID)
	assert.Equal(t, "Where to?", s.Question)
	assert.Equal(t, []string{"Pizza", "Sushi"}, s.Options)
	require.Len(t, s.Ballots, 2)

	poll, err := s.Poll()
	require.NoError(t, err)
	assert.Equal(t, tally.KindApproval, poll.Kind)
	assert.Equal(t, tally.Ballot{
		Voter:   "bob",
		Weights: []tally.Weight{tally.Abstain, tally.Approve(true)},
	}, poll.Ballots[1])
}

func TestDecodeSnapshot_JSON(t *testing.T) {
	doc := `{"options": ["A", "B"], "ballots": [{"voter": "x", "weights": [2, null]}]}`
	s, err := DecodeSnapshot(strings.NewReader(doc))
	require.NoError(t, err)

	poll, err := s.Poll()
	require.NoError(t, err)
	assert.Equal(t, tally.KindMulti, poll.Kind)
	assert.Equal(t, []tally.Weight{tally.Score(2), tally.Abstain}, poll.Ballots[0].Weights)
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(""))
	assert.Error(t, err)

	_, err = DecodeSnapshot(strings.NewReader("options: [A]\nballots:\n  - weights: [maybe]\n"))
	assert.Error(t, err)

	s := PollSnapshot{Kind: "secret", Options: []string{"A"}}
	_, err = s.Poll()
	assert.ErrorIs(t, err, tally.ErrUnknownKind)
}

func TestNewOptionResults(t *testing.T) {
	placements := []tally.Placement{
		{Index: 1, Option: "B", Score: 2, Votes: []tally.Vote{{Voter: "x", Weight: tally.Score(4)}}},
		{Index: 0, Option: "A", Score: 1},
	}
	results := NewOptionResults(placements)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, "B", results[0].Option)
	assert.Equal(t, []VoteView{{Voter: "x", Weight: Weight(tally.Score(4))}}, results[0].Votes)
	assert.Empty(t, results[1].Votes)
}

func TestNewMethodsResponse(t *testing.T) {
	resp := NewMethodsResponse()
	assert.Len(t, resp.Methods, 12)
	require.Len(t, resp.Kinds, 2)
	assert.Equal(t, "approval", resp.Kinds[0].Name)
	assert.Equal(t, []string{"approval"}, resp.Kinds[0].Supported)
	assert.Equal(t, "mean_score_infinity", resp.Kinds[1].Default)
}
