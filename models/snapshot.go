// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-tally/tally"
)

// DecodeSnapshot reads a snapshot written as YAML or JSON.
func DecodeSnapshot(r io.Reader) (PollSnapshot, error) {
	var s PollSnapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return PollSnapshot{}, errors.New("empty snapshot")
		}
		return PollSnapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}

// Poll converts the snapshot into the tally engine's input.
func (s PollSnapshot) Poll() (tally.Poll, error) {
	kind, err := tally.ParseKind(s.Kind)
	if err != nil {
		return tally.Poll{}, err
	}

	ballots := make([]tally.Ballot, len(s.Ballots))
	for i, b := range s.Ballots {
		weights := make([]tally.Weight, len(b.Weights))
		for j, w := range b.Weights {
			weights[j] = tally.Weight(w)
		}
		ballots[i] = tally.Ballot{Voter: b.Voter, Weights: weights}
	}

	return tally.Poll{Kind: kind, Options: s.Options, Ballots: ballots}, nil
}

// NewOptionResults converts ordered placements into response rows.
func NewOptionResults(placements []tally.Placement) []OptionResult {
	results := make([]OptionResult, len(placements))
	for i, p := range placements {
		votes := make([]VoteView, len(p.Votes))
		for j, v := range p.Votes {
			votes[j] = VoteView{Voter: v.Voter, Weight: Weight(v.Weight)}
		}
		results[i] = OptionResult{
			Rank:   i + 1,
			Index:  p.Index,
			Option: p.Option,
			Score:  p.Score,
			Votes:  votes,
		}
	}
	return results
}

// NewMethodsResponse describes every method and poll kind.
func NewMethodsResponse() MethodsResponse {
	var resp MethodsResponse
	for _, m := range tally.Methods() {
		resp.Methods = append(resp.Methods, MethodInfo{
			Name:       string(m),
			Label:      m.Label(),
			Visualizes: m.Visualizes(),
		})
	}
	for _, k := range tally.Kinds() {
		info := KindInfo{Name: string(k), Default: string(k.Default())}
		for _, m := range k.Supported() {
			info.Supported = append(info.Supported, string(m))
		}
		resp.Kinds = append(resp.Kinds, info)
	}
	return resp
}
