// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/quickly-tally/tally"
)

// Snapshot types

// PollSnapshot is everything a tally needs: the option list and every
// current ballot. Weights are indexed by option position.
type PollSnapshot struct {
	ID       string           `json:"id,omitempty" yaml:"id,omitempty"`
	Question string           `json:"question,omitempty" yaml:"question,omitempty"`
	Kind     string           `json:"kind,omitempty" yaml:"kind,omitempty"`
	Options  []string         `json:"options" yaml:"options"`
	Ballots  []BallotSnapshot `json:"ballots" yaml:"ballots"`
}

type BallotSnapshot struct {
	Voter   string   `json:"voter" yaml:"voter"`
	Weights []Weight `json:"weights" yaml:"weights"`
}

// Response types

type TallyResponse struct {
	TallyID     string         `json:"tally_id"`
	PollID      string         `json:"poll_id,omitempty"`
	Question    string         `json:"question,omitempty"`
	Method      string         `json:"method"`
	MethodLabel string         `json:"method_label"`
	BallotCount int            `json:"ballot_count"`
	Results     []OptionResult `json:"results"`
}

type OptionResult struct {
	Rank   int        `json:"rank"` // 1-indexed position
	Index  int        `json:"index"`
	Option string     `json:"option"`
	Score  float64    `json:"score"`
	Votes  []VoteView `json:"votes"`
}

type VoteView struct {
	Voter  string `json:"voter"`
	Weight Weight `json:"weight"`
}

type GraphResponse struct {
	TallyID string       `json:"tally_id"`
	Method  string       `json:"method"`
	Graph   *tally.Graph `json:"graph"`
}

type MethodInfo struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Visualizes bool   `json:"visualizes"`
}

type KindInfo struct {
	Name      string   `json:"name"`
	Default   string   `json:"default"`
	Supported []string `json:"supported"`
}

type MethodsResponse struct {
	Methods []MethodInfo `json:"methods"`
	Kinds   []KindInfo   `json:"kinds"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
