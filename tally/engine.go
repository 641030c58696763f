// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	DefaultMaxOptions = 99
	DefaultMaxScore   = 100
)

// Config bounds a tally. Zero fields take the defaults.
type Config struct {
	MaxOptions int
	MaxScore   int
}

func (c Config) withDefaults() Config {
	if c.MaxOptions <= 0 {
		c.MaxOptions = DefaultMaxOptions
	}
	if c.MaxScore <= 0 {
		c.MaxScore = DefaultMaxScore
	}
	return c
}

// Poll is the snapshot a tally runs over. The engine only reads it.
type Poll struct {
	Kind    Kind
	Options []string
	Ballots []Ballot
}

// Vote is one voter's present weight on one option.
type Vote struct {
	Voter  string `json:"voter"`
	Weight Weight `json:"weight"`
}

// Placement is an option with the votes it received and its score.
type Placement struct {
	Index  int
	Option string
	Votes  []Vote
	Score  float64
}

// Engine runs tallies. It holds configuration only and is safe for
// concurrent use.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) validate(p Poll) error {
	if len(p.Options) == 0 {
		return ErrNoOptions
	}
	if len(p.Options) > e.cfg.MaxOptions {
		return fmt.Errorf("%w: %d options, limit is %d", ErrTooManyOptions, len(p.Options), e.cfg.MaxOptions)
	}
	seen := make(map[string]struct{}, len(p.Options))
	for _, o := range p.Options {
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateOption, o)
		}
		seen[o] = struct{}{}
	}
	return nil
}

// Resolve validates the poll and picks the method to tally it with.
func (e *Engine) Resolve(p Poll, method string) (Method, error) {
	if err := e.validate(p); err != nil {
		return "", err
	}
	kind := p.Kind
	if kind == "" {
		kind = KindMulti
	}
	return kind.Resolve(method)
}

// Scores computes the per-option scores for the resolved method.
func (e *Engine) Scores(p Poll, method string) (Method, []float64, error) {
	m, err := e.Resolve(p, method)
	if err != nil {
		return "", nil, err
	}
	scores, err := m.GenerateScores(len(p.Options), p.Ballots, e.cfg)
	if err != nil {
		return "", nil, err
	}
	return m, scores, nil
}

// OrderOptions tallies the poll and returns the options by descending
// score, ties broken by option index.
func (e *Engine) OrderOptions(p Poll, method string) (Method, []Placement, error) {
	m, scores, err := e.Scores(p, method)
	if err != nil {
		return "", nil, err
	}

	placements := make([]Placement, len(p.Options))
	for i, option := range p.Options {
		placements[i] = Placement{Index: i, Option: option, Score: scores[i]}
	}
	for _, b := range p.Ballots {
		for i := range placements {
			if w := b.slot(i); w.Valid {
				placements[i].Votes = append(placements[i].Votes, Vote{Voter: b.Voter, Weight: w})
			}
		}
	}

	slices.SortStableFunc(placements, func(a, b Placement) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return m, placements, nil
}

// Visualize explains the tally as a majority graph. It returns a nil graph,
// not an error, for methods without a visualization and for polls with no
// ballots.
func (e *Engine) Visualize(p Poll, method string) (Method, *Graph, error) {
	m, err := e.Resolve(p, method)
	if err != nil {
		return "", nil, err
	}
	s := systems[m]
	if s.closure == nil || len(p.Ballots) == 0 {
		return m, nil, nil
	}
	return m, NewGraph(p.Options, s.closure(len(p.Options), p.Ballots)), nil
}
