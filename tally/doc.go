// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally computes poll results from a snapshot of ballots.

The package is pure: it never stores ballots, performs no I/O, and holds no
mutable state between calls. An Engine may be shared by any number of
goroutines.

# Ballots and Weights

A Ballot carries one Weight per option. A Weight is three-valued: absent
(the zero value, "no opinion"), present zero, or present nonzero. Approval
ballots use Approve(true/false); ranked and scored ballots use Score(v).
Weights past the end of the option list are ignored.

# Methods

	approval                 count of truthy weights
	borda                    sum of competition-ranking scores
	ranked_pairs             reachability under locked-in majorities
	sum_score, mean_score, median_score               L2-normalized scores
	sum_score_infinity, mean_score_infinity, ...      L∞-normalized scores
	sum_score_manhattan, mean_score_manhattan, ...    L1-normalized scores

A poll's Kind decides which methods it accepts and which one is the default:

	KindApproval  supports approval only
	KindMulti     supports every method, default mean_score_infinity

# Ranked Pairs

Every ballot is turned into a Ranking, rankings are compared pairwise into
sorted Majority values, and ComputeClosure locks majorities in from
strongest to weakest, skipping any whose loser already reaches its winner.
An option's score is the number of options it reaches, itself included.

# Usage

	engine := tally.New(tally.Config{})
	method, placements, err := engine.OrderOptions(poll, "ranked_pairs")
	if errors.Is(err, tally.ErrUnsupportedMethod) {
		// reject the request
	}

	_, graph, err := engine.Visualize(poll, "ranked_pairs")
	if graph != nil {
		fmt.Print(graph.DOT())
	}
*/
package tally
