// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types of the tally API.

# Snapshots

A PollSnapshot is what callers send (or what the db package loads):

	{
	  "kind": "multi",
	  "options": ["Pizza", "Sushi", "Tacos"],
	  "ballots": [
	    {"voter": "ann", "weights": [3, 1, null]},
	    {"voter": "bob", "weights": [2, 2, 5]}
	  ]
	}

DecodeSnapshot accepts the same document as YAML. PollSnapshot.Poll converts
it into a tally.Poll.

# Weights

Weight is three-valued on the wire:

	null          no opinion
	true / false  approval (1 / 0)
	number        rank or score
	"on" / "off"  checkbox values, decoded as true / false

# Response Types

  - TallyResponse: tally_id, method, ballot_count, ordered results
  - OptionResult: rank, option, score, and the votes it received
  - GraphResponse: majority graph for ranked pairs
  - MethodsResponse: method catalog and poll kinds
  - ErrorResponse: error, message
*/
package models
