// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Tally API.

# Handler Types

TallyHandler serves every tally route. It holds the tally engine, an
optional snapshot database and an optional metrics monitor:

	handler := handlers.NewTallyHandler(db, cfg, monitor)

# Stateless Tallies

The caller posts a poll snapshot and picks a method with ?method=. Without
one, the configured method is used, then the poll kind's default.

	POST /tally      → Tally (JSON results, best option first)
	POST /visualize  → Visualize (Graphviz DOT, ?format=json for JSON)
	POST /report     → Report (plain text summary)
	GET /methods     → Methods (every method and poll kind)

A snapshot looks like:

	{
	  "question": "Lunch?",
	  "kind": "multi",
	  "options": ["Tacos", "Pho"],
	  "ballots": [
	    {"voter": "alice", "weights": [5, null]},
	    {"voter": "bob", "weights": [true, "off"]}
	  ]
	}

null means no opinion. Booleans and checkbox strings ("on", "off") count
as 1 and 0.

# Stored Polls

With a database configured, the same operations run over stored polls:

	GET /polls/{id}/results → PollResults
	GET /polls/{id}/graph   → PollGraph
	GET /polls/{id}/report  → PollReport

# Errors

Unknown or unsupported methods, unknown poll kinds and bad option lists are
400. A missing poll is 404. Database failures are 500.
*/
package handlers
