// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Tally service.

Quickly Tally turns a poll snapshot (options plus every voter's ballot) into
an ordered result. It supports approval, Borda count, ranked pairs and nine
normalized score methods, and can draw the ranked pairs majority graph.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# One-shot Tallies

Pass a YAML or JSON snapshot to print a report and exit:

	go run . -m ranked_pairs poll.yaml
	cat poll.json | go run . -snapshot -

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Snapshot database; enables the /polls routes
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAX_OPTIONS (-max-options): Option limit (default: 99)
  - MAX_SCORE (-max-score): Score scale (default: 100)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - TALLY_METHOD (-m): Method when a request does not name one

Values may also come from a .env file (-env-file).

# Architecture

  - tally: The tally engine (rankings, majorities, closure, score methods)
  - models: Snapshot and response types, YAML/JSON decoding
  - report: Plain text result reports
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - monitoring: Prometheus metrics
  - db: Snapshot loading from postgres or sqlite
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
