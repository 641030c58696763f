// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Tally API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	registry := monitoring.NewRegistry()
	mux := router.NewRouter(db, cfg, registry)

db may be nil. The stored poll routes are then left unregistered and
answer 404.

# Endpoints

Service:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics
	GET /        - Banner

Stateless tallies (body is a poll snapshot):

	GET  /methods   - Methods and poll kinds
	POST /tally     - Ordered results
	POST /visualize - Majority graph
	POST /report    - Plain text summary

Stored polls (database only):

	GET /polls/{id}/results
	GET /polls/{id}/graph
	GET /polls/{id}/report

All tally routes take ?method=.
*/
package router
