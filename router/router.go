// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/monitoring"
)

// NewRouter wires every route. db may be nil, in which case the stored
// poll routes are not registered.
func NewRouter(db *sql.DB, cfg cliparse.Config, registry *monitoring.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	tallyHandler := handlers.NewTallyHandler(db, cfg, monitoring.NewTallyMonitor(registry))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", registry.Handler())

	// Stateless tallies
	mux.HandleFunc("GET /methods", middleware.WithLogging(tallyHandler.Methods))
	mux.HandleFunc("POST /tally", middleware.WithLogging(tallyHandler.Tally))
	mux.HandleFunc("POST /visualize", middleware.WithLogging(tallyHandler.Visualize))
	mux.HandleFunc("POST /report", middleware.WithLogging(tallyHandler.Report))

	// Stored polls
	if db != nil {
		mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(tallyHandler.PollResults))
		mux.HandleFunc("GET /polls/{id}/graph", middleware.WithLogging(tallyHandler.PollGraph))
		mux.HandleFunc("GET /polls/{id}/report", middleware.WithLogging(tallyHandler.PollReport))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return mux
}
