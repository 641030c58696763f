// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/monitoring"
	"github.com/danielhkuo/quickly-tally/report"
	"github.com/danielhkuo/quickly-tally/tally"
)

// DOTContentType is the media type of Graphviz responses
const DOTContentType = "text/vnd.graphviz; charset=utf-8"

type TallyHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	engine  *tally.Engine
	monitor *monitoring.TallyMonitor
}

// NewTallyHandler creates the tally handler. db may be nil when no
// snapshot database is configured; monitor may be nil.
func NewTallyHandler(db *sql.DB, cfg cliparse.Config, monitor *monitoring.TallyMonitor) *TallyHandler {
	return &TallyHandler{
		db:      db,
		cfg:     cfg,
		engine:  tally.New(tally.Config{MaxOptions: cfg.MaxOptions, MaxScore: cfg.MaxScore}),
		monitor: monitor,
	}
}

// Methods handles GET /methods
func (h *TallyHandler) Methods(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.NewMethodsResponse())
}

// Tally handles POST /tally?method=
// The body is a poll snapshot; the response lists options best first.
func (h *TallyHandler) Tally(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.parseSnapshot(w, r)
	if !ok {
		return
	}
	h.writeResults(w, r, snapshot)
}

// Visualize handles POST /visualize?method=
// Returns Graphviz DOT, or JSON with ?format=json. 204 when the method has
// no visualization or the poll has no ballots.
func (h *TallyHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.parseSnapshot(w, r)
	if !ok {
		return
	}
	h.writeGraph(w, r, snapshot)
}

// Report handles POST /report?method=
// Returns the plain text summary of the tally.
func (h *TallyHandler) Report(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.parseSnapshot(w, r)
	if !ok {
		return
	}
	h.writeReport(w, r, snapshot)
}

// PollResults handles GET /polls/{id}/results?method=
func (h *TallyHandler) PollResults(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.loadSnapshot(w, r)
	if !ok {
		return
	}
	h.writeResults(w, r, snapshot)
}

// PollGraph handles GET /polls/{id}/graph?method=
func (h *TallyHandler) PollGraph(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.loadSnapshot(w, r)
	if !ok {
		return
	}
	h.writeGraph(w, r, snapshot)
}

// PollReport handles GET /polls/{id}/report?method=
func (h *TallyHandler) PollReport(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.loadSnapshot(w, r)
	if !ok {
		return
	}
	h.writeReport(w, r, snapshot)
}

func (h *TallyHandler) parseSnapshot(w http.ResponseWriter, r *http.Request) (models.PollSnapshot, bool) {
	var snapshot models.PollSnapshot
	if err := middleware.ParseJSONBody(r, &snapshot); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return models.PollSnapshot{}, false
	}
	return snapshot, true
}

func (h *TallyHandler) loadSnapshot(w http.ResponseWriter, r *http.Request) (models.PollSnapshot, bool) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return models.PollSnapshot{}, false
	}

	snapshot, err := db.LoadSnapshot(r.Context(), h.db, pollID)
	if errors.Is(err, db.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return models.PollSnapshot{}, false
	}
	if err != nil {
		slog.Error("failed to load snapshot", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.PollSnapshot{}, false
	}
	return snapshot, true
}

// method returns the requested method. Without one, the configured method
// is used if the poll's kind supports it, else the kind's default.
func (h *TallyHandler) method(r *http.Request, kind tally.Kind) string {
	if m := r.URL.Query().Get("method"); m != "" {
		return m
	}
	if m, err := tally.ParseMethod(h.cfg.Method); err == nil && kind.Supports(m) {
		return h.cfg.Method
	}
	return ""
}

// order tallies the snapshot and records the outcome
func (h *TallyHandler) order(r *http.Request, snapshot models.PollSnapshot) (tally.Method, []tally.Placement, error) {
	start := time.Now()
	poll, err := snapshot.Poll()
	if err != nil {
		h.monitor.Observe("invalid", start, len(snapshot.Ballots), err)
		return "", nil, err
	}

	m, placements, err := h.engine.OrderOptions(poll, h.method(r, poll.Kind))
	if err != nil {
		h.monitor.Observe("invalid", start, len(snapshot.Ballots), err)
		return "", nil, err
	}
	h.monitor.Observe(string(m), start, len(snapshot.Ballots), nil)

	slog.Debug("tally computed",
		"request_id", middleware.RequestID(r.Context()),
		"poll_id", snapshot.ID,
		"method", m,
		"options", len(snapshot.Options),
		"ballots", len(snapshot.Ballots),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return m, placements, nil
}

func (h *TallyHandler) writeResults(w http.ResponseWriter, r *http.Request, snapshot models.PollSnapshot) {
	m, placements, err := h.order(r, snapshot)
	if err != nil {
		writeTallyError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{
		TallyID:     uuid.NewString(),
		PollID:      snapshot.ID,
		Question:    snapshot.Question,
		Method:      string(m),
		MethodLabel: m.Label(),
		BallotCount: len(snapshot.Ballots),
		Results:     models.NewOptionResults(placements),
	})
}

func (h *TallyHandler) writeGraph(w http.ResponseWriter, r *http.Request, snapshot models.PollSnapshot) {
	poll, err := snapshot.Poll()
	if err != nil {
		writeTallyError(w, err)
		return
	}

	m, graph, err := h.engine.Visualize(poll, h.method(r, poll.Kind))
	if err != nil {
		writeTallyError(w, err)
		return
	}
	if graph == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	skipped := 0
	for _, e := range graph.Edges {
		if !e.Accepted {
			skipped++
		}
	}
	h.monitor.ObserveSkipped(string(m), skipped)

	if r.URL.Query().Get("format") == "json" {
		middleware.JSONResponse(w, http.StatusOK, models.GraphResponse{
			TallyID: uuid.NewString(),
			Method:  string(m),
			Graph:   graph,
		})
		return
	}

	w.Header().Set("Content-Type", DOTContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(graph.DOT())); err != nil {
		slog.Error("failed to write graph", "error", err)
	}
}

func (h *TallyHandler) writeReport(w http.ResponseWriter, r *http.Request, snapshot models.PollSnapshot) {
	m, placements, err := h.order(r, snapshot)
	if err != nil {
		writeTallyError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := report.Write(w, snapshot.Question, m, len(snapshot.Ballots), placements); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

// writeTallyError maps engine errors to 400 and anything else to 500
func writeTallyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tally.ErrUnknownMethod),
		errors.Is(err, tally.ErrUnsupportedMethod),
		errors.Is(err, tally.ErrUnknownKind),
		errors.Is(err, tally.ErrNoOptions),
		errors.Is(err, tally.ErrTooManyOptions),
		errors.Is(err, tally.ErrDuplicateOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("tally failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Tally failed")
	}
}
