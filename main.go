// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/monitoring"
	"github.com/danielhkuo/quickly-tally/report"
	"github.com/danielhkuo/quickly-tally/router"
	"github.com/danielhkuo/quickly-tally/tally"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	level, _ := cliparse.ParseLevel(cfg.LogLevel)
	slog.SetLogLoggerLevel(level)

	// One-shot mode
	if cfg.SnapshotFile != "" {
		if err := tallyFile(os.Stdout, cfg); err != nil {
			slog.Error("tally failed", "file", cfg.SnapshotFile, "error", err)
			os.Exit(1)
		}
		return
	}

	// Connect to the snapshot database, if any
	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	} else {
		slog.Info("No database configured, poll routes disabled")
	}

	// Create router
	registry := monitoring.NewRegistry()
	mux := router.NewRouter(dbConn, cfg, registry)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "max_options", cfg.MaxOptions, "max_score", cfg.MaxScore)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// tallyFile tallies cfg.SnapshotFile ("-" for stdin) and prints the report,
// followed by the majority graph when the method has one.
func tallyFile(out io.Writer, cfg cliparse.Config) error {
	in := os.Stdin
	if cfg.SnapshotFile != "-" {
		f, err := os.Open(cfg.SnapshotFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	snapshot, err := models.DecodeSnapshot(in)
	if err != nil {
		return err
	}
	poll, err := snapshot.Poll()
	if err != nil {
		return err
	}

	engine := tally.New(tally.Config{MaxOptions: cfg.MaxOptions, MaxScore: cfg.MaxScore})
	method, placements, err := engine.OrderOptions(poll, cfg.Method)
	if err != nil {
		return err
	}
	if err := report.Write(out, snapshot.Question, method, len(snapshot.Ballots), placements); err != nil {
		return err
	}

	_, graph, err := engine.Visualize(poll, string(method))
	if err != nil {
		return err
	}
	if graph != nil {
		_, err = fmt.Fprintf(out, "\n%s", graph.DOT())
	}
	return err
}
