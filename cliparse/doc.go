// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Snapshot database (optional; poll routes are off without it)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - MaxOptions: Largest option count a poll may have (default: 99)
  - MaxScore: Score of the leading option after rescaling (default: 100)
  - LogLevel: debug, info, warn or error (default: info)
  - SnapshotFile: Tally this file, print the result and exit
  - Method: Tally method; empty means the poll kind's default

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-max-options  Option limit
	-max-score    Score scale
	-log-level    Log level
	-snapshot     Snapshot file (also accepted as the first argument)
	-m            Tally method
	-env-file     Env file (default .env, ignored if missing)

# Environment Variables

The env file is loaded first; it never overrides variables already set.
Flags fall back to:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	MAX_OPTIONS   → -max-options
	MAX_SCORE     → -max-score
	LOG_LEVEL     → -log-level
	TALLY_METHOD  → -m

CLI flags take precedence over environment variables.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	level, _ := cliparse.ParseLevel(cfg.LogLevel)
	slog.SetLogLoggerLevel(level)
*/
package cliparse
