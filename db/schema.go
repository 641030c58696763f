// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables snapshots are read from.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    kind TEXT NOT NULL DEFAULT 'multi' CHECK (kind IN ('approval', 'multi')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Options, in display order
CREATE TABLE IF NOT EXISTS option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    position INTEGER NOT NULL CHECK (position >= 0),
    label TEXT NOT NULL,
    PRIMARY KEY (poll_id, position),
    UNIQUE (poll_id, label)
);

-- Ballots, one per voter
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (poll_id, voter)
);

CREATE INDEX IF NOT EXISTS idx_ballot_poll_id ON ballot(poll_id);

-- Weights; a missing row or NULL value means no opinion
CREATE TABLE IF NOT EXISTS weight (
    ballot_id TEXT NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    position INTEGER NOT NULL CHECK (position >= 0),
    value REAL,
    PRIMARY KEY (ballot_id, position)
);
`
