// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

var ErrPollNotFound = errors.New("poll not found")

// Open connects to a postgres or sqlite database.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	var driver string
	switch databaseType {
	case "postgres", "postgresql":
		driver = "postgres"
	case "sqlite", "sqlite3":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if driver == "sqlite" {
		// each connection to :memory: would otherwise see its own database
		conn.SetMaxOpenConns(1)
	}
	return conn, nil
}

// LoadSnapshot reads a poll's options and every current ballot.
func LoadSnapshot(ctx context.Context, db *sql.DB, pollID string) (models.PollSnapshot, error) {
	snapshot := models.PollSnapshot{ID: pollID}

	err := db.QueryRowContext(ctx, `
		SELECT question, kind FROM poll WHERE id = $1
	`, pollID).Scan(&snapshot.Question, &snapshot.Kind)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PollSnapshot{}, ErrPollNotFound
	}
	if err != nil {
		return models.PollSnapshot{}, fmt.Errorf("failed to query poll: %w", err)
	}

	snapshot.Options, err = getOptionLabels(ctx, db, pollID)
	if err != nil {
		return models.PollSnapshot{}, fmt.Errorf("failed to get option labels: %w", err)
	}

	snapshot.Ballots, err = getBallots(ctx, db, pollID, len(snapshot.Options))
	if err != nil {
		return models.PollSnapshot{}, fmt.Errorf("failed to get ballots: %w", err)
	}

	return snapshot, nil
}

// getOptionLabels retrieves option labels in position order
func getOptionLabels(ctx context.Context, db *sql.DB, pollID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT label FROM option WHERE poll_id = $1 ORDER BY position
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// getBallots retrieves every ballot with its weights, ordered by voter.
// Weights are stored sparsely; positions without a row stay absent and
// positions past the option list are dropped.
func getBallots(ctx context.Context, db *sql.DB, pollID string, optionCount int) ([]models.BallotSnapshot, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT b.voter, w.position, w.value
		FROM ballot b
		LEFT JOIN weight w ON w.ballot_id = b.id
		WHERE b.poll_id = $1
		ORDER BY b.voter, w.position
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ballots := []models.BallotSnapshot{}
	for rows.Next() {
		var voter string
		var position sql.NullInt64
		var value sql.NullFloat64
		if err := rows.Scan(&voter, &position, &value); err != nil {
			return nil, err
		}

		if len(ballots) == 0 || ballots[len(ballots)-1].Voter != voter {
			ballots = append(ballots, models.BallotSnapshot{
				Voter:   voter,
				Weights: make([]models.Weight, optionCount),
			})
		}
		// weights past the option list never count
		if !position.Valid || !value.Valid || position.Int64 >= int64(optionCount) {
			continue
		}

		ballots[len(ballots)-1].Weights[position.Int64] = models.Weight(tally.Score(value.Float64))
	}

	return ballots, rows.Err()
}
