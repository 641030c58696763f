// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db reads poll snapshots from a relational store.

The tally engine never writes; this package only loads what another system
recorded. Both postgres (lib/pq) and sqlite (modernc.org/sqlite) work:

	conn, err := db.Open("postgres", os.Getenv("DATABASE_URL"))
	snapshot, err := db.LoadSnapshot(ctx, conn, pollID)
	if errors.Is(err, db.ErrPollNotFound) {
		// 404
	}

# Tables

	poll     id, question, kind ('approval' or 'multi'), created_at
	option   poll_id, position, label           (position is the option index)
	ballot   id, poll_id, voter, submitted_at   (one per voter)
	weight   ballot_id, position, value         (NULL or missing = no opinion)

CreateSchema creates the tables if they do not exist. Approval ballots store
1 and 0 for checked and unchecked options.
*/
package db
