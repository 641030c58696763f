// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
)

// TestDBURL is an in-memory sqlite database, fresh per connection pool
const TestDBURL = ":memory:"

// SetupTestDB opens an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: "sqlite",
		MaxOptions:   99,
		MaxScore:     100,
		LogLevel:     "error",
	}
}

// CreateTestPoll inserts a poll with its options and returns the poll ID
// kind should be "approval" or "multi"
func CreateTestPoll(t *testing.T, conn *sql.DB, question, kind string, options ...string) string {
	t.Helper()

	pollID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO poll (id, question, kind)
		VALUES ($1, $2, $3)
	`, pollID, question, kind)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	for position, label := range options {
		_, err := conn.Exec(`
			INSERT INTO option (poll_id, position, label)
			VALUES ($1, $2, $3)
		`, pollID, position, label)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
	}

	return pollID
}

// SubmitTestBallot records a ballot; nil weights are stored as NULL
func SubmitTestBallot(t *testing.T, conn *sql.DB, pollID, voter string, weights ...*float64) string {
	t.Helper()

	ballotID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO ballot (id, poll_id, voter)
		VALUES ($1, $2, $3)
	`, ballotID, pollID, voter)
	if err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}

	for position, value := range weights {
		_, err := conn.Exec(`
			INSERT INTO weight (ballot_id, position, value)
			VALUES ($1, $2, $3)
		`, ballotID, position, value)
		if err != nil {
			t.Fatalf("Failed to create test weight: %v", err)
		}
	}

	return ballotID
}

// W returns a pointer to v, for SubmitTestBallot
func W(v float64) *float64 {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
