// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/cliparse"
)

const snapshotYAML = `
question: Best letter?
options: [A, B, C]
ballots:
  - voter: v1
    weights: [3, 2, 1]
  - voter: v2
    weights: [3, 1, 2]
  - voter: v3
    weights: [1, 3, 2]
`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poll.yaml")
	require.NoError(t, os.WriteFile(path, []byte(snapshotYAML), 0o600))
	return path
}

func TestTallyFile_RankedPairs(t *testing.T) {
	cfg := cliparse.Config{SnapshotFile: writeSnapshot(t), Method: "ranked_pairs", MaxOptions: 99, MaxScore: 100}

	var out strings.Builder
	require.NoError(t, tallyFile(&out, cfg))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "*Best letter?*\nRanked Pairs, 3 ballots\n"))
	assert.Contains(t, text, "digraph majorities {")
	assert.Less(t, strings.Index(text, "A"), strings.Index(text, "digraph"))
}

func TestTallyFile_NoGraphForScoreMethods(t *testing.T) {
	cfg := cliparse.Config{SnapshotFile: writeSnapshot(t), Method: "borda"}

	var out strings.Builder
	require.NoError(t, tallyFile(&out, cfg))
	assert.NotContains(t, out.String(), "digraph")
	assert.Contains(t, out.String(), "Borda Count")
}

func TestTallyFile_Errors(t *testing.T) {
	var out strings.Builder

	err := tallyFile(&out, cliparse.Config{SnapshotFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	err = tallyFile(&out, cliparse.Config{SnapshotFile: writeSnapshot(t), Method: "plurality"})
	assert.Error(t, err)
}
