// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "MAX_OPTIONS", "MAX_SCORE", "LOG_LEVEL", "TALLY_METHOD"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-env-file", ""})
	require.NoError(t, err)

	assert.Equal(t, 3318, cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, 99, cfg.MaxOptions)
	assert.Equal(t, 100, cfg.MaxScore)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SnapshotFile)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("MAX_SCORE", "10")
	t.Setenv("TALLY_METHOD", "borda")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, 10, cfg.MaxScore)
	assert.Equal(t, "borda", cfg.Method)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("TALLY_METHOD", "borda")

	cfg, err := ParseFlags([]string{"-env-file", "", "-p", "8080", "-d", "file:test.db", "-m", "approval"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, "approval", cfg.Method)
}

func TestParseFlags_SnapshotArgument(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-env-file", "", "poll.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "poll.yaml", cfg.SnapshotFile)

	cfg, err = ParseFlags([]string{"-env-file", "", "-snapshot", "a.json", "b.json"})
	require.NoError(t, err)
	assert.Equal(t, "a.json", cfg.SnapshotFile)
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("MAX_OPTIONS")
	os.Unsetenv("LOG_LEVEL")
	t.Cleanup(func() {
		os.Unsetenv("MAX_OPTIONS")
		os.Unsetenv("LOG_LEVEL")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAX_OPTIONS=12\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := ParseFlags([]string{"-env-file", path})
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxOptions)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "missing.env")})
	assert.NoError(t, err)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"bad database type", []string{"-t", "mysql"}, nil},
		{"bad log level", []string{"-log-level", "loud"}, nil},
		{"negative max options", []string{"-max-options", "-1"}, nil},
		{"negative max score", []string{"-max-score", "-5"}, nil},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(append([]string{"-env-file", ""}, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
