// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	MaxOptions   int
	MaxScore     int
	LogLevel     string
	SnapshotFile string
	Method       string
	EnvFile      string
}

// ParseFlags reads flags, then the env file, then the environment.
// Flags win over environment values.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Server config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (optional; enables poll routes)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Env file to load if present")

	// Tally limits
	fs.IntVar(&cfg.MaxOptions, "max-options", 0, "Largest option count accepted")
	fs.IntVar(&cfg.MaxScore, "max-score", 0, "Score given to the leading option")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")

	// One-shot mode
	fs.StringVar(&cfg.SnapshotFile, "snapshot", "", "Tally a YAML or JSON snapshot file and exit")
	fs.StringVar(&cfg.Method, "m", "", "Tally method (defaults to the poll kind's default)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.SnapshotFile == "" && fs.NArg() > 0 {
		cfg.SnapshotFile = fs.Arg(0)
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	var err error
	if cfg.Port, err = intFromEnv(cfg.Port, "PORT", 3318); err != nil {
		return Config{}, err
	}
	if cfg.MaxOptions, err = intFromEnv(cfg.MaxOptions, "MAX_OPTIONS", 99); err != nil {
		return Config{}, err
	}
	if cfg.MaxScore, err = intFromEnv(cfg.MaxScore, "MAX_SCORE", 100); err != nil {
		return Config{}, err
	}
	if cfg.MaxOptions < 1 {
		return Config{}, errors.New("max options must be positive")
	}
	if cfg.MaxScore < 1 {
		return Config{}, errors.New("max score must be positive")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	if cfg.Method == "" {
		cfg.Method = os.Getenv("TALLY_METHOD")
	}

	return cfg, nil
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// loadEnvFile loads path into the environment; a missing file is not an error
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func intFromEnv(current int, key string, fallback int) (int, error) {
	if current != 0 {
		return current, nil
	}
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}
