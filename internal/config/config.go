// Package config resolves runtime settings from the environment. Command-line
// flags override these values in cmd/movielist.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	// SeedFileEnv points at a YAML seed file (see movie.LoadSeed).
	SeedFileEnv = "MOVIELIST_SEED_FILE"
	// LogFileEnv is the file log output is appended to. Unset disables logging.
	LogFileEnv = "MOVIELIST_LOG_FILE"
	// LogLevelEnv is one of debug, info, warn, error.
	LogLevelEnv = "MOVIELIST_LOG_LEVEL"
)

// Config holds the settings for one run.
type Config struct {
	SeedFile string
	LogFile  string
	LogLevel slog.Level
}

// FromEnv reads Config from the environment. Missing variables keep their
// zero defaults (built-in seed, no log file, info level).
func FromEnv() (Config, error) {
	cfg := Config{
		SeedFile: strings.TrimSpace(os.Getenv(SeedFileEnv)),
		LogFile:  strings.TrimSpace(os.Getenv(LogFileEnv)),
		LogLevel: slog.LevelInfo,
	}
	if v := os.Getenv(LogLevelEnv); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", LogLevelEnv, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// ParseLevel converts a level name to a slog.Level. Matching is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
