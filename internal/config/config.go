package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultIndexURL is the published GO Transit full-schedules index
// page.
const DefaultIndexURL = "https://www.gotransit.com/en/trip-planning/seeschedules/full-schedules"

// Config holds application configuration.
type Config struct {
	IndexURL    string
	DBPath      string
	HTTPTimeout time.Duration
	ViewerDelay time.Duration
}

// DefaultDBPath returns the default history database path using
// XDG_CACHE_HOME.
func DefaultDBPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, _ := os.UserHomeDir()
		cacheDir = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheDir, "sched", "history.db")
}

// Load builds Config from defaults and environment overrides. CLI
// flags are applied on top by the command layer.
func Load() *Config {
	cfg := &Config{
		IndexURL:    DefaultIndexURL,
		DBPath:      DefaultDBPath(),
		HTTPTimeout: 30 * time.Second,
		ViewerDelay: 2 * time.Second,
	}

	// Env overrides
	if u := os.Getenv("SCHED_INDEX_URL"); u != "" {
		cfg.IndexURL = u
	}
	if db := os.Getenv("SCHED_DB"); db != "" {
		cfg.DBPath = db
	}
	if raw := os.Getenv("SCHED_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if raw := os.Getenv("SCHED_VIEWER_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.ViewerDelay = d
		}
	}

	return cfg
}
