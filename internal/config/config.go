// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from the environment
package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"
)

// Config holds all omniscan configuration
type Config struct {
	// Persistence
	DBPath string // sqlite state database path

	// Generative-text service
	AIBaseURL string        // OpenAI compatible endpoint base url
	AIModel   string        // model name sent with every request
	AIKey     string        // bearer token, optional for local endpoints
	AITimeout time.Duration // per request timeout
	AIRate    float64       // allowed requests per second

	// Simulated scan
	TicksPerPhase int           // progress increments per scan phase
	TickDelay     time.Duration // delay between increments
	Seed          int64         // rng seed for fabricated devices, 0 means random
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	dbPath, err := defaultDBPath()

	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:        getenv("OMNISCAN_DB_PATH", dbPath),
		AIBaseURL:     getenv("OMNISCAN_AI_URL", "https://api.openai.com"),
		AIModel:       getenv("OMNISCAN_AI_MODEL", "gpt-4o-mini"),
		AIKey:         getenv("OMNISCAN_AI_KEY", ""),
		AITimeout:     getdur("OMNISCAN_AI_TIMEOUT", 30*time.Second),
		AIRate:        getfloat("OMNISCAN_AI_RPS", 1),
		TicksPerPhase: getint("OMNISCAN_TICKS", 25),
		TickDelay:     getdur("OMNISCAN_TICK_DELAY", 40*time.Millisecond),
		Seed:          int64(getint("OMNISCAN_SEED", 0)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("OMNISCAN_DB_PATH cannot be empty")
	}

	if c.AIBaseURL == "" {
		return fmt.Errorf("OMNISCAN_AI_URL cannot be empty")
	}

	if c.AITimeout <= 0 {
		return fmt.Errorf("OMNISCAN_AI_TIMEOUT must be positive, got %s", c.AITimeout)
	}

	if c.AIRate <= 0 {
		return fmt.Errorf("OMNISCAN_AI_RPS must be positive, got %f", c.AIRate)
	}

	if c.TicksPerPhase < 1 {
		return fmt.Errorf("OMNISCAN_TICKS must be at least 1, got %d", c.TicksPerPhase)
	}

	if c.TickDelay < 0 {
		return fmt.Errorf("OMNISCAN_TICK_DELAY cannot be negative, got %s", c.TickDelay)
	}

	return nil
}

func defaultDBPath() (string, error) {
	home, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	return path.Join(home, ".config", "omniscan", "state.db"), nil
}

func getenv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getint(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return defaultValue
}

func getfloat(key string, defaultValue float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return defaultValue
}

func getdur(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return defaultValue
}
