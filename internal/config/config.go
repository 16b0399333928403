// Package config holds the infixd service configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the service configuration. Zero or missing fields take the
// defaults from Default.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `json:"addr"`
	// MaxExprLen bounds the length in bytes of an expression accepted over
	// HTTP. Evaluation work is linear in input length, so this bounds
	// per-request work.
	MaxExprLen int `json:"max_expr_len"`
	// LogLevel is one of debug, info, warn, error, none.
	LogLevel string `json:"log_level"`
	// Lenient selects the permissive evaluation mode that tolerates
	// malformed input instead of rejecting it.
	Lenient bool `json:"lenient"`
}

// Default returns the configuration used when no file and no flags are
// given.
func Default() Config {
	return Config{
		Addr:       "localhost:8080",
		MaxExprLen: 10 << 10,
		LogLevel:   "info",
	}
}

// Load reads a JSON configuration file and fills unset fields with
// defaults. An empty path returns Default with no error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.MaxExprLen <= 0 {
		cfg.MaxExprLen = Default().MaxExprLen
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	return cfg, nil
}
