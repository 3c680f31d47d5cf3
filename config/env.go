package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/modelref/logging"
	"github.com/erraggy/modelref/naming"
)

// Environment variables read by ApplyEnv.
const (
	EnvNaming        = "MODELREF_NAMING"
	EnvGenericNaming = "MODELREF_GENERIC_NAMING"
	EnvMaxDepth      = "MODELREF_MAX_DEPTH"
	EnvLogLevel      = "MODELREF_LOG_LEVEL"
)

// ApplyEnv overrides c with MODELREF_* environment variables. Invalid values
// log a warning and keep the current setting.
func (c *Config) ApplyEnv() {
	c.Naming = envChoice(EnvNaming, c.Naming, func(v string) bool {
		_, err := naming.ParseStrategy(v)
		return err == nil
	})
	c.Generic = envChoice(EnvGenericNaming, c.Generic, func(v string) bool {
		_, err := naming.ParseGenericStrategy(v)
		return err == nil
	})
	c.MaxDepth = envInt(EnvMaxDepth, c.MaxDepth)
	c.LogLevel = envChoice(EnvLogLevel, c.LogLevel, func(v string) bool {
		_, ok := logging.ParseLevel(v)
		return ok
	})
}

func envChoice(key, fallback string, valid func(string) bool) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !valid(v) {
		slog.Warn("invalid env var, using configured value", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid int env var, using configured value", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
