package mcpserver

import (
	"log/slog"
	"os"

	"github.com/erraggy/modelref/config"
	"github.com/erraggy/modelref/logging"
	"github.com/erraggy/modelref/restype"
)

// envConfigFile names the optional YAML configuration file.
const envConfigFile = "MODELREF_CONFIG"

// Server state, initialized at package load time.
var (
	cfg        = loadConfig()
	knownTypes = restype.DefaultTypes()
	logger     = newLogger(cfg)
)

// loadConfig reads the configuration file named by MODELREF_CONFIG and then
// applies MODELREF_* overrides. An unreadable or invalid file logs a warning
// and falls back to the defaults.
func loadConfig() *config.Config {
	path := os.Getenv(envConfigFile)
	c, err := config.Load(path)
	if err != nil {
		slog.Warn("invalid config file, using defaults", "key", envConfigFile, "error", sanitizeError(err)) //nolint:gosec // G706: values are structured log fields, not format strings
		c = config.Default()
	}
	c.ApplyEnv()
	return c
}

// newLogger returns a stderr logger at the configured level. Stdout carries
// the MCP protocol, so nothing may log there.
func newLogger(c *config.Config) logging.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()})
	return logging.NewSlogAdapter(slog.New(handler))
}
