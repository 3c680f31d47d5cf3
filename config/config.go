// Package config loads modelref settings from a YAML file and MODELREF_*
// environment variables, and turns them into the tables and resolver used
// to build model references.
//
// A configuration file looks like:
//
//	naming: pascal
//	generic_naming: of
//	max_depth: 32
//	log_level: debug
//	primitives:
//	  int64: integer
//	enums:
//	  github.com/org/models.Status: [ACTIVE, DISABLED]
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/modelref/enums"
	"github.com/erraggy/modelref/logging"
	"github.com/erraggy/modelref/naming"
	"github.com/erraggy/modelref/referrors"
	"github.com/erraggy/modelref/typenames"
	"go.yaml.in/yaml/v4"
)

// Config holds the user-facing settings.
type Config struct {
	// Naming is a naming.ParseStrategy name. Default: "default"
	Naming string `yaml:"naming,omitempty" json:"naming,omitempty"`

	// Generic is a naming.ParseGenericStrategy name. Default: "underscore"
	Generic string `yaml:"generic_naming,omitempty" json:"generic_naming,omitempty"`

	// MaxDepth bounds resolver recursion. Zero disables the guard.
	MaxDepth int `yaml:"max_depth,omitempty" json:"max_depth,omitempty"`

	// Primitives overrides entries of the default primitive-name table,
	// keyed by erased identity.
	Primitives map[string]string `yaml:"primitives,omitempty" json:"primitives,omitempty"`

	// Enums registers allowable values keyed by erased identity.
	Enums map[string][]string `yaml:"enums,omitempty" json:"enums,omitempty"`

	// LogLevel is one of debug, info, warn, error. Default: "info"
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Naming:   "default",
		Generic:  "underscore",
		LogLevel: "info",
	}
}

// Load reads and validates the configuration file at path. An empty path
// returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, &referrors.ConfigError{Option: "config", Value: path, Message: "cannot read configuration file", Cause: err}
	}
	return Parse(data)
}

// Parse decodes YAML data over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &referrors.ConfigError{Option: "config", Message: "invalid YAML", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting as a *referrors.ConfigError.
func (c *Config) Validate() error {
	if _, err := naming.ParseStrategy(c.Naming); err != nil {
		return err
	}
	if _, err := naming.ParseGenericStrategy(c.Generic); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return &referrors.ConfigError{Option: "max_depth", Value: c.MaxDepth, Message: "must not be negative"}
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return &referrors.ConfigError{Option: "log_level", Value: c.LogLevel, Message: "unknown log level"}
	}
	for identity, name := range c.Primitives {
		if identity == "" || name == "" {
			return &referrors.ConfigError{Option: "primitives", Value: identity, Message: "identity and name must be non-empty"}
		}
	}
	for identity, values := range c.Enums {
		if len(values) == 0 {
			return &referrors.ConfigError{Option: "enums", Value: identity, Message: "value list must not be empty"}
		}
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Runtime is the set of collaborators built from a Config.
type Runtime struct {
	Names    *typenames.Table
	Values   *enums.Registry
	Resolver *naming.Resolver
	Logger   logging.Logger
}

// Apply builds the primitive-name table, the enum registry and the name
// resolver described by c. A nil logger becomes a NopLogger.
func (c *Config) Apply(logger logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	names := typenames.New(c.Primitives)
	values := enums.NewRegistry()
	for identity, vs := range c.Enums {
		values.Register(identity, vs...)
	}

	opts, err := c.namingOptions(names, logger)
	if err != nil {
		return nil, err
	}
	resolver, err := naming.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("config: building resolver: %w", err)
	}

	logger.Debug("config: applied",
		"naming", c.Naming,
		"generic_naming", c.Generic,
		"max_depth", c.MaxDepth,
		"primitives", len(c.Primitives),
		"enums", len(c.Enums),
	)
	return &Runtime{Names: names, Values: values, Resolver: resolver, Logger: logger}, nil
}

func (c *Config) namingOptions(names *typenames.Table, logger logging.Logger) ([]naming.Option, error) {
	strategy, err := naming.ParseStrategy(c.Naming)
	if err != nil {
		return nil, err
	}
	generic, err := naming.ParseGenericStrategy(c.Generic)
	if err != nil {
		return nil, err
	}
	return []naming.Option{
		naming.WithStrategy(strategy),
		naming.WithGenericNaming(generic),
		naming.WithPrimitiveNames(names),
		naming.WithMaxDepth(c.MaxDepth),
		naming.WithLogger(logger),
	}, nil
}
