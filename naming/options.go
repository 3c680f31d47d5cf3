package naming

import (
	"text/template"

	"github.com/erraggy/modelref/logging"
	"github.com/erraggy/modelref/typeref"
	"github.com/erraggy/modelref/typenames"
)

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	strategy      Strategy
	genericConfig GenericConfig
	template      *template.Template
	templateError error // returned by New
	fn            NameFunc
	primitives    typeref.PrimitiveNames
	maxDepth      int
	logger        logging.Logger
}

func defaultResolverConfig() *resolverConfig {
	return &resolverConfig{
		strategy:      StrategyDefault,
		genericConfig: DefaultGenericConfig(),
		primitives:    typenames.Default(),
		logger:        logging.NopLogger{},
	}
}

// WithStrategy sets the built-in naming strategy.
// Default: StrategyDefault
func WithStrategy(strategy Strategy) Option {
	return func(cfg *resolverConfig) {
		cfg.strategy = strategy
	}
}

// WithTemplate sets a text/template used to render names. The template
// receives a NameContext and may use the pascal, camel, snake, kebab, upper,
// lower, title, sanitize, trimPrefix, trimSuffix, replace and join functions.
//
// Example:
//
//	WithTemplate("{{pascal .Package}}{{pascal .Type}}")
//
// A template that fails to parse makes New return an error. A template takes
// precedence over the strategy.
func WithTemplate(tmpl string) Option {
	return func(cfg *resolverConfig) {
		t, err := parseTemplate(tmpl)
		if err != nil {
			cfg.templateError = err
			return
		}
		cfg.template = t
	}
}

// WithNameFunc sets a custom naming function. It takes precedence over both
// the template and the strategy.
func WithNameFunc(fn NameFunc) Option {
	return func(cfg *resolverConfig) {
		cfg.fn = fn
	}
}

// WithGenericNaming sets the generic parameter formatting strategy.
// Default: GenericUnderscore
func WithGenericNaming(strategy GenericStrategy) Option {
	return func(cfg *resolverConfig) {
		cfg.genericConfig.Strategy = strategy
	}
}

// WithGenericConfig replaces the whole generic naming configuration.
func WithGenericConfig(config GenericConfig) Option {
	return func(cfg *resolverConfig) {
		cfg.genericConfig = config
	}
}

// WithGenericIncludePackage keeps package names in generic parameters.
func WithGenericIncludePackage(include bool) Option {
	return func(cfg *resolverConfig) {
		cfg.genericConfig.IncludePackage = include
	}
}

// WithPrimitiveNames sets the primitive-name table. A nil table keeps the
// default.
func WithPrimitiveNames(names typeref.PrimitiveNames) Option {
	return func(cfg *resolverConfig) {
		if names != nil {
			cfg.primitives = names
		}
	}
}

// WithMaxDepth bounds how deep the resolver recurses into type parameters.
// Past the limit it logs a warning and falls back to the canonical name.
// Zero or negative disables the guard.
func WithMaxDepth(depth int) Option {
	return func(cfg *resolverConfig) {
		cfg.maxDepth = depth
	}
}

// WithLogger sets the logger. A nil logger keeps the NopLogger.
func WithLogger(logger logging.Logger) Option {
	return func(cfg *resolverConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
