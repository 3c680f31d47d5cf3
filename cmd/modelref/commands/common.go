// Package commands provides CLI command handlers for modelref.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/erraggy/modelref/config"
	"github.com/erraggy/modelref/internal/typeexpr"
	"github.com/erraggy/modelref/logging"
	"github.com/erraggy/modelref/restype"
	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// enumFlag collects repeated --enum identity=V1,V2 flags.
type enumFlag map[string][]string

func (e enumFlag) String() string {
	parts := make([]string, 0, len(e))
	for _, k := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, k+"="+strings.Join(e[k], ","))
	}
	return strings.Join(parts, " ")
}

func (e enumFlag) Set(v string) error {
	identity, values, ok := strings.Cut(v, "=")
	if !ok || identity == "" || values == "" {
		return fmt.Errorf("expected identity=VALUE[,VALUE...], got %q", v)
	}
	e[identity] = append(e[identity], strings.Split(values, ",")...)
	return nil
}

// CommonFlags are shared by every type command.
type CommonFlags struct {
	ConfigPath    string
	Format        string
	Naming        string
	GenericNaming string
	Opaque        bool
	Enums         enumFlag
}

func newFlagSet(name string) (*flag.FlagSet, *CommonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &CommonFlags{Enums: enumFlag{}}

	fs.StringVar(&flags.ConfigPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Naming, "naming", "", "naming strategy: default, qualified, type-only, pascal, camel, snake, kebab, full-path")
	fs.StringVar(&flags.GenericNaming, "generic-naming", "", "generic naming: underscore, of, for, angle, flattened")
	fs.BoolVar(&flags.Opaque, "opaque", false, "treat the argument as a model identity instead of a Go type expression")
	fs.Var(flags.Enums, "enum", "register allowable values as identity=V1,V2 (repeatable)")

	return fs, flags
}

// request builds the resolution request for the single positional argument.
func (f *CommonFlags) request(expr string) typeexpr.Request {
	return typeexpr.Request{
		Type:          expr,
		Opaque:        f.Opaque,
		Naming:        f.Naming,
		GenericNaming: f.GenericNaming,
		Enums:         f.Enums,
	}
}

// prepare loads the configuration, applies MODELREF_* overrides and resolves
// req. Diagnostics go to stderr at the configured log level.
func (f *CommonFlags) prepare(req typeexpr.Request) (*typeexpr.Session, error) {
	if err := ValidateOutputFormat(f.Format); err != nil {
		return nil, err
	}
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})
	logger := logging.NewSlogAdapter(slog.New(handler))

	return typeexpr.Prepare(cfg, restype.DefaultTypes(), req, logger)
}

// parseArgs parses args and returns the single positional type argument.
// A nil error with ok false means help was requested.
func parseArgs(fs *flag.FlagSet, args []string) (expr string, ok bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", false, nil
		}
		return "", false, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return "", false, fmt.Errorf("%s command requires exactly one type expression", fs.Name())
	}
	return fs.Arg(0), true, nil
}

func usage(fs *flag.FlagSet, synopsis string, examples ...string) func() {
	return func() {
		output := fs.Output()
		Writef(output, "Usage: modelref %s [flags] <type>\n\n", fs.Name())
		Writef(output, "%s\n\n", synopsis)
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		for _, ex := range examples {
			Writef(output, "  %s\n", ex)
		}
	}
}
