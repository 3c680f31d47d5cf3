package commands

import (
	"io"

	"github.com/erraggy/modelref/typeref"
)

// RefResult is the structured output of the ref command.
type RefResult struct {
	Type      string          `json:"type"      yaml:"type"`
	Signature string          `json:"signature" yaml:"signature"`
	Reference typeref.Summary `json:"reference" yaml:"reference"`
}

// HandleRef executes the ref command: it prints the model reference built
// for a type.
func HandleRef(args []string, out io.Writer) error {
	fs, flags := newFlagSet("ref")
	var group, view string
	var returnType bool
	fs.StringVar(&group, "group", "", "documentation group of the enclosing model")
	fs.StringVar(&view, "view", "", "serialization view of the enclosing model")
	fs.BoolVar(&returnType, "return-type", false, "resolve the type as an operation return type")
	fs.Usage = usage(fs, "Print the model reference built for a Go type expression.",
		"modelref ref '[]int64'",
		"modelref ref --format yaml 'map[string][]string'",
		"modelref ref --opaque --enum github.com/org/models.Status=ON,OFF github.com/org/models.Status",
	)

	expr, ok, err := parseArgs(fs, args)
	if !ok {
		return err
	}
	req := flags.request(expr)
	req.Group = group
	req.View = view
	req.ReturnType = returnType

	s, err := flags.prepare(req)
	if err != nil {
		return err
	}
	sig, err := s.Signature()
	if err != nil {
		return err
	}

	result := RefResult{Type: expr, Signature: sig, Reference: typeref.Summarize(s.Reference())}
	if flags.Format != FormatText {
		return OutputStructured(out, result, flags.Format)
	}

	r := result.Reference
	Writef(out, "Kind: %s\n", r.Kind)
	if r.Name != "" {
		Writef(out, "Name: %s\n", r.Name)
	}
	if r.Container != "" {
		Writef(out, "Container: %s\n", r.Container)
	}
	if r.ElementType != "" {
		Writef(out, "Element Type: %s\n", r.ElementType)
	}
	if r.ValueType != "" {
		Writef(out, "Value Type: %s\n", r.ValueType)
	}
	if len(r.AllowableValues) > 0 {
		Writef(out, "Allowable Values: %v\n", r.AllowableValues)
	}
	return nil
}
