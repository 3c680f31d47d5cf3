package commands

import "io"

// NameResult is the structured output of the name command.
type NameResult struct {
	Type          string `json:"type"           yaml:"type"`
	Name          string `json:"name"           yaml:"name"`
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`
	Signature     string `json:"signature"      yaml:"signature"`
	Case          string `json:"case"           yaml:"case"`
}

// HandleName executes the name command: it prints the model name of a type.
func HandleName(args []string, out io.Writer) error {
	fs, flags := newFlagSet("name")
	fs.Usage = usage(fs, "Print the model name of a Go type expression.",
		"modelref name '[]string'",
		"modelref name --naming pascal --opaque github.com/org/models.Pet",
		"modelref name --format json 'map[string]int64'",
	)

	expr, ok, err := parseArgs(fs, args)
	if !ok {
		return err
	}
	s, err := flags.prepare(flags.request(expr))
	if err != nil {
		return err
	}
	sig, err := s.Signature()
	if err != nil {
		return err
	}

	result := NameResult{
		Type:          expr,
		Name:          s.Name(),
		CanonicalName: s.CanonicalName(),
		Signature:     sig,
		Case:          s.Case().String(),
	}
	if flags.Format != FormatText {
		return OutputStructured(out, result, flags.Format)
	}
	Writef(out, "%s\n", result.Name)
	return nil
}
