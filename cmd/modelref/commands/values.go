package commands

import "io"

// ValuesResult is the structured output of the values command.
type ValuesResult struct {
	Type      string   `json:"type"                 yaml:"type"`
	Found     bool     `json:"found"                yaml:"found"`
	Values    []string `json:"values,omitempty"     yaml:"values,omitempty"`
	ValueType string   `json:"value_type,omitempty" yaml:"value_type,omitempty"`
}

// HandleValues executes the values command: it prints the allowable values
// of a type, one per line.
func HandleValues(args []string, out io.Writer) error {
	fs, flags := newFlagSet("values")
	fs.Usage = usage(fs, "Print the allowable enumeration values of a type.",
		"modelref values --config modelref.yaml --opaque github.com/org/models.Status",
		"modelref values --opaque --enum x.Size=S,M,L --format json x.Size",
	)

	expr, ok, err := parseArgs(fs, args)
	if !ok {
		return err
	}
	s, err := flags.prepare(flags.request(expr))
	if err != nil {
		return err
	}

	result := ValuesResult{Type: expr}
	if vs := s.Values(); vs != nil {
		result.Found = true
		result.Values = vs.Values
		result.ValueType = vs.ValueType
	}
	if flags.Format != FormatText {
		return OutputStructured(out, result, flags.Format)
	}
	for _, v := range result.Values {
		Writef(out, "%s\n", v)
	}
	return nil
}
