package commands

import "io"

// SigResult is the structured output of the sig command.
type SigResult struct {
	Type      string `json:"type"      yaml:"type"`
	Signature string `json:"signature" yaml:"signature"`
}

// HandleSig executes the sig command: it prints the structural signature of
// a type.
func HandleSig(args []string, out io.Writer) error {
	fs, flags := newFlagSet("sig")
	fs.Usage = usage(fs, "Print the structural signature of a Go type expression.",
		"modelref sig 'map[string][]int32'",
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
	if flags.Format != FormatText {
		return OutputStructured(out, SigResult{Type: expr, Signature: sig}, flags.Format)
	}
	Writef(out, "%s\n", sig)
	return nil
}
