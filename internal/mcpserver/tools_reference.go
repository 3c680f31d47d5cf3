package mcpserver

import (
	"context"

	"github.com/erraggy/modelref/typeref"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type referenceInput struct {
	Type          string              `json:"type"                     jsonschema:"Go type expression such as []string or map[string]int32, or a model identity when opaque is set"`
	Opaque        bool                `json:"opaque,omitempty"         jsonschema:"Treat type as a model identity instead of parsing it"`
	Naming        string              `json:"naming,omitempty"         jsonschema:"Naming strategy override"`
	GenericNaming string              `json:"generic_naming,omitempty" jsonschema:"Generic naming override"`
	Enums         map[string][]string `json:"enums,omitempty"          jsonschema:"Extra allowable values keyed by model identity"`
	Group         string              `json:"group,omitempty"          jsonschema:"Documentation group of the enclosing model (default: default)"`
	View          string              `json:"view,omitempty"           jsonschema:"Serialization view of the enclosing model"`
	ReturnType    bool                `json:"return_type,omitempty"    jsonschema:"The type is an operation return type rather than a request parameter"`
}

type referenceOutput struct {
	Type      string          `json:"type"`
	Signature string          `json:"signature"`
	Reference typeref.Summary `json:"reference"`
}

func handleModelReference(_ context.Context, _ *mcp.CallToolRequest, input referenceInput) (*mcp.CallToolResult, referenceOutput, error) {
	req := typeInput{
		Type:          input.Type,
		Opaque:        input.Opaque,
		Naming:        input.Naming,
		GenericNaming: input.GenericNaming,
		Enums:         input.Enums,
	}.request()
	req.Group = input.Group
	req.View = input.View
	req.ReturnType = input.ReturnType

	s, err := prepare(req)
	if err != nil {
		return errResult(err), referenceOutput{}, nil
	}
	sig, err := s.Signature()
	if err != nil {
		return errResult(err), referenceOutput{}, nil
	}
	return nil, referenceOutput{
		Type:      input.Type,
		Signature: sig,
		Reference: typeref.Summarize(s.Reference()),
	}, nil
}
