package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type typeNameOutput struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	Signature     string `json:"signature"`
	Case          string `json:"case"`
}

func handleTypeName(_ context.Context, _ *mcp.CallToolRequest, input typeInput) (*mcp.CallToolResult, typeNameOutput, error) {
	s, err := prepare(input.request())
	if err != nil {
		return errResult(err), typeNameOutput{}, nil
	}
	sig, err := s.Signature()
	if err != nil {
		return errResult(err), typeNameOutput{}, nil
	}
	return nil, typeNameOutput{
		Type:          input.Type,
		Name:          s.Name(),
		CanonicalName: s.CanonicalName(),
		Signature:     sig,
		Case:          s.Case().String(),
	}, nil
}
