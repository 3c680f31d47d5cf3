package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type valuesOutput struct {
	Type      string   `json:"type"`
	Found     bool     `json:"found"`
	Values    []string `json:"values,omitempty"`
	ValueType string   `json:"value_type,omitempty"`
}

func handleAllowableValues(_ context.Context, _ *mcp.CallToolRequest, input typeInput) (*mcp.CallToolResult, valuesOutput, error) {
	s, err := prepare(input.request())
	if err != nil {
		return errResult(err), valuesOutput{}, nil
	}
	output := valuesOutput{Type: input.Type}
	if vs := s.Values(); vs != nil {
		output.Found = true
		output.Values = vs.Values
		output.ValueType = vs.ValueType
	}
	return nil, output, nil
}
