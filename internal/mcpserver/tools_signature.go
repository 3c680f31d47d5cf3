package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type signatureOutput struct {
	Type      string `json:"type"`
	Signature string `json:"signature"`
}

func handleTypeSignature(_ context.Context, _ *mcp.CallToolRequest, input typeInput) (*mcp.CallToolResult, signatureOutput, error) {
	s, err := prepare(input.request())
	if err != nil {
		return errResult(err), signatureOutput{}, nil
	}
	sig, err := s.Signature()
	if err != nil {
		return errResult(err), signatureOutput{}, nil
	}
	return nil, signatureOutput{Type: input.Type, Signature: sig}, nil
}
