// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes modelref type resolution as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/modelref"
	"github.com/erraggy/modelref/internal/typeexpr"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `modelref MCP server: resolves Go type expressions into API model references.

Types are Go type expressions such as "[]string", "map[string][]int32", "*time.Time", "[]*multipart.FileHeader" or "void". Named types are limited to the standard types modelref knows (time, uuid, math/big, encoding/json, mime/multipart). Set opaque=true to pass a model identity such as "github.com/org/models.Pet" instead.

Configuration: defaults come from the YAML file named by MODELREF_CONFIG and the MODELREF_* environment variables set in your MCP client config.

Key settings:
- MODELREF_NAMING (default: default): default, qualified, type-only, pascal, camel, snake, kebab, full-path
- MODELREF_GENERIC_NAMING (default: underscore): underscore, of, for, angle, flattened
- MODELREF_MAX_DEPTH (default: 0, unlimited): resolver recursion limit
- MODELREF_LOG_LEVEL (default: info)

Every tool accepts naming, generic_naming and enums to override the configuration for one call.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "modelref", Version: modelref.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "type_name",
		Description: "Resolve a Go type expression and return its model name under the configured naming strategy, its canonical name (primitive names such as long, double, date-time; arrays named by their element), its structural signature and its classification (file-container, container, map, void, file or scalar).",
	}, handleTypeName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "model_reference",
		Description: "Build the model reference for a Go type expression as it would appear inside a model. Returns the reference kind, the container kind (List, Set, Map) with its element or value type name, or the scalar model name, plus allowable enumeration values. Use group, view and return_type to describe the enclosing model context.",
	}, handleModelReference)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "allowable_values",
		Description: "Return the allowable enumeration values of a type. Values come from the configuration's enums section, the enums argument, or types implementing EnumValues(). Use opaque=true with a model identity to look up configured enums.",
	}, handleAllowableValues)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "type_signature",
		Description: "Return the structural signature of a Go type expression, for example Map[string,List[int32]]. Signatures serve as deduplication keys: two types with the same signature are the same model.",
	}, handleTypeSignature)
}

// prepare resolves a tool request against the server configuration.
func prepare(req typeexpr.Request) (*typeexpr.Session, error) {
	return typeexpr.Prepare(cfg, knownTypes, req, logger)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
