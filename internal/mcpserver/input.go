package mcpserver

import "github.com/erraggy/modelref/internal/typeexpr"

// typeInput is the argument set shared by every tool.
type typeInput struct {
	Type          string              `json:"type"                     jsonschema:"Go type expression such as []string or map[string]int32, or a model identity when opaque is set"`
	Opaque        bool                `json:"opaque,omitempty"         jsonschema:"Treat type as a model identity such as github.com/org/models.Pet instead of parsing it"`
	Naming        string              `json:"naming,omitempty"         jsonschema:"Naming strategy override: default, qualified, type-only, pascal, camel, snake, kebab or full-path"`
	GenericNaming string              `json:"generic_naming,omitempty" jsonschema:"Generic naming override: underscore, of, for, angle or flattened"`
	Enums         map[string][]string `json:"enums,omitempty"          jsonschema:"Extra allowable values keyed by model identity"`
}

func (in typeInput) request() typeexpr.Request {
	return typeexpr.Request{
		Type:          in.Type,
		Opaque:        in.Opaque,
		Naming:        in.Naming,
		GenericNaming: in.GenericNaming,
		Enums:         in.Enums,
	}
}
