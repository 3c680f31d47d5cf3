// Package typeexpr turns a textual type-resolution request into a resolved
// type plus the runtime collaborators needed to answer it. The CLI and the
// MCP server share it so both surfaces behave identically.
package typeexpr

import (
	"errors"
	"maps"

	"github.com/erraggy/modelref/config"
	"github.com/erraggy/modelref/enums"
	"github.com/erraggy/modelref/logging"
	"github.com/erraggy/modelref/modelctx"
	"github.com/erraggy/modelref/referrors"
	"github.com/erraggy/modelref/restype"
	"github.com/erraggy/modelref/typeref"
)

// Request describes one resolution request.
type Request struct {
	// Type is a Go type expression such as "map[string][]int32", or an
	// erased model identity when Opaque is set.
	Type string

	// Opaque treats Type as an object identity ("github.com/org/models.Status")
	// instead of parsing it.
	Opaque bool

	// Naming and GenericNaming override the configured strategies.
	Naming        string
	GenericNaming string

	Group      string
	View       string
	ReturnType bool

	// Enums registers extra allowable values keyed by erased identity.
	Enums map[string][]string
}

// Session is a prepared request.
type Session struct {
	Type    restype.ResolvedType
	Context *modelctx.Context
	Runtime *config.Runtime
}

// Prepare validates req against base, resolves its type expression with
// types (nil means restype.DefaultTypes) and builds the runtime.
func Prepare(base *config.Config, types *restype.Types, req Request, logger logging.Logger) (*Session, error) {
	if base == nil {
		base = config.Default()
	}
	cfg := *base
	if req.Naming != "" {
		cfg.Naming = req.Naming
	}
	if req.GenericNaming != "" {
		cfg.Generic = req.GenericNaming
	}
	if len(req.Enums) > 0 {
		cfg.Enums = maps.Clone(base.Enums)
		if cfg.Enums == nil {
			cfg.Enums = make(map[string][]string, len(req.Enums))
		}
		maps.Copy(cfg.Enums, req.Enums)
	}

	rt, err := cfg.Apply(logger)
	if err != nil {
		return nil, err
	}

	t, err := resolve(req, types)
	if err != nil {
		return nil, err
	}

	var opts []modelctx.Option
	if req.Group != "" {
		opts = append(opts, modelctx.WithGroup(req.Group))
	}
	if req.View != "" {
		opts = append(opts, modelctx.WithView(req.View))
	}
	if req.ReturnType {
		opts = append(opts, modelctx.AsReturnType())
	}

	rt.Logger.Debug("typeexpr: prepared", "type", req.Type, "signature", t.Signature())
	return &Session{Type: t, Context: modelctx.New(t, opts...), Runtime: rt}, nil
}

func resolve(req Request, types *restype.Types) (restype.ResolvedType, error) {
	if !req.Opaque {
		return restype.ParseGo(req.Type, types)
	}
	if req.Type == "" {
		return nil, &referrors.ParseError{Message: "empty model identity"}
	}
	return restype.Object(req.Type), nil
}

// Name returns the resolver's display name for the session type.
func (s *Session) Name() string {
	return s.Runtime.Resolver.TypeName(s.Context, s.Type)
}

// CanonicalName returns the canonical name using the configured primitive
// table.
func (s *Session) CanonicalName() string {
	return typeref.NameForWith(s.Runtime.Names, s.Type)
}

// Case returns the classification of the session type.
func (s *Session) Case() typeref.Case {
	return typeref.Classify(s.Type)
}

// Reference builds the model reference for the session type.
func (s *Session) Reference() typeref.Reference {
	return typeref.BuildReference(s.Context, s.Runtime.Resolver, s.Type,
		typeref.WithValueLookup(s.Runtime.Values))
}

// Values returns the allowable values of the session type, or nil.
func (s *Session) Values() *enums.ValueSet {
	return typeref.AllowableValues(s.Runtime.Values, s.Type)
}

// Signature returns the structural signature of the session type.
func (s *Session) Signature() (string, error) {
	sig, ok := typeref.TypeSignature(s.Type)
	if !ok {
		return "", errors.New("typeexpr: type has no signature")
	}
	return sig, nil
}
