package typeref

import (
	"github.com/erraggy/modelref/enums"
	"github.com/erraggy/modelref/modelctx"
	"github.com/erraggy/modelref/restype"
)

// NameResolver turns a type into a display name. It is owned by the caller
// and may recurse into a larger model-building pipeline; it must terminate.
type NameResolver interface {
	TypeName(ctx *modelctx.Context, t restype.ResolvedType) string
}

// NameResolverFunc adapts a function to the NameResolver interface.
type NameResolverFunc func(ctx *modelctx.Context, t restype.ResolvedType) string

// TypeName implements NameResolver.
func (f NameResolverFunc) TypeName(ctx *modelctx.Context, t restype.ResolvedType) string {
	return f(ctx, t)
}

// Option configures reference building.
type Option func(*builderConfig)

type builderConfig struct {
	lookup enums.Lookup
}

// WithValueLookup sets the enumerable lookup used for allowable values.
// The default is enums.Default(). A nil lookup keeps the default.
func WithValueLookup(lookup enums.Lookup) Option {
	return func(cfg *builderConfig) {
		if lookup != nil {
			cfg.lookup = lookup
		}
	}
}

func newBuilderConfig(opts []Option) *builderConfig {
	cfg := &builderConfig{lookup: enums.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewReferenceFactory returns a function that builds references for types
// nested in parent, naming them with names.
func NewReferenceFactory(parent *modelctx.Context, names NameResolver, opts ...Option) func(restype.ResolvedType) Reference {
	cfg := newBuilderConfig(opts)
	return func(t restype.ResolvedType) Reference {
		return cfg.build(parent, names, t)
	}
}

// BuildReference returns the model reference for t. See the package
// documentation for the order in which cases are tried.
func BuildReference(parent *modelctx.Context, names NameResolver, t restype.ResolvedType, opts ...Option) Reference {
	return newBuilderConfig(opts).build(parent, names, t)
}

func (cfg *builderConfig) build(parent *modelctx.Context, names NameResolver, t restype.ResolvedType) Reference {
	switch Classify(t) {
	case CaseFileContainer:
		return &ContainerRef{ContainerKind: ContainerType(t), ElementTypeName: FileTypeName}

	case CaseContainer:
		elem := CollectionElementType(t)
		return &ContainerRef{
			ContainerKind:   ContainerType(t),
			ElementTypeName: names.TypeName(modelctx.FromParent(parent, elem), elem),
			AllowableValues: AllowableValues(cfg.lookup, elem),
		}

	case CaseMap:
		value := MapValueType(t)
		return &MapRef{ValueTypeName: names.TypeName(modelctx.FromParent(parent, value), value)}

	case CaseVoid:
		return &VoidRef{}

	case CaseFile:
		return &FileRef{}

	default:
		return &ScalarRef{
			Name:            names.TypeName(parent, t),
			AllowableValues: AllowableValues(cfg.lookup, t),
		}
	}
}
