package naming

import (
	"path"
	"strings"

	"github.com/erraggy/modelref/modelctx"
	"github.com/erraggy/modelref/referrors"
	"github.com/erraggy/modelref/restype"
	"github.com/erraggy/modelref/typeref"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const anonymousTypeName = "AnonymousType"

// NameContext provides the type metadata passed to name templates and
// custom naming functions.
type NameContext struct {
	// Type is the type name without package (e.g., "User", "Page[User]").
	Type string

	// TypeSanitized is Type with generic parameters formatted per the
	// generic strategy.
	TypeSanitized string

	// TypeBase is the type name without generic parameters (e.g., "Page").
	TypeBase string

	// Package is the package base name (e.g., "models").
	Package string

	// PackagePath is the full import path (e.g., "github.com/org/models").
	PackagePath string

	// PackagePathSanitized is PackagePath with slashes replaced.
	PackagePathSanitized string

	IsGeneric     bool
	GenericParams []string

	// GenericSuffix is the formatted generic portion (e.g., "_User_", "OfUser").
	GenericSuffix string

	IsAnonymous bool

	// Kind is "object", "primitive" or "array".
	Kind string

	// Group and View come from the model context.
	Group string
	View  string

	IsReturnType bool
	Depth        int
}

// NameFunc is the signature for custom naming functions.
type NameFunc func(ctx NameContext) string

// Resolver names model types. It implements typeref.NameResolver and is
// safe for concurrent use; it is immutable after New.
type Resolver struct {
	cfg resolverConfig
}

var _ typeref.NameResolver = (*Resolver)(nil)

// New creates a Resolver. It returns an error if a template option failed to
// parse.
func New(opts ...Option) (*Resolver, error) {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.templateError != nil {
		return nil, cfg.templateError
	}
	return &Resolver{cfg: *cfg}, nil
}

// TypeName implements typeref.NameResolver.
func (r *Resolver) TypeName(ctx *modelctx.Context, t restype.ResolvedType) string {
	if ctx == nil {
		ctx = modelctx.New(t)
	}
	if r.cfg.maxDepth > 0 && ctx.Depth() > r.cfg.maxDepth {
		err := &referrors.DepthError{Type: t.Signature(), Depth: ctx.Depth(), Max: r.cfg.maxDepth}
		r.cfg.logger.Warn("naming: depth limit reached, using canonical name", "error", err)
		return typeref.NameForWith(r.cfg.primitives, t)
	}

	switch {
	case typeref.IsVoid(t):
		return typeref.VoidTypeName
	case typeref.IsPrimitive(t):
		return typeref.NameForWith(r.cfg.primitives, t)
	}

	nc := r.buildContext(ctx, t)
	name := r.render(nc)
	r.cfg.logger.Debug("naming: resolved type name", "type", t.Signature(), "name", name, "depth", ctx.Depth())
	return name
}

// render applies, in priority order, the custom function, the template and
// the built-in strategy.
func (r *Resolver) render(nc NameContext) string {
	if r.cfg.fn != nil {
		return r.cfg.fn(nc)
	}
	if r.cfg.template != nil {
		var buf strings.Builder
		if err := r.cfg.template.Execute(&buf, nc); err != nil {
			r.cfg.logger.Warn("naming: template execution failed", "type", nc.Type, "error", err)
			return r.defaultName(nc)
		}
		return sanitizeName(buf.String())
	}
	return r.applyStrategy(nc)
}

func (r *Resolver) buildContext(ctx *modelctx.Context, t restype.ResolvedType) NameContext {
	erased := t.ErasedType()
	pkgPath, typeName := splitQualified(erased.Name())

	nc := NameContext{
		Type:                 typeName,
		TypeBase:             typeName,
		TypeSanitized:        typeName,
		PackagePath:          pkgPath,
		PackagePathSanitized: sanitizePath(pkgPath),
		Kind:                 erased.Kind().String(),
		Group:                ctx.Group(),
		View:                 ctx.View(),
		IsReturnType:         ctx.IsReturnType(),
		Depth:                ctx.Depth(),
	}
	if pkgPath != "" {
		nc.Package = path.Base(pkgPath)
	}

	goType := erased.GoType()
	if goType != nil && goType.Name() == "" {
		nc.IsAnonymous = true
		nc.Type, nc.TypeBase, nc.TypeSanitized = "", "", ""
		return nc
	}

	var params []string
	if goType != nil {
		// Instantiated Go generics carry their arguments only in the name.
		if strings.Contains(goType.Name(), "[") {
			nc.Type = goType.Name()
			params = extractGenericParams(goType.Name())
		}
	} else {
		for _, p := range t.TypeParameters() {
			params = append(params, r.TypeName(modelctx.FromParent(ctx, p), p))
		}
		if len(params) > 0 {
			nc.Type = typeName + "[" + strings.Join(params, ",") + "]"
		}
	}
	if len(params) > 0 {
		nc.IsGeneric = true
		nc.GenericParams = params
		nc.GenericSuffix = r.formatGenericSuffix(r.sanitizeGenericParams(params))
		nc.TypeSanitized = nc.TypeBase + nc.GenericSuffix
	}
	return nc
}

// splitQualified splits "github.com/org/models.User" into its package path
// and type name. Names without a package return an empty path.
func splitQualified(name string) (pkgPath, typeName string) {
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", name
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}

// sanitizeGenericParams strips package prefixes unless IncludePackage is
// set, flattens nested brackets and optionally applies the base casing.
func (r *Resolver) sanitizeGenericParams(params []string) []string {
	result := make([]string, len(params))
	for i, param := range params {
		param = sanitizeName(r.shortParam(param))
		if r.cfg.genericConfig.ApplyBaseCasing {
			param = r.applyCasing(param)
		}
		result[i] = param
	}
	return result
}

// shortParam rewrites one generic argument, recursing into its own
// arguments: "github.com/org/models.Page[github.com/org/models.User]"
// becomes "Page[User]", or "models_Page[models_User]" with IncludePackage.
func (r *Resolver) shortParam(param string) string {
	if elem, ok := strings.CutPrefix(param, "[]"); ok {
		return "List[" + r.shortParam(elem) + "]"
	}
	param = strings.TrimLeft(param, "*")

	base := extractBaseTypeName(param)
	if r.cfg.genericConfig.IncludePackage {
		if pkgPath, name := splitQualified(base); pkgPath != "" {
			base = path.Base(pkgPath) + "_" + name
		}
		base = strings.ReplaceAll(base, ".", "_")
	} else if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[idx+1:]
	}

	nested := extractGenericParams(param)
	if len(nested) == 0 {
		return base
	}
	parts := make([]string, len(nested))
	for i, n := range nested {
		parts[i] = r.shortParam(n)
	}
	return base + "[" + strings.Join(parts, ",") + "]"
}

func (r *Resolver) formatGenericSuffix(params []string) string {
	if len(params) == 0 {
		return ""
	}
	gc := r.cfg.genericConfig

	switch gc.Strategy {
	case GenericOf:
		return "Of" + strings.Join(r.title(params), gc.ParamSeparator+"Of")

	case GenericFor:
		return "For" + strings.Join(r.title(params), gc.ParamSeparator+"For")

	case GenericAngleBrackets:
		return "<" + strings.Join(params, ",") + ">"

	case GenericFlattened:
		return strings.Join(r.title(params), "")

	default: // GenericUnderscore
		sep := gc.Separator
		if sep == "" {
			sep = "_"
		}
		paramSep := gc.ParamSeparator
		if paramSep == "" {
			paramSep = "_"
		}
		return sep + strings.Join(params, paramSep) + sep
	}
}

// title upper-cases the first letter of each parameter so that "string"
// reads as "OfString". Casers are stateful, so each call gets its own.
func (r *Resolver) title(params []string) []string {
	titler := cases.Title(language.Und, cases.NoLower)
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = titler.String(p)
	}
	return out
}

func (r *Resolver) applyCasing(s string) string {
	switch r.cfg.strategy {
	case StrategyPascalCase:
		return toPascalCase(s)
	case StrategyCamelCase:
		return toCamelCase(s)
	case StrategySnakeCase:
		return toSnakeCase(s)
	case StrategyKebabCase:
		return toKebabCase(s)
	default:
		return s
	}
}

func (r *Resolver) applyStrategy(nc NameContext) string {
	if nc.IsAnonymous {
		return anonymousTypeName
	}

	switch r.cfg.strategy {
	case StrategyQualified:
		if nc.PackagePath == "" {
			return nc.TypeSanitized
		}
		return nc.PackagePath + "." + nc.TypeSanitized

	case StrategyPascalCase:
		return toPascalCase(nc.Package) + toPascalCase(nc.TypeSanitized)

	case StrategyCamelCase:
		return toCamelCase(nc.Package) + toPascalCase(nc.TypeSanitized)

	case StrategySnakeCase:
		base := toSnakeCase(nc.Package)
		typePart := toSnakeCase(nc.TypeSanitized)
		if base == "" {
			return typePart
		}
		return base + "_" + typePart

	case StrategyKebabCase:
		base := toKebabCase(nc.Package)
		typePart := toKebabCase(nc.TypeSanitized)
		if base == "" {
			return typePart
		}
		return base + "-" + typePart

	case StrategyTypeOnly:
		return nc.TypeSanitized

	case StrategyFullPath:
		if nc.PackagePathSanitized == "" {
			return nc.TypeSanitized
		}
		return nc.PackagePathSanitized + "_" + nc.TypeSanitized

	default: // StrategyDefault
		return r.defaultName(nc)
	}
}

// defaultName generates the "package.TypeName" format.
func (r *Resolver) defaultName(nc NameContext) string {
	if nc.IsAnonymous {
		return anonymousTypeName
	}
	if nc.Package == "" {
		return nc.TypeSanitized
	}
	return nc.Package + "." + nc.TypeSanitized
}
