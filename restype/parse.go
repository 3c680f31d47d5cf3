package restype

import (
	"fmt"
	"maps"
	"math"
	"mime/multipart"
	"path"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/erraggy/modelref/referrors"
	"github.com/viant/xreflect"
)

// Types is a registry of named Go types that type expressions may refer to.
// Each type is reachable by its short name ("uuid.UUID") and its fully
// qualified name ("github.com/google/uuid.UUID"). Types is safe for
// concurrent use.
type Types struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
}

// NewTypes returns a registry holding the given types.
func NewTypes(types ...reflect.Type) *Types {
	r := &Types{byName: make(map[string]reflect.Type)}
	r.Register(types...)
	return r
}

// DefaultTypes returns a registry preloaded with the Go types that resolve
// specially: time, uuid, math/big, encoding/json and mime/multipart types.
func DefaultTypes() *Types {
	types := slices.Collect(maps.Keys(primitiveGoTypes))
	types = append(types,
		fileHeaderType,
		multipartFileType,
		reflect.TypeOf(multipart.Form{}),
	)
	return NewTypes(types...)
}

// Register adds named types to the registry. Unnamed types are ignored.
func (r *Types) Register(types ...reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		if t == nil || t.Name() == "" {
			continue
		}
		if t.PkgPath() == "" {
			r.byName[t.Name()] = t
			continue
		}
		r.byName[path.Base(t.PkgPath())+"."+t.Name()] = t
		r.byName[t.PkgPath()+"."+t.Name()] = t
	}
}

// Lookup returns the type registered under name.
func (r *Types) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// Names returns the registered names in sorted order.
func (r *Types) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.byName))
}

// ParseGo parses a Go type expression and resolves it with [Of]. Named
// types are looked up in types; a nil registry means [DefaultTypes].
// "void" is accepted as a spelling of [VoidType].
//
//	t, err := restype.ParseGo("map[string][]uuid.UUID", nil)
func ParseGo(expr string, types *Types) (ResolvedType, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &referrors.ParseError{Message: "empty type expression"}
	}
	if expr == "void" {
		return VoidType, nil
	}
	if types == nil {
		types = DefaultTypes()
	}
	rt, err := parseExpr(expr, types)
	if err != nil {
		return nil, &referrors.ParseError{Expr: expr, Message: "invalid type expression", Cause: err}
	}
	return Of(rt), nil
}

// builtinAliases are predeclared types xreflect does not recognize.
var builtinAliases = map[string]reflect.Type{
	"byte":       reflect.TypeFor[byte](),
	"rune":       reflect.TypeFor[rune](),
	"uintptr":    reflect.TypeFor[uintptr](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
	"any":        reflect.TypeFor[any](),
}

// parseExpr handles array, slice, pointer and map syntax itself, since
// xreflect reads "[N]T" as a slice, and hands the remaining operands to
// xreflect.
func parseExpr(expr string, types *Types) (reflect.Type, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case strings.HasPrefix(expr, "[]"):
		elem, err := parseExpr(expr[2:], types)
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case strings.HasPrefix(expr, "["):
		end := strings.IndexByte(expr, ']')
		if end < 0 {
			return nil, fmt.Errorf("unterminated array length in %q", expr)
		}
		n, err := strconv.Atoi(strings.TrimSpace(expr[1:end]))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid array length %q", expr[1:end])
		}
		elem, err := parseExpr(expr[end+1:], types)
		if err != nil {
			return nil, err
		}
		if size := elem.Size(); size > 0 && uintptr(n) > math.MaxInt32/size {
			return nil, fmt.Errorf("array length %d too large", n)
		}
		return reflect.ArrayOf(n, elem), nil
	case strings.HasPrefix(expr, "*"):
		elem, err := parseExpr(expr[1:], types)
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(expr, "map["):
		end := closingBracket(expr, len("map"))
		if end < 0 {
			return nil, fmt.Errorf("unterminated map key in %q", expr)
		}
		key, err := parseExpr(expr[len("map["):end], types)
		if err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, fmt.Errorf("invalid map key type %s", key)
		}
		value, err := parseExpr(expr[end+1:], types)
		if err != nil {
			return nil, err
		}
		return reflect.MapOf(key, value), nil
	}
	if t, ok := builtinAliases[expr]; ok {
		return t, nil
	}
	// xreflect passes the bare type name and carries the package
	// identifier in the options.
	lookup := func(name string, opts ...xreflect.Option) (reflect.Type, error) {
		qualified := xreflect.NewType(name, opts...).TypeName()
		for _, candidate := range []string{qualified, name} {
			if t, ok := types.Lookup(candidate); ok {
				return t, nil
			}
		}
		return nil, fmt.Errorf("unknown type %q", qualified)
	}
	return xreflect.Parse(expr, xreflect.WithTypeLookup(lookup))
}

// closingBracket returns the index of the "]" matching the "[" at open, or -1.
func closingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
