package restype

import (
	"encoding/json"
	"math/big"
	"mime/multipart"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	fileHeaderType    = reflect.TypeOf(multipart.FileHeader{})
	multipartFileType = reflect.TypeOf((*multipart.File)(nil)).Elem()
)

// primitiveGoTypes are named Go types that resolve as primitives rather than
// as objects.
var primitiveGoTypes = map[reflect.Type]bool{
	reflect.TypeOf(time.Time{}):       true,
	reflect.TypeOf(time.Duration(0)):  true,
	reflect.TypeOf(uuid.UUID{}):       true,
	reflect.TypeOf(big.Int{}):         true,
	reflect.TypeOf(big.Float{}):       true,
	reflect.TypeOf(big.Rat{}):         true,
	reflect.TypeOf(json.Number("")):   true,
	reflect.TypeOf(json.RawMessage{}): true,
}

// Of resolves a Go type. It returns nil for a nil reflect.Type.
// Recursive named types such as "type Node []Node" resolve to a type whose
// parameter is the type itself.
func Of(t reflect.Type) ResolvedType {
	if t == nil {
		return nil
	}
	r := &resolver{inProgress: make(map[reflect.Type]*Type)}
	return r.of(t)
}

// TypeOf resolves the dynamic type of v. It returns nil for a nil v.
func TypeOf(v any) ResolvedType {
	return Of(reflect.TypeOf(v))
}

// For resolves the type argument T.
func For[T any]() ResolvedType {
	return Of(reflect.TypeOf((*T)(nil)).Elem())
}

func isUpload(t reflect.Type) bool {
	return t == fileHeaderType || t.Implements(multipartFileType)
}

// resolver tracks the named types being resolved by a single Of call.
type resolver struct {
	inProgress map[reflect.Type]*Type
}

func (r *resolver) of(t reflect.Type) ResolvedType {
	upload := isUpload(t)
	seen := map[reflect.Type]bool{t: true}
	for t.Kind() == reflect.Pointer && !seen[t.Elem()] {
		t = t.Elem()
		seen[t] = true
		upload = upload || isUpload(t)
	}
	return r.resolve(t, upload)
}

func (r *resolver) resolve(t reflect.Type, upload bool) ResolvedType {
	if primitiveGoTypes[t] {
		return &Type{erased: NewClass(qualifiedName(t), KindPrimitive).withGoType(t)}
	}
	if t.Name() == "" {
		return r.resolveUnnamed(t, upload)
	}
	if t.PkgPath() == "" && isBasic(t.Kind()) {
		return &Type{erased: NewClass(t.Name(), KindPrimitive).withGoType(t)}
	}
	if typ, ok := r.inProgress[t]; ok {
		return typ
	}
	return r.resolveNamed(t, upload)
}

func (r *resolver) resolveUnnamed(t reflect.Type, upload bool) ResolvedType {
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Type{erased: NewClass("[]byte", KindPrimitive).withGoType(t)}
		}
		return ListOf(r.of(t.Elem()))
	case reflect.Array:
		return ArrayOf(r.of(t.Elem()))
	case reflect.Map:
		if isEmptyStruct(t.Elem()) {
			return SetOf(r.of(t.Key()))
		}
		return MapOf(r.of(t.Key()), r.of(t.Elem()))
	case reflect.Chan:
		return IterableOf(r.of(t.Elem()))
	case reflect.Struct:
		if t.NumField() == 0 {
			return UnitType
		}
	case reflect.Interface:
		if upload {
			return &Type{erased: NewClass(t.String(), KindObject, MultipartFile).withGoType(t)}
		}
		if t.NumMethod() == 0 {
			return AnyType
		}
	}
	var supers []*Class
	if upload {
		supers = append(supers, MultipartFile)
	}
	return &Type{erased: NewClass(t.String(), KindObject, supers...).withGoType(t)}
}

// resolveNamed registers the type as in progress before resolving its
// element types, so a self-reference resolves to the same *Type.
func (r *resolver) resolveNamed(t reflect.Type, upload bool) ResolvedType {
	var (
		supers []*Class
		kind   = KindObject
	)
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			kind = KindPrimitive
			break
		}
		supers = append(supers, List)
	case reflect.Array:
		kind = KindArray
	case reflect.Map:
		if isEmptyStruct(t.Elem()) {
			supers = append(supers, Set)
			break
		}
		supers = append(supers, Map)
	case reflect.Chan:
		supers = append(supers, Iterable)
	}
	if upload {
		supers = append(supers, MultipartFile)
	}
	name := qualifiedName(t)
	typ := &Type{
		erased: NewClass(stripTypeParams(name), kind, supers...).withGoType(t),
		sig:    name,
	}
	r.inProgress[t] = typ

	switch t.Kind() {
	case reflect.Slice:
		if kind != KindPrimitive {
			typ.params = []ResolvedType{r.of(t.Elem())}
		}
	case reflect.Array:
		typ.elem = r.of(t.Elem())
	case reflect.Map:
		if isEmptyStruct(t.Elem()) {
			typ.params = []ResolvedType{r.of(t.Key())}
			break
		}
		typ.params = []ResolvedType{r.of(t.Key()), r.of(t.Elem())}
	case reflect.Chan:
		typ.params = []ResolvedType{r.of(t.Elem())}
	}
	return typ
}

// qualifiedName returns "pkg/path.Name" for named types and the Go syntax
// of the type otherwise.
func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// stripTypeParams removes a generic instantiation suffix: "pkg.Page[pkg.User]" -> "pkg.Page".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
	return false
}
