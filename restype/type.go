package restype

import "strings"

// ResolvedType is a type as seen after generic resolution.
// Implementations must be immutable and their accessors free of side effects.
type ResolvedType interface {
	// ErasedType returns the base identity with type arguments stripped.
	ErasedType() *Class
	// TypeParameters returns the resolved type arguments in declaration order.
	TypeParameters() []ResolvedType
	// ArrayElementType returns the element type of an array, or nil.
	ArrayElementType() ResolvedType
	// Signature returns the full type including its type arguments.
	Signature() string
}

// Type is the standard ResolvedType implementation.
type Type struct {
	erased *Class
	params []ResolvedType
	elem   ResolvedType
	sig    string
}

// Ensure Type implements ResolvedType at compile time.
var _ ResolvedType = (*Type)(nil)

// Common resolved types.
var (
	VoidType = New(Void)
	UnitType = New(Unit)
	AnyType  = New(AnyClass)
	FileType = New(MultipartFile)
)

// New returns a resolved type for class c with the given type arguments.
func New(c *Class, params ...ResolvedType) *Type {
	return &Type{erased: c, params: params}
}

// Primitive returns a resolved primitive type with the given name.
func Primitive(name string) *Type {
	return New(NewClass(name, KindPrimitive))
}

// Object returns a resolved object type with the given name and supertypes.
func Object(name string, supers ...*Class) *Type {
	return New(NewClass(name, KindObject, supers...))
}

// ListOf returns List[elem].
func ListOf(elem ResolvedType) *Type { return New(List, elem) }

// SetOf returns Set[elem].
func SetOf(elem ResolvedType) *Type { return New(Set, elem) }

// IterableOf returns Iterable[elem].
func IterableOf(elem ResolvedType) *Type { return New(Iterable, elem) }

// MapOf returns Map[key,value].
func MapOf(key, value ResolvedType) *Type { return New(Map, key, value) }

// ArrayOf returns an array of elem. The erased class is named "[...]" followed
// by the element's erased name.
func ArrayOf(elem ResolvedType) *Type {
	return &Type{
		erased: NewClass("[...]"+elem.ErasedType().Name(), KindArray),
		elem:   elem,
	}
}

// ErasedType implements ResolvedType.
func (t *Type) ErasedType() *Class { return t.erased }

// TypeParameters implements ResolvedType.
func (t *Type) TypeParameters() []ResolvedType { return t.params }

// ArrayElementType implements ResolvedType.
func (t *Type) ArrayElementType() ResolvedType { return t.elem }

// Signature implements ResolvedType.
//
//	List[string]
//	Map[string,[...]int32]
//	github.com/org/models.Page[github.com/org/models.User]
func (t *Type) Signature() string {
	if t.sig != "" {
		return t.sig
	}
	if t.elem != nil {
		return "[...]" + t.elem.Signature()
	}
	if len(t.params) == 0 {
		return t.erased.Name()
	}
	var b strings.Builder
	b.WriteString(t.erased.Name())
	b.WriteByte('[')
	for i, p := range t.params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Signature())
	}
	b.WriteByte(']')
	return b.String()
}

// String implements fmt.Stringer.
func (t *Type) String() string { return t.Signature() }
