package restype

import "reflect"

// Kind classifies an erased class.
type Kind int

const (
	// KindObject is any class that is neither primitive nor an array.
	KindObject Kind = iota
	// KindPrimitive is a scalar such as a number, boolean, string, date or binary blob.
	KindPrimitive
	// KindArray is a fixed array whose element type is reported separately.
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	default:
		return "object"
	}
}

// Class is an erased type identity. Classes are compared by name and kind,
// so two Class values built independently for the same Go type are equal.
type Class struct {
	name   string
	kind   Kind
	supers []*Class
	goType reflect.Type
}

// Well-known classes.
var (
	Iterable      = NewClass("Iterable", KindObject)
	Collection    = NewClass("Collection", KindObject, Iterable)
	List          = NewClass("List", KindObject, Collection)
	Set           = NewClass("Set", KindObject, Collection)
	Map           = NewClass("Map", KindObject)
	MultipartFile = NewClass("mime/multipart.File", KindObject)

	// Void is the primitive void sentinel.
	Void = NewClass("void", KindPrimitive)
	// Unit is the boxed void sentinel, Go's empty struct.
	Unit = NewClass("struct{}", KindObject)
	// AnyClass is the empty interface.
	AnyClass = NewClass("any", KindObject)
)

// NewClass creates a class with the given fully qualified name, kind and
// direct supertypes.
func NewClass(name string, kind Kind, supers ...*Class) *Class {
	return &Class{name: name, kind: kind, supers: supers}
}

// withGoType returns c after recording the reflect.Type it was derived from.
func (c *Class) withGoType(t reflect.Type) *Class {
	c.goType = t
	return c
}

// Name returns the fully qualified erased name, e.g. "time.Time" or
// "github.com/org/models.User".
func (c *Class) Name() string { return c.name }

// Kind returns the class kind.
func (c *Class) Kind() Kind { return c.kind }

// Supertypes returns the direct supertypes.
func (c *Class) Supertypes() []*Class { return c.supers }

// GoType returns the reflect.Type this class was derived from, or nil when
// the class was built by hand.
func (c *Class) GoType() reflect.Type { return c.goType }

// String implements fmt.Stringer.
func (c *Class) String() string { return c.name }

// Equal reports whether c and other denote the same erased identity.
func (c *Class) Equal(other *Class) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.name == other.name && c.kind == other.kind
}

// AssignableTo reports whether a value of class c can be used where target
// is expected. The relation is reflexive and follows supertypes transitively.
// A nil class is assignable to nothing.
func (c *Class) AssignableTo(target *Class) bool {
	if c == nil || target == nil {
		return false
	}
	if c.Equal(target) {
		return true
	}
	for _, s := range c.supers {
		if s.AssignableTo(target) {
			return true
		}
	}
	return false
}
