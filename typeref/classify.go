package typeref

import "github.com/erraggy/modelref/restype"

// Container kinds reported by ContainerType.
const (
	ContainerList = "List"
	ContainerSet  = "Set"
)

// IsPrimitive reports whether t is a scalar primitive or an array of them.
func IsPrimitive(t restype.ResolvedType) bool {
	if t.ErasedType().Kind() == restype.KindPrimitive {
		return true
	}
	if elem := t.ArrayElementType(); elem != nil {
		return IsPrimitive(elem)
	}
	return false
}

// IsContainerType reports whether t is a single-element collection
// (list, set or iterable). Maps are never containers.
func IsContainerType(t restype.ResolvedType) bool {
	erased := t.ErasedType()
	return erased.AssignableTo(restype.Iterable) && !erased.AssignableTo(restype.Map)
}

// IsMapType reports whether t is a key-value map.
func IsMapType(t restype.ResolvedType) bool {
	return t.ErasedType().AssignableTo(restype.Map)
}

// IsVoid reports whether t is the void sentinel or its boxed form, struct{}.
func IsVoid(t restype.ResolvedType) bool {
	erased := t.ErasedType()
	return erased.Equal(restype.Void) || erased.Equal(restype.Unit)
}

// IsFileUpload reports whether t is a binary upload.
func IsFileUpload(t restype.ResolvedType) bool {
	return t.ErasedType().AssignableTo(restype.MultipartFile)
}

// ContainerType returns the container kind of a container type: "Set" for
// sets and "List" for every other collection.
func ContainerType(t restype.ResolvedType) string {
	if t.ErasedType().AssignableTo(restype.Set) {
		return ContainerSet
	}
	return ContainerList
}

// CollectionElementType returns the element type of a container, or
// restype.AnyType when the container carries no type parameter.
func CollectionElementType(t restype.ResolvedType) restype.ResolvedType {
	if params := t.TypeParameters(); len(params) > 0 {
		return params[0]
	}
	return restype.AnyType
}

// MapValueType returns the value type of a map, or restype.AnyType when the
// map carries fewer than two type parameters.
func MapValueType(t restype.ResolvedType) restype.ResolvedType {
	if params := t.TypeParameters(); len(params) > 1 {
		return params[1]
	}
	return restype.AnyType
}

// Case identifies which reference shape a type resolves to.
type Case int

const (
	// CaseFileContainer is a container whose elements are file uploads.
	CaseFileContainer Case = iota
	// CaseContainer is any other container.
	CaseContainer
	// CaseMap is a key-value map.
	CaseMap
	// CaseVoid is void or struct{}.
	CaseVoid
	// CaseFile is a bare file upload.
	CaseFile
	// CaseScalar is everything else.
	CaseScalar
)

var caseNames = [...]string{
	CaseFileContainer: "file-container",
	CaseContainer:     "container",
	CaseMap:           "map",
	CaseVoid:          "void",
	CaseFile:          "file",
	CaseScalar:        "scalar",
}

// String returns the case name.
func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return "unknown"
	}
	return caseNames[c]
}

// Classify returns the first case in priority order that t satisfies.
func Classify(t restype.ResolvedType) Case {
	switch {
	case IsContainerType(t) && IsFileUpload(CollectionElementType(t)):
		return CaseFileContainer
	case IsContainerType(t):
		return CaseContainer
	case IsMapType(t):
		return CaseMap
	case IsVoid(t):
		return CaseVoid
	case IsFileUpload(t):
		return CaseFile
	default:
		return CaseScalar
	}
}
