package typeref

import "github.com/erraggy/modelref/enums"

// Names of the fixed reference shapes.
const (
	FileTypeName = "File"
	VoidTypeName = "void"
	MapKind      = "Map"
)

// Reference is a model reference. It is implemented by exactly five types:
// *ScalarRef, *ContainerRef, *MapRef, *FileRef and *VoidRef.
type Reference interface {
	// Kind returns the reference shape. A container of file uploads is a
	// CaseContainer shape, so Kind never returns CaseFileContainer.
	Kind() Case
	// TypeName returns the referenced name, or the container kind for
	// containers and maps.
	TypeName() string
	// IsCollection reports whether the reference describes a container.
	IsCollection() bool
	// IsMap reports whether the reference describes a map.
	IsMap() bool
	// ItemType returns the element or value type name of a container or
	// map, and "" otherwise.
	ItemType() string
	// Values returns the allowable values, or nil.
	Values() *enums.ValueSet

	sealed()
}

// ScalarRef references a scalar or object type by name.
type ScalarRef struct {
	Name            string
	AllowableValues *enums.ValueSet
}

// ContainerRef references a list or set and its element type.
type ContainerRef struct {
	ContainerKind   string
	ElementTypeName string
	AllowableValues *enums.ValueSet
}

// MapRef references a free-form key-value object and its value type.
type MapRef struct {
	ValueTypeName string
}

// FileRef references a binary upload.
type FileRef struct{}

// VoidRef references the absence of a value.
type VoidRef struct{}

// Ensure every shape implements Reference at compile time.
var (
	_ Reference = (*ScalarRef)(nil)
	_ Reference = (*ContainerRef)(nil)
	_ Reference = (*MapRef)(nil)
	_ Reference = (*FileRef)(nil)
	_ Reference = (*VoidRef)(nil)
)

// Kind implements Reference.
func (*ScalarRef) Kind() Case { return CaseScalar }

// TypeName implements Reference.
func (r *ScalarRef) TypeName() string { return r.Name }

// IsCollection implements Reference.
func (*ScalarRef) IsCollection() bool { return false }

// IsMap implements Reference.
func (*ScalarRef) IsMap() bool { return false }

// ItemType implements Reference.
func (*ScalarRef) ItemType() string { return "" }

// Values implements Reference.
func (r *ScalarRef) Values() *enums.ValueSet { return r.AllowableValues }

func (*ScalarRef) sealed() {}

// Kind implements Reference.
func (*ContainerRef) Kind() Case { return CaseContainer }

// TypeName implements Reference.
func (r *ContainerRef) TypeName() string { return r.ContainerKind }

// IsCollection implements Reference.
func (*ContainerRef) IsCollection() bool { return true }

// IsMap implements Reference.
func (*ContainerRef) IsMap() bool { return false }

// ItemType implements Reference.
func (r *ContainerRef) ItemType() string { return r.ElementTypeName }

// Values implements Reference.
func (r *ContainerRef) Values() *enums.ValueSet { return r.AllowableValues }

func (*ContainerRef) sealed() {}

// Kind implements Reference.
func (*MapRef) Kind() Case { return CaseMap }

// TypeName implements Reference. It is always "Map".
func (*MapRef) TypeName() string { return MapKind }

// IsCollection implements Reference.
func (*MapRef) IsCollection() bool { return false }

// IsMap implements Reference.
func (*MapRef) IsMap() bool { return true }

// ItemType implements Reference.
func (r *MapRef) ItemType() string { return r.ValueTypeName }

// Values implements Reference. Maps never carry allowable values.
func (*MapRef) Values() *enums.ValueSet { return nil }

// ContainerKind returns "Map".
func (*MapRef) ContainerKind() string { return MapKind }

// HasMapMarker reports that the map is rendered as a free-form object.
func (*MapRef) HasMapMarker() bool { return true }

func (*MapRef) sealed() {}

// Kind implements Reference.
func (*FileRef) Kind() Case { return CaseFile }

// TypeName implements Reference. It is always "File".
func (*FileRef) TypeName() string { return FileTypeName }

// IsCollection implements Reference.
func (*FileRef) IsCollection() bool { return false }

// IsMap implements Reference.
func (*FileRef) IsMap() bool { return false }

// ItemType implements Reference.
func (*FileRef) ItemType() string { return "" }

// Values implements Reference.
func (*FileRef) Values() *enums.ValueSet { return nil }

func (*FileRef) sealed() {}

// Kind implements Reference.
func (*VoidRef) Kind() Case { return CaseVoid }

// TypeName implements Reference. It is always "void".
func (*VoidRef) TypeName() string { return VoidTypeName }

// IsCollection implements Reference.
func (*VoidRef) IsCollection() bool { return false }

// IsMap implements Reference.
func (*VoidRef) IsMap() bool { return false }

// ItemType implements Reference.
func (*VoidRef) ItemType() string { return "" }

// Values implements Reference.
func (*VoidRef) Values() *enums.ValueSet { return nil }

func (*VoidRef) sealed() {}
