package typeref

import (
	"github.com/erraggy/modelref/restype"
	"github.com/erraggy/modelref/typenames"
)

// PrimitiveNames maps an erased primitive identity to its canonical name.
// *typenames.Table implements it.
type PrimitiveNames interface {
	Lookup(identity string) (string, bool)
}

// NameFor returns the canonical display name of t using the default
// primitive-name table.
func NameFor(t restype.ResolvedType) string {
	return NameForWith(typenames.Default(), t)
}

// NameForWith returns the canonical display name of t:
//   - primitives map through names, falling back to the erased name
//   - arrays map their element's erased name the same way
//   - anything else is its fully qualified erased name, verbatim
func NameForWith(names PrimitiveNames, t restype.ResolvedType) string {
	erased := t.ErasedType()
	if erased.Kind() == restype.KindPrimitive {
		return primitiveName(names, erased.Name())
	}
	if elem := t.ArrayElementType(); elem != nil {
		return primitiveName(names, elem.ErasedType().Name())
	}
	return erased.Name()
}

func primitiveName(names PrimitiveNames, identity string) string {
	if name, ok := names.Lookup(identity); ok {
		return name
	}
	return identity
}
