package typeref

import (
	"github.com/erraggy/modelref/enums"
	"github.com/erraggy/modelref/restype"
)

// AllowableValues returns the values t may take, or nil when t is not
// enumerable. A container with exactly one type parameter is unwrapped first,
// so List[Color] yields the values of Color. Raw containers and containers
// with several parameters are looked up as themselves.
func AllowableValues(lookup enums.Lookup, t restype.ResolvedType) *enums.ValueSet {
	if IsContainerType(t) {
		if params := t.TypeParameters(); len(params) == 1 {
			return lookup.ValuesFor(params[0].ErasedType())
		}
	}
	return lookup.ValuesFor(t.ErasedType())
}
