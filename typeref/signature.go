package typeref

import (
	"reflect"

	"github.com/erraggy/modelref/restype"
)

// TypeSignature returns t's signature. It reports false when t is nil,
// including a nil pointer stored in the interface.
func TypeSignature(t restype.ResolvedType) (string, bool) {
	if t == nil {
		return "", false
	}
	if v := reflect.ValueOf(t); v.Kind() == reflect.Pointer && v.IsNil() {
		return "", false
	}
	return t.Signature(), true
}
