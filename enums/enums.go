// Package enums derives the allowable values of enumerable types.
//
// Go has no enum declaration, so a type is enumerable when either:
//   - it was registered explicitly with [Registry.Register] or [RegisterType]
//     (or loaded from YAML with [Registry.LoadYAML]), or
//   - its zero value (or a pointer to it) implements [EnumValuer].
//
// Explicit registrations win over EnumValuer.
//
//	type Color string
//
//	func (Color) EnumValues() []string { return []string{"RED", "GREEN", "BLUE"} }
package enums

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/erraggy/modelref/referrors"
	"github.com/erraggy/modelref/restype"
	"go.yaml.in/yaml/v4"
)

// ValueTypeList marks a value set that enumerates its members.
const ValueTypeList = "LIST"

// ValueSet is an ordered set of literal values a type may take.
type ValueSet struct {
	Values    []string `json:"values"     yaml:"values"`
	ValueType string   `json:"value_type" yaml:"value_type"`
}

// NewValueSet returns a list value set. Duplicate values are dropped,
// keeping the first occurrence.
func NewValueSet(values ...string) *ValueSet {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return &ValueSet{Values: out, ValueType: ValueTypeList}
}

// Contains reports whether v is one of the allowed values.
func (s *ValueSet) Contains(v string) bool {
	return s != nil && slices.Contains(s.Values, v)
}

// Lookup derives the value set of an erased class.
// It returns nil when the class is not enumerable.
type Lookup interface {
	ValuesFor(c *restype.Class) *ValueSet
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(c *restype.Class) *ValueSet

// ValuesFor implements Lookup.
func (f LookupFunc) ValuesFor(c *restype.Class) *ValueSet { return f(c) }

// EnumValuer is implemented by types that enumerate their own values.
type EnumValuer interface {
	EnumValues() []string
}

var enumValuerType = reflect.TypeOf((*EnumValuer)(nil)).Elem()

// Registry holds explicit enum registrations. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*ValueSet
}

// Ensure Registry implements Lookup at compile time.
var _ Lookup = (*Registry)(nil)

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*ValueSet)}
}

// Register records the values of the class with the given erased identity.
func (r *Registry) Register(identity string, values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[identity] = NewValueSet(values...)
}

// RegisterType records the values of T, formatted with fmt.Sprint.
func RegisterType[T any](r *Registry, values ...T) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprint(v)
	}
	r.Register(restype.For[T]().ErasedType().Name(), strs...)
}

// Identities returns the explicitly registered identities, sorted.
func (r *Registry) Identities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.byName))
}

// ValuesFor implements Lookup. Panics raised by an EnumValues method are not
// recovered.
func (r *Registry) ValuesFor(c *restype.Class) *ValueSet {
	if c == nil {
		return nil
	}
	r.mu.RLock()
	set, ok := r.byName[c.Name()]
	r.mu.RUnlock()
	if ok {
		return &ValueSet{Values: slices.Clone(set.Values), ValueType: set.ValueType}
	}
	return valuesFromGoType(c.GoType())
}

func valuesFromGoType(t reflect.Type) *ValueSet {
	if t == nil || t.Kind() == reflect.Interface {
		return nil
	}
	var v EnumValuer
	switch {
	case t.Implements(enumValuerType):
		v = reflect.New(t).Elem().Interface().(EnumValuer)
	case reflect.PointerTo(t).Implements(enumValuerType):
		v = reflect.New(t).Interface().(EnumValuer)
	default:
		return nil
	}
	values := v.EnumValues()
	if len(values) == 0 {
		return nil
	}
	return NewValueSet(values...)
}

// LoadYAML registers every entry of a YAML mapping from erased identity to
// a list of values:
//
//	github.com/org/models.Color: [RED, GREEN, BLUE]
//	github.com/org/models.Status:
//	  - active
//	  - disabled
func (r *Registry) LoadYAML(data []byte) error {
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return &referrors.ConfigError{Option: "enums", Message: "invalid enum document", Cause: err}
	}
	for identity, values := range entries {
		if len(values) == 0 {
			return &referrors.ConfigError{Option: "enums", Value: identity, Message: "enum has no values"}
		}
		r.Register(identity, values...)
	}
	return nil
}
