// Package typenames maps erased primitive identities to the language-neutral
// names used in API documentation.
//
// The default table follows the OpenAPI type/format vocabulary:
//
//	int8, int16, int32, uint8..uint16  → int (uint8 → byte)
//	int, int64, uint32..uint64         → long
//	float32 → float, float64 → double
//	bool → boolean, string → string
//	time.Time → date-time, time.Duration → long
//	math/big.Int → biginteger, math/big.Float and math/big.Rat → bigdecimal
//	github.com/google/uuid.UUID → uuid
//	[]byte, encoding/json.RawMessage → binary
package typenames

import (
	"maps"
	"slices"
	"sync"
)

// Table is a primitive-name lookup table. A Table is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	names map[string]string
}

var defaultNames = map[string]string{
	"bool":    "boolean",
	"string":  "string",
	"int":     "long",
	"int8":    "int",
	"int16":   "int",
	"int32":   "int",
	"int64":   "long",
	"uint":    "long",
	"uint8":   "byte",
	"uint16":  "int",
	"uint32":  "long",
	"uint64":  "long",
	"uintptr": "long",
	"float32": "float",
	"float64": "double",
	"void":    "void",

	"time.Time":                   "date-time",
	"time.Duration":               "long",
	"math/big.Int":                "biginteger",
	"math/big.Float":              "bigdecimal",
	"math/big.Rat":                "bigdecimal",
	"github.com/google/uuid.UUID": "uuid",
	"encoding/json.Number":        "double",
	"encoding/json.RawMessage":    "binary",
	"[]byte":                      "binary",
}

var defaultTable = New(nil)

// Default returns the shared default table.
func Default() *Table {
	return defaultTable
}

// New returns a table holding the default mappings overlaid with overrides.
func New(overrides map[string]string) *Table {
	names := maps.Clone(defaultNames)
	maps.Copy(names, overrides)
	return &Table{names: names}
}

// Lookup returns the canonical name for an erased identity.
// The second result is false when the identity has no entry.
func (t *Table) Lookup(identity string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.names[identity]
	return name, ok
}

// Set adds or replaces the mapping for identity.
func (t *Table) Set(identity, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[identity] = name
}

// Identities returns the identities with entries, sorted.
func (t *Table) Identities() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.names))
}
