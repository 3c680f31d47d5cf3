package typeref

import (
	"testing"
	"time"

	"github.com/erraggy/modelref/restype"
	"github.com/erraggy/modelref/typenames"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pkg = "github.com/erraggy/modelref/typeref"

func TestNameFor(t *testing.T) {
	tests := []struct {
		name string
		typ  restype.ResolvedType
		want string
	}{
		{"int32", restype.For[int32](), "int"},
		{"int64", restype.For[int64](), "long"},
		{"float32", restype.For[float32](), "float"},
		{"float64", restype.For[float64](), "double"},
		{"bool", restype.For[bool](), "boolean"},
		{"string", restype.For[string](), "string"},
		{"time.Time", restype.For[time.Time](), "date-time"},
		{"uuid", restype.For[uuid.UUID](), "uuid"},
		{"void", restype.VoidType, "void"},
		{"unmapped primitive", restype.For[complex128](), "complex128"},
		{"array of int32", restype.For[[3]int32](), "int"},
		{"array of strings", restype.For[[2]string](), "string"},
		{"array of structs", restype.For[[2]user](), pkg + ".user"},
		{"struct", restype.For[user](), pkg + ".user"},
		{"enum", restype.For[Color](), pkg + ".Color"},
		{"slice", restype.For[[]string](), "List"},
		{"map", restype.For[map[string]int](), "Map"},
		{"hand-built object", restype.Object("com.example.Pet"), "com.example.Pet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NameFor(tt.typ)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestNameFor_ArrayMatchesElement(t *testing.T) {
	arrays := []restype.ResolvedType{
		restype.For[[3]int32](),
		restype.For[[1]bool](),
		restype.For[[4]time.Time](),
		restype.For[[2]user](),
		restype.ArrayOf(restype.Primitive("complex64")),
	}
	for _, arr := range arrays {
		t.Run(arr.Signature(), func(t *testing.T) {
			elem := restype.New(arr.ArrayElementType().ErasedType())
			assert.Equal(t, NameFor(elem), NameFor(arr))
		})
	}
}

func TestNameForWith(t *testing.T) {
	table := typenames.New(map[string]string{"int": "integer"})

	assert.Equal(t, "integer", NameForWith(table, restype.For[int]()))
	assert.Equal(t, "integer", NameForWith(table, restype.For[[2]int]()))
	assert.Equal(t, "long", NameFor(restype.For[int]()))
}

func TestNameFor_ParsedArray(t *testing.T) {
	rt, err := restype.ParseGo("[3]int32", nil)
	require.NoError(t, err)
	require.NotNil(t, rt.ArrayElementType())
	assert.True(t, IsPrimitive(rt))
	assert.False(t, IsContainerType(rt))
	assert.Equal(t, "int", NameFor(rt))
}

type vector [3]int32

func TestNameFor_NamedArray(t *testing.T) {
	rt := restype.For[vector]()
	assert.True(t, IsPrimitive(rt))
	assert.Equal(t, "int", NameFor(rt))
}
