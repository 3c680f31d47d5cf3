package typeref

import (
	"mime/multipart"
	"testing"
	"time"

	"github.com/erraggy/modelref/restype"
	"github.com/stretchr/testify/assert"
)

type tags []string

type labels map[string]string

func classificationFixtures() map[string]restype.ResolvedType {
	str := restype.For[string]()
	return map[string]restype.ResolvedType{
		"string":              str,
		"int32":               restype.For[int32](),
		"time.Time":           restype.For[time.Time](),
		"[]string":            restype.For[[]string](),
		"map[string]int32":    restype.For[map[string]int32](),
		"set":                 restype.For[map[string]struct{}](),
		"chan":                restype.For[chan user](),
		"[3]int32":            restype.For[[3]int32](),
		"named slice":         restype.For[tags](),
		"named map":           restype.For[labels](),
		"struct":              restype.For[user](),
		"enum":                restype.For[Color](),
		"file header":         restype.For[*multipart.FileHeader](),
		"void":                restype.VoidType,
		"unit":                restype.UnitType,
		"any":                 restype.AnyType,
		"raw list":            restype.New(restype.List),
		"list and map":        restype.Object("example.com/x.Odd", restype.List, restype.Map),
		"hand-built list":     restype.ListOf(str),
	}
}

func TestIsPrimitive(t *testing.T) {
	tests := []struct {
		name string
		typ  restype.ResolvedType
		want bool
	}{
		{"string", restype.For[string](), true},
		{"time.Time", restype.For[time.Time](), true},
		{"[]byte", restype.For[[]byte](), true},
		{"array of int32", restype.For[[3]int32](), true},
		{"array of arrays", restype.For[[2][2]float64](), true},
		{"void", restype.VoidType, true},
		{"array of structs", restype.For[[2]user](), false},
		{"slice", restype.For[[]string](), false},
		{"struct", restype.For[user](), false},
		{"enum", restype.For[Color](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrimitive(tt.typ))
		})
	}
}

func TestIsContainerType(t *testing.T) {
	assert.True(t, IsContainerType(restype.For[[]string]()))
	assert.True(t, IsContainerType(restype.For[map[string]struct{}]()))
	assert.True(t, IsContainerType(restype.For[chan user]()))
	assert.True(t, IsContainerType(restype.For[tags]()))
	assert.True(t, IsContainerType(restype.New(restype.List)))

	assert.False(t, IsContainerType(restype.For[[3]int32]()))
	assert.False(t, IsContainerType(restype.For[map[string]int32]()))
	assert.False(t, IsContainerType(restype.For[user]()))
	assert.False(t, IsContainerType(restype.For[[]byte]()))
}

func TestIsMapType(t *testing.T) {
	assert.True(t, IsMapType(restype.For[map[string]int32]()))
	assert.True(t, IsMapType(restype.For[labels]()))

	assert.False(t, IsMapType(restype.For[map[string]struct{}]()))
	assert.False(t, IsMapType(restype.For[[]string]()))
}

func TestContainerAndMapAreExclusive(t *testing.T) {
	for name, typ := range classificationFixtures() {
		t.Run(name, func(t *testing.T) {
			assert.False(t, IsContainerType(typ) && IsMapType(typ))
		})
	}
}

func TestContainerType(t *testing.T) {
	assert.Equal(t, ContainerList, ContainerType(restype.For[[]string]()))
	assert.Equal(t, ContainerSet, ContainerType(restype.For[map[int]struct{}]()))
	assert.Equal(t, ContainerList, ContainerType(restype.For[chan int]()))
	assert.Equal(t, ContainerList, ContainerType(restype.For[tags]()))
}

func TestCollectionElementType(t *testing.T) {
	assert.Equal(t, "string", CollectionElementType(restype.For[[]string]()).Signature())
	assert.Equal(t, "string", CollectionElementType(restype.For[tags]()).Signature())
	assert.Same(t, restype.AnyType, CollectionElementType(restype.New(restype.List)))
}

func TestMapValueType(t *testing.T) {
	assert.Equal(t, "int32", MapValueType(restype.For[map[string]int32]()).Signature())
	assert.Same(t, restype.AnyType, MapValueType(restype.New(restype.Map)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		typ  restype.ResolvedType
		want Case
	}{
		{"slice of file headers", restype.For[[]*multipart.FileHeader](), CaseFileContainer},
		{"set of enumerable uploads", restype.For[map[enumUpload]struct{}](), CaseFileContainer},
		{"slice", restype.For[[]string](), CaseContainer},
		{"raw list", restype.New(restype.List), CaseContainer},
		{"map", restype.For[map[string]int32](), CaseMap},
		{"map of files", restype.For[map[string]*multipart.FileHeader](), CaseMap},
		{"void", restype.VoidType, CaseVoid},
		{"struct{}", restype.For[struct{}](), CaseVoid},
		{"file header", restype.For[*multipart.FileHeader](), CaseFile},
		{"multipart.File", restype.For[multipart.File](), CaseFile},
		{"struct", restype.For[user](), CaseScalar},
		{"array", restype.For[[3]int32](), CaseScalar},
		{"enum", restype.For[Color](), CaseScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typ))
		})
	}
}

func TestCase_String(t *testing.T) {
	assert.Equal(t, "file-container", CaseFileContainer.String())
	assert.Equal(t, "scalar", CaseScalar.String())
	assert.Equal(t, "unknown", Case(42).String())
}
