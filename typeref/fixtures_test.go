package typeref

import (
	"mime/multipart"
	"strings"

	"github.com/erraggy/modelref/enums"
	"github.com/erraggy/modelref/modelctx"
	"github.com/erraggy/modelref/restype"
)

// Color is an enumerable with three constants.
type Color string

func (Color) EnumValues() []string { return []string{"RED", "GREEN", "BLUE"} }

type user struct {
	Name string
}

// enumUpload is both a file upload and enumerable.
type enumUpload struct {
	multipart.File
}

func (enumUpload) EnumValues() []string { return []string{"A", "B"} }

// simpleNames names primitives canonically and everything else by its
// unqualified erased name.
var simpleNames = NameResolverFunc(func(_ *modelctx.Context, t restype.ResolvedType) string {
	if IsPrimitive(t) {
		return NameFor(t)
	}
	name := NameFor(t)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
})

// recordingResolver records every call and delegates to simpleNames.
type recordingResolver struct {
	calls []resolverCall
}

type resolverCall struct {
	ctx *modelctx.Context
	typ restype.ResolvedType
}

func (r *recordingResolver) TypeName(ctx *modelctx.Context, t restype.ResolvedType) string {
	r.calls = append(r.calls, resolverCall{ctx: ctx, typ: t})
	return simpleNames(ctx, t)
}

// recordingLookup records the classes it is asked about.
type recordingLookup struct {
	asked []string
	next  enums.Lookup
}

func (l *recordingLookup) ValuesFor(c *restype.Class) *enums.ValueSet {
	l.asked = append(l.asked, c.Name())
	return l.next.ValuesFor(c)
}

func newRecordingLookup() *recordingLookup {
	return &recordingLookup{next: enums.NewRegistry()}
}
