// Package modelref resolves Go types into the model references an API
// documentation generator emits for them.
//
// Given a resolved type and the model context it appears in, modelref decides
// whether the type is a file upload, a collection of uploads, a container,
// a map, void or an ordinary model, and produces the matching reference:
// the display name, the container kind, the element or value type name, and
// any allowable enumeration values.
//
// # Packages
//
//   - restype: resolved type model and the reflect adapter (restype.For[T])
//   - typeref: classification, canonical naming, allowable values and
//     reference building
//   - typenames: primitive-name table ("int64" -> "long")
//   - enums: allowable-value registry and EnumValuer detection
//   - modelctx: model context passed to name resolvers
//   - naming: configurable name resolver with naming strategies
//   - config: YAML and environment configuration
//   - referrors: structured error types
//   - logging: logger interface and slog adapter
//
// # Quick Start
//
//	import (
//		"github.com/erraggy/modelref/modelctx"
//		"github.com/erraggy/modelref/naming"
//		"github.com/erraggy/modelref/restype"
//		"github.com/erraggy/modelref/typeref"
//	)
//
//	t := restype.For[[]models.Pet]()
//	r, err := naming.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ref := typeref.BuildReference(modelctx.New(t), r, t)
//	fmt.Println(ref.TypeName(), ref.ItemType()) // List models.Pet
//
// # Command line and MCP
//
// The modelref command exposes the same operations (name, ref, values, sig)
// on Go type expressions such as "map[string][]int32", and "modelref mcp"
// serves them as MCP tools over stdio.
package modelref
