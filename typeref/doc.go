// Package typeref turns resolved types into model references for API
// documentation.
//
// Given a [restype.ResolvedType], the package answers three questions:
//
//   - What kind of type is it? [IsPrimitive], [IsContainerType] and
//     [IsMapType] classify it; [Classify] places it in exactly one reference
//     [Case].
//   - What is it called? [NameFor] produces the canonical display name:
//     primitives and arrays of primitives map through the primitive-name
//     table ([typenames]), everything else uses its fully qualified erased
//     name.
//   - Which values may it take? [AllowableValues] asks an [enums.Lookup],
//     first unwrapping a container that has exactly one type parameter.
//
// [BuildReference] combines the three into a [Reference]. The cases are tried
// in a fixed order and the first match wins:
//
//  1. container of file uploads  → ContainerRef{ElementTypeName: "File"}
//  2. container                  → ContainerRef (element name from the resolver)
//  3. map                        → MapRef (value name from the resolver)
//  4. void or struct{}           → VoidRef
//  5. file upload                → FileRef
//  6. anything else              → ScalarRef (name from the resolver)
//
// Element and value names are produced by a caller-supplied [NameResolver],
// invoked with a child context derived by [modelctx.FromParent]. The resolver
// may recurse into a larger model-building pipeline; this package neither
// bounds nor memoizes that recursion.
//
// All functions are pure and safe for concurrent use as long as the injected
// resolver and lookup are. Panics raised by those collaborators propagate to
// the caller unchanged.
//
// # Example
//
//	names := typeref.NameResolverFunc(func(_ *modelctx.Context, t restype.ResolvedType) string {
//		return typeref.NameFor(t)
//	})
//	ref := typeref.BuildReference(modelctx.New(nil), names, restype.For[[]string]())
//	// ref is &ContainerRef{ContainerKind: "List", ElementTypeName: "string"}
package typeref
