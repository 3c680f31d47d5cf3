// Package restype describes types after generic resolution.
//
// A [ResolvedType] exposes the four things the reference builder needs: the
// erased [Class] (the base identity with type arguments stripped), the ordered
// type parameters, the element type of an array, and a signature string.
//
// Classes form a small assignability graph. Well-known abstract classes model
// the collection and upload abstractions that classification depends on:
//
//	Iterable
//	└── Collection
//	    ├── List
//	    └── Set
//	Map
//	mime/multipart.File   (binary upload)
//
// # Go types
//
// [Of] resolves a reflect.Type:
//   - *T resolves as T
//   - []T resolves to List[T], []byte to the "[]byte" binary primitive
//   - map[K]struct{} resolves to Set[K], any other map[K]V to Map[K,V]
//   - chan T resolves to Iterable[T]
//   - [N]T resolves to an array of T
//   - struct{} resolves to the Unit void sentinel
//   - named types keep their own qualified name ("pkg/path.Name") and become
//     assignable to List, Set, Map or Iterable when their underlying type is
//     a slice, map or channel
//   - *multipart.FileHeader and implementations of multipart.File are
//     assignable to the upload abstraction
//
// [ParseGo] parses Go type expressions such as "map[string][]uuid.UUID",
// looking named types up in a [Types] registry.
package restype
