// Package referrors provides structured error types for modelref.
//
// Import path: github.com/erraggy/modelref/referrors
//
// The type-resolution core in package typeref never returns errors. The
// packages around it do: parsing Go type expressions, loading configuration
// and enforcing a name-resolution depth limit. Those failures are reported
// with the types below so callers can branch on them with [errors.Is] and
// [errors.As].
//
// # Error Types
//
//   - [ParseError]: a type expression could not be parsed
//   - [ConfigError]: invalid configuration file contents or option values
//   - [DepthError]: nested name resolution exceeded the configured depth
//
// # Sentinel Errors
//
//   - [ErrParse]: matches any [ParseError]
//   - [ErrConfig]: matches any [ConfigError]
//   - [ErrDepth]: matches any [DepthError]
//
// # Example
//
//	t, err := restype.ParseGo("map[string]", nil)
//	if errors.Is(err, referrors.ErrParse) {
//	    var pe *referrors.ParseError
//	    if errors.As(err, &pe) {
//	        fmt.Println("bad expression:", pe.Expr)
//	    }
//	}
package referrors
