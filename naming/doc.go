// Package naming provides Resolver, a configurable typeref.NameResolver.
//
// A Resolver renders model names from the erased type name using one of
// several strategies:
//
//	StrategyDefault     models.User
//	StrategyQualified   github.com/org/models.User
//	StrategyTypeOnly    User
//	StrategyPascalCase  ModelsUser
//	StrategyCamelCase   modelsUser
//	StrategySnakeCase   models_user
//	StrategyKebabCase   models-user
//	StrategyFullPath    github.com_org_models_User
//
// Generic instantiations and hand-built container types append their
// parameters according to a GenericStrategy (Page_User_, PageOfUser,
// Page<User> and so on). A text/template or a NameFunc may replace the
// strategy entirely.
//
// Primitives and arrays always use the canonical primitive names from
// typenames, so a Resolver agrees with typeref.NameFor on scalars.
//
// Example:
//
//	r, err := naming.New(
//		naming.WithStrategy(naming.StrategyPascalCase),
//		naming.WithGenericNaming(naming.GenericOf),
//	)
//	if err != nil {
//		return err
//	}
//	ref := typeref.BuildReference(modelctx.New(t), r, t)
package naming
