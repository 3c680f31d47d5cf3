package naming

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/erraggy/modelref/referrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy defines how a type's name is rendered.
type Strategy int

const (
	// StrategyDefault uses "package.TypeName" format.
	// Example: github.com/org/models.User -> models.User
	StrategyDefault Strategy = iota

	// StrategyQualified uses the fully qualified erased name verbatim.
	// Example: github.com/org/models.User -> github.com/org/models.User
	StrategyQualified

	// StrategyTypeOnly uses just "TypeName" without package.
	// Warning: may cause conflicts with same-named types in different packages.
	StrategyTypeOnly

	// StrategyPascalCase uses "PackageTypeName" format.
	// Example: models.User -> ModelsUser
	StrategyPascalCase

	// StrategyCamelCase uses "packageTypeName" format.
	// Example: models.User -> modelsUser
	StrategyCamelCase

	// StrategySnakeCase uses "package_type_name" format.
	// Example: models.User -> models_user
	StrategySnakeCase

	// StrategyKebabCase uses "package-type-name" format.
	// Example: models.User -> models-user
	StrategyKebabCase

	// StrategyFullPath uses the full package path with separators replaced.
	// Example: github.com/org/models.User -> github.com_org_models_User
	StrategyFullPath
)

var strategyNames = map[string]Strategy{
	"default":   StrategyDefault,
	"qualified": StrategyQualified,
	"type-only": StrategyTypeOnly,
	"pascal":    StrategyPascalCase,
	"camel":     StrategyCamelCase,
	"snake":     StrategySnakeCase,
	"kebab":     StrategyKebabCase,
	"full-path": StrategyFullPath,
}

// ParseStrategy returns the strategy with the given configuration name.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return StrategyDefault, &referrors.ConfigError{Option: "naming", Value: name, Message: "unknown naming strategy"}
}

// GenericStrategy defines how generic type parameters are formatted.
type GenericStrategy int

const (
	// GenericUnderscore replaces brackets with underscores.
	// Example: Page[User] -> Page_User_
	GenericUnderscore GenericStrategy = iota

	// GenericOf uses "Of" between base type and parameters.
	// Example: Page[User] -> PageOfUser
	GenericOf

	// GenericFor uses "For" between base type and parameters.
	// Example: Page[User] -> PageForUser
	GenericFor

	// GenericAngleBrackets keeps angle brackets.
	// Example: Page[User] -> Page<User>
	GenericAngleBrackets

	// GenericFlattened removes brackets entirely.
	// Example: Page[User] -> PageUser
	GenericFlattened
)

var genericStrategyNames = map[string]GenericStrategy{
	"underscore": GenericUnderscore,
	"of":         GenericOf,
	"for":        GenericFor,
	"angle":      GenericAngleBrackets,
	"flattened":  GenericFlattened,
}

// ParseGenericStrategy returns the generic strategy with the given
// configuration name.
func ParseGenericStrategy(name string) (GenericStrategy, error) {
	if s, ok := genericStrategyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return GenericUnderscore, &referrors.ConfigError{Option: "generic_naming", Value: name, Message: "unknown generic naming strategy"}
}

// GenericConfig provides fine-grained control over generic type naming.
type GenericConfig struct {
	// Strategy is the primary generic naming approach.
	Strategy GenericStrategy

	// Separator is used between base type and parameters.
	// Only applies to GenericUnderscore. Default: "_"
	Separator string

	// ParamSeparator is used between multiple type parameters.
	// Default: "_"
	ParamSeparator string

	// IncludePackage keeps the type parameter's package in the name.
	// Example: Page[models.User] -> Page_models_User_ (true)
	IncludePackage bool

	// ApplyBaseCasing applies the base naming strategy to type parameters.
	ApplyBaseCasing bool
}

// DefaultGenericConfig returns the default generic naming configuration.
func DefaultGenericConfig() GenericConfig {
	return GenericConfig{
		Strategy:       GenericUnderscore,
		Separator:      "_",
		ParamSeparator: "_",
	}
}

// extractBaseTypeName extracts the base type name from a generic type.
// Example: "Page[User]" -> "Page"
func extractBaseTypeName(name string) string {
	if idx := strings.Index(name, "["); idx != -1 {
		return name[:idx]
	}
	return name
}

// extractGenericParams extracts type parameters from a generic type name,
// counting bracket depth so nested generics stay intact.
// Example: "Map[string,int]" -> ["string", "int"]
// Example: "Page[List[User]]" -> ["List[User]"]
func extractGenericParams(name string) []string {
	start := strings.Index(name, "[")
	end := strings.LastIndex(name, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var params []string
	var current strings.Builder
	depth := 0
	for _, r := range name[start+1 : end] {
		switch r {
		case '[':
			depth++
			current.WriteRune(r)
		case ']':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		params = append(params, strings.TrimSpace(current.String()))
	}
	return params
}

// sanitizePath replaces path separators with underscores.
// Example: "github.com/org/models" -> "github.com_org_models"
func sanitizePath(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}

// sanitizeName replaces characters that are problematic in $ref URIs.
// Example: "Page[User]" -> "Page_User"
func sanitizeName(name string) string {
	name = strings.NewReplacer("[", "_", "]", "_", ",", "_", " ", "_").Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

// toPascalCase converts a string to PascalCase. Separators (underscore,
// hyphen, dot, slash) capitalize the next letter.
// Example: "user_profile" -> "UserProfile"
func toPascalCase(s string) string {
	var result strings.Builder
	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// toCamelCase is PascalCase with the first letter lowercased.
// Example: "UserProfile" -> "userProfile"
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// toSnakeCase converts a string to snake_case.
// Example: "UserProfile" -> "user_profile"
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// toKebabCase is snake_case with hyphens.
// Example: "UserProfile" -> "user-profile"
func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

// templateFuncs returns the functions available to name templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"pascal":     toPascalCase,
		"camel":      toCamelCase,
		"snake":      toSnakeCase,
		"kebab":      toKebabCase,
		"upper":      func(s string) string { return cases.Upper(language.Und).String(s) },
		"lower":      func(s string) string { return cases.Lower(language.Und).String(s) },
		"title":      func(s string) string { return cases.Title(language.English).String(s) },
		"sanitize":   sanitizeName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
		"join": func(sep string, parts ...string) string {
			return strings.Join(parts, sep)
		},
	}
}

// parseTemplate parses a name template and validates it against a sample
// context.
func parseTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("typeName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, &referrors.ConfigError{Option: "template", Value: tmpl, Message: "invalid name template", Cause: err}
	}
	sample := NameContext{
		Type:                 "TestType",
		TypeSanitized:        "TestType",
		TypeBase:             "TestType",
		Package:              "testpkg",
		PackagePath:          "github.com/test/testpkg",
		PackagePathSanitized: "github.com_test_testpkg",
		Kind:                 "object",
		Group:                "default",
	}
	var buf strings.Builder
	if err := t.Execute(&buf, sample); err != nil {
		return nil, &referrors.ConfigError{Option: "template", Value: tmpl, Message: "name template execution failed", Cause: fmt.Errorf("naming: %w", err)}
	}
	return t, nil
}
