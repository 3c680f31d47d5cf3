package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/modelref/referrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBaseTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Page[User]", "Page"},
		{"Map[string,int]", "Map"},
		{"NoGenerics", "NoGenerics"},
		{"Nested[List[User]]", "Nested"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBaseTypeName(tt.input))
		})
	}
}

func TestExtractGenericParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single param", "Page[User]", []string{"User"}},
		{"two params", "Map[string,int]", []string{"string", "int"}},
		{"no generics", "NoGenerics", nil},
		{"nested", "Page[List[User]]", []string{"List[User]"}},
		{"nested with comma", "Page[Map[string,User],int]", []string{"Map[string,User]", "int"}},
		{"with package", "Page[models.User]", []string{"models.User"}},
		{"empty", "", nil},
		{"malformed open", "Page[User", nil},
		{"malformed close", "PageUser]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractGenericParams(tt.input))
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple type", "User", "User"},
		{"generic single param", "Page[User]", "Page_User"},
		{"generic multi params", "Map[string,int]", "Map_string_int"},
		{"nested generic", "Page[List[User]]", "Page_List_User"},
		{"multiple underscores", "Type__With__Underscores_", "Type_With_Underscores"},
		{"with spaces", "Some Type", "Some_Type"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.input))
		})
	}
}

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		input  string
		pascal string
		camel  string
		snake  string
		kebab  string
	}{
		{"user_profile", "UserProfile", "userProfile", "user_profile", "user-profile"},
		{"api-client", "ApiClient", "apiClient", "api_client", "api-client"},
		{"UserProfile", "UserProfile", "userProfile", "user_profile", "user-profile"},
		{"path.to.type", "PathToType", "pathToType", "path_to_type", "path-to-type"},
		{"APIClient", "APIClient", "aPIClient", "a_p_i_client", "a-p-i-client"},
		{"", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.pascal, toPascalCase(tt.input), "pascal")
			assert.Equal(t, tt.camel, toCamelCase(tt.input), "camel")
			assert.Equal(t, tt.snake, toSnakeCase(tt.input), "snake")
			assert.Equal(t, tt.kebab, toKebabCase(tt.input), "kebab")
		})
	}
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "github.com_org_models", sanitizePath("github.com/org/models"))
	assert.Equal(t, "models", sanitizePath("models"))
	assert.Equal(t, "", sanitizePath(""))
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  Strategy
	}{
		{"default", StrategyDefault},
		{"qualified", StrategyQualified},
		{"type-only", StrategyTypeOnly},
		{" Pascal ", StrategyPascalCase},
		{"camel", StrategyCamelCase},
		{"snake", StrategySnakeCase},
		{"kebab", StrategyKebabCase},
		{"full-path", StrategyFullPath},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseStrategy("screaming")
		require.Error(t, err)
		assert.True(t, errors.Is(err, referrors.ErrConfig))
		assert.Contains(t, err.Error(), "screaming")
	})
}

func TestParseGenericStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  GenericStrategy
	}{
		{"underscore", GenericUnderscore},
		{"of", GenericOf},
		{"FOR", GenericFor},
		{"angle", GenericAngleBrackets},
		{"flattened", GenericFlattened},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGenericStrategy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseGenericStrategy("brackets")
		assert.True(t, errors.Is(err, referrors.ErrConfig))
	})
}

func TestDefaultGenericConfig(t *testing.T) {
	cfg := DefaultGenericConfig()
	assert.Equal(t, GenericUnderscore, cfg.Strategy)
	assert.Equal(t, "_", cfg.Separator)
	assert.Equal(t, "_", cfg.ParamSeparator)
	assert.False(t, cfg.IncludePackage)
	assert.False(t, cfg.ApplyBaseCasing)
}

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		wantErr bool
	}{
		{"fields", "{{.Package}}.{{.Type}}", false},
		{"funcs", "{{pascal .Package}}{{upper .TypeBase}}{{join \"-\" .Group .Kind}}", false},
		{"syntax error", "{{.Package", true},
		{"unknown field", "{{.Missing}}", true},
		{"unknown func", "{{shout .Type}}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := parseTemplate(tt.tmpl)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, referrors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, tmpl)
		})
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()
	for _, name := range []string{"pascal", "camel", "snake", "kebab", "upper", "lower", "title", "sanitize", "trimPrefix", "trimSuffix", "replace", "join"} {
		assert.Contains(t, funcs, name)
	}

	upper := funcs["upper"].(func(string) string)
	assert.Equal(t, "USER", upper("user"))
	title := funcs["title"].(func(string) string)
	assert.Equal(t, "User Profile", title("user profile"))
	join := funcs["join"].(func(string, ...string) string)
	assert.Equal(t, "a-b", join("-", "a", "b"))
	assert.True(t, strings.EqualFold("x", funcs["lower"].(func(string) string)("X")))
}
