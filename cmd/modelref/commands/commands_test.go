package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/modelref/config"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// clearModelrefEnv clears all MODELREF_* env vars to isolate tests from the ambient environment.
func clearModelrefEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvNaming, config.EnvGenericNaming, config.EnvMaxDepth, config.EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			assert.Equal(t, tt.wantErr, err != nil, "ValidateOutputFormat(%q) error = %v", tt.format, err)
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := SigResult{Type: "[]string", Signature: "List[string]"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		var got SigResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		var got SigResult
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("text is not structured", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, OutputStructured(&buf, data, FormatText))
	})
}

func TestEnumFlag(t *testing.T) {
	e := enumFlag{}
	require.NoError(t, e.Set("x.Size=S,M"))
	require.NoError(t, e.Set("x.Size=L"))
	require.NoError(t, e.Set("a.Color=RED"))
	assert.Equal(t, []string{"S", "M", "L"}, e["x.Size"])
	assert.Equal(t, "a.Color=RED x.Size=S,M,L", e.String())

	for _, bad := range []string{"", "x.Size", "=A", "x.Size="} {
		assert.Error(t, e.Set(bad), "Set(%q)", bad)
	}
}

func TestHandleName(t *testing.T) {
	clearModelrefEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"list", []string{"[]string"}, "List_string_\n"},
		{"primitive", []string{"int64"}, "long\n"},
		{"fixed array", []string{"[3]int32"}, "int\n"},
		{"opaque pascal", []string{"--naming", "pascal", "--opaque", "github.com/org/models.Pet"}, "ModelsPet\n"},
		{"generic of", []string{"--generic-naming", "of", "map[string]int32"}, "MapOfString_OfInt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, HandleName(tt.args, &buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestHandleName_JSON(t *testing.T) {
	clearModelrefEnv(t)

	var buf bytes.Buffer
	require.NoError(t, HandleName([]string{"--format", "json", "[]int32"}, &buf))

	var got NameResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, NameResult{
		Type:          "[]int32",
		Name:          "List_int_",
		CanonicalName: "List",
		Signature:     "List[int32]",
		Case:          "container",
	}, got)
}

func TestHandleRef(t *testing.T) {
	clearModelrefEnv(t)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HandleRef([]string{"map[string]int64"}, &buf))
		assert.Equal(t, "Kind: map\nContainer: Map\nValue Type: long\n", buf.String())
	})

	t.Run("enum yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HandleRef([]string{
			"--format", "yaml", "--opaque", "--naming", "type-only",
			"--enum", "x/models.Status=ON,OFF", "x/models.Status",
		}, &buf))

		var got RefResult
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "scalar", got.Reference.Kind)
		assert.Equal(t, "Status", got.Reference.Name)
		assert.Equal(t, []string{"ON", "OFF"}, got.Reference.AllowableValues)
	})

	t.Run("void return type", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HandleRef([]string{"--return-type", "--group", "admin", "void"}, &buf))
		assert.Equal(t, "Kind: void\nName: void\n", buf.String())
	})
}

func TestHandleValues(t *testing.T) {
	clearModelrefEnv(t)

	path := filepath.Join(t.TempDir(), "modelref.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enums:\n  x.Size: [S, M, L]\n"), 0o600))

	t.Run("from config", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HandleValues([]string{"--config", path, "--opaque", "x.Size"}, &buf))
		assert.Equal(t, "S\nM\nL\n", buf.String())
	})

	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HandleValues([]string{"string"}, &buf))
		assert.Empty(t, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, HandleValues([]string{"--config", path, "--format", "json", "--opaque", "x.Size"}, &buf))
		var got ValuesResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.True(t, got.Found)
		assert.Equal(t, "LIST", got.ValueType)
	})
}

func TestHandleSig(t *testing.T) {
	clearModelrefEnv(t)

	var buf bytes.Buffer
	require.NoError(t, HandleSig([]string{"map[string][]int32"}, &buf))
	assert.Equal(t, "Map[string,List[int32]]\n", buf.String())
}

func TestHandlers_Errors(t *testing.T) {
	clearModelrefEnv(t)

	handlers := map[string]func([]string, *bytes.Buffer) error{
		"name":   func(a []string, b *bytes.Buffer) error { return HandleName(a, b) },
		"ref":    func(a []string, b *bytes.Buffer) error { return HandleRef(a, b) },
		"values": func(a []string, b *bytes.Buffer) error { return HandleValues(a, b) },
		"sig":    func(a []string, b *bytes.Buffer) error { return HandleSig(a, b) },
	}

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no args", nil, "requires exactly one type expression"},
		{"too many args", []string{"string", "int"}, "requires exactly one type expression"},
		{"bad format", []string{"--format", "xml", "string"}, "invalid format"},
		{"bad naming", []string{"--naming", "shouty", "string"}, "unknown naming strategy"},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "string"}, "cannot read configuration file"},
		{"unknown flag", []string{"--bogus", "string"}, "bogus"},
	}

	for cmd, handle := range handlers {
		for _, tt := range tests {
			t.Run(cmd+"/"+tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				err := handle(tt.args, &buf)
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "got %v", err)
			})
		}
	}
}

func TestHandlers_Help(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, HandleName([]string{"--help"}, &buf))
	assert.NoError(t, HandleSig([]string{"-h"}, &buf))
}
