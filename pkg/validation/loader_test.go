package validation

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoaderLoadFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schema.txt", "not a schema")
	writeFile(t, dir, "broken.json", "{\"fqn\": ")
	writeFile(t, dir, "broken.yaml", "fqn: [unclosed")

	tests := []struct {
		name     string
		path     string
		wantKind Kind
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.yaml"), wantKind: KindNotFound},
		{name: "unsupported extension", path: filepath.Join(dir, "schema.txt"), wantKind: KindUnsupportedFormat},
		{name: "malformed json", path: filepath.Join(dir, "broken.json"), wantKind: KindParseError},
		{name: "malformed yaml", path: filepath.Join(dir, "broken.yaml"), wantKind: KindParseError},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, raw, verr := loader.Load(tt.path)
			if verr == nil {
				t.Fatal("Load() returned no error")
			}
			if verr.Type != tt.wantKind {
				t.Errorf("kind = %q, want %q", verr.Type, tt.wantKind)
			}
			if verr.ErrorAt != "$" {
				t.Errorf("error_at = %q, want %q", verr.ErrorAt, "$")
			}
			if doc != nil || raw != nil {
				t.Error("failed load returned a document")
			}
		})
	}
}

func TestLoaderErrorMessages(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "schema.txt", "x")
	missing := filepath.Join(dir, "absent.yaml")

	loader := NewLoader()

	if _, _, verr := loader.Load(missing); verr == nil || verr.Message != "'"+missing+"' not found" {
		t.Errorf("not found message = %v", verr)
	}
	if _, _, verr := loader.Load(txt); verr == nil || verr.Message != "'"+txt+"' of type '.txt' not supported" {
		t.Errorf("unsupported message = %v", verr)
	}
}

func TestLoaderSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.yaml", "fqn: big\nname: big\ncolumns: []\n")

	loader := NewLoader().WithMaxFileSize(4)
	_, _, verr := loader.Load(path)
	if verr == nil || verr.Type != KindParseError {
		t.Fatalf("oversized file: got %v, want parse_error", verr)
	}
}

// A schema expressed in JSON and in YAML must load to equivalent value
// trees as far as the validators can observe.
func TestLoaderJSONAndYAMLEquivalence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "a.json",
		`{"fqn": "db.users", "name": "users", "columns": [{"type": "string", "name": "id", "min_length": 3}]}`)
	yamlPath := writeFile(t, dir, "a.yaml", `
fqn: db.users
name: users
columns:
  - type: string
    name: id
    min_length: 3
`)

	loader := NewLoader()
	jsonDoc, _, verr := loader.Load(jsonPath)
	if verr != nil {
		t.Fatalf("json load failed: %v", verr)
	}
	yamlDoc, _, verr := loader.Load(yamlPath)
	if verr != nil {
		t.Fatalf("yaml load failed: %v", verr)
	}

	jsonDS, jsonErrs := DecodeDataset(jsonDoc, noRequired())
	yamlDS, yamlErrs := DecodeDataset(yamlDoc, noRequired())
	if len(jsonErrs) != 0 || len(yamlErrs) != 0 {
		t.Fatalf("decode errors: json=%v yaml=%v", jsonErrs, yamlErrs)
	}
	if !reflect.DeepEqual(jsonDS, yamlDS) {
		t.Errorf("decoded datasets differ:\njson: %+v\nyaml: %+v", jsonDS, yamlDS)
	}
}

func TestParseUnknownExtension(t *testing.T) {
	_, verr := Parse([]byte("{}"), ".toml")
	if verr == nil || verr.Type != KindUnsupportedFormat {
		t.Fatalf("Parse(.toml) = %v, want unsupported_format", verr)
	}
}
