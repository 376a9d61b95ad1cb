package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "text" {
		t.Errorf("output.format = %q, want text", cfg.Output.Format)
	}
	if cfg.Output.Level != "quiet" {
		t.Errorf("output.level = %q, want quiet", cfg.Output.Level)
	}
	if cfg.Validation.FailMode != FailModeAfter {
		t.Errorf("fail_mode = %q, want %q", cfg.Validation.FailMode, FailModeAfter)
	}
	if !cfg.Cache.IsEnabled() {
		t.Error("cache disabled by default")
	}
	if cfg.Cache.RetentionDays != 90 {
		t.Errorf("retention_days = %d, want 90", cfg.Cache.RetentionDays)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "schemax.yaml", `
output:
  format: json
  level: verbose
validation:
  fail_mode: fail_fast
  rule_apply: [PSX_VAL1, PSX_VAL2]
  model_required: [description]
  column_required:
    string: [max_length]
cache:
  enabled: false
  retention_days: 7
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.Format != "json" || cfg.Output.Level != "verbose" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Validation.FailMode != FailModeFast {
		t.Errorf("fail_mode = %q", cfg.Validation.FailMode)
	}
	if len(cfg.Validation.RuleApply) != 2 {
		t.Errorf("rule_apply = %v", cfg.Validation.RuleApply)
	}
	if len(cfg.Validation.ModelRequired) != 1 || cfg.Validation.ModelRequired[0] != "description" {
		t.Errorf("model_required = %v", cfg.Validation.ModelRequired)
	}
	if got := cfg.Validation.ColumnRequired["string"]; len(got) != 1 || got[0] != "max_length" {
		t.Errorf("column_required = %v", cfg.Validation.ColumnRequired)
	}
	if cfg.Cache.IsEnabled() {
		t.Error("cache.enabled=false not honored")
	}
	if cfg.Cache.RetentionDays != 7 {
		t.Errorf("retention_days = %d", cfg.Cache.RetentionDays)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigPartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "schemax.yaml", "output:\n  format: json\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output.format = %q", cfg.Output.Format)
	}
	if cfg.Output.Level != "quiet" {
		t.Errorf("output.level = %q, want default quiet", cfg.Output.Level)
	}
	if cfg.Validation.FailMode != FailModeAfter {
		t.Errorf("fail_mode = %q, want default", cfg.Validation.FailMode)
	}
}

func TestLoadConfigFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("missing explicit file did not fail")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, dir, "broken.yaml", "output: [unclosed")
		if _, err := LoadConfig(path); err == nil {
			t.Error("malformed file did not fail")
		}
	})

	t.Run("invalid enum", func(t *testing.T) {
		path := writeConfig(t, dir, "bad.yaml", "output:\n  format: xml\n")
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "output.format") {
			t.Errorf("LoadConfig() error = %v, want output.format complaint", err)
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCHEMAX_OUTPUT_FORMAT", "json")
	t.Setenv("SCHEMAX_OUTPUT_LEVEL", "silent")
	t.Setenv("SCHEMAX_VALIDATION_FAIL_MODE", "fail_never")
	t.Setenv("SCHEMAX_VALIDATION_RULE_IGNORE", "PSX_VAL3, PSX_VAL4")
	t.Setenv("SCHEMAX_CACHE_ENABLED", "false")
	t.Setenv("SCHEMAX_CACHE_RETENTION_DAYS", "14")
	t.Setenv("SCHEMAX_LOGGING_LEVEL", "info")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Output.Format != "json" || cfg.Output.Level != "silent" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Validation.FailMode != FailModeNever {
		t.Errorf("fail_mode = %q", cfg.Validation.FailMode)
	}
	want := []string{"PSX_VAL3", "PSX_VAL4"}
	if len(cfg.Validation.RuleIgnore) != len(want) {
		t.Fatalf("rule_ignore = %v, want %v", cfg.Validation.RuleIgnore, want)
	}
	for i := range want {
		if cfg.Validation.RuleIgnore[i] != want[i] {
			t.Errorf("rule_ignore = %v, want %v", cfg.Validation.RuleIgnore, want)
		}
	}
	if cfg.Cache.IsEnabled() {
		t.Error("SCHEMAX_CACHE_ENABLED=false not honored")
	}
	if cfg.Cache.RetentionDays != 14 {
		t.Errorf("retention_days = %d", cfg.Cache.RetentionDays)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "schemax.yaml", "output:\n  format: text\n")
	t.Setenv("SCHEMAX_OUTPUT_FORMAT", "json")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output.format = %q, env did not win", cfg.Output.Format)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "a,b", want: []string{"a", "b"}},
		{in: " a , b ", want: []string{"a", "b"}},
		{in: "a,,b,", want: []string{"a", "b"}},
		{in: "solo", want: []string{"solo"}},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}
