package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "output.format",
		},
		{
			name:    "bad output level",
			mutate:  func(c *Config) { c.Output.Level = "loud" },
			wantErr: "output.level",
		},
		{
			name:    "bad fail mode",
			mutate:  func(c *Config) { c.Validation.FailMode = "fail_sometimes" },
			wantErr: "validation.fail_mode",
		},
		{
			name: "apply and ignore together",
			mutate: func(c *Config) {
				c.Validation.RuleApply = []string{"PSX_VAL1"}
				c.Validation.RuleIgnore = []string{"PSX_VAL2"}
			},
			wantErr: "mutually exclusive",
		},
		{
			name:    "unknown apply rule",
			mutate:  func(c *Config) { c.Validation.RuleApply = []string{"PSX_VAL9"} },
			wantErr: "rule_apply",
		},
		{
			name:    "unknown ignore rule",
			mutate:  func(c *Config) { c.Validation.RuleIgnore = []string{"nope"} },
			wantErr: "rule_ignore",
		},
		{
			name:   "known rules pass",
			mutate: func(c *Config) { c.Validation.RuleApply = []string{"PSX_VAL1", "PSX_VAL4"} },
		},
		{
			name: "unknown column variant",
			mutate: func(c *Config) {
				c.Validation.ColumnRequired = map[string][]string{"decimal": {"precision"}}
			},
			wantErr: "column_required",
		},
		{
			name: "known column variant passes",
			mutate: func(c *Config) {
				c.Validation.ColumnRequired = map[string][]string{"string": {"max_length"}}
			},
		},
		{
			name:    "negative max file size",
			mutate:  func(c *Config) { c.Validation.MaxFileSize = -1 },
			wantErr: "max_file_size",
		},
		{
			name:    "negative retention",
			mutate:  func(c *Config) { c.Cache.RetentionDays = -1 },
			wantErr: "retention_days",
		},
		{
			name:    "bad logging level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRequiredFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validation.ModelRequired = []string{"description", "tags"}
	cfg.Validation.ColumnRequired = map[string][]string{"datetime": {"timezone"}}

	req := RequiredFromConfig(cfg)
	if len(req.Dataset) != 2 {
		t.Errorf("dataset promotions = %v", req.Dataset)
	}
	if got := req.Column["datetime"]; len(got) != 1 || got[0] != "timezone" {
		t.Errorf("column promotions = %v", req.Column)
	}
}
