package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gauthamchettiar/schemax/pkg/cli"
	"github.com/gauthamchettiar/schemax/pkg/config"
)

func TestApplyValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name: "no flags keeps config",
			args: []string{},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.Format != "text" || cfg.Output.Level != "quiet" {
					t.Errorf("output = %+v", cfg.Output)
				}
			},
		},
		{
			name: "out flag",
			args: []string{"--out", "json"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.Format != "json" {
					t.Errorf("format = %q", cfg.Output.Format)
				}
			},
		},
		{
			name: "json shorthand wins over out",
			args: []string{"--out", "text", "--json"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.Format != "json" {
					t.Errorf("format = %q", cfg.Output.Format)
				}
			},
		},
		{
			name: "verbose shorthand",
			args: []string{"--verbose"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.Level != "verbose" {
					t.Errorf("level = %q", cfg.Output.Level)
				}
			},
		},
		{
			name:    "verbose and silent conflict",
			args:    []string{"--verbose", "--silent"},
			wantErr: true,
		},
		{
			name: "fail-fast shorthand",
			args: []string{"--fail-fast"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Validation.FailMode != config.FailModeFast {
					t.Errorf("fail_mode = %q", cfg.Validation.FailMode)
				}
			},
		},
		{
			name:    "fail-fast and fail-never conflict",
			args:    []string{"--fail-fast", "--fail-never"},
			wantErr: true,
		},
		{
			name: "rule selection",
			args: []string{"--rule-apply", "PSX_VAL1,PSX_VAL2"},
			check: func(t *testing.T, cfg *config.Config) {
				if len(cfg.Validation.RuleApply) != 2 {
					t.Errorf("rule_apply = %v", cfg.Validation.RuleApply)
				}
			},
		},
		{
			name:    "invalid format rejected",
			args:    []string{"--out", "xml"},
			wantErr: true,
		},
		{
			name:    "conflicting rule selection rejected",
			args:    []string{"--rule-apply", "PSX_VAL1", "--rule-ignore", "PSX_VAL2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validateFlags = struct {
				out          string
				jsonOut      bool
				outputLevel  string
				verbose      bool
				silent       bool
				failMode     string
				failFast     bool
				failNever    bool
				ruleApply    []string
				ruleIgnore   []string
				noCache      bool
				noCacheRead  bool
				noCacheWrite bool
				watch        bool
			}{}

			cmd := &cobra.Command{Use: "validate"}
			f := cmd.Flags()
			f.StringVarP(&validateFlags.out, "out", "o", "", "")
			f.BoolVar(&validateFlags.jsonOut, "json", false, "")
			f.StringVar(&validateFlags.outputLevel, "output-level", "", "")
			f.BoolVarP(&validateFlags.verbose, "verbose", "v", false, "")
			f.BoolVarP(&validateFlags.silent, "silent", "s", false, "")
			f.StringVar(&validateFlags.failMode, "fail-mode", "", "")
			f.BoolVar(&validateFlags.failFast, "fail-fast", false, "")
			f.BoolVar(&validateFlags.failNever, "fail-never", false, "")
			f.StringSliceVar(&validateFlags.ruleApply, "rule-apply", nil, "")
			f.StringSliceVar(&validateFlags.ruleIgnore, "rule-ignore", nil, "")
			if err := f.Parse(tt.args); err != nil {
				t.Fatalf("flag parse failed: %v", err)
			}

			cfg := config.DefaultConfig()
			err := applyValidateFlags(cmd, cfg)
			if tt.wantErr {
				var cfgErr *cli.ConfigError
				if err == nil || !errors.As(err, &cfgErr) {
					t.Fatalf("applyValidateFlags() error = %v, want ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyValidateFlags() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestResolvePathsArgs(t *testing.T) {
	paths, err := resolvePaths([]string{"a.yaml", "b.json"})
	if err != nil {
		t.Fatalf("resolvePaths() error = %v", err)
	}
	if len(paths) != 2 || paths[0] != "a.yaml" {
		t.Errorf("paths = %v", paths)
	}
}
