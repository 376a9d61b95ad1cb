package config

import (
	"fmt"

	"github.com/gauthamchettiar/schemax/pkg/schema"
	"github.com/gauthamchettiar/schemax/pkg/validation"
)

// Validate checks the configuration for invalid enum values, unknown
// rule codes and contradictory rule selection. It returns the first
// problem found.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q (want text or json)", cfg.Output.Format)
	}

	switch cfg.Output.Level {
	case "silent", "quiet", "verbose":
	default:
		return fmt.Errorf("output.level: unknown level %q (want silent, quiet or verbose)", cfg.Output.Level)
	}

	switch cfg.Validation.FailMode {
	case FailModeFast, FailModeNever, FailModeAfter:
	default:
		return fmt.Errorf("validation.fail_mode: unknown mode %q", cfg.Validation.FailMode)
	}

	if len(cfg.Validation.RuleApply) > 0 && len(cfg.Validation.RuleIgnore) > 0 {
		return fmt.Errorf("validation: rule_apply and rule_ignore are mutually exclusive")
	}
	for _, code := range cfg.Validation.RuleApply {
		if !validation.KnownRule(code) {
			return fmt.Errorf("validation.rule_apply: unknown rule %q", code)
		}
	}
	for _, code := range cfg.Validation.RuleIgnore {
		if !validation.KnownRule(code) {
			return fmt.Errorf("validation.rule_ignore: unknown rule %q", code)
		}
	}

	for variant := range cfg.Validation.ColumnRequired {
		if !schema.IsColumnType(variant) {
			return fmt.Errorf("validation.column_required: unknown column type %q", variant)
		}
	}

	if cfg.Validation.MaxFileSize < 0 {
		return fmt.Errorf("validation.max_file_size: must not be negative")
	}
	if cfg.Cache.RetentionDays < 0 {
		return fmt.Errorf("cache.retention_days: must not be negative")
	}
	if cfg.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries: must not be negative")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}

	return nil
}

// RequiredFromConfig converts the promotion settings into the model's
// form.
func RequiredFromConfig(cfg *Config) schema.Required {
	return schema.Required{
		Dataset: cfg.Validation.ModelRequired,
		Column:  cfg.Validation.ColumnRequired,
	}
}
