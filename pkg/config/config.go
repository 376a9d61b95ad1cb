package config

// Failure modes for the validate command.
const (
	// FailModeFast stops at the first invalid file and exits non-zero.
	FailModeFast = "fail_fast"
	// FailModeNever processes everything and always exits zero.
	FailModeNever = "fail_never"
	// FailModeAfter processes everything, then exits non-zero if any
	// file was invalid (default).
	FailModeAfter = "fail_after"
)

// Config is the root configuration structure for schemax.
type Config struct {
	// Output controls result rendering.
	Output OutputConfig `yaml:"output"`

	// Validation controls rule selection and the model configuration.
	Validation ValidationConfig `yaml:"validation"`

	// Cache controls the persistent result cache.
	Cache CacheConfig `yaml:"cache"`

	// Logging controls diagnostic logging (not result output).
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how validation results are rendered.
type OutputConfig struct {
	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`

	// Level is "silent", "quiet" or "verbose".
	// Default: "quiet"
	Level string `yaml:"level"`
}

// ValidationConfig controls rule selection and model behaviour.
type ValidationConfig struct {
	// FailMode is "fail_fast", "fail_never" or "fail_after".
	// Default: "fail_after"
	FailMode string `yaml:"fail_mode"`

	// RuleApply restricts execution to exactly these rule codes.
	// Mutually exclusive with RuleIgnore.
	RuleApply []string `yaml:"rule_apply"`

	// RuleIgnore subtracts rule codes from the default set.
	RuleIgnore []string `yaml:"rule_ignore"`

	// ModelRequired promotes optional dataset-level attributes to
	// required (e.g. ["description", "tags"]).
	ModelRequired []string `yaml:"model_required"`

	// ColumnRequired promotes optional column attributes to required
	// per variant (e.g. {"string": ["max_length"]}).
	ColumnRequired map[string][]string `yaml:"column_required"`

	// MaxFileSize bounds document size in bytes. 0 uses the built-in
	// limit.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// CacheConfig controls the persistent result cache.
type CacheConfig struct {
	// Enabled turns the cache on or off entirely.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Path is the database file path. Empty means the default location
	// under the user cache directory.
	Path string `yaml:"path"`

	// RetentionDays is how long unused entries survive pruning.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// MaxEntries caps cached entries during pruning. 0 means unlimited.
	MaxEntries int64 `yaml:"max_entries"`
}

// IsEnabled reports whether the cache is on, defaulting to true.
func (c CacheConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	// Default: "warn"
	Level string `yaml:"level"`
}
