package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFiles are the paths searched, in order, when no config
// file is given explicitly.
var DefaultConfigFiles = []string{"schemax.yaml", ".schemax.yaml"}

// Load resolves the configuration for one command invocation. When
// path is empty the default locations are searched and a missing file
// just means defaults; an explicit path that cannot be read is an
// error. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadConfigWithEnvOverrides(path)
	}

	for _, candidate := range DefaultConfigFiles {
		if _, err := os.Stat(candidate); err == nil {
			return LoadConfigWithEnvOverrides(candidate)
		}
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads configuration from a YAML file, applies defaults
// and validates it. Environment variables are not consulted.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies SCHEMAX_* environment variable overrides on top. Environment
// variables always take precedence over file values.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies SCHEMAX_SECTION_FIELD environment
// variables. List-valued variables are comma-separated.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("SCHEMAX_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("SCHEMAX_OUTPUT_LEVEL"); val != "" {
		cfg.Output.Level = val
	}

	if val := os.Getenv("SCHEMAX_VALIDATION_FAIL_MODE"); val != "" {
		cfg.Validation.FailMode = val
	}
	if val := os.Getenv("SCHEMAX_VALIDATION_RULE_APPLY"); val != "" {
		cfg.Validation.RuleApply = splitList(val)
	}
	if val := os.Getenv("SCHEMAX_VALIDATION_RULE_IGNORE"); val != "" {
		cfg.Validation.RuleIgnore = splitList(val)
	}
	if val := os.Getenv("SCHEMAX_VALIDATION_MAX_FILE_SIZE"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Validation.MaxFileSize = n
		}
	}

	if val := os.Getenv("SCHEMAX_CACHE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Cache.Enabled = &b
		}
	}
	if val := os.Getenv("SCHEMAX_CACHE_PATH"); val != "" {
		cfg.Cache.Path = val
	}
	if val := os.Getenv("SCHEMAX_CACHE_RETENTION_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Cache.RetentionDays = n
		}
	}
	if val := os.Getenv("SCHEMAX_CACHE_MAX_ENTRIES"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Cache.MaxEntries = n
		}
	}

	if val := os.Getenv("SCHEMAX_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
