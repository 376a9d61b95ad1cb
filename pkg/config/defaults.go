package config

// ApplyDefaults fills zero-valued fields with their documented
// defaults. It is idempotent.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Output.Level == "" {
		cfg.Output.Level = "quiet"
	}
	if cfg.Validation.FailMode == "" {
		cfg.Validation.FailMode = FailModeAfter
	}
	if cfg.Cache.Enabled == nil {
		enabled := true
		cfg.Cache.Enabled = &enabled
	}
	if cfg.Cache.RetentionDays == 0 {
		cfg.Cache.RetentionDays = 90
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
