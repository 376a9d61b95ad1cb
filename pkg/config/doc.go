// Package config loads schemax configuration from a YAML file with
// environment variable overrides. The precedence order is defaults,
// then file values, then SCHEMAX_* environment variables, then
// command-line flags (applied by the commands themselves).
package config
