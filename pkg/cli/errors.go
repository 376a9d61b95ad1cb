package cli

import (
	"errors"
	"fmt"
)

// Process exit codes. Zero is success (or fail-never); validation
// failures and usage mistakes are distinguished for CI scripting.
const (
	ExitOK         = 0
	ExitValidation = 1
	ExitUsage      = 2
)

// ErrValidationFailed signals that at least one file failed
// validation. The status line has already been printed, so commands
// returning it expect the exit code alone to carry the verdict.
var ErrValidationFailed = errors.New("validation failed")

// ConfigError represents an error in configuration or flag usage.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// CommandError represents a failed command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}

// ExitCode maps an error to the process exit code: configuration and
// usage mistakes exit 2, everything else (validation failures included)
// exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitUsage
	}
	return ExitValidation
}
