// Package failure defines the two fatal error kinds of a generation run.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports a missing or unusable input or output location.
type ConfigurationError struct {
	Op   string // what was attempted: "read keywords", "write tokens", ...
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Configf builds a ConfigurationError with a formatted cause.
func Configf(op, path, format string, args ...any) error {
	return &ConfigurationError{Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}

// Config wraps err as a ConfigurationError; nil stays nil.
func Config(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigurationError{Op: op, Path: path, Err: err}
}

// ExternalToolError reports a grammar compiler run that did not exit cleanly.
type ExternalToolError struct {
	Argv     []string
	ExitCode int // -1 when the process never started
	Stderr   string
	Err      error
}

func (e *ExternalToolError) Error() string {
	name := "external tool"
	if len(e.Argv) > 0 {
		name = e.Argv[0]
	}
	msg := strings.TrimSpace(e.Stderr)
	switch {
	case e.ExitCode < 0:
		return fmt.Sprintf("%s: %v", name, e.Err)
	case msg == "":
		return fmt.Sprintf("%s: exit status %d", name, e.ExitCode)
	default:
		return fmt.Sprintf("%s: exit status %d: %s", name, e.ExitCode, msg)
	}
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

// IsConfiguration reports whether err carries a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsExternalTool reports whether err carries an ExternalToolError.
func IsExternalTool(err error) bool {
	var te *ExternalToolError
	return errors.As(err, &te)
}
