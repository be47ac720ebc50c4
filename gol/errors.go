package gol

import (
	"errors"
	"fmt"
)

// ErrMalformedBoard is wrapped by the loader when a board file cannot be parsed.
var ErrMalformedBoard = errors.New("malformed board file")

// ConfigError reports an invalid run parameter. It is always returned before
// any generation has been computed.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// IOError reports a failure reading or writing a board file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s board: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s board %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
