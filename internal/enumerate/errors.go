package enumerate

import (
	"fmt"
)

// InvalidPatternError is returned for a malformed glob pattern.
type InvalidPatternError struct {
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid file pattern %q: %v", e.Pattern, e.Cause)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Cause
}

func (e *InvalidPatternError) InvalidInput() bool {
	return true
}

// InvalidTimeError is returned when a --newerthan value cannot be parsed.
type InvalidTimeError struct {
	Value string
	Cause error
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid date/time %q: %v", e.Value, e.Cause)
}

func (e *InvalidTimeError) Unwrap() error {
	return e.Cause
}

func (e *InvalidTimeError) InvalidInput() bool {
	return true
}

// RootMissingError is returned when the enumeration root does not exist.
type RootMissingError struct {
	Root string
}

func (e *RootMissingError) Error() string {
	return fmt.Sprintf("search path does not exist: %s", e.Root)
}

// NotADirectoryError is returned when the enumeration root is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("search path is not a directory: %s", e.Path)
}

// StatError wraps unexpected filesystem failures during enumeration.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to inspect %s: %v", e.Path, e.Cause)
}

func (e *StatError) Unwrap() error {
	return e.Cause
}
