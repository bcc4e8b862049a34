package report

import (
	"fmt"
)

// InputError is returned when the aggregate input file cannot be read.
type InputError struct {
	Path  string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("could not read input file '%s': %v", e.Path, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// NotAbsoluteError is returned for a listed path that is not absolute.
type NotAbsoluteError struct {
	Path string
}

func (e *NotAbsoluteError) Error() string {
	return fmt.Sprintf("file path '%s' is not an absolute path", e.Path)
}

// MissingFileError is returned for a listed path that does not exist
// as a regular file.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file '%s' does not exist", e.Path)
}

// TooLargeError is returned for a listed file over the size cap.
type TooLargeError struct {
	Path string
	Size int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file '%s' exceeds the maximum allowed size of 1 MB. File size: %d bytes", e.Path, e.Size)
}

// ReadError wraps failures reading a listed file.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading file '%s': %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// InvalidYAMLError is returned when a listed file is not valid YAML.
type InvalidYAMLError struct {
	Path  string
	Cause error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("'%s' is not a valid YAML file: %v", e.Path, e.Cause)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Cause
}
