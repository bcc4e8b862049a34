package collate

import (
	"fmt"
)

// ExitError is returned when the collator runs but exits non-zero. Its
// status becomes the program's own exit status.
type ExitError struct {
	Path string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("collator %s exited with status %d", e.Path, e.Code)
}

// ExitStatus returns the collator's exit status.
func (e *ExitError) ExitStatus() int {
	return e.Code
}

// CollatorError is returned when the collator cannot be spawned.
type CollatorError struct {
	Path  string
	Cause error
}

func (e *CollatorError) Error() string {
	return fmt.Sprintf("failed to run collator %s: %v", e.Path, e.Cause)
}

func (e *CollatorError) Unwrap() error {
	return e.Cause
}

// AggregateFileError is returned when the aggregate temp file cannot
// be written.
type AggregateFileError struct {
	Path  string
	Cause error
}

func (e *AggregateFileError) Error() string {
	return fmt.Sprintf("failed to write aggregate file %s: %v", e.Path, e.Cause)
}

func (e *AggregateFileError) Unwrap() error {
	return e.Cause
}

// OutputError is returned when final output cannot be written.
type OutputError struct {
	Cause error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Cause)
}

func (e *OutputError) Unwrap() error {
	return e.Cause
}
