package executil

import (
	"fmt"
)

// CommandError is returned when a process cannot be spawned.
type CommandError struct {
	Path  string
	Cause error
	Stage string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed at %s: %v", e.Path, e.Stage, e.Cause)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}
