package command

import (
	"fmt"
)

// NotFoundError is returned when a token resolves to no executable,
// neither as an allow-listed absolute path nor under the local
// commands directory.
type NotFoundError struct {
	Token string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q not found in the commands directory", e.Token)
}

// NotFoundOrNotAllowed implements the behavioral interface for
// cross-package resolution-failure checking.
func (e *NotFoundError) NotFoundOrNotAllowed() bool {
	return true
}

// NotAllowedError is returned when an absolute token exists but falls
// outside every allow-listed prefix, or contains parent references.
type NotAllowedError struct {
	Token  string
	Reason string
}

func (e *NotAllowedError) Error() string {
	return fmt.Sprintf("command %q is not allowed: %s", e.Token, e.Reason)
}

func (e *NotAllowedError) NotFoundOrNotAllowed() bool {
	return true
}

// NotExecutableError is returned when a resolved path exists but is
// not a regular executable file.
type NotExecutableError struct {
	Path string
}

func (e *NotExecutableError) Error() string {
	return fmt.Sprintf("%s is not an executable regular file", e.Path)
}

func (e *NotExecutableError) NotFoundOrNotAllowed() bool {
	return true
}

// EmptyTokenError is returned when a command string contains no tokens.
type EmptyTokenError struct{}

func (e *EmptyTokenError) Error() string {
	return "command string is empty"
}

func (e *EmptyTokenError) NotFoundOrNotAllowed() bool {
	return true
}

// IsResolutionFailure reports whether err is any of the resolver's
// validation failures.
func IsResolutionFailure(err error) bool {
	type notFoundOrNotAllowed interface {
		NotFoundOrNotAllowed() bool
	}
	f, ok := err.(notFoundOrNotAllowed)
	return ok && f.NotFoundOrNotAllowed()
}
