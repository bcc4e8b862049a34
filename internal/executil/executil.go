// Package executil runs resolved commands argv-style via os/exec. The
// command path has already passed the allow-list; nothing here ever
// consults PATH or a shell.
package executil

import (
	"bytes"
	"context"
	"os/exec"

	"go.uber.org/zap"
)

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    []byte
	ExitCode  int
	Truncated bool
}

// OSRunner executes commands using os/exec. Standard output is
// captured up to a size cap; standard error is routed to the log
// channel.
type OSRunner struct {
	log       *zap.Logger
	maxOutput int64
}

// NewOSRunner creates an OSRunner with injected logger and stdout cap.
func NewOSRunner(log *zap.Logger, maxOutput int64) *OSRunner {
	if log == nil {
		panic("log is required")
	}
	return &OSRunner{log: log, maxOutput: maxOutput}
}

// Run invokes path with args and blocks until the process exits.
// A nil error with a non-zero ExitCode means the process ran and
// failed; a non-nil error means the process could not be started.
func (r *OSRunner) Run(ctx context.Context, path string, args []string) (*Result, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = nil

	stdout := newCappedBuffer(r.maxOutput)
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stderr.Len() > 0 {
		r.log.Debug("command stderr",
			zap.String("command", path),
			zap.ByteString("stderr", bytes.TrimRight(stderr.Bytes(), "\n")))
	}

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			// The process never ran (missing interpreter, permission
			// change between resolution and execution, ...).
			return nil, &CommandError{Path: path, Cause: err, Stage: "start"}
		}
	}

	return &Result{
		Stdout:    stdout.Bytes(),
		ExitCode:  exitCode,
		Truncated: stdout.Truncated(),
	}, nil
}
