// Package collate runs the resolved collator command exactly once over
// the aggregated batch output, or falls back to a built-in
// concatenation so output is never silently lost.
package collate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/filebatch/internal/command"
	"github.com/Cyclone1070/filebatch/internal/executil"
	"go.uber.org/zap"
)

// commandRunner defines the interface for executing the resolved collator.
type commandRunner interface {
	Run(ctx context.Context, path string, args []string) (*executil.Result, error)
}

// Collator invokes the collator command over the aggregate output.
type Collator struct {
	runner commandRunner
	log    *zap.Logger
	runID  string
}

// NewCollator creates a Collator with injected dependencies. runID
// scopes the aggregate temp file to this run.
func NewCollator(runner commandRunner, log *zap.Logger, runID string) *Collator {
	if runner == nil {
		panic("runner is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Collator{runner: runner, log: log, runID: runID}
}

// Run hands the aggregate to the collator and writes the final program
// output to out. A nil spec selects the built-in pass-through
// concatenation. With a spec, the aggregate is written to a run-scoped
// temp file whose path is appended as the collator's final argument;
// the file is removed on every exit path. Collator failure is the one
// fatal error a full run can end on.
func (c *Collator) Run(ctx context.Context, aggregate []byte, spec *command.Spec, out io.Writer) error {
	if spec == nil {
		if _, err := out.Write(aggregate); err != nil {
			return &OutputError{Cause: err}
		}
		return nil
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("filebatch_%s.agg", c.runID))
	if err := os.WriteFile(path, aggregate, 0o600); err != nil {
		return &AggregateFileError{Path: path, Cause: err}
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			c.log.Warn("failed to remove aggregate file",
				zap.String("path", path), zap.Error(err))
		}
	}()

	c.log.Debug("invoking collator",
		zap.String("collator", spec.Path),
		zap.String("aggregate", path),
		zap.Int("aggregate_bytes", len(aggregate)))

	res, err := c.runner.Run(ctx, spec.Path, spec.Argv(path))
	if err != nil {
		return &CollatorError{Path: spec.Path, Cause: err}
	}

	if _, err := out.Write(res.Stdout); err != nil {
		return &OutputError{Cause: err}
	}

	if res.ExitCode != 0 {
		return &ExitError{Path: spec.Path, Code: res.ExitCode}
	}
	return nil
}
