// Package batch runs the resolved command once per matched file,
// strictly sequentially, and aggregates the per-file output in
// enumeration order.
package batch

import (
	"bytes"
	"context"

	"github.com/Cyclone1070/filebatch/internal/command"
	"github.com/Cyclone1070/filebatch/internal/executil"
	"go.uber.org/zap"
)

// commandRunner defines the interface for executing a resolved command.
type commandRunner interface {
	Run(ctx context.Context, path string, args []string) (*executil.Result, error)
}

// Result holds the aggregate output and the per-file accounting.
type Result struct {
	Aggregate      []byte
	Truncated      bool
	FilesSeen      int
	FilesSucceeded int
}

// Executor processes a file batch with an optional command.
type Executor struct {
	runner       commandRunner
	log          *zap.Logger
	maxAggregate int64
}

// NewExecutor creates an Executor with injected dependencies.
func NewExecutor(runner commandRunner, log *zap.Logger, maxAggregate int64) *Executor {
	if runner == nil {
		panic("runner is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Executor{runner: runner, log: log, maxAggregate: maxAggregate}
}

// Run processes files in order. With a command, each file is handed to
// the resolved executable as its final argument and the command's
// stdout is appended to the aggregate; without one, the file path
// itself is appended as a line. A per-file failure (spawn error or
// non-zero exit) is logged and counted, never fatal: the batch always
// completes.
func (e *Executor) Run(ctx context.Context, files []string, spec *command.Spec) *Result {
	res := &Result{}
	var aggregate bytes.Buffer

	for _, file := range files {
		res.FilesSeen++

		if spec == nil {
			e.appendOutput(res, &aggregate, []byte(file+"\n"))
			res.FilesSucceeded++
			continue
		}

		out, err := e.runner.Run(ctx, spec.Path, spec.Argv(file))
		if err != nil {
			e.log.Error("command could not be started",
				zap.String("file", file),
				zap.String("command", spec.Path),
				zap.Error(err))
			continue
		}

		// Output produced before a failure still belongs to the
		// aggregate; only the success counter is withheld.
		e.appendOutput(res, &aggregate, out.Stdout)

		if out.ExitCode != 0 {
			e.log.Error("command failed",
				zap.String("file", file),
				zap.String("command", spec.Path),
				zap.Int("exit_code", out.ExitCode))
			continue
		}

		res.FilesSucceeded++
		e.log.Debug("file processed", zap.String("file", file))
	}

	res.Aggregate = aggregate.Bytes()
	return res
}

func (e *Executor) appendOutput(res *Result, aggregate *bytes.Buffer, out []byte) {
	remaining := e.maxAggregate - int64(aggregate.Len())
	if remaining <= 0 {
		if !res.Truncated {
			e.log.Warn("aggregate output limit reached, further output discarded",
				zap.Int64("limit", e.maxAggregate))
		}
		res.Truncated = true
		return
	}
	if int64(len(out)) > remaining {
		out = out[:remaining]
		res.Truncated = true
		e.log.Warn("aggregate output limit reached, output truncated",
			zap.Int64("limit", e.maxAggregate))
	}
	aggregate.Write(out)
}
