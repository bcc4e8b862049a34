// Package main provides the filebatch command-line interface. It
// locates files under a directory matching a name pattern, optionally
// runs a validated command against each match, and pipes the collected
// output through a validated collator command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/filebatch/internal/batch"
	"github.com/Cyclone1070/filebatch/internal/collate"
	"github.com/Cyclone1070/filebatch/internal/command"
	"github.com/Cyclone1070/filebatch/internal/config"
	"github.com/Cyclone1070/filebatch/internal/enumerate"
	"github.com/Cyclone1070/filebatch/internal/executil"
	"github.com/Cyclone1070/filebatch/internal/fsutil"
	"github.com/Cyclone1070/filebatch/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the flag values for one run.
type options struct {
	pattern   string
	newerThan string
	command   string
	collator  string
	path      string

	// progDir is the directory of the program binary; resolved from
	// os.Executable when empty. The commands and logs directories live
	// under it.
	progDir string
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filebatch",
		Short: "Find files and pipe them through validated commands",
		Long: `filebatch locates files under a directory matching a name pattern
(optionally filtered by modification time), optionally runs a validated
command against each matched file, and pipes the collected results
through a validated collator command (default: concatenation).

Commands are resolved against a fixed allow-list of trusted directories
or against the local commands directory next to the binary. There is no
PATH lookup and no shell interpretation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.Usage)
		},
	}

	cmd.Flags().StringVarP(&opts.pattern, "filepattern", "f", "", "glob matched against file names (required)")
	cmd.Flags().StringVarP(&opts.newerThan, "newerthan", "n", "", "only include files modified after this date/time")
	cmd.Flags().StringVarP(&opts.command, "command", "c", "", "command to run against each matched file")
	cmd.Flags().StringVarP(&opts.collator, "collator", "o", "", "command to run once over the aggregated output")
	cmd.Flags().StringVarP(&opts.path, "path", "p", ".", "directory to search")

	return cmd
}

// errUsage marks failures that have already been reported with usage text.
var errUsage = errors.New("usage error")

func run(ctx context.Context, opts *options, stdout, stderr io.Writer, usage func() error) error {
	if opts.pattern == "" {
		fmt.Fprintln(stderr, "Error: a file pattern is required")
		_ = usage()
		return errUsage
	}

	progDir := opts.progDir
	if progDir == "" {
		resolved, err := programDir()
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot locate program directory: %v\n", err)
			return err
		}
		progDir = resolved
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintln(stderr, "Using default configuration.")
		cfg = config.DefaultConfig()
	}

	runID := uuid.NewString()
	logger, _ := logging.New(filepath.Join(progDir, cfg.Logging.Dir), "filebatch")
	logger = logger.With(zap.String("run_id", runID))
	defer func() { _ = logger.Sync() }()

	var newerThan *time.Time
	if opts.newerThan != "" {
		ts, err := enumerate.ParseNewerThan(opts.newerThan)
		if err != nil {
			logger.Error("invalid --newerthan value", zap.Error(err))
			return err
		}
		newerThan = &ts
	}

	// Validate both command tokens before touching the filesystem, so a
	// bad token never triggers enumeration or process spawning.
	resolver := command.NewResolver(fsutil.NewOSFileSystem(), command.AllowList{
		Prefixes:   cfg.Commands.AllowedPrefixes,
		CommandDir: filepath.Join(progDir, cfg.Commands.LocalDir),
	})

	cmdSpec, err := resolveFlag(resolver, opts.command, "command", logger)
	if err != nil {
		return err
	}
	colSpec, err := resolveFlag(resolver, opts.collator, "collator", logger)
	if err != nil {
		return err
	}

	files, err := enumerate.Enumerate(opts.path, opts.pattern, newerThan)
	if err != nil {
		logger.Error("enumeration failed", zap.Error(err))
		return err
	}
	logger.Info("files matched",
		zap.String("pattern", opts.pattern),
		zap.String("path", opts.path),
		zap.Int("count", len(files)))

	runner := executil.NewOSRunner(logger, cfg.Commands.MaxCommandOutputSize)

	executor := batch.NewExecutor(runner, logger, cfg.Commands.MaxAggregateSize)
	result := executor.Run(ctx, files, cmdSpec)
	logger.Info("batch complete",
		zap.Int("files_seen", result.FilesSeen),
		zap.Int("files_succeeded", result.FilesSucceeded))

	collator := collate.NewCollator(runner, logger, runID)
	if err := collator.Run(ctx, result.Aggregate, colSpec, stdout); err != nil {
		logger.Error("collation failed", zap.Error(err))
		return err
	}

	return nil
}

// resolveFlag splits and resolves an optional command flag value.
// An empty value yields a nil spec (no command / built-in collator).
func resolveFlag(resolver *command.Resolver, raw, role string, logger *zap.Logger) (*command.Spec, error) {
	if raw == "" {
		return nil, nil
	}
	spec, err := command.Split(raw)
	if err != nil {
		logger.Error("invalid "+role, zap.String("value", raw), zap.Error(err))
		return nil, err
	}
	if err := resolver.ResolveSpec(spec); err != nil {
		logger.Error(role+" failed validation", zap.String("value", raw), zap.Error(err))
		return nil, err
	}
	logger.Debug(role+" resolved",
		zap.String("name", spec.Name),
		zap.String("path", spec.Path),
		zap.Strings("args", spec.Args))
	return spec, nil
}

// programDir returns the directory holding the program binary, with
// symlinks resolved. The trusted commands directory and the logs
// directory are both anchored here.
func programDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

func main() {
	opts := &options{}
	root := newRootCommand(opts)

	// -h/--help prints usage and exits 1, matching the original surface.
	helpRequested := false
	root.SetHelpFunc(func(c *cobra.Command, args []string) {
		helpRequested = true
		fmt.Fprint(os.Stderr, c.UsageString())
	})
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = c.Usage()
		return errUsage
	})

	err := root.ExecuteContext(context.Background())
	if helpRequested {
		os.Exit(1)
	}
	if err != nil {
		var exitErr *collate.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitErr.ExitStatus())
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
