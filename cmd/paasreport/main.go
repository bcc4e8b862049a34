// Package main provides paasreport, the collator binary shipped for
// the trusted commands directory. It reads an aggregate file listing
// one path per line and validates every listed file as YAML.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/filebatch/internal/fsutil"
	"github.com/Cyclone1070/filebatch/internal/logging"
	"github.com/Cyclone1070/filebatch/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paasreport <file>",
		Short: "Validate the YAML files listed in an aggregate file",
		Long: `paasreport reads a file containing one path per line (typically the
aggregate produced by filebatch) and validates each listed file: the
path must be absolute, the file must exist, stay under 1 MB, and parse
as YAML. Per-file failures are reported and counted; only an unreadable
input file is fatal.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], cmd)
		},
	}
}

func runReport(input string, cmd *cobra.Command) error {
	logDir := "logs"
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			logDir = filepath.Join(filepath.Dir(resolved), "logs")
		}
	}

	logger, _ := logging.New(logDir, "paasreport")
	defer func() { _ = logger.Sync() }()

	validator := report.NewValidator(fsutil.NewOSFileSystem(), logger)
	summary, err := validator.Run(input, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info("report complete",
		zap.Int("valid", summary.Valid),
		zap.Int("errors", summary.Errors))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		var inputErr *report.InputError
		if errors.As(err, &inputErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", inputErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
