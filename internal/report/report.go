// Package report validates a batch of YAML files listed in an
// aggregate file, one path per line. It backs the paasreport collator
// binary shipped for the trusted commands directory.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// MaxFileSize is the largest YAML file the validator accepts.
const MaxFileSize = 1 << 20 // 1 MiB

const separator = "--------------------------------------------------"

// FileSystem abstracts the filesystem operations the validator needs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Summary is the per-run accounting.
type Summary struct {
	Valid  int
	Errors int
}

// Validator checks listed files for YAML validity.
type Validator struct {
	fs  FileSystem
	log *zap.Logger
}

// NewValidator creates a Validator with injected dependencies.
func NewValidator(fs FileSystem, log *zap.Logger) *Validator {
	if fs == nil {
		panic("fs is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Validator{fs: fs, log: log}
}

// Run reads the aggregate file at input and validates every listed
// path, writing per-file results and a final summary to out. Blank
// lines are skipped. Per-file failures are reported and counted, never
// fatal; only an unreadable input file is an error.
func (v *Validator) Run(input string, out io.Writer) (*Summary, error) {
	data, err := v.fs.ReadFile(input)
	if err != nil {
		v.log.Error("cannot read input file", zap.String("input", input), zap.Error(err))
		return nil, &InputError{Path: input, Cause: err}
	}

	fmt.Fprintf(out, "Processing file: %s\n", input)
	fmt.Fprintln(out, separator)

	summary := &Summary{}
	for i, line := range strings.Split(string(data), "\n") {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}

		fmt.Fprintf(out, "Line %d: %s\n", i+1, path)

		if err := v.ValidateFile(path); err != nil {
			v.log.Warn("validation failed", zap.String("file", path), zap.Error(err))
			fmt.Fprintf(out, "Error: %v\n", err)
			summary.Errors++
		} else {
			v.log.Info("validation successful", zap.String("file", path))
			fmt.Fprintf(out, "Success: '%s' is a valid YAML file.\n", path)
			summary.Valid++
		}
		fmt.Fprintln(out, separator)
	}

	fmt.Fprintf(out, "Summary: %d valid YAML files, %d errors\n", summary.Valid, summary.Errors)
	v.log.Info("processing completed",
		zap.Int("valid", summary.Valid),
		zap.Int("errors", summary.Errors))
	return summary, nil
}

// ValidateFile checks one listed path: it must be absolute, exist,
// stay within the size cap, and parse as YAML.
func (v *Validator) ValidateFile(path string) error {
	if !filepath.IsAbs(path) {
		return &NotAbsoluteError{Path: path}
	}

	info, err := v.fs.Stat(path)
	if err != nil {
		return &MissingFileError{Path: path}
	}
	if info.IsDir() {
		return &MissingFileError{Path: path}
	}
	if info.Size() > MaxFileSize {
		return &TooLargeError{Path: path, Size: info.Size()}
	}

	content, err := v.fs.ReadFile(path)
	if err != nil {
		return &ReadError{Path: path, Cause: err}
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return &InvalidYAMLError{Path: path, Cause: err}
	}
	return nil
}
