package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Cyclone1070/filebatch/internal/collate"
	"github.com/Cyclone1070/filebatch/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noUsage() error { return nil }

func writeDataFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newRun returns ready-to-use options plus a data tree with three yaml files.
func newRun(t *testing.T) (*options, string) {
	t.Helper()
	data := t.TempDir()
	writeDataFile(t, filepath.Join(data, "b.yaml"), "two\nlines\n")
	writeDataFile(t, filepath.Join(data, "a.yaml"), "one\n")
	writeDataFile(t, filepath.Join(data, "sub", "c.yaml"), "three\n")
	writeDataFile(t, filepath.Join(data, "skip.txt"), "no\n")

	opts := &options{
		pattern: "*.yaml",
		path:    data,
		progDir: t.TempDir(),
	}
	return opts, data
}

func TestRun_ListingMode(t *testing.T) {
	opts, data := newRun(t)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), opts, &stdout, &stderr, noUsage)
	require.NoError(t, err)

	want := filepath.Join(data, "a.yaml") + "\n" +
		filepath.Join(data, "b.yaml") + "\n" +
		filepath.Join(data, "sub", "c.yaml") + "\n"
	assert.Equal(t, want, stdout.String())
}

func TestRun_ListingMode_Idempotent(t *testing.T) {
	opts, _ := newRun(t)

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &first, new(bytes.Buffer), noUsage))
	require.NoError(t, run(context.Background(), opts, &second, new(bytes.Buffer), noUsage))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_MissingPattern(t *testing.T) {
	opts := &options{progDir: t.TempDir()}

	var stdout, stderr bytes.Buffer
	usageCalled := false
	err := run(context.Background(), opts, &stdout, &stderr, func() error {
		usageCalled = true
		return nil
	})

	require.ErrorIs(t, err, errUsage)
	assert.True(t, usageCalled)
	assert.Contains(t, stderr.String(), "file pattern is required")
}

func TestRun_UnresolvableCommand_FailsBeforeOutput(t *testing.T) {
	opts, _ := newRun(t)
	opts.command = "definitely-not-installed"

	var stdout bytes.Buffer
	err := run(context.Background(), opts, &stdout, new(bytes.Buffer), noUsage)

	require.Error(t, err)
	assert.True(t, command.IsResolutionFailure(err), "expected a resolution failure, got %v", err)
	assert.Empty(t, stdout.String(), "validation failures must abort before any output")
}

func TestRun_UnresolvableCollator_Fails(t *testing.T) {
	opts, _ := newRun(t)
	opts.collator = "/etc/passwd"

	err := run(context.Background(), opts, new(bytes.Buffer), new(bytes.Buffer), noUsage)
	require.Error(t, err)
	assert.True(t, command.IsResolutionFailure(err))
}

func TestRun_CommandPerFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix utilities")
	}
	opts, _ := newRun(t)
	opts.command = "/bin/cat"

	var stdout bytes.Buffer
	err := run(context.Background(), opts, &stdout, new(bytes.Buffer), noUsage)
	require.NoError(t, err)

	// cat output per file, in enumeration order (a, b, sub/c).
	assert.Equal(t, "one\ntwo\nlines\nthree\n", stdout.String())
}

func TestRun_LocalCommandFromCommandsDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix utilities")
	}
	opts, _ := newRun(t)

	script := filepath.Join(opts.progDir, "commands", "first_line")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
	require.NoError(t, os.WriteFile(script,
		[]byte("#!/bin/sh\nhead -n 1 \"$1\"\n"), 0o755))

	opts.command = "first_line"

	var stdout bytes.Buffer
	err := run(context.Background(), opts, &stdout, new(bytes.Buffer), noUsage)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", stdout.String())
}

func TestRun_CollatorRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix utilities")
	}
	opts, _ := newRun(t)

	// Baseline: built-in concatenation.
	var builtin bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &builtin, new(bytes.Buffer), noUsage))

	// cat as collator reproduces the aggregate byte for byte.
	opts.collator = "/bin/cat"
	var collated bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &collated, new(bytes.Buffer), noUsage))

	assert.Equal(t, builtin.String(), collated.String())
}

func TestRun_CollatorFailurePropagates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix utilities")
	}
	opts, _ := newRun(t)
	opts.collator = "/bin/false"

	err := run(context.Background(), opts, new(bytes.Buffer), new(bytes.Buffer), noUsage)

	var exitErr *collate.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.NotZero(t, exitErr.ExitStatus())
}

func TestRun_ZeroMatches_CollatorStillRuns(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix utilities")
	}
	opts, _ := newRun(t)
	opts.pattern = "*.nomatch"
	opts.collator = "/bin/cat"

	var stdout bytes.Buffer
	err := run(context.Background(), opts, &stdout, new(bytes.Buffer), noUsage)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_PerFileFailuresDoNotChangeExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix utilities")
	}
	opts, _ := newRun(t)
	// ls with an option that makes it fail on regular files is hard to
	// come by; a script that always fails is deterministic.
	script := filepath.Join(opts.progDir, "commands", "always_fail")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 2\n"), 0o755))
	opts.command = "always_fail"

	var stdout bytes.Buffer
	err := run(context.Background(), opts, &stdout, new(bytes.Buffer), noUsage)

	require.NoError(t, err, "per-file failures are non-fatal")
	assert.Empty(t, stdout.String())
}

func TestNewRootCommand_FlagSurface(t *testing.T) {
	opts := &options{}
	cmd := newRootCommand(opts)

	for flag, short := range map[string]string{
		"filepattern": "f",
		"newerthan":   "n",
		"command":     "c",
		"collator":    "o",
		"path":        "p",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "missing flag --%s", flag)
		assert.Equal(t, short, f.Shorthand, "flag --%s", flag)
	}
	assert.Equal(t, ".", cmd.Flags().Lookup("path").DefValue)
}
