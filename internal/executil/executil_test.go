package executil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests use unix utilities")
	}
	runner := NewOSRunner(zap.NewNop(), 1024*1024)

	t.Run("SimpleCommand", func(t *testing.T) {
		res, err := runner.Run(context.Background(), "/bin/echo", []string{"hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(string(res.Stdout)) != "hello" {
			t.Errorf("expected stdout 'hello', got %q", res.Stdout)
		}
		if res.ExitCode != 0 {
			t.Errorf("expected exit code 0, got %d", res.ExitCode)
		}
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		res, err := runner.Run(context.Background(), "/bin/ls", []string{"/definitely/not/here"})
		if err != nil {
			t.Fatalf("process ran, expected nil error: %v", err)
		}
		if res.ExitCode == 0 {
			t.Error("expected non-zero exit code")
		}
	})

	t.Run("SpawnError", func(t *testing.T) {
		_, err := runner.Run(context.Background(), "/definitely/not/a/binary", nil)
		if err == nil {
			t.Fatal("expected spawn error")
		}
		if _, ok := err.(*CommandError); !ok {
			t.Errorf("expected CommandError, got %T", err)
		}
	})

	t.Run("ArgumentsStayLiteral", func(t *testing.T) {
		// A shell would expand $HOME; argv execution must not.
		res, err := runner.Run(context.Background(), "/bin/echo", []string{"$HOME"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(string(res.Stdout)) != "$HOME" {
			t.Errorf("argument was expanded: %q", res.Stdout)
		}
	})

	t.Run("LargeOutputTruncated", func(t *testing.T) {
		small := NewOSRunner(zap.NewNop(), 10)
		res, err := small.Run(context.Background(), "/bin/echo", []string{"123456789012345"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Truncated {
			t.Error("expected output to be truncated")
		}
		if len(res.Stdout) > 10 {
			t.Errorf("expected stdout length <= 10, got %d", len(res.Stdout))
		}
	})

	t.Run("FileArgument", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "in.txt")
		if err := os.WriteFile(file, []byte("line one\nline two\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		res, err := runner.Run(context.Background(), "/bin/cat", []string{file})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(res.Stdout) != "line one\nline two\n" {
			t.Errorf("unexpected stdout %q", res.Stdout)
		}
	})
}

func TestCappedBuffer(t *testing.T) {
	buf := newCappedBuffer(5)

	n, err := buf.Write([]byte("abc"))
	if err != nil || n != 3 {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if buf.Truncated() {
		t.Error("not truncated yet")
	}

	// Writers past the cap still report full success.
	n, err = buf.Write([]byte("defgh"))
	if err != nil || n != 5 {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if string(buf.Bytes()) != "abcde" {
		t.Errorf("unexpected contents %q", buf.Bytes())
	}
	if !buf.Truncated() {
		t.Error("expected truncation")
	}
}
