// Package logging builds the per-run logger: a timestamped log file at
// debug level plus a stderr console at info level, tee'd together.
// The logger handle is passed explicitly to every component; there is
// no package-level logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to <dir>/<prefix>_<timestamp>.log and to
// stderr. It returns the logger and the log file path. If the log file
// cannot be created the logger degrades to console-only, the returned
// path is empty, and a warning is emitted; a run never fails because
// logging is unavailable.
func New(dir, prefix string) (*zap.Logger, string) {
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = nil // console lines carry level + message only
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)

	file, path, err := openLogFile(dir, prefix)
	if err != nil {
		logger := zap.New(console)
		logger.Warn("log file unavailable, continuing with console only", zap.Error(err))
		return logger, ""
	}

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(fileCfg),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)

	logger := zap.New(zapcore.NewTee(console, fileCore))
	logger.Info("logging initialized", zap.String("log_file", path))
	return logger, path
}

func openLogFile(dir, prefix string) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("%s_%s.log", prefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", err
	}
	return file, path, nil
}
