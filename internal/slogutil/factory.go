package slogutil

import (
	"io"
	"log/slog"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/config"
)

// LoggerFactory builds the process logger from configuration and CLI flags.
// Precedence for the level: CLI flag > config > warn.
type LoggerFactory struct {
	config   *config.Config
	cliLevel *slog.Level
	closers  []io.Closer
}

// NewLoggerFactory creates a new logger factory. A nil cliLevel defers to
// the configured level.
func NewLoggerFactory(cfg *config.Config, cliLevel *slog.Level) *LoggerFactory {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &LoggerFactory{config: cfg, cliLevel: cliLevel}
}

// Logger returns a logger writing to w in the configured format. When a log
// file is configured, records are also appended there in line format,
// rotated by size if MaxSize is set.
func (f *LoggerFactory) Logger(w io.Writer) (*slog.Logger, error) {
	level := f.EffectiveLevel()
	console := NewFormatHandler(w, f.config.Logging.Format, level)

	if f.config.Logging.File == "" {
		return slog.New(console), nil
	}

	fileLogger, closer, err := NewFileLoggerWithRotation(
		f.config.ResolvePath(f.config.Logging.File), level, f.config.Logging.MaxSize, f.config.Logging.MaxBackups)
	if err != nil {
		return nil, err
	}
	f.closers = append(f.closers, closer)
	return slog.New(NewTeeHandler(console, fileLogger.Handler())), nil
}

// EffectiveLevel returns the level loggers are created with.
func (f *LoggerFactory) EffectiveLevel() slog.Level {
	if f.cliLevel != nil {
		return *f.cliLevel
	}
	if f.config.Logging.Level != "" {
		return LevelFromString(f.config.Logging.Level)
	}
	return slog.LevelWarn
}

// Close closes all open log files.
func (f *LoggerFactory) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	return firstErr
}
