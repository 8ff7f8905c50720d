// Package logging builds the process-wide slog logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"deskcalc/internal/config"
)

// New returns a JSON slog.Logger for cfg and a closer for its file target.
// stderr is the writer used for the "stderr" output.
func New(cfg config.LoggingConfig, stderr io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{
		Level:     LevelFromString(cfg.Level),
		AddSource: cfg.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.TrimPrefix(source.Function, "deskcalc/")
				}
			}
			return a
		},
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case config.OutputFile:
		target := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxAge:     cfg.MaxAge,  // days
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		w, closer = target, target
	case config.OutputDiscard:
		w = io.Discard
	default:
		if stderr == nil {
			stderr = os.Stderr
		}
		w = stderr
	}

	return slog.New(slog.NewJSONHandler(w, opts)), closer
}

// Init builds the logger for cfg and installs it as the slog default.
func Init(cfg config.LoggingConfig, stderr io.Writer) io.Closer {
	logger, closer := New(cfg, stderr)
	slog.SetDefault(logger)
	return closer
}

// LevelFromString maps a configured level name to a slog.Level; unknown
// names fall back to info.
func LevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
