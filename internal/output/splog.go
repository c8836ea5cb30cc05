package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures file logging.
// Zero rotation values follow lumberjack: 100MB files, every backup kept forever.
type LogOptions struct {
	// File is the log file path; empty disables file logging
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Debug      bool
}

// simpleHandler writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	msg := record.Message
	record.Attrs(func(a slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and output.
// Records go to out; diagnostics go to the console handler.
type Splog struct {
	logger    *slog.Logger
	out       io.Writer
	logWriter io.WriteCloser
}

// NewSplog creates a console-only splog writing records to stdout and diagnostics to stderr.
// Debug messages are enabled when the DEBUG environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(os.Stdout, os.Stderr, LogOptions{Debug: os.Getenv("DEBUG") != ""})
	return splog
}

// NewSplogWithOptions creates a splog with optional rotating file logging
func NewSplogWithOptions(out, console io.Writer, opts LogOptions) (*Splog, error) {
	splog := &Splog{out: out}

	handlers := []slog.Handler{
		&simpleHandler{writer: console, debugMode: opts.Debug},
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
		}
		splog.logWriter = lj

		handlers = append(handlers, slog.NewTextHandler(lj, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// Logger returns the underlying slog logger for library packages
func (s *Splog) Logger() *slog.Logger {
	return s.logger
}

// Out returns the writer records are printed to
func (s *Splog) Out() io.Writer {
	return s.out
}

func (s *Splog) log(level slog.Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...any) {
	s.log(slog.LevelWarn, "warning: "+format, args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...any) {
	s.log(slog.LevelError, "error: "+format, args...)
}

// Debug writes a debug message
func (s *Splog) Debug(format string, args ...any) {
	s.log(slog.LevelDebug, format, args...)
}

// Page writes record output
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.out, content)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
