package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	// Info, Warn, and Error are always enabled
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil // Suppress output when in quiet mode
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
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
	// Enable if any handler is enabled
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	// Send to all handlers; each gets its own copy of the attrs
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

// LogRotation holds lumberjack rotation limits
type LogRotation struct {
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogRotation returns the rotation limits used when nothing is configured
func DefaultLogRotation() LogRotation {
	return LogRotation{
		MaxSize:    1,  // 1MB
		MaxBackups: 2,  // Keep 2 old files
		MaxAge:     30, // Keep for 30 days
	}
}

// LogRotationFromEnv overrides the defaults with INTERM_LOG_MAX_SIZE,
// INTERM_LOG_MAX_BACKUPS and INTERM_LOG_MAX_AGE. Invalid values are ignored.
func LogRotationFromEnv() LogRotation {
	rotation := DefaultLogRotation()

	if maxSizeStr := os.Getenv("INTERM_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			rotation.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("INTERM_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			rotation.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("INTERM_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			rotation.MaxAge = maxAge
		}
	}

	return rotation
}

// SplogOptions configures a Splog
type SplogOptions struct {
	// Writer receives console output. Defaults to os.Stdout.
	Writer io.Writer
	// LogFile enables file logging when non-empty.
	LogFile  string
	Rotation LogRotation
	Debug    bool
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser // Lumberjack logger for file logging
	quiet     bool           // When true, suppresses console output (used while a block owns the terminal)
}

// NewSplog creates a new splog instance with console-only logging
// Debug messages are enabled when the DEBUG environment variable is set
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(SplogOptions{Debug: os.Getenv("DEBUG") != ""})
	return splog
}

// NewSplogWithOptions creates a new splog instance with optional file logging
func NewSplogWithOptions(opts SplogOptions) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	splog := &Splog{
		writer: writer,
	}

	// Console handler for user-facing messages
	consoleHandler := &simpleHandler{
		writer:    writer,
		debugMode: opts.Debug,
		quiet:     &splog.quiet,
	}
	handlers := []slog.Handler{consoleHandler}

	// File handler with rotation, only when a log file is configured
	if opts.LogFile != "" {
		logDir := filepath.Dir(opts.LogFile)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		rotation := opts.Rotation
		if rotation == (LogRotation{}) {
			rotation = DefaultLogRotation()
		}
		lumberjackLogger := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   false, // Never compress logs
		}
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet sets the quiet mode for the logger.
// When quiet is true, console output is suppressed; file logging continues.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether the logger is in quiet mode.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

// Writer returns the console writer
func (s *Splog) Writer() io.Writer {
	return s.writer
}

func (s *Splog) logMessage(level slog.Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, "⚠️  "+format, args)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, "❌ "+format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, format, args)
}

// Newline writes a newline
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
