// Package logging provides the leveled console logger used by every
// package, with an optional structured JSON file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/symcat/internal/config"
	"github.com/backmassage/symcat/internal/term"
)

// Logger provides leveled, optionally colored console logging. When a log
// file is configured every line is mirrored as a JSON record through zap.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File
	zl      *zap.Logger
	fields  []zap.Field
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile for
// appending. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is NewLogger with explicit console writers.
func NewLoggerTo(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{
		verbose: cfg.Verbose,
		stdout:  stdout,
		stderr:  stderr,
		zl:      zap.NewNop(),
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.zl = zap.New(newFileCore(f, cfg.Verbose))
	}
	return l, nil
}

// newFileCore builds a JSON core writing to w. Debug records are kept only
// in verbose mode, matching the console.
func newFileCore(w io.Writer, verbose bool) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
}

// With returns a logger that attaches fields to every file record. Console
// output is unchanged. The returned logger shares the parent's sinks.
func (l *Logger) With(fields ...zap.Field) *Logger {
	child := &Logger{
		verbose: l.verbose,
		stdout:  l.stdout,
		stderr:  l.stderr,
		zl:      l.zl,
	}
	child.fields = append(append([]zap.Field{}, l.fields...), fields...)
	return child
}

// Close flushes and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.zl.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.zl = zap.NewNop()
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, zlevel zapcore.Level, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.stdout
	if zlevel >= zapcore.ErrorLevel {
		out = l.stderr
	}
	_, _ = io.WriteString(out, ts+" "+term.Render(style, "["+level+"]")+" "+text+"\n")

	if ce := l.zl.Check(zlevel, text); ce != nil {
		ce.Write(append([]zap.Field{zap.String("tag", level)}, l.fields...)...)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, zapcore.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, zapcore.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only in verbose mode; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, zapcore.DebugLevel, fmt.Sprintf(format, args...))
}
