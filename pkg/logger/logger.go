// Package logger provides standardized logging utilities for the Sonatina IR toolchain.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Global logger instance
var defaultLogger *slog.Logger

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    string // "text" or "json"
	Output    io.Writer
	AddSource bool
	LogFile   string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:     LevelInfo,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	var handler slog.Handler

	output := cfg.Output
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		output = file
	}

	opts := &slog.HandlerOptions{
		Level:     toSlogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)

	return nil
}

// InitDev initializes logging for development (debug level, text format)
func InitDev() {
	_ = Init(Config{
		Level:     LevelDebug,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: true,
	})
}

// InitProd initializes logging for production (info level, json format)
func InitProd(logDir string) error {
	logPath := filepath.Join(logDir, "sonatina.log")
	return Init(Config{
		Level:     LevelInfo,
		Format:    "json",
		LogFile:   logPath,
		AddSource: false,
	})
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Error(msg, args...)
	}
}

// With returns a new logger with the given attributes
func With(args ...any) *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger.With(args...)
	}
	return slog.Default().With(args...)
}

// WithGroup returns a new logger with the given group
func WithGroup(name string) *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger.WithGroup(name)
	}
	return slog.Default().WithGroup(name)
}

// IR-domain logging helpers

// LogModuleBuild logs a module finishing construction.
func LogModuleBuild(triple string, funcCount int) {
	Info("module build complete", "triple", triple, "functions", funcCount)
}

// LogTypeIntern logs a compound type being interned (debug-level; this
// fires once per distinct struct/array/ptr shape, which can be noisy).
func LogTypeIntern(kind string, handle uint32) {
	Debug("type interned", "kind", kind, "handle", handle)
}

// LogFunctionDeclare logs a function being declared in a ModuleBuilder.
func LogFunctionDeclare(name string, argCount, retCount int) {
	Debug("function declared", "name", name, "args", argCount, "rets", retCount)
}

// LogCfgCompute logs a control-flow graph being (re)computed for a
// function, reporting how many blocks were reachable from the entry.
func LogCfgCompute(funcName string, blockCount, reachableCount int) {
	Debug("cfg computed", "function", funcName, "blocks", blockCount, "reachable", reachableCount)
}

// LogPassRun logs a transform pass finishing a run over a function.
func LogPassRun(pass, funcName string, changed bool) {
	Info("pass run complete", "pass", pass, "function", funcName, "changed", changed)
}

// LogCompilerStart logs the CLI starting up.
func LogCompilerStart(args []string) {
	Info("sonatina starting", "args", args)
}

// LogCompilerComplete logs the CLI finishing.
func LogCompilerComplete(success bool, duration string) {
	if success {
		Info("run successful", "duration", duration)
	} else {
		Error("run failed", "duration", duration)
	}
}

// LogToolError logs a tool-level error (CLI argument parsing, file I/O).
func LogToolError(stage string, err error) {
	Error("error", "stage", stage, "error", err)
}
