package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "LISTCRAFT_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output with rotation.
// The interactive UI owns stdout, so this is the only useful sink while it runs.
const LogFileEnvVar = "LISTCRAFT_LOG_FILE"

// Options controls logger construction.
type Options struct {
	Level string // debug, info, warn, error; empty means silent
	File  string // rotated log file; empty means stderr

	// Interactive is set when a full-screen program owns the terminal.
	// Without a file, logging is then silent rather than going to stderr.
	Interactive bool
}

// Initialize creates a new logger from opts.
// Empty fields fall back to LISTCRAFT_LOG_LEVEL and LISTCRAFT_LOG_FILE.
// If no level is configured anywhere, logging is disabled (silent mode).
func Initialize(opts Options) error {
	if opts.Level == "" {
		opts.Level = os.Getenv(LogLevelEnvVar)
	}
	if opts.File == "" {
		opts.File = os.Getenv(LogFileEnvVar)
	}

	if opts.Level == "" || (opts.File == "" && opts.Interactive) {
		logger = zap.NewNop()
		return nil
	}

	zapLevel := ParseLevel(opts.Level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var core zapcore.Core
	if opts.File != "" {
		// Colour codes are noise in a file
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(sink),
			zap.NewAtomicLevelAt(zapLevel),
		)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapLevel),
		)
	}

	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

// InitializeFromEnv initializes the logger from LISTCRAFT_LOG_LEVEL and
// LISTCRAFT_LOG_FILE only.
func InitializeFromEnv() error {
	return Initialize(Options{})
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info, since asking for logs at all means something.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFetch logs the outcome of a list fetch
func LogFetch(endpoint string, groups int, items int, err error) {
	if err != nil {
		Warn("List fetch failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return
	}
	Info("List fetch completed",
		zap.String("endpoint", endpoint),
		zap.Int("groups", groups),
		zap.Int("items", items),
	)
}

// LogTransition logs a view-state transition
func LogTransition(op string, mode string, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.String("op", op),
		zap.String("mode", mode),
	}, fields...)
	Debug("State transition", all...)
}

// Describe returns a one-line summary of the active configuration,
// used by `listcraft config show`.
func Describe(opts Options) string {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		return "silent"
	}
	file := opts.File
	if file == "" {
		file = os.Getenv(LogFileEnvVar)
	}
	if file == "" {
		if opts.Interactive {
			return "silent (interactive, no log file)"
		}
		file = "stderr"
	}
	return fmt.Sprintf("%s -> %s", ParseLevel(level).String(), file)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
