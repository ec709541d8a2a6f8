// internal/utils/logging.go
package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const LogFileMode = 0644

var Logger = zap.NewNop()

// Init configures zap to write to the console and, when logFile is not empty,
// to a JSON log file as well. Call it once at startup.
func Init(logFile string) error {
	// Configure encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := levelFromEnv()

	// Console output goes to stderr so command output on stdout stays parseable.
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), level),
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, LogFileMode)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", logFile, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	Logger.Debug("logging initialized",
		zap.String("log_level", level.String()),
		zap.String("log_file", logFile))

	return nil
}

// levelFromEnv reads `LOG_LEVEL` (default: info).
func levelFromEnv() zapcore.Level {
	envLevel := os.Getenv("LOG_LEVEL")
	if envLevel == "" {
		return zapcore.InfoLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(envLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown LOG_LEVEL '%s', defaulting to 'info'\n", envLevel)
		return zapcore.InfoLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field so callers
// don't have to repeat the same field across messages in a component.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return nil
	}
	return Logger.With(zap.String(FieldComponent, component))
}
