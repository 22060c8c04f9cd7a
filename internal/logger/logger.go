// Package logger is the process-wide structured logger used by the CLI and
// batch runner. The analysis core does not log.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is one structured key/value attached to a log line.
type Field struct {
	Key  string
	Data interface{}
}

// Logger is replaced by Init. It discards output until then so packages can
// log safely from tests.
var Logger = zap.NewNop()

// Init builds the global logger. Development mode uses the console encoder.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Logger = l
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger.Sync()
}

func toZap(payload []Field) []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(payload))
	for _, f := range payload {
		if err, ok := f.Data.(error); ok {
			fields = append(fields, zap.NamedError(f.Key, err))
			continue
		}
		fields = append(fields, zap.Any(f.Key, f.Data))
	}
	return fields
}

// Debug logs debug level messages.
func Debug(msg string, payload ...Field) {
	Logger.Debug(msg, toZap(payload)...)
}

// Info logs info level messages.
func Info(msg string, payload ...Field) {
	Logger.Info(msg, toZap(payload)...)
}

// Warning logs warning messages.
func Warning(msg string, payload ...Field) {
	Logger.Warn(msg, toZap(payload)...)
}

// Error logs error messages. Pass the error itself as a Field with key "error".
func Error(msg string, payload ...Field) {
	Logger.Error(msg, toZap(payload)...)
}
