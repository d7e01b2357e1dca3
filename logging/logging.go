// Package logging configures the structured logger used by the driver.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

func toZapLevel(level int) zapcore.Level {
	switch level {
	case TraceLevel, DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// CreateLogger produces a structured logger for driver-side diagnostics,
// filtered to the given level
func CreateLogger(level int) *zap.SugaredLogger {
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(toZapLevel(level))
	conf.DisableStacktrace = true
	logger, err := conf.Build()
	if err != nil {
		// zap only fails to build on invalid config, which we control
		panic(err)
	}
	return logger.Sugar()
}

// CreateNopLogger produces a logger which discards all messages
func CreateNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
