// Package logger is a thin wrapper over zap so callers don't carry a
// logger instance around.
package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

func init() {
	log, _ = zap.NewProduction(zap.AddCallerSkip(1))
}

// SetVerbose switches to a human-readable development logger.
func SetVerbose() {
	log, _ = zap.NewDevelopment(zap.AddCallerSkip(1))
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}
