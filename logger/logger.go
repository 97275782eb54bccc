package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = newSugared()

func newSugared() *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.NewProductionConfig()
	config.EncoderConfig = encoderConfig

	l, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// Replace swaps the package logger, tests use it with zaptest/observer.
func Replace(l *zap.Logger) {
	log = l.Sugar()
}

func Debug(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}

// Fatal logs then exits the process
func Fatal(msg string, keysAndValues ...interface{}) {
	log.Fatalw(msg, keysAndValues...)
}

// With returns a child logger carrying the given fields
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return log.With(keysAndValues...)
}

func Sync() {
	_ = log.Sync()
}
