package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging contract used across modules. Context is passed so
// implementations can attach trace metadata.
type Logger interface {
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type zapLogger struct {
	log *zap.Logger
}

var instance Logger

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return logger
}

func Init(l *zap.Logger) {
	instance = &zapLogger{log: l}
}

func GetLogger() Logger {
	if instance == nil {
		Init(SetupLogger())
	}
	return instance
}

func (z *zapLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	z.log.Info(msg, fields(args)...)
}

func (z *zapLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	z.log.Warn(msg, fields(args)...)
}

func (z *zapLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	z.log.Error(msg, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	if len(args) == 0 {
		return nil
	}
	fs := make([]zap.Field, 0, len(args))
	for _, a := range args {
		fs = append(fs, zap.Any("detail", a))
	}
	return fs
}
