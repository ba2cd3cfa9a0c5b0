// Package log is a thin wrapper around zap that carries request-scoped
// fields through context. All packages log through this facade so the
// encoder and level are configured in exactly one place.
package log

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var logger = zap.NewNop()

type ctxFieldsKey struct{}

// Init configures the process-wide logger. option is either "console" or
// "json"; level is a zap level name ("debug", "info", ...).
func Init(option, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if option == "console" {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)
	logger = zap.New(core, zap.AddCallerSkip(1))
	return nil
}

// InitForTest swaps in a no-op logger so tests stay quiet.
func InitForTest() {
	logger = zap.NewNop()
}

// InjectFields returns a context whose fields are appended to every log
// call made with it. Used by the http middleware for request correlation.
func InjectFields(ctx context.Context, fields ...Field) context.Context {
	existing, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func fromCtx(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	existing, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	if len(existing) == 0 {
		return fields
	}
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return merged
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Debug(msg, fromCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Info(msg, fromCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Warn(msg, fromCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Error(msg, fromCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	logger.Panic(msg, fromCtx(ctx, fields)...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Fatalf(format, args...)
}

func String(key, val string) Field          { return zap.String(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Int(key string, val int) Field         { return zap.Int(key, val) }
func Int64(key string, val int64) Field     { return zap.Int64(key, val) }
func Uint64(key string, val uint64) Field   { return zap.Uint64(key, val) }
func Bool(key string, val bool) Field       { return zap.Bool(key, val) }
func Float64(key string, val float64) Field { return zap.Float64(key, val) }
func Any(key string, val any) Field         { return zap.Any(key, val) }
func Err(err error) Field                   { return zap.Error(err) }
