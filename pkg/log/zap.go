package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDKey is the context key under which the request id travels.
type contextKey string

const RequestIDKey contextKey = "request_id"

// ZapConfig holds logger configuration.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // json | console
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the zap-backed Logger. It never fails: invalid settings fall
// back to a production JSON logger at info level.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "development" {
		zapCfg = zap.NewDevelopmentConfig()
		if cfg.ColorEnabled {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// with pulls per-request fields out of the context.
func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		return l.sugar.With("request_id", reqID)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...any)  { l.with(ctx).Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)   { l.with(ctx).Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)   { l.with(ctx).Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any)  { l.with(ctx).Error(args...) }
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.with(ctx).DPanic(args...) }
func (l *zapLogger) Panic(ctx context.Context, args ...any)  { l.with(ctx).Panic(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any)  { l.with(ctx).Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Debugf(format, args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.with(ctx).Infof(format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Warnf(format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Errorf(format, args...)
}

func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).DPanicf(format, args...)
}

func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Panicf(format, args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Fatalf(format, args...)
}
