package core

import "go.uber.org/zap"

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to the Logger interface. A nil logger
// yields a no-op Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		return noopLogger{}
	}
	return zapLogger{sugar: logger.Sugar()}
}

func (l zapLogger) Debug(msg string, kv ...any) { l.sugar.Debugw(msg, kv...) }
func (l zapLogger) Info(msg string, kv ...any)  { l.sugar.Infow(msg, kv...) }
func (l zapLogger) Warn(msg string, kv ...any)  { l.sugar.Warnw(msg, kv...) }
func (l zapLogger) Error(msg string, kv ...any) { l.sugar.Errorw(msg, kv...) }
