package core

import (
	"context"
	"time"

	"storefront/pkg/domain"
)

// Logger is the structured logging facade used by the state containers.
// Arguments after msg are alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// MetricsRecorder receives one observation per container operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Tracer opens a span per container operation.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// TraceSpan is closed with the operation outcome.
type TraceSpan interface {
	End(err error)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, string, bool, time.Duration) {}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, TraceSpan) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type settings struct {
	logger  Logger
	clock   Clock
	metrics MetricsRecorder
	tracer  Tracer
	slots   domain.SlotStore
	slotKey string
}

func defaultSettings() settings {
	return settings{
		logger:  noopLogger{},
		clock:   systemClock{},
		metrics: noopMetrics{},
		tracer:  noopTracer{},
	}
}

// Option customises a Store.
type Option func(*settings)

// WithLogger routes container logs to logger.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for timing and generated timestamps.
func WithClock(clock Clock) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMetricsRecorder records an observation for every dispatch.
func WithMetricsRecorder(recorder MetricsRecorder) Option {
	return func(s *settings) {
		if recorder != nil {
			s.metrics = recorder
		}
	}
}

// WithTracer opens a span for every dispatch.
func WithTracer(tracer Tracer) Option {
	return func(s *settings) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithSlots hydrates the store from key on construction and saves every new
// snapshot back under key.
func WithSlots(slots domain.SlotStore, key string) Option {
	return func(s *settings) {
		s.slots = slots
		s.slotKey = key
	}
}
