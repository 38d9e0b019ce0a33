package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cask/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor to report completed spans to the
// debug log.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Debug(fmt.Sprintf("span %s failed after %s: %s", s.Name(), elapsed, desc))
		return
	}

	b.logger.Debug(fmt.Sprintf("span %s completed in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// Setup configures the OpenTelemetry SDK with the log bridge.
func Setup(logger ports.Logger) {
	// Register the bridge as a SpanProcessor so completed spans reach the
	// debug log.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)

	otel.SetTracerProvider(tp)
}
