package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cask/internal/adapters/telemetry"
)

func TestNoOpTracer_Start(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span")
	assert.NotNil(t, newCtx)
	assert.NotNil(t, span)

	span.End()
}

func TestNoOpSpan_End(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	_, span := tracer.Start(ctx, "test")
	span.End()
}

func TestNoOpSpan_RecordError(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	_, span := tracer.Start(ctx, "test")
	span.RecordError(errors.New("test error"))
	span.End()
}

func TestNoOpSpan_SetAttribute(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	_, span := tracer.Start(ctx, "test")
	span.SetAttribute("key", "value")
	span.SetAttribute("int", 123)
	span.SetAttribute("bool", true)
	span.End()
}
