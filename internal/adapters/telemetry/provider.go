package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rerun/internal/core/ports"
)

// NewProvider returns a tracer provider that reports spans through logger.
// Spans are processed synchronously, so each line is written as soon as its
// span ends.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}
