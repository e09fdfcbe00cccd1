package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this library's spans.
const tracerName = "github.com/vireo-ui/vireo"

// Tracer returns the tracer for engine-level spans (mount, session setup).
// It resolves through the global otel provider, so an application that never
// installs one gets no-op spans.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
