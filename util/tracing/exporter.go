package tracing

import (
	"context"

	"github.com/sasha-s/go-deadlock"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// The jaeger exporter is not safe for concurrent use
// (https://github.com/open-telemetry/opentelemetry-go/issues/3036), and
// stage spans end from many goroutines. Serialize calls into it.
type threadSafeExporterWrapper struct {
	mu       deadlock.Mutex
	exporter sdktrace.SpanExporter
	nspan    int
}

func newThreadSafeExporterWrapper(exporter sdktrace.SpanExporter) *threadSafeExporterWrapper {
	return &threadSafeExporterWrapper{
		exporter: exporter,
	}
}

func (tse *threadSafeExporterWrapper) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	tse.mu.Lock()
	defer tse.mu.Unlock()
	tse.nspan += len(spans)
	return tse.exporter.ExportSpans(ctx, spans)
}

func (tse *threadSafeExporterWrapper) Nspan() int {
	tse.mu.Lock()
	defer tse.mu.Unlock()
	return tse.nspan
}

func (tse *threadSafeExporterWrapper) Shutdown(ctx context.Context) error {
	tse.mu.Lock()
	defer tse.mu.Unlock()
	return tse.exporter.Shutdown(ctx)
}
