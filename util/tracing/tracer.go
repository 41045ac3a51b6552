package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.14.0"
	"go.opentelemetry.io/otel/trace"

	db "tweetstats/debug"
)

const (
	SVCNAME = "tweetstats"
)

type Tracer struct {
	t  trace.Tracer
	tp *sdktrace.TracerProvider
}

func NewTracer(t trace.Tracer, tp *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		t:  t,
		tp: tp,
	}
}

func (t *Tracer) StartContextSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.t.Start(ctx, name)
}

func (t *Tracer) StartTopLevelSpan(name string) (context.Context, trace.Span) {
	return t.t.Start(context.TODO(), name)
}

// StartStageSpan starts a child span for one pipeline stage.
func (t *Tracer) StartStageSpan(ctx context.Context, stage string, id int) (context.Context, trace.Span) {
	return t.t.Start(ctx, stage, trace.WithAttributes(
		attribute.String("stage", stage),
		attribute.Int("id", id),
	))
}

// Flush forces all ended spans out to the exporter.
func (t *Tracer) Flush() error {
	if t.tp == nil {
		return nil
	}
	return t.tp.ForceFlush(context.TODO())
}

func (t *Tracer) Shutdown() error {
	if t.tp == nil {
		return nil
	}
	if err := t.tp.Shutdown(context.TODO()); err != nil {
		db.DPrintf(db.TRACING, "Shutdown err %v", err)
		return err
	}
	return nil
}

func newJaegerExporter(host string) (*jaeger.Exporter, error) {
	return jaeger.New(
		jaeger.WithAgentEndpoint(
			jaeger.WithAgentHost(host),
		),
	)
}

// NewExporterTracer builds a tracer that sends every span to exp.
func NewExporterTracer(svcname string, exp sdktrace.SpanExporter) (*Tracer, error) {
	exporter := newThreadSafeExporterWrapper(exp)
	res, err := resource.New(context.TODO(), resource.WithAttributes(semconv.ServiceNameKey.String(svcname)))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res))
	return NewTracer(tp.Tracer(svcname), tp), nil
}

// Init returns a tracer exporting to the Jaeger agent on jaegerhost. If
// jaegerhost is empty, spans go to the global provider, which is a no-op
// unless something else installed one.
func Init(svcname string, jaegerhost string) (*Tracer, error) {
	if jaegerhost == "" {
		return NewTracer(otel.Tracer(svcname), nil), nil
	}
	exp, err := newJaegerExporter(jaegerhost)
	if err != nil {
		db.DPrintf(db.TRACING, "Error make Jaeger exporter: %v", err)
		return nil, err
	}
	t, err := NewExporterTracer(svcname, exp)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(t.tp)
	db.DPrintf(db.TRACING, "Jaeger tracing to %v", jaegerhost)
	return t, nil
}
