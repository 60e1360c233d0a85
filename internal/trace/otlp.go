package trace

import (
	"context"
	"os"
	"strconv"

	"movielist/internal/movie"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export when set (host:port of the collector).
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// InsecureEnv set to "false" enables TLS towards the collector.
	InsecureEnv = "MOVIELIST_OTLP_INSECURE"

	defaultServiceName  = "movielist"
	instrumentationName = "movielist/internal/movie"
)

// Attribute keys recorded on store spans.
const (
	AttrMovieID   = attribute.Key("movielist.movie.id")
	AttrTitle     = attribute.Key("movielist.movie.title")
	AttrRemoved   = attribute.Key("movielist.movie.removed")
	AttrSize      = attribute.Key("movielist.collection.size")
	AttrSessionID = attribute.Key("movielist.session.id")
)

// Tracer records a span for every store dispatch. It implements movie.Observer.
type Tracer struct {
	provider  *sdktrace.TracerProvider // nil when export is disabled
	tracer    oteltrace.Tracer
	sessionID string
}

// Ensure Tracer can observe the store.
var _ movie.Observer = (*Tracer)(nil)

// NewTracer creates a Tracer on top of an existing provider.
func NewTracer(tp oteltrace.TracerProvider, sessionID string) *Tracer {
	return &Tracer{
		tracer:    tp.Tracer(instrumentationName),
		sessionID: sessionID,
	}
}

// NewOTLPTracer creates a Tracer exporting to OTEL_EXPORTER_OTLP_ENDPOINT.
// When the endpoint is not configured the returned Tracer is a no-op.
func NewOTLPTracer(ctx context.Context, sessionID string) (*Tracer, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return NewTracer(noop.NewTracerProvider(), sessionID), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if insecure, err := strconv.ParseBool(os.Getenv(InsecureEnv)); err != nil || insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	t := NewTracer(provider, sessionID)
	t.provider = provider
	return t, nil
}

// Enabled reports whether spans are exported anywhere.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// ObserveDispatch implements movie.Observer.
func (t *Tracer) ObserveDispatch(ctx context.Context, a movie.Action) (context.Context, func(movie.Result, int, error)) {
	attrs := []attribute.KeyValue{AttrSessionID.String(t.sessionID)}
	name := "movie." + a.Name()
	switch a := a.(type) {
	case movie.AddMovie:
		name = SpanAdd
		attrs = append(attrs, AttrTitle.String(a.Title))
	case movie.RemoveMovie:
		name = SpanRemove
		attrs = append(attrs, AttrMovieID.Int(a.ID))
	}

	ctx, span := t.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
	return ctx, func(res movie.Result, size int, err error) {
		defer span.End()
		span.SetAttributes(AttrSize.Int(size))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		switch a.(type) {
		case movie.AddMovie:
			span.SetAttributes(AttrMovieID.Int(res.Movie.ID))
		case movie.RemoveMovie:
			span.SetAttributes(AttrRemoved.Bool(res.Removed))
		}
	}
}

// Shutdown flushes and closes the exporter
func (t *Tracer) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
