package instrument

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arbor-dev/arbor/pkg/tree"
)

// Render modes reported as metric labels and span attributes.
const (
	ModePlain  = "plain"
	ModeScoped = "scoped"
)

// defaultTracerName identifies Arbor spans.
const defaultTracerName = "arbor"

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithTracing enables OpenTelemetry spans around render calls.
func WithTracing() ProfilerOption {
	return func(p *Profiler) {
		p.tracer = otel.Tracer(defaultTracerName)
	}
}

// WithTracerName enables tracing with a custom tracer name.
func WithTracerName(name string) ProfilerOption {
	return func(p *Profiler) {
		p.tracer = otel.Tracer(name)
	}
}

// Profiler wraps render calls with metrics and optional tracing.
type Profiler struct {
	metrics *Metrics
	tracer  trace.Tracer
}

// NewProfiler creates a Profiler. A nil metrics argument disables metric
// recording; tracing is off unless enabled by an option.
func NewProfiler(metrics *Metrics, opts ...ProfilerOption) *Profiler {
	p := &Profiler{metrics: metrics}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render runs fn, recording duration, node count, output size and outcome.
func (p *Profiler) Render(ctx context.Context, node *tree.Node, mode string, fn func() (string, error)) (string, error) {
	var span trace.Span
	if p.tracer != nil {
		_, span = p.tracer.Start(ctx, "arbor.render",
			trace.WithAttributes(
				attribute.String("arbor.mode", mode),
				attribute.Int("arbor.tree_nodes", tree.Count(node)),
			))
		defer span.End()
	}

	start := time.Now()
	html, err := fn()
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.ObserveRender(mode, elapsed, tree.Count(node), len(html), err)
	}
	if span != nil {
		span.SetAttributes(attribute.Int("arbor.output_bytes", len(html)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}

	return html, err
}
