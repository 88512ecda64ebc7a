// Package instrument provides the render profiler: Prometheus metrics and
// OpenTelemetry traces around Arbor render calls.
//
// Wrap a render function to observe every call:
//
//	metrics := instrument.NewMetrics()
//	profiled := instrument.NewProfiler(metrics, instrument.WithTracing())
//	html, err := profiled.Render(ctx, node, instrument.ModeScoped, func() (string, error) {
//	    return enc.RenderScoped(node)
//	})
//
// The core render and scope packages stay free of any instrumentation;
// this package is the opt-in observability layer.
package instrument
