package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Recorder counts estimates per calculator and outcome.
type Recorder interface {
	RecordEstimate(ctx context.Context, kind, outcome string, duration time.Duration)
}

type Observability struct {
	meterProvider *metric.MeterProvider
	estimates     otelmetric.Int64Counter
	duration      otelmetric.Float64Histogram
}

// New registers an OpenTelemetry meter exported through the default
// prometheus registry, so estimate metrics appear on /metrics.
func New(serviceName string) (*Observability, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	o, err := newWithMeter(provider.Meter(serviceName))
	if err != nil {
		return nil, err
	}
	o.meterProvider = provider
	return o, nil
}

// NewNoop returns a Recorder that drops everything.
func NewNoop() *Observability {
	o, _ := newWithMeter(noop.NewMeterProvider().Meter("noop"))
	return o
}

func newWithMeter(meter otelmetric.Meter) (*Observability, error) {
	estimates, err := meter.Int64Counter(
		"estimates.processed",
		otelmetric.WithDescription("Number of estimates processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("create estimate counter: %w", err)
	}
	duration, err := meter.Float64Histogram(
		"estimates.duration",
		otelmetric.WithDescription("Estimate computation duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create estimate histogram: %w", err)
	}
	return &Observability{estimates: estimates, duration: duration}, nil
}

func (o *Observability) RecordEstimate(ctx context.Context, kind, outcome string, duration time.Duration) {
	attrs := otelmetric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	)
	o.estimates.Add(ctx, 1, attrs)
	o.duration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
