package resilience

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/disasternav/disasternav/internal/provider/resilience"

// providerMetrics records per-provider request metrics. Every upstream
// call goes through Client.Do, so instrumenting here covers Overpass,
// both routing providers, and anything added later.
type providerMetrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

var (
	metricsOnce sync.Once
	metrics     *providerMetrics
)

// getMetrics lazily initializes the shared instruments. Instrument
// creation failures leave metrics nil and recording becomes a no-op.
func getMetrics() *providerMetrics {
	metricsOnce.Do(func() {
		meter := otel.Meter(meterName)

		requestDuration, err := meter.Float64Histogram(
			"provider.request.duration",
			metric.WithDescription("Duration of provider requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			return
		}

		requestTotal, err := meter.Int64Counter(
			"provider.request.total",
			metric.WithDescription("Total number of provider requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			return
		}

		metrics = &providerMetrics{
			requestDuration: requestDuration,
			requestTotal:    requestTotal,
		}
	})
	return metrics
}

// record logs one provider call. Uses a background context so metrics
// survive request cancellation.
func (m *providerMetrics) record(provider string, duration time.Duration, err error) {
	if m == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("provider.name", provider),
	}
	if err != nil {
		attrs = append(attrs, attribute.Bool("error", true))
	}

	ctx := context.Background()
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}
