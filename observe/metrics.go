package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CacheMeta identifies the cache a metric or span belongs to.
type CacheMeta struct {
	Component string // which cache: artifact|theme|scope
	Instance  string // optional instance label, e.g. the key prefix
}

func (m CacheMeta) attrs() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("cache.component", m.Component),
	}
	if m.Instance != "" {
		attrs = append(attrs, attribute.String("cache.instance", m.Instance))
	}
	return attrs
}

// Metrics records cache events.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; recording is best-effort.
// - Blocking: methods are called from cache hot paths and must return
//   quickly.
type Metrics interface {
	// RecordLookup records a cache read and whether it hit.
	RecordLookup(meta CacheMeta, hit bool)

	// RecordEviction records a capacity eviction.
	RecordEviction(meta CacheMeta)

	// RecordDisposal records a payload disposal; forced marks hot-reload
	// invalidation rather than a refcount reaching zero.
	RecordDisposal(meta CacheMeta, forced bool)

	// RecordFactory records one payload construction and its duration.
	RecordFactory(meta CacheMeta, duration time.Duration)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	lookups      metric.Int64Counter
	evictions    metric.Int64Counter
	disposals    metric.Int64Counter
	factoryCount metric.Int64Counter
	factoryHist  metric.Float64Histogram
}

// newMetrics creates a Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	lookups, err := meter.Int64Counter(
		"cache.lookups",
		metric.WithDescription("Total number of cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter(
		"cache.evictions",
		metric.WithDescription("Total number of capacity evictions"),
		metric.WithUnit("{eviction}"),
	)
	if err != nil {
		return nil, err
	}

	disposals, err := meter.Int64Counter(
		"cache.disposals",
		metric.WithDescription("Total number of payload disposals"),
		metric.WithUnit("{disposal}"),
	)
	if err != nil {
		return nil, err
	}

	factoryCount, err := meter.Int64Counter(
		"cache.factory.total",
		metric.WithDescription("Total number of payload constructions"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	factoryHist, err := meter.Float64Histogram(
		"cache.factory.duration_ms",
		metric.WithDescription("Payload construction duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		lookups:      lookups,
		evictions:    evictions,
		disposals:    disposals,
		factoryCount: factoryCount,
		factoryHist:  factoryHist,
	}, nil
}

// Cache operations never block and carry no context, so instrument updates
// use the background context.

func (m *metricsImpl) RecordLookup(meta CacheMeta, hit bool) {
	attrs := append(meta.attrs(), attribute.Bool("cache.hit", hit))
	m.lookups.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

func (m *metricsImpl) RecordEviction(meta CacheMeta) {
	m.evictions.Add(context.Background(), 1, metric.WithAttributes(meta.attrs()...))
}

func (m *metricsImpl) RecordDisposal(meta CacheMeta, forced bool) {
	attrs := append(meta.attrs(), attribute.Bool("cache.forced", forced))
	m.disposals.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

func (m *metricsImpl) RecordFactory(meta CacheMeta, duration time.Duration) {
	attrs := metric.WithAttributes(meta.attrs()...)
	m.factoryCount.Add(context.Background(), 1, attrs)
	m.factoryHist.Record(context.Background(), float64(duration.Milliseconds()), attrs)
}

// noopMetrics discards all events.
type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that records nothing.
func NewNoopMetrics() Metrics {
	return noopMetrics{}
}

func (noopMetrics) RecordLookup(CacheMeta, bool)           {}
func (noopMetrics) RecordEviction(CacheMeta)               {}
func (noopMetrics) RecordDisposal(CacheMeta, bool)         {}
func (noopMetrics) RecordFactory(CacheMeta, time.Duration) {}

// Ensure implementations satisfy Metrics.
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = noopMetrics{}
)
