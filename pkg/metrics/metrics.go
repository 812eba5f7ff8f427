// Package metrics defines the OpenTelemetry instruments recorded by the
// classifier service.
package metrics

import (
	"context"
	"fmt"
	"time"
	"triangle/pkg/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

// MeterName is the instrumentation scope of every instrument in this package.
const MeterName = "triangle"

// Recorder records classification metrics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	classifications metric.Int64Counter
	batchCases      metric.Int64Histogram
	batchFailures   metric.Int64Counter
	batchDuration   metric.Float64Histogram
}

// NewRecorder creates the instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	classifications, err := meter.Int64Counter("triangle.classifications",
		metric.WithDescription("Number of triangles classified, by label"))
	if err != nil {
		return nil, fmt.Errorf("could not create classifications counter: %w", err)
	}

	batchCases, err := meter.Int64Histogram("triangle.batch.cases",
		metric.WithDescription("Number of cases per batch"),
		metric.WithExplicitBucketBoundaries(1, 6, 10, 100, 1000, 10000))
	if err != nil {
		return nil, fmt.Errorf("could not create batch cases histogram: %w", err)
	}

	batchFailures, err := meter.Int64Counter("triangle.batch.failures",
		metric.WithDescription("Number of batch cases whose label differed from the expected one"))
	if err != nil {
		return nil, fmt.Errorf("could not create batch failures counter: %w", err)
	}

	batchDuration, err := meter.Float64Histogram("triangle.batch.duration",
		metric.WithDescription("Time spent classifying and comparing a batch"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create batch duration histogram: %w", err)
	}

	return &Recorder{
		classifications: classifications,
		batchCases:      batchCases,
		batchFailures:   batchFailures,
		batchDuration:   batchDuration,
	}, nil
}

// Classified counts one classification with the given label.
func (r *Recorder) Classified(ctx context.Context, label domain.Label) {
	if r == nil {
		return
	}
	r.classifications.Add(ctx, 1, metric.WithAttributes(attribute.String("label", string(label))))
}

// BatchDone records the size, failures and duration of a compared batch.
func (r *Recorder) BatchDone(ctx context.Context, cases, failures int, took time.Duration) {
	if r == nil {
		return
	}
	r.batchCases.Record(ctx, int64(cases))
	r.batchFailures.Add(ctx, int64(failures))
	r.batchDuration.Record(ctx, took.Seconds())
}
