package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	alarmMeterName = "alarm.service"
)

type AlarmMetrics struct {
	checksTotal         metric.Int64Counter
	overdueActivities   metric.Int64Counter
	skipSuppressed      metric.Int64Counter
	checkDuration       metric.Float64Histogram
	dispatchTasks       metric.Int64Counter
	dispatchDuration    metric.Float64Histogram
	predictionsBySource metric.Int64Counter
}

func NewAlarmMetrics() (*AlarmMetrics, error) {
	meter := otel.Meter(alarmMeterName)

	checksTotal, err := meter.Int64Counter(
		"alarm_checks_total",
		metric.WithDescription("Total number of overdue checks"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	overdueActivities, err := meter.Int64Counter(
		"alarm_overdue_activities_total",
		metric.WithDescription("Overdue activities reported by checks"),
		metric.WithUnit("{activity}"),
	)
	if err != nil {
		return nil, err
	}

	skipSuppressed, err := meter.Int64Counter(
		"alarm_skip_suppressed_total",
		metric.WithDescription("Overdue activities hidden by a recent skip"),
		metric.WithUnit("{activity}"),
	)
	if err != nil {
		return nil, err
	}

	checkDuration, err := meter.Float64Histogram(
		"alarm_check_duration_seconds",
		metric.WithDescription("Overdue check duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	dispatchTasks, err := meter.Int64Counter(
		"alarm_dispatch_tasks_total",
		metric.WithDescription("Alarm tasks handled by the dispatch job"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	dispatchDuration, err := meter.Float64Histogram(
		"alarm_dispatch_duration_seconds",
		metric.WithDescription("Dispatch job duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	predictionsBySource, err := meter.Int64Counter(
		"alarm_predictions_total",
		metric.WithDescription("Predictions computed, by interval source"),
		metric.WithUnit("{prediction}"),
	)
	if err != nil {
		return nil, err
	}

	return &AlarmMetrics{
		checksTotal:         checksTotal,
		overdueActivities:   overdueActivities,
		skipSuppressed:      skipSuppressed,
		checkDuration:       checkDuration,
		dispatchTasks:       dispatchTasks,
		dispatchDuration:    dispatchDuration,
		predictionsBySource: predictionsBySource,
	}, nil
}

// RecordCheck records one overdue check. outcome is "success", "short_circuit" or "error".
func (m *AlarmMetrics) RecordCheck(ctx context.Context, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.checksTotal.Add(ctx, 1, attrs)
	m.checkDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *AlarmMetrics) RecordOverdue(ctx context.Context, category string) {
	m.overdueActivities.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
	))
}

func (m *AlarmMetrics) RecordSkipSuppressed(ctx context.Context, category string) {
	m.skipSuppressed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
	))
}

func (m *AlarmMetrics) RecordPrediction(ctx context.Context, category, source string) {
	m.predictionsBySource.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("source", source),
	))
}

// RecordDispatchTasks records tasks by outcome: "enqueued", "deduplicated" or "failed".
func (m *AlarmMetrics) RecordDispatchTasks(ctx context.Context, outcome string, count int) {
	if count == 0 {
		return
	}
	m.dispatchTasks.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *AlarmMetrics) RecordDispatchDuration(ctx context.Context, duration time.Duration) {
	m.dispatchDuration.Record(ctx, duration.Seconds())
}
