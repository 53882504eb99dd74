package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const alarmTracerName = "github.com/KasumiMercury/primind-activity-alarm/internal/service/overdue"

func AlarmTracer() trace.Tracer {
	return otel.Tracer(alarmTracerName)
}

func StartCheckSpan(ctx context.Context, userID string, now time.Time) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.check_overdue",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("check.now", now.Format(time.RFC3339)),
		),
	)
}

func StartBabyEvaluationSpan(ctx context.Context, babyID string, categories int) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.evaluate_baby",
		trace.WithAttributes(
			attribute.String("baby_id", babyID),
			attribute.Int("baby.enabled_categories", categories),
		),
	)
}

func StartDispatchSpan(ctx context.Context, at time.Time) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.dispatch",
		trace.WithAttributes(
			attribute.String("dispatch.at", at.Format(time.RFC3339)),
		),
	)
}

func StartTaskQueueSpan(ctx context.Context, operation, target string) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.task_queue."+operation,
		trace.WithAttributes(
			attribute.String("url", target),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordCheckResult(span trace.Span, babies, overdue, suppressed int, err error) {
	span.SetAttributes(
		attribute.Int("check.babies", babies),
		attribute.Int("check.overdue_count", overdue),
		attribute.Int("check.suppressed_count", suppressed),
	)
	RecordError(span, err)
}

func RecordDispatchResult(span trace.Span, users, enqueued, deduplicated, failed int, err error) {
	span.SetAttributes(
		attribute.Int("dispatch.users", users),
		attribute.Int("dispatch.enqueued_count", enqueued),
		attribute.Int("dispatch.deduplicated_count", deduplicated),
		attribute.Int("dispatch.failed_count", failed),
	)
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
