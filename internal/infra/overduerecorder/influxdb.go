//go:build !gcloud

package overduerecorder

import (
	"context"
	"log/slog"
	"strconv"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.OverdueResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "overdue result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, overdue result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "overdue result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}, nil
}

func checkPoint(record domain.OverdueCheckRecord) *write.Point {
	return influxdb2.NewPoint(
		"overdue_check",
		map[string]string{
			"run_id":   record.RunID,
			"baby_id":  record.BabyID,
			"category": record.Category.String(),
			"overdue":  strconv.FormatBool(record.Overdue),
		},
		map[string]any{
			"user_id":            record.UserID,
			"minutes_until":      record.MinutesUntil,
			"threshold_minutes":  record.ThresholdMinutes,
			"skipped":            record.Skipped,
			"next_expected_unix": record.NextExpectedTime.Unix(),
		},
		record.CheckedAt,
	)
}

func (r *influxDBRecorder) RecordCheckResults(ctx context.Context, records []domain.OverdueCheckRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, checkPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write overdue checks to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *influxDBRecorder) RecordDispatchSummary(ctx context.Context, record domain.DispatchSummaryRecord) error {
	point := influxdb2.NewPoint(
		"alarm_dispatch",
		map[string]string{
			"run_id": record.RunID,
		},
		map[string]any{
			"users":        record.Users,
			"failed_users": record.FailedUsers,
			"overdue":      record.Overdue,
			"enqueued":     record.Enqueued,
			"deduplicated": record.Deduplicated,
			"failed_tasks": record.FailedTasks,
		},
		record.DispatchedAt,
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write dispatch summary to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
