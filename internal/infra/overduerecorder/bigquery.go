//go:build gcloud

package overduerecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type bigQueryCheckRow struct {
	RecordedAt       time.Time `bigquery:"recorded_at"`
	RunID            string    `bigquery:"run_id"`
	UserID           string    `bigquery:"user_id"`
	BabyID           string    `bigquery:"baby_id"`
	Category         string    `bigquery:"category"`
	CheckedAt        time.Time `bigquery:"checked_at"`
	NextExpectedTime time.Time `bigquery:"next_expected_time"`
	MinutesUntil     float64   `bigquery:"minutes_until"`
	ThresholdMinutes int64     `bigquery:"threshold_minutes"`
	Overdue          bool      `bigquery:"overdue"`
	Skipped          bool      `bigquery:"skipped"`
}

type bigQueryDispatchRow struct {
	RecordedAt   time.Time `bigquery:"recorded_at"`
	RunID        string    `bigquery:"run_id"`
	DispatchedAt time.Time `bigquery:"dispatched_at"`
	Users        int64     `bigquery:"users"`
	FailedUsers  int64     `bigquery:"failed_users"`
	Overdue      int64     `bigquery:"overdue"`
	Enqueued     int64     `bigquery:"enqueued"`
	Deduplicated int64     `bigquery:"deduplicated"`
	FailedTasks  int64     `bigquery:"failed_tasks"`
}

type bigQueryRecorder struct {
	client           *bigquery.Client
	checksInserter   *bigquery.Inserter
	dispatchInserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.OverdueResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "overdue result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, overdue result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, overdue result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	dataset := client.Dataset(cfg.BigQueryDataset)

	slog.InfoContext(ctx, "overdue result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
	)

	return &bigQueryRecorder{
		client:           client,
		checksInserter:   dataset.Table(cfg.BigQueryChecksTable).Inserter(),
		dispatchInserter: dataset.Table(cfg.BigQueryDispatchTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordCheckResults(ctx context.Context, records []domain.OverdueCheckRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryCheckRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryCheckRow{
			RecordedAt:       now,
			RunID:            record.RunID,
			UserID:           record.UserID,
			BabyID:           record.BabyID,
			Category:         record.Category.String(),
			CheckedAt:        record.CheckedAt,
			NextExpectedTime: record.NextExpectedTime,
			MinutesUntil:     record.MinutesUntil,
			ThresholdMinutes: int64(record.ThresholdMinutes),
			Overdue:          record.Overdue,
			Skipped:          record.Skipped,
		})
	}

	if err := r.checksInserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert overdue checks to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) RecordDispatchSummary(ctx context.Context, record domain.DispatchSummaryRecord) error {
	row := &bigQueryDispatchRow{
		RecordedAt:   time.Now(),
		RunID:        record.RunID,
		DispatchedAt: record.DispatchedAt,
		Users:        int64(record.Users),
		FailedUsers:  int64(record.FailedUsers),
		Overdue:      int64(record.Overdue),
		Enqueued:     int64(record.Enqueued),
		Deduplicated: int64(record.Deduplicated),
		FailedTasks:  int64(record.FailedTasks),
	}

	if err := r.dispatchInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert dispatch summary to BigQuery",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
