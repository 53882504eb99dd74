package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=overdue_result_recorder.go -destination=overdue_result_recorder_mock.go -package=domain

type OverdueCheckRecord struct {
	RunID            string
	UserID           string
	BabyID           string
	Category         Category
	CheckedAt        time.Time
	NextExpectedTime time.Time
	MinutesUntil     float64
	ThresholdMinutes int
	Overdue          bool
	Skipped          bool
}

type DispatchSummaryRecord struct {
	RunID        string
	DispatchedAt time.Time
	Users        int
	FailedUsers  int
	Overdue      int
	Enqueued     int
	Deduplicated int
	FailedTasks  int
}

type OverdueResultRecorder interface {
	RecordCheckResults(ctx context.Context, records []OverdueCheckRecord) error
	RecordDispatchSummary(ctx context.Context, record DispatchSummaryRecord) error
	Flush(ctx context.Context) error
	Close() error
}
