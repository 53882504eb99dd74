package overduerecorder

import (
	"context"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.OverdueResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordCheckResults(_ context.Context, _ []domain.OverdueCheckRecord) error {
	return nil
}

func (n *noopRecorder) RecordDispatchSummary(_ context.Context, _ domain.DispatchSummaryRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
