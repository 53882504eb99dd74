package overdue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// recordResults hands every evaluation of a check to the result recorder.
// Recorder failures never fail the check.
func (s *Service) recordResults(ctx context.Context, userID string, perBaby [][]Evaluation, now time.Time) {
	if s.resultRecorder == nil {
		return
	}

	runID := uuid.NewString()
	records := make([]domain.OverdueCheckRecord, 0, len(perBaby)*4)
	for _, evaluations := range perBaby {
		for _, e := range evaluations {
			records = append(records, domain.OverdueCheckRecord{
				RunID:            runID,
				UserID:           userID,
				BabyID:           e.Baby.ID,
				Category:         e.Prediction.Category,
				CheckedAt:        now,
				NextExpectedTime: e.Prediction.NextTime,
				MinutesUntil:     e.Prediction.NextTime.Sub(now).Minutes(),
				ThresholdMinutes: e.Prediction.ThresholdMinutes,
				Overdue:          e.Prediction.IsOverdue,
				Skipped:          e.Skip.IsRecentlySkipped,
			})
		}
	}

	if err := s.resultRecorder.RecordCheckResults(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record overdue check results",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}
}
