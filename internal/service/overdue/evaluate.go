package overdue

import (
	"context"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/tracing"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/predictor"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/skip"
)

// Evaluation is one classified prediction for a baby together with its skip state.
type Evaluation struct {
	Baby       domain.Baby
	Prediction domain.Prediction
	Skip       skip.State
}

func (e Evaluation) reportable(suppressSkips bool) bool {
	if suppressSkips {
		return e.Skip.EffectiveIsOverdue
	}
	return e.Prediction.IsOverdue
}

func (e Evaluation) overdueActivity() domain.OverdueActivity {
	return domain.OverdueActivity{
		ActivityType:     e.Prediction.Category,
		BabyID:           e.Baby.ID,
		BabyName:         e.Baby.Name,
		OverdueMinutes:   e.Prediction.OverdueMinutes,
		NextExpectedTime: e.Prediction.NextTime,
	}
}

// evaluateBaby fetches the recent activity window once and runs every requested
// category over it.
func (s *Service) evaluateBaby(
	ctx context.Context,
	prefs domain.AlarmPreferences,
	baby domain.Baby,
	categories []domain.Category,
	now time.Time,
	withSkips bool,
) ([]Evaluation, error) {
	ctx, span := tracing.StartBabyEvaluationSpan(ctx, baby.ID, len(categories))
	defer span.End()

	activities, err := s.activities.ListRecent(ctx, baby.ID, s.historyWindow)
	if err != nil {
		err = fmt.Errorf("failed to list recent activities: %w", err)
		tracing.RecordError(span, err)
		return nil, err
	}

	in := predictor.Input{
		Activities:            activities,
		BirthDate:             baby.BirthDate,
		IntervalOverrideHours: baby.FeedIntervalHours,
		Now:                   now,
	}
	ageDays := baby.AgeDaysPtr(now)

	evaluations := make([]Evaluation, 0, len(categories))
	for _, category := range categories {
		prediction, err := s.predictor.Predict(category, in)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		if s.alarmMetrics != nil {
			s.alarmMetrics.RecordPrediction(ctx, category.String(), string(prediction.Source))
		}

		thresholdMinutes := s.policy.Resolve(category, ageDays, prefs.Setting(category).ThresholdMinutes)
		prediction = s.policy.Classify(prediction, thresholdMinutes, now)

		if withSkips {
			prediction, err = s.skips.Attach(ctx, baby.ID, prediction)
			if err != nil {
				tracing.RecordError(span, err)
				return nil, err
			}
		}

		evaluations = append(evaluations, Evaluation{
			Baby:       baby,
			Prediction: prediction,
			Skip:       skip.Evaluate(prediction, now),
		})
	}

	tracing.RecordError(span, nil)
	return evaluations, nil
}
