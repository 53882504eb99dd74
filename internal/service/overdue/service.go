package overdue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-activity-alarm/internal/config"
	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/metrics"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/tracing"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/predictor"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/skip"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/threshold"
)

type Service struct {
	accounts       domain.AccountRepository
	activities     domain.ActivityRepository
	predictor      *predictor.Predictor
	policy         *threshold.Policy
	skips          *skip.Service
	suppressSkips  bool
	historyWindow  int
	concurrency    int
	alarmMetrics   *metrics.AlarmMetrics
	resultRecorder domain.OverdueResultRecorder
}

// NewService wires the overdue check. skips may be nil, which disables skip handling.
func NewService(
	accounts domain.AccountRepository,
	activities domain.ActivityRepository,
	pred *predictor.Predictor,
	policy *threshold.Policy,
	skips *skip.Service,
	predictionCfg *config.PredictionConfig,
	alarmCfg *config.AlarmConfig,
	alarmMetrics *metrics.AlarmMetrics,
	resultRecorder domain.OverdueResultRecorder,
) *Service {
	if predictionCfg == nil {
		predictionCfg = config.DefaultPredictionConfig()
	}
	concurrency := 1
	suppress := true
	if alarmCfg != nil {
		concurrency = max(alarmCfg.CheckConcurrency, 1)
		suppress = alarmCfg.SkipSuppression
	}

	return &Service{
		accounts:       accounts,
		activities:     activities,
		predictor:      pred,
		policy:         policy,
		skips:          skips,
		suppressSkips:  suppress && skips != nil,
		historyWindow:  predictionCfg.HistoryWindow,
		concurrency:    concurrency,
		alarmMetrics:   alarmMetrics,
		resultRecorder: resultRecorder,
	}
}

// CheckOverdue returns every baby x enabled category pair of the user that is past
// its threshold. Any failure aborts the whole check; no partial result is returned.
func (s *Service) CheckOverdue(ctx context.Context, userID string, now time.Time) ([]domain.OverdueActivity, error) {
	user, err := s.accounts.GetUser(ctx, userID)
	if err != nil {
		if s.alarmMetrics != nil {
			s.alarmMetrics.RecordCheck(ctx, "error", 0)
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	return s.CheckUser(ctx, *user, now)
}

// CheckUser is CheckOverdue for a user whose preferences are already loaded.
func (s *Service) CheckUser(ctx context.Context, user domain.User, now time.Time) ([]domain.OverdueActivity, error) {
	start := time.Now()

	ctx, span := tracing.StartCheckSpan(ctx, user.ID, now)
	defer span.End()

	categories := user.Alarms.EnabledCategories()
	if len(categories) == 0 {
		slog.DebugContext(ctx, "no alarm enabled, skipping overdue check",
			slog.String("user_id", user.ID),
		)
		s.recordCheck(ctx, "short_circuit", start)
		tracing.RecordCheckResult(span, 0, 0, 0, nil)
		return []domain.OverdueActivity{}, nil
	}

	babies, err := s.babiesOf(ctx, user.ID)
	if err != nil {
		s.recordCheck(ctx, "error", start)
		tracing.RecordCheckResult(span, 0, 0, 0, err)
		return nil, err
	}
	if len(babies) == 0 {
		s.recordCheck(ctx, "success", start)
		tracing.RecordCheckResult(span, 0, 0, 0, nil)
		return []domain.OverdueActivity{}, nil
	}

	perBaby := make([][]Evaluation, len(babies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, baby := range babies {
		g.Go(func() error {
			evaluations, err := s.evaluateBaby(gctx, user.Alarms, baby, categories, now, s.suppressSkips)
			if err != nil {
				return fmt.Errorf("failed to evaluate baby %s: %w", baby.ID, err)
			}
			perBaby[i] = evaluations
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "overdue check failed",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		s.recordCheck(ctx, "error", start)
		tracing.RecordCheckResult(span, len(babies), 0, 0, err)
		return nil, err
	}

	result := make([]domain.OverdueActivity, 0)
	suppressed := 0
	for _, evaluations := range perBaby {
		for _, e := range evaluations {
			if e.Prediction.IsOverdue && !e.Skip.EffectiveIsOverdue {
				suppressed++
				if s.alarmMetrics != nil {
					s.alarmMetrics.RecordSkipSuppressed(ctx, e.Prediction.Category.String())
				}
			}
			if !e.reportable(s.suppressSkips) {
				continue
			}
			result = append(result, e.overdueActivity())
			if s.alarmMetrics != nil {
				s.alarmMetrics.RecordOverdue(ctx, e.Prediction.Category.String())
			}
		}
	}

	s.recordResults(ctx, user.ID, perBaby, now)
	s.recordCheck(ctx, "success", start)
	tracing.RecordCheckResult(span, len(babies), len(result), suppressed, nil)

	slog.InfoContext(ctx, "overdue check completed",
		slog.String("user_id", user.ID),
		slog.Int("baby_count", len(babies)),
		slog.Int("overdue_count", len(result)),
		slog.Int("suppressed_count", suppressed),
	)

	return result, nil
}

func (s *Service) babiesOf(ctx context.Context, userID string) ([]domain.Baby, error) {
	familyIDs, err := s.accounts.ListFamilyIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	if len(familyIDs) == 0 {
		return nil, nil
	}

	babies, err := s.accounts.ListBabies(ctx, familyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list babies: %w", err)
	}
	return babies, nil
}

func (s *Service) recordCheck(ctx context.Context, outcome string, start time.Time) {
	if s.alarmMetrics != nil {
		s.alarmMetrics.RecordCheck(ctx, outcome, time.Since(start))
	}
}
