package overdue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

var ErrSkipsDisabled = errors.New("skip tracking is not configured")

// BabyPredictions backs the dashboard cards of one baby.
type BabyPredictions struct {
	Baby        domain.Baby
	GeneratedAt time.Time
	Predictions []Evaluation
}

// PredictBaby evaluates all predicted categories for a baby visible to the user,
// regardless of which alarms are enabled.
func (s *Service) PredictBaby(ctx context.Context, userID, babyID string, now time.Time) (*BabyPredictions, error) {
	user, baby, err := s.resolveBaby(ctx, userID, babyID)
	if err != nil {
		return nil, err
	}

	evaluations, err := s.evaluateBaby(ctx, user.Alarms, *baby, domain.PredictedCategories(), now, s.skips != nil)
	if err != nil {
		return nil, err
	}

	return &BabyPredictions{
		Baby:        *baby,
		GeneratedAt: now,
		Predictions: evaluations,
	}, nil
}

// SkipActivity records a skip for the occurrence currently expected. The skip lasts
// one current prediction interval.
func (s *Service) SkipActivity(ctx context.Context, userID, babyID string, category domain.Category, now time.Time) (*domain.SkipMarker, error) {
	if s.skips == nil {
		return nil, ErrSkipsDisabled
	}
	if !category.IsPredicted() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	user, baby, err := s.resolveBaby(ctx, userID, babyID)
	if err != nil {
		return nil, err
	}

	evaluations, err := s.evaluateBaby(ctx, user.Alarms, *baby, []domain.Category{category}, now, false)
	if err != nil {
		return nil, err
	}

	return s.skips.Record(ctx, userID, baby.ID, category, evaluations[0].Prediction.IntervalHours, now)
}

func (s *Service) ClearSkip(ctx context.Context, userID, babyID string, category domain.Category) error {
	if s.skips == nil {
		return ErrSkipsDisabled
	}
	if !category.IsPredicted() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	if _, _, err := s.resolveBaby(ctx, userID, babyID); err != nil {
		return err
	}

	return s.skips.Clear(ctx, babyID, category)
}

// resolveBaby loads the user and one of their babies. A baby outside the user's
// families is reported as ErrBabyNotFound.
func (s *Service) resolveBaby(ctx context.Context, userID, babyID string) (*domain.User, *domain.Baby, error) {
	user, err := s.accounts.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	babies, err := s.babiesOf(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	for i := range babies {
		if babies[i].ID == babyID {
			return user, &babies[i], nil
		}
	}

	return nil, nil, fmt.Errorf("%w: %s", domain.ErrBabyNotFound, babyID)
}
