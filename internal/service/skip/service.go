package skip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type Service struct {
	repo domain.SkipRepository
}

func NewService(repo domain.SkipRepository) *Service {
	return &Service{repo: repo}
}

// Record stores a skip for the occurrence currently expected for babyID.
func (s *Service) Record(ctx context.Context, userID, babyID string, category domain.Category, intervalHours float64, now time.Time) (*domain.SkipMarker, error) {
	if !category.IsPredicted() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	marker := &domain.SkipMarker{
		BabyID:        babyID,
		Category:      category,
		UserID:        userID,
		SkippedAt:     now,
		IntervalHours: intervalHours,
	}
	if err := s.repo.SaveSkip(ctx, marker); err != nil {
		return nil, fmt.Errorf("failed to save skip: %w", err)
	}

	slog.InfoContext(ctx, "activity skipped",
		slog.String("baby_id", babyID),
		slog.String("category", category.String()),
		slog.String("user_id", userID),
		slog.Float64("interval_hours", intervalHours),
	)

	return marker, nil
}

func (s *Service) Clear(ctx context.Context, babyID string, category domain.Category) error {
	if err := s.repo.ClearSkip(ctx, babyID, category); err != nil {
		return fmt.Errorf("failed to clear skip: %w", err)
	}
	return nil
}

// Attach sets RecentSkipTime on the prediction when a skip exists that was recorded
// after the most recent matching activity. Logging a new activity supersedes a skip.
func (s *Service) Attach(ctx context.Context, babyID string, prediction domain.Prediction) (domain.Prediction, error) {
	marker, err := s.repo.GetSkip(ctx, babyID, prediction.Category)
	if err != nil {
		if errors.Is(err, domain.ErrSkipNotFound) {
			return prediction, nil
		}
		return prediction, fmt.Errorf("failed to get skip: %w", err)
	}

	if prediction.LastActivityTime != nil && !marker.SkippedAt.After(*prediction.LastActivityTime) {
		return prediction, nil
	}

	skippedAt := marker.SkippedAt
	prediction.RecentSkipTime = &skippedAt
	return prediction, nil
}
