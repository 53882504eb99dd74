package store

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) domain.ActivityRepository {
	return &activityRepository{db: db}
}

// ListRecent returns at most limit activities of a baby, newest first. Rows with an
// unknown type are dropped; rows with malformed details keep NoDetails.
func (r *activityRepository) ListRecent(ctx context.Context, babyID string, limit int) ([]domain.Activity, error) {
	var models []ActivityModel
	err := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("start_time DESC, id").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(models))
	for _, m := range models {
		activity, ok := toActivity(ctx, m)
		if ok {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

func toActivity(ctx context.Context, m ActivityModel) (domain.Activity, bool) {
	t, err := domain.ParseActivityType(m.Type)
	if err != nil {
		slog.WarnContext(ctx, "skipping activity with unknown type",
			slog.String("activity_id", m.ID),
			slog.String("type", m.Type),
		)
		return domain.Activity{}, false
	}

	details, err := domain.DecodeDetails(t, m.Details)
	if err != nil {
		slog.WarnContext(ctx, "ignoring malformed activity details",
			slog.String("activity_id", m.ID),
			slog.String("error", err.Error()),
		)
		details = domain.NoDetails{}
	}

	return domain.Activity{
		ID:        m.ID,
		BabyID:    m.BabyID,
		Type:      t,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  m.Duration,
		Amount:    m.Amount,
		Details:   details,
	}, true
}
