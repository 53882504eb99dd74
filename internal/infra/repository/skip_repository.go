package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

const (
	skipKeySegment = ":skip:"

	minSkipTTL   = 1 * time.Hour
	skipTTLSlack = 1 * time.Hour
)

type skipRecord struct {
	BabyID        string    `json:"baby_id"`
	Category      string    `json:"category"`
	UserID        string    `json:"user_id"`
	SkippedAt     time.Time `json:"skipped_at"`
	IntervalHours float64   `json:"interval_hours"`
}

type skipRepository struct {
	client      *redis.Client
	keyPrefix   string
	maxInterval time.Duration
}

// NewSkipRepository stores skip markers. maxIntervalHours is the longest interval
// a prediction can report; markers outlive it since a skip is judged against the
// current interval, which may have grown since the skip was recorded.
func NewSkipRepository(client *redis.Client, keyPrefix string, maxIntervalHours float64) domain.SkipRepository {
	return &skipRepository{
		client:      client,
		keyPrefix:   keyPrefix,
		maxInterval: time.Duration(maxIntervalHours * float64(time.Hour)),
	}
}

func (r *skipRepository) key(babyID string, category domain.Category) string {
	return r.keyPrefix + skipKeySegment + babyID + ":" + category.String()
}

// skipTTL keeps a marker a little past the longest interval it can suppress.
func skipTTL(intervalHours float64, maxInterval time.Duration) time.Duration {
	interval := time.Duration(intervalHours * float64(time.Hour))
	return max(interval, maxInterval, minSkipTTL) + skipTTLSlack
}

func (r *skipRepository) SaveSkip(ctx context.Context, marker *domain.SkipMarker) error {
	if marker == nil || marker.BabyID == "" {
		return ErrInvalidSkipData
	}

	data, err := json.Marshal(skipRecord{
		BabyID:        marker.BabyID,
		Category:      marker.Category.String(),
		UserID:        marker.UserID,
		SkippedAt:     marker.SkippedAt,
		IntervalHours: marker.IntervalHours,
	})
	if err != nil {
		return ErrInvalidSkipData
	}

	return r.client.Set(ctx, r.key(marker.BabyID, marker.Category), data, skipTTL(marker.IntervalHours, r.maxInterval)).Err()
}

func (r *skipRepository) GetSkip(ctx context.Context, babyID string, category domain.Category) (*domain.SkipMarker, error) {
	data, err := r.client.Get(ctx, r.key(babyID, category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSkipNotFound
		}
		return nil, err
	}

	var record skipRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidSkipData
	}

	return &domain.SkipMarker{
		BabyID:        record.BabyID,
		Category:      domain.Category(record.Category),
		UserID:        record.UserID,
		SkippedAt:     record.SkippedAt,
		IntervalHours: record.IntervalHours,
	}, nil
}

func (r *skipRepository) ClearSkip(ctx context.Context, babyID string, category domain.Category) error {
	return r.client.Del(ctx, r.key(babyID, category)).Err()
}
