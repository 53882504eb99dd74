package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

const (
	dispatchKeySegment = ":dispatched:"

	defaultDispatchTTL = 6 * time.Hour
)

type dispatchRecord struct {
	UserID           string    `json:"user_id"`
	BabyID           string    `json:"baby_id"`
	Category         string    `json:"category"`
	NextExpectedTime time.Time `json:"next_expected_time"`
	TaskName         string    `json:"task_name"`
	DispatchedAt     time.Time `json:"dispatched_at"`
}

type dispatchRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewDispatchRepository(client *redis.Client, keyPrefix string, ttl time.Duration) domain.DispatchRepository {
	if ttl <= 0 {
		ttl = defaultDispatchTTL
	}
	return &dispatchRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *dispatchRepository) IsDispatched(ctx context.Context, key string) (bool, error) {
	exists, err := r.client.Exists(ctx, r.keyPrefix+dispatchKeySegment+key).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

func (r *dispatchRepository) MarkDispatched(ctx context.Context, record *domain.DispatchRecord) error {
	if record == nil || record.BabyID == "" {
		return ErrInvalidDispatchData
	}

	data, err := json.Marshal(dispatchRecord{
		UserID:           record.UserID,
		BabyID:           record.BabyID,
		Category:         record.Category.String(),
		NextExpectedTime: record.NextExpectedTime,
		TaskName:         record.TaskName,
		DispatchedAt:     record.DispatchedAt,
	})
	if err != nil {
		return ErrInvalidDispatchData
	}

	return r.client.Set(ctx, r.keyPrefix+dispatchKeySegment+record.Key(), data, r.ttl).Err()
}
