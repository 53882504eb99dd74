package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=skip.go -destination=skip_mock.go -package=domain

// SkipMarker records that a user dismissed the currently expected occurrence.
type SkipMarker struct {
	BabyID        string
	Category      Category
	UserID        string
	SkippedAt     time.Time
	IntervalHours float64
}

type SkipRepository interface {
	SaveSkip(ctx context.Context, marker *SkipMarker) error
	GetSkip(ctx context.Context, babyID string, category Category) (*SkipMarker, error)
	ClearSkip(ctx context.Context, babyID string, category Category) error
}
