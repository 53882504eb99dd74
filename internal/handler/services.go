package handler

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/dispatch"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/overdue"
)

//go:generate mockgen -source=services.go -destination=services_mock.go -package=handler

type OverdueService interface {
	CheckOverdue(ctx context.Context, userID string, now time.Time) ([]domain.OverdueActivity, error)
	PredictBaby(ctx context.Context, userID, babyID string, now time.Time) (*overdue.BabyPredictions, error)
	SkipActivity(ctx context.Context, userID, babyID string, category domain.Category, now time.Time) (*domain.SkipMarker, error)
	ClearSkip(ctx context.Context, userID, babyID string, category domain.Category) error
}

type DispatchService interface {
	Dispatch(ctx context.Context, now time.Time) (*dispatch.Result, error)
}
