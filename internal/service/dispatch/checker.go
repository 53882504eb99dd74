package dispatch

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

//go:generate mockgen -source=checker.go -destination=checker_mock.go -package=dispatch

type OverdueChecker interface {
	CheckUser(ctx context.Context, user domain.User, now time.Time) ([]domain.OverdueActivity, error)
}
