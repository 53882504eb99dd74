package domain

import "context"

//go:generate mockgen -source=activity_repository.go -destination=activity_repository_mock.go -package=domain

type ActivityRepository interface {
	// ListRecent returns at most limit activities for the baby, newest first.
	ListRecent(ctx context.Context, babyID string, limit int) ([]Activity, error)
}
