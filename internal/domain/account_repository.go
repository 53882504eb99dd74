package domain

import "context"

//go:generate mockgen -source=account_repository.go -destination=account_repository_mock.go -package=domain

type AccountRepository interface {
	GetUser(ctx context.Context, userID string) (*User, error)
	ListFamilyIDs(ctx context.Context, userID string) ([]string, error)
	ListBabies(ctx context.Context, familyIDs []string) ([]Baby, error)
	ListAlarmUsers(ctx context.Context) ([]User, error)
}
