package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=dispatch.go -destination=dispatch_mock.go -package=domain

// DispatchRecord marks an overdue alarm that was handed to the push queue.
type DispatchRecord struct {
	UserID           string
	BabyID           string
	Category         Category
	NextExpectedTime time.Time
	TaskName         string
	DispatchedAt     time.Time
}

func (r *DispatchRecord) Key() string {
	return DispatchKey(r.UserID, r.BabyID, r.Category, r.NextExpectedTime)
}

// DispatchKey identifies one expected occurrence for one recipient. Family members
// sharing a baby get distinct keys; a new prediction yields a new key.
func DispatchKey(userID, babyID string, category Category, nextExpected time.Time) string {
	return userID + ":" + babyID + ":" + category.String() + ":" + MinuteKey(nextExpected)
}

func MinuteKey(t time.Time) string {
	return t.UTC().Truncate(time.Minute).Format("2006-01-02-15-04")
}

type DispatchRepository interface {
	IsDispatched(ctx context.Context, key string) (bool, error)
	MarkDispatched(ctx context.Context, record *DispatchRecord) error
}
