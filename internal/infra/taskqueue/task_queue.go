package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

type TaskQueue interface {
	RegisterAlarm(ctx context.Context, task *AlarmTask) (*TaskResponse, error)
}
