package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/metrics"
	"github.com/KasumiMercury/primind-activity-alarm/internal/observability/tracing"
)

var ErrTaskQueueDisabled = errors.New("task queue is not configured")

type Result struct {
	RunID        string    `json:"run_id"`
	DispatchedAt time.Time `json:"dispatched_at"`
	Users        int       `json:"users"`
	FailedUsers  int       `json:"failed_users"`
	Overdue      int       `json:"overdue"`
	Enqueued     int       `json:"enqueued"`
	Deduplicated int       `json:"deduplicated"`
	FailedTasks  int       `json:"failed_tasks"`
}

type Service struct {
	accounts       domain.AccountRepository
	checker        OverdueChecker
	taskQueue      taskqueue.TaskQueue
	dispatchRepo   domain.DispatchRepository
	alarmMetrics   *metrics.AlarmMetrics
	resultRecorder domain.OverdueResultRecorder
}

func NewService(
	accounts domain.AccountRepository,
	checker OverdueChecker,
	taskQueue taskqueue.TaskQueue,
	dispatchRepo domain.DispatchRepository,
	alarmMetrics *metrics.AlarmMetrics,
	resultRecorder domain.OverdueResultRecorder,
) *Service {
	return &Service{
		accounts:       accounts,
		checker:        checker,
		taskQueue:      taskQueue,
		dispatchRepo:   dispatchRepo,
		alarmMetrics:   alarmMetrics,
		resultRecorder: resultRecorder,
	}
}

// Dispatch checks every user with an enabled alarm and queues one push task per
// overdue occurrence that has not been dispatched yet. A failing user is counted
// and skipped.
func (s *Service) Dispatch(ctx context.Context, now time.Time) (*Result, error) {
	if s.taskQueue == nil {
		return nil, ErrTaskQueueDisabled
	}

	start := time.Now()
	ctx, span := tracing.StartDispatchSpan(ctx, now)
	defer span.End()

	users, err := s.accounts.ListAlarmUsers(ctx)
	if err != nil {
		err = fmt.Errorf("failed to list alarm users: %w", err)
		tracing.RecordDispatchResult(span, 0, 0, 0, 0, err)
		return nil, err
	}

	result := &Result{
		RunID:        uuid.NewString(),
		DispatchedAt: now,
	}

	for _, user := range users {
		if !user.Alarms.AnyEnabled() {
			continue
		}
		result.Users++

		overdue, err := s.checker.CheckUser(ctx, user, now)
		if err != nil {
			slog.WarnContext(ctx, "overdue check failed during dispatch",
				slog.String("run_id", result.RunID),
				slog.String("user_id", user.ID),
				slog.String("error", err.Error()),
			)
			result.FailedUsers++
			continue
		}

		result.Overdue += len(overdue)
		for _, activity := range overdue {
			s.dispatchOne(ctx, user.ID, activity, now, result)
		}
	}

	if s.alarmMetrics != nil {
		s.alarmMetrics.RecordDispatchTasks(ctx, "enqueued", result.Enqueued)
		s.alarmMetrics.RecordDispatchTasks(ctx, "deduplicated", result.Deduplicated)
		s.alarmMetrics.RecordDispatchTasks(ctx, "failed", result.FailedTasks)
		s.alarmMetrics.RecordDispatchDuration(ctx, time.Since(start))
	}
	s.recordSummary(ctx, result)
	tracing.RecordDispatchResult(span, result.Users, result.Enqueued, result.Deduplicated, result.FailedTasks, nil)

	slog.InfoContext(ctx, "alarm dispatch completed",
		slog.String("run_id", result.RunID),
		slog.Int("users", result.Users),
		slog.Int("failed_users", result.FailedUsers),
		slog.Int("overdue", result.Overdue),
		slog.Int("enqueued", result.Enqueued),
		slog.Int("deduplicated", result.Deduplicated),
		slog.Int("failed_tasks", result.FailedTasks),
	)

	return result, nil
}

func (s *Service) dispatchOne(ctx context.Context, userID string, activity domain.OverdueActivity, now time.Time, result *Result) {
	key := domain.DispatchKey(userID, activity.BabyID, activity.ActivityType, activity.NextExpectedTime)

	// A dedupe lookup failure falls through to registration; the queue rejects
	// duplicate task names on its own.
	if s.dispatchRepo != nil {
		dispatched, err := s.dispatchRepo.IsDispatched(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "failed to check dispatch status",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		} else if dispatched {
			result.Deduplicated++
			return
		}
	}

	task := &taskqueue.AlarmTask{
		TaskID:           taskqueue.TaskIDForKey(key),
		UserID:           userID,
		BabyID:           activity.BabyID,
		BabyName:         activity.BabyName,
		ActivityType:     activity.ActivityType.String(),
		OverdueMinutes:   activity.OverdueMinutes,
		NextExpectedTime: activity.NextExpectedTime,
	}

	resp, err := s.taskQueue.RegisterAlarm(ctx, task)
	if err != nil {
		slog.ErrorContext(ctx, "failed to register alarm task",
			slog.String("key", key),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		result.FailedTasks++
		return
	}
	result.Enqueued++

	if s.dispatchRepo == nil {
		return
	}
	record := &domain.DispatchRecord{
		UserID:           userID,
		BabyID:           activity.BabyID,
		Category:         activity.ActivityType,
		NextExpectedTime: activity.NextExpectedTime,
		TaskName:         resp.Name,
		DispatchedAt:     now,
	}
	if err := s.dispatchRepo.MarkDispatched(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to mark alarm dispatched",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) recordSummary(ctx context.Context, result *Result) {
	if s.resultRecorder == nil {
		return
	}

	summary := domain.DispatchSummaryRecord{
		RunID:        result.RunID,
		DispatchedAt: result.DispatchedAt,
		Users:        result.Users,
		FailedUsers:  result.FailedUsers,
		Overdue:      result.Overdue,
		Enqueued:     result.Enqueued,
		Deduplicated: result.Deduplicated,
		FailedTasks:  result.FailedTasks,
	}
	if err := s.resultRecorder.RecordDispatchSummary(ctx, summary); err != nil {
		slog.WarnContext(ctx, "failed to record dispatch summary",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
	}
}
