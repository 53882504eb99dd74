package taskqueue

import (
	"time"

	"github.com/google/uuid"
)

// alarmTaskNamespace scopes task ids derived from dispatch keys.
var alarmTaskNamespace = uuid.MustParse("8b1f7a52-3c55-4a0e-9d7e-2f3c1b6a9e40")

// AlarmTask is the push payload for one overdue activity.
type AlarmTask struct {
	TaskID     string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	UserID           string    `json:"user_id"`
	BabyID           string    `json:"baby_id"`
	BabyName         string    `json:"baby_name"`
	ActivityType     string    `json:"activity_type"`
	OverdueMinutes   int       `json:"overdue_minutes"`
	NextExpectedTime time.Time `json:"next_expected_time"`
}

// TaskIDForKey derives a stable queue-safe task id from a dispatch key, so a
// retried registration of the same occurrence collides instead of duplicating.
func TaskIDForKey(key string) string {
	return uuid.NewSHA1(alarmTaskNamespace, []byte(key)).String()
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
