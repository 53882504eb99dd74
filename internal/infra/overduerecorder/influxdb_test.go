//go:build !gcloud

package overduerecorder

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

func TestNewRecorderFallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecorder(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("NewRecorder() error = %v", err)
			}
			if _, ok := rec.(*noopRecorder); !ok {
				t.Errorf("NewRecorder() = %T, want *noopRecorder", rec)
			}
		})
	}
}

func TestCheckPoint(t *testing.T) {
	checked := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	point := checkPoint(domain.OverdueCheckRecord{
		RunID:            "run-1",
		UserID:           "user-1",
		BabyID:           "baby-1",
		Category:         domain.CategoryFeeding,
		CheckedAt:        checked,
		NextExpectedTime: checked.Add(-2 * time.Hour),
		MinutesUntil:     -120,
		ThresholdMinutes: 30,
		Overdue:          true,
	})

	if point.Name() != "overdue_check" {
		t.Errorf("Name() = %q, want overdue_check", point.Name())
	}
	if !point.Time().Equal(checked) {
		t.Errorf("Time() = %v, want %v", point.Time(), checked)
	}

	tags := map[string]string{}
	for _, tag := range point.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["category"] != "feeding" || tags["overdue"] != "true" || tags["baby_id"] != "baby-1" {
		t.Errorf("tags = %v", tags)
	}

	for _, field := range point.FieldList() {
		if field.Key == "threshold_minutes" && field.Value != int64(30) {
			t.Errorf("threshold_minutes = %v (%T), want int64 30", field.Value, field.Value)
		}
	}
}
