package predictor

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

var baseNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func activity(t domain.ActivityType, ago time.Duration) domain.Activity {
	return domain.Activity{
		ID:        string(t) + "-" + ago.String(),
		BabyID:    "baby-1",
		Type:      t,
		StartTime: baseNow.Add(-ago),
	}
}

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func TestPredictEmptyHistoryIsInFuture(t *testing.T) {
	p := New(nil)

	for _, category := range domain.PredictedCategories() {
		t.Run(string(category), func(t *testing.T) {
			got, err := p.Predict(category, Input{Now: baseNow})
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if !got.NextTime.After(baseNow) {
				t.Errorf("NextTime = %v, want after %v", got.NextTime, baseNow)
			}
			if got.Source != domain.SourceDefault {
				t.Errorf("Source = %q, want %q", got.Source, domain.SourceDefault)
			}
			if got.LastActivityTime != nil {
				t.Errorf("LastActivityTime = %v, want nil", got.LastActivityTime)
			}
			want := DefaultIntervalHours(category, nil)
			if got.IntervalHours != want {
				t.Errorf("IntervalHours = %v, want %v", got.IntervalHours, want)
			}
		})
	}
}

func TestPredictUnknownCategory(t *testing.T) {
	p := New(nil)

	_, err := p.Predict(domain.Category("bath"), Input{Now: baseNow})
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("Predict() error = %v, want ErrUnknownCategory", err)
	}
}

func TestPredictFromHistory(t *testing.T) {
	tests := []struct {
		name         string
		category     domain.Category
		activities   []domain.Activity
		wantInterval time.Duration
		wantSource   domain.PredictionSource
		wantLastAgo  time.Duration
	}{
		{
			name:     "feeding aliases share one history",
			category: domain.CategoryFeeding,
			activities: []domain.Activity{
				activity(domain.ActivityBottle, 1*time.Hour),
				activity(domain.ActivityNursing, 4*time.Hour),
				activity(domain.ActivityFeeding, 7*time.Hour),
			},
			wantInterval: 3 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  1 * time.Hour,
		},
		{
			name:     "diaper aliases share one history",
			category: domain.CategoryDiaper,
			activities: []domain.Activity{
				activity(domain.ActivityWet, 30*time.Minute),
				activity(domain.ActivityDirty, 2*time.Hour+30*time.Minute),
				activity(domain.ActivityBoth, 4*time.Hour+30*time.Minute),
			},
			wantInterval: 2 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  30 * time.Minute,
		},
		{
			name:     "median ignores a single outlier gap",
			category: domain.CategorySleep,
			activities: []domain.Activity{
				activity(domain.ActivitySleep, 1*time.Hour),
				activity(domain.ActivitySleep, 3*time.Hour),
				activity(domain.ActivitySleep, 5*time.Hour),
				activity(domain.ActivitySleep, 15*time.Hour),
			},
			wantInterval: 2 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  1 * time.Hour,
		},
		{
			name:     "even gap count averages the middle pair",
			category: domain.CategoryPumping,
			activities: []domain.Activity{
				activity(domain.ActivityPumping, 0),
				activity(domain.ActivityPumping, 2*time.Hour),
				activity(domain.ActivityPumping, 6*time.Hour),
			},
			wantInterval: 3 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  0,
		},
		{
			name:     "unordered input is sorted newest first",
			category: domain.CategoryPumping,
			activities: []domain.Activity{
				activity(domain.ActivityPumping, 8*time.Hour),
				activity(domain.ActivityPumping, 2*time.Hour),
				activity(domain.ActivityPumping, 5*time.Hour),
			},
			wantInterval: 3 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  2 * time.Hour,
		},
		{
			name:     "single record uses default interval",
			category: domain.CategoryDiaper,
			activities: []domain.Activity{
				activity(domain.ActivityDiaper, 1*time.Hour),
			},
			wantInterval: 150 * time.Minute,
			wantSource:   domain.SourceDefault,
			wantLastAgo:  1 * time.Hour,
		},
		{
			name:     "other categories are ignored",
			category: domain.CategorySleep,
			activities: []domain.Activity{
				activity(domain.ActivityFeeding, 1*time.Hour),
				activity(domain.ActivityBath, 2*time.Hour),
				activity(domain.ActivitySleep, 3*time.Hour),
			},
			wantInterval: 2 * time.Hour,
			wantSource:   domain.SourceDefault,
			wantLastAgo:  3 * time.Hour,
		},
		{
			name:     "identical timestamps fall back to default",
			category: domain.CategoryFeeding,
			activities: []domain.Activity{
				activity(domain.ActivityFeeding, 1*time.Hour),
				activity(domain.ActivityFeeding, 1*time.Hour),
				activity(domain.ActivityFeeding, 1*time.Hour),
			},
			wantInterval: 3 * time.Hour,
			wantSource:   domain.SourceDefault,
			wantLastAgo:  1 * time.Hour,
		},
		{
			name:     "tiny gaps are clamped to the minimum",
			category: domain.CategoryFeeding,
			activities: []domain.Activity{
				activity(domain.ActivityFeeding, 1*time.Hour),
				activity(domain.ActivityFeeding, 1*time.Hour+time.Minute),
				activity(domain.ActivityFeeding, 1*time.Hour+2*time.Minute),
			},
			wantInterval: 30 * time.Minute,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  1 * time.Hour,
		},
		{
			name:     "huge gaps are clamped to the maximum",
			category: domain.CategorySleep,
			activities: []domain.Activity{
				activity(domain.ActivitySleep, 1*time.Hour),
				activity(domain.ActivitySleep, 49*time.Hour),
			},
			wantInterval: 24 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantLastAgo:  1 * time.Hour,
		},
	}

	p := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Predict(tt.category, Input{Activities: tt.activities, Now: baseNow})
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got.Category != tt.category {
				t.Errorf("Category = %q, want %q", got.Category, tt.category)
			}
			if got.Interval() != tt.wantInterval {
				t.Errorf("Interval() = %v, want %v", got.Interval(), tt.wantInterval)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
			wantLast := baseNow.Add(-tt.wantLastAgo)
			if got.LastActivityTime == nil || !got.LastActivityTime.Equal(wantLast) {
				t.Fatalf("LastActivityTime = %v, want %v", got.LastActivityTime, wantLast)
			}
			if !got.NextTime.Equal(wantLast.Add(tt.wantInterval)) {
				t.Errorf("NextTime = %v, want %v", got.NextTime, wantLast.Add(tt.wantInterval))
			}
		})
	}
}

func TestPredictNextTimeAfterLastRecord(t *testing.T) {
	p := New(nil)
	histories := [][]domain.Activity{
		{activity(domain.ActivitySleep, time.Hour), activity(domain.ActivitySleep, time.Hour)},
		{activity(domain.ActivitySleep, time.Hour), activity(domain.ActivitySleep, time.Hour+time.Second)},
		{activity(domain.ActivitySleep, 0), activity(domain.ActivitySleep, 72*time.Hour)},
	}

	for i, history := range histories {
		got := p.Sleep(Input{Activities: history, Now: baseNow})
		if !got.NextTime.After(*got.LastActivityTime) {
			t.Errorf("history %d: NextTime %v not after last record %v", i, got.NextTime, got.LastActivityTime)
		}
	}
}

func TestFeedingConfiguredInterval(t *testing.T) {
	history := []domain.Activity{
		activity(domain.ActivityFeeding, 1*time.Hour),
		activity(domain.ActivityFeeding, 3*time.Hour),
		activity(domain.ActivityFeeding, 5*time.Hour),
	}

	tests := []struct {
		name         string
		activities   []domain.Activity
		override     *float64
		wantInterval time.Duration
		wantSource   domain.PredictionSource
		wantNext     time.Time
	}{
		{
			name:         "override wins over history",
			activities:   history,
			override:     floatPtr(4),
			wantInterval: 4 * time.Hour,
			wantSource:   domain.SourceConfigured,
			wantNext:     baseNow.Add(3 * time.Hour),
		},
		{
			name:         "override applies without history",
			override:     floatPtr(2.5),
			wantInterval: 150 * time.Minute,
			wantSource:   domain.SourceConfigured,
			wantNext:     baseNow.Add(150 * time.Minute),
		},
		{
			name:         "zero override is ignored",
			activities:   history,
			override:     floatPtr(0),
			wantInterval: 2 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantNext:     baseNow.Add(1 * time.Hour),
		},
		{
			name:         "negative override is ignored",
			activities:   history,
			override:     floatPtr(-3),
			wantInterval: 2 * time.Hour,
			wantSource:   domain.SourceHistory,
			wantNext:     baseNow.Add(1 * time.Hour),
		},
	}

	p := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Feeding(Input{Activities: tt.activities, IntervalOverrideHours: tt.override, Now: baseNow})
			if got.Interval() != tt.wantInterval {
				t.Errorf("Interval() = %v, want %v", got.Interval(), tt.wantInterval)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
			if !got.NextTime.Equal(tt.wantNext) {
				t.Errorf("NextTime = %v, want %v", got.NextTime, tt.wantNext)
			}
		})
	}
}

func TestFeedingConfiguredIntervalIsBounded(t *testing.T) {
	history := []domain.Activity{activity(domain.ActivityFeeding, 1*time.Hour)}

	tests := []struct {
		name         string
		override     float64
		wantInterval time.Duration
	}{
		{"above max interval", 30, 24 * time.Hour},
		{"would overflow a duration", 3e6, 24 * time.Hour},
		{"huge", 1e300, 24 * time.Hour},
		{"infinite", math.Inf(1), 24 * time.Hour},
		{"below min interval", 0.1, 30 * time.Minute},
	}

	p := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Feeding(Input{Activities: history, IntervalOverrideHours: floatPtr(tt.override), Now: baseNow})
			if got.Interval() != tt.wantInterval {
				t.Errorf("Interval() = %v, want %v", got.Interval(), tt.wantInterval)
			}
			if want := baseNow.Add(-time.Hour).Add(tt.wantInterval); !got.NextTime.Equal(want) {
				t.Errorf("NextTime = %v, want %v", got.NextTime, want)
			}
			if got.NextTime.Before(baseNow.Add(-time.Hour)) {
				t.Errorf("NextTime %v precedes the last feeding", got.NextTime)
			}
		})
	}
}

func TestNaNOverrideIsIgnored(t *testing.T) {
	p := New(nil)
	got := p.Feeding(Input{IntervalOverrideHours: floatPtr(math.NaN()), Now: baseNow})
	if got.Source == domain.SourceConfigured {
		t.Errorf("Source = %q, NaN override must fall back", got.Source)
	}
}

func TestHoursToDurationSaturates(t *testing.T) {
	if got := hoursToDuration(3e6); got != time.Duration(math.MaxInt64) {
		t.Errorf("hoursToDuration(3e6) = %v, want max duration", got)
	}
	if got := hoursToDuration(2.5); got != 150*time.Minute {
		t.Errorf("hoursToDuration(2.5) = %v, want 2h30m", got)
	}
}

func TestOverrideIgnoredOutsideFeeding(t *testing.T) {
	p := New(nil)
	got := p.Diaper(Input{IntervalOverrideHours: floatPtr(8), Now: baseNow})
	if got.Source != domain.SourceDefault {
		t.Errorf("Source = %q, want %q", got.Source, domain.SourceDefault)
	}
}

func TestNewbornFeedingIsTwoHoursLate(t *testing.T) {
	p := New(nil)
	in := Input{
		Activities: []domain.Activity{activity(domain.ActivityFeeding, 5*time.Hour)},
		BirthDate:  timePtr(baseNow.AddDate(0, 0, -10)),
		Now:        baseNow,
	}

	got := p.Feeding(in)

	minutesUntil := got.NextTime.Sub(baseNow).Minutes()
	if math.Abs(minutesUntil+120) > 1 {
		t.Errorf("minutes until next feeding = %v, want about -120", minutesUntil)
	}
}

func TestAgeWidensDefaultInterval(t *testing.T) {
	p := New(nil)
	newborn := p.Feeding(Input{BirthDate: timePtr(baseNow.AddDate(0, 0, -5)), Now: baseNow})
	toddler := p.Feeding(Input{BirthDate: timePtr(baseNow.AddDate(-2, 0, 0)), Now: baseNow})

	if newborn.IntervalHours != 3 {
		t.Errorf("newborn interval = %v, want 3", newborn.IntervalHours)
	}
	if toddler.IntervalHours != 5 {
		t.Errorf("toddler interval = %v, want 5", toddler.IntervalHours)
	}
}
