package overdue

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-activity-alarm/internal/config"
	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/predictor"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/skip"
	"github.com/KasumiMercury/primind-activity-alarm/internal/service/threshold"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	accounts   *domain.MockAccountRepository
	activities *domain.MockActivityRepository
	skips      *domain.MockSkipRepository
	recorder   *domain.MockOverdueResultRecorder
}

func createTestService(t *testing.T, suppress bool, withRecorder bool) (*Service, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		accounts:   domain.NewMockAccountRepository(ctrl),
		activities: domain.NewMockActivityRepository(ctrl),
		skips:      domain.NewMockSkipRepository(ctrl),
	}

	var recorder domain.OverdueResultRecorder
	if withRecorder {
		deps.recorder = domain.NewMockOverdueResultRecorder(ctrl)
		recorder = deps.recorder
	}

	alarmCfg := &config.AlarmConfig{
		CheckConcurrency: 2,
		DispatchTTL:      6 * time.Hour,
		SkipSuppression:  suppress,
	}

	svc := NewService(
		deps.accounts,
		deps.activities,
		predictor.New(nil),
		threshold.NewPolicy(),
		skip.NewService(deps.skips),
		config.DefaultPredictionConfig(),
		alarmCfg,
		nil,
		recorder,
	)
	return svc, deps
}

func daysAgo(d int) *time.Time {
	t := now.AddDate(0, 0, -d)
	return &t
}

func intPtr(i int) *int { return &i }

func feedingOnly(thresholdOverride *int) domain.AlarmPreferences {
	return domain.AlarmPreferences{
		Feeding: domain.AlarmSetting{Enabled: true, ThresholdMinutes: thresholdOverride},
	}
}

func feedingAt(babyID string, ago time.Duration) domain.Activity {
	return domain.Activity{
		ID:        babyID + "-feed",
		BabyID:    babyID,
		Type:      domain.ActivityFeeding,
		StartTime: now.Add(-ago),
	}
}

func newborn(id, name string) domain.Baby {
	return domain.Baby{ID: id, FamilyID: "family-1", Name: name, BirthDate: daysAgo(10)}
}

func TestCheckOverdueShortCircuitsWithoutEnabledAlarms(t *testing.T) {
	svc, deps := createTestService(t, true, true)

	deps.accounts.EXPECT().
		GetUser(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1"}, nil)

	got, err := svc.CheckOverdue(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("CheckOverdue() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("CheckOverdue() = %v, want empty non-nil list", got)
	}
}

func TestCheckOverdueNewbornFeeding(t *testing.T) {
	svc, deps := createTestService(t, true, false)

	deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1", Alarms: feedingOnly(nil)}, nil)
	deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
		Return([]string{"family-1"}, nil)
	deps.accounts.EXPECT().ListBabies(gomock.Any(), []string{"family-1"}).
		Return([]domain.Baby{newborn("baby-1", "Mia")}, nil)
	deps.activities.EXPECT().ListRecent(gomock.Any(), "baby-1", 50).
		Return([]domain.Activity{feedingAt("baby-1", 5*time.Hour)}, nil)
	deps.skips.EXPECT().GetSkip(gomock.Any(), "baby-1", domain.CategoryFeeding).
		Return(nil, domain.ErrSkipNotFound)

	got, err := svc.CheckOverdue(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("CheckOverdue() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(CheckOverdue()) = %d, want 1", len(got))
	}

	want := domain.OverdueActivity{
		ActivityType:     domain.CategoryFeeding,
		BabyID:           "baby-1",
		BabyName:         "Mia",
		OverdueMinutes:   120,
		NextExpectedTime: now.Add(-2 * time.Hour),
	}
	if got[0] != want {
		t.Errorf("CheckOverdue()[0] = %+v, want %+v", got[0], want)
	}
}

func TestCheckOverdueThresholdOverride(t *testing.T) {
	tests := []struct {
		name      string
		override  *int
		wantCount int
	}{
		{name: "age default of 30 minutes flags two hours late", override: nil, wantCount: 1},
		{name: "override wider than lateness hides it", override: intPtr(180), wantCount: 0},
		{name: "override tighter than default still flags", override: intPtr(15), wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := createTestService(t, false, false)

			deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
				Return(&domain.User{ID: "user-1", Alarms: feedingOnly(tt.override)}, nil)
			deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
				Return([]string{"family-1"}, nil)
			deps.accounts.EXPECT().ListBabies(gomock.Any(), gomock.Any()).
				Return([]domain.Baby{newborn("baby-1", "Mia")}, nil)
			deps.activities.EXPECT().ListRecent(gomock.Any(), "baby-1", 50).
				Return([]domain.Activity{feedingAt("baby-1", 5*time.Hour)}, nil)

			got, err := svc.CheckOverdue(context.Background(), "user-1", now)
			if err != nil {
				t.Fatalf("CheckOverdue() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("len(CheckOverdue()) = %d, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestCheckOverdueSkipSuppression(t *testing.T) {
	tests := []struct {
		name      string
		suppress  bool
		skippedAt time.Time
		wantCount int
	}{
		{name: "recent skip hides the alarm", suppress: true, skippedAt: now.Add(-10 * time.Minute), wantCount: 0},
		{name: "expired skip does not hide the alarm", suppress: true, skippedAt: now.Add(-3*time.Hour - 30*time.Minute), wantCount: 1},
		{name: "skip older than the last feeding is ignored", suppress: true, skippedAt: now.Add(-6 * time.Hour), wantCount: 1},
		{name: "suppression disabled", suppress: false, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := createTestService(t, tt.suppress, false)

			deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
				Return(&domain.User{ID: "user-1", Alarms: feedingOnly(nil)}, nil)
			deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
				Return([]string{"family-1"}, nil)
			deps.accounts.EXPECT().ListBabies(gomock.Any(), gomock.Any()).
				Return([]domain.Baby{newborn("baby-1", "Mia")}, nil)
			deps.activities.EXPECT().ListRecent(gomock.Any(), "baby-1", 50).
				Return([]domain.Activity{feedingAt("baby-1", 5*time.Hour)}, nil)
			if tt.suppress {
				deps.skips.EXPECT().GetSkip(gomock.Any(), "baby-1", domain.CategoryFeeding).
					Return(&domain.SkipMarker{BabyID: "baby-1", Category: domain.CategoryFeeding, SkippedAt: tt.skippedAt}, nil)
			}

			got, err := svc.CheckOverdue(context.Background(), "user-1", now)
			if err != nil {
				t.Fatalf("CheckOverdue() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("len(CheckOverdue()) = %d, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestCheckOverdueKeepsBabyAndCategoryOrder(t *testing.T) {
	svc, deps := createTestService(t, false, false)

	prefs := domain.AlarmPreferences{
		Feeding: domain.AlarmSetting{Enabled: true},
		Diaper:  domain.AlarmSetting{Enabled: true},
	}
	babies := []domain.Baby{newborn("baby-a", "Ann"), newborn("baby-b", "Ben"), newborn("baby-c", "Cal")}

	deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1", Alarms: prefs}, nil)
	deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
		Return([]string{"family-1", "family-2"}, nil)
	deps.accounts.EXPECT().ListBabies(gomock.Any(), []string{"family-1", "family-2"}).
		Return(babies, nil)
	for _, b := range babies {
		deps.activities.EXPECT().ListRecent(gomock.Any(), b.ID, 50).
			Return([]domain.Activity{
				feedingAt(b.ID, 6*time.Hour),
				{ID: b.ID + "-diaper", BabyID: b.ID, Type: domain.ActivityWet, StartTime: now.Add(-5 * time.Hour)},
			}, nil)
	}

	got, err := svc.CheckOverdue(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("CheckOverdue() error = %v", err)
	}

	want := []struct {
		baby     string
		category domain.Category
	}{
		{"baby-a", domain.CategoryFeeding},
		{"baby-a", domain.CategoryDiaper},
		{"baby-b", domain.CategoryFeeding},
		{"baby-b", domain.CategoryDiaper},
		{"baby-c", domain.CategoryFeeding},
		{"baby-c", domain.CategoryDiaper},
	}
	if len(got) != len(want) {
		t.Fatalf("len(CheckOverdue()) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].BabyID != w.baby || got[i].ActivityType != w.category {
			t.Errorf("entry %d = %s/%s, want %s/%s", i, got[i].BabyID, got[i].ActivityType, w.baby, w.category)
		}
	}
}

func TestCheckOverdueFailsClosed(t *testing.T) {
	svc, deps := createTestService(t, false, false)
	fetchErr := errors.New("database unavailable")

	deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1", Alarms: feedingOnly(nil)}, nil)
	deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
		Return([]string{"family-1"}, nil)
	deps.accounts.EXPECT().ListBabies(gomock.Any(), gomock.Any()).
		Return([]domain.Baby{newborn("baby-1", "Mia"), newborn("baby-2", "Noa")}, nil)
	deps.activities.EXPECT().ListRecent(gomock.Any(), "baby-1", 50).
		Return([]domain.Activity{feedingAt("baby-1", 5*time.Hour)}, nil).
		AnyTimes()
	deps.activities.EXPECT().ListRecent(gomock.Any(), "baby-2", 50).
		Return(nil, fetchErr)

	got, err := svc.CheckOverdue(context.Background(), "user-1", now)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("CheckOverdue() error = %v, want %v", err, fetchErr)
	}
	if got != nil {
		t.Errorf("CheckOverdue() = %v, want nil on failure", got)
	}
}

func TestCheckOverdueUserErrors(t *testing.T) {
	svc, deps := createTestService(t, true, false)

	deps.accounts.EXPECT().GetUser(gomock.Any(), "ghost").
		Return(nil, domain.ErrUserNotFound)

	_, err := svc.CheckOverdue(context.Background(), "ghost", now)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("CheckOverdue() error = %v, want ErrUserNotFound", err)
	}
}

func TestCheckOverdueWithoutFamilies(t *testing.T) {
	svc, deps := createTestService(t, true, false)

	deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1", Alarms: feedingOnly(nil)}, nil)
	deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
		Return(nil, nil)

	got, err := svc.CheckOverdue(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("CheckOverdue() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("CheckOverdue() = %v, want empty", got)
	}
}

func TestCheckOverdueRecordsResults(t *testing.T) {
	svc, deps := createTestService(t, false, true)

	deps.accounts.EXPECT().GetUser(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1", Alarms: feedingOnly(nil)}, nil)
	deps.accounts.EXPECT().ListFamilyIDs(gomock.Any(), "user-1").
		Return([]string{"family-1"}, nil)
	deps.accounts.EXPECT().ListBabies(gomock.Any(), gomock.Any()).
		Return([]domain.Baby{newborn("baby-1", "Mia")}, nil)
	deps.activities.EXPECT().ListRecent(gomock.Any(), "baby-1", 50).
		Return([]domain.Activity{feedingAt("baby-1", 5*time.Hour)}, nil)
	deps.recorder.EXPECT().
		RecordCheckResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.OverdueCheckRecord) error {
			if len(records) != 1 {
				t.Fatalf("len(records) = %d, want 1", len(records))
			}
			r := records[0]
			if r.RunID == "" || r.UserID != "user-1" || r.BabyID != "baby-1" {
				t.Errorf("unexpected record identity: %+v", r)
			}
			if !r.Overdue || r.ThresholdMinutes != 30 {
				t.Errorf("unexpected record classification: %+v", r)
			}
			return errors.New("influx down")
		})

	got, err := svc.CheckOverdue(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("CheckOverdue() error = %v, recorder failures must not fail the check", err)
	}
	if len(got) != 1 {
		t.Errorf("len(CheckOverdue()) = %d, want 1", len(got))
	}
}
