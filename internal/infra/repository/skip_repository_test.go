package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/testutil"
)

func TestSkipRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSkipRepository(client, "test", 24)
	skippedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	err := repo.SaveSkip(ctx, &domain.SkipMarker{
		BabyID:        "baby-1",
		Category:      domain.CategoryFeeding,
		UserID:        "user-1",
		SkippedAt:     skippedAt,
		IntervalHours: 3,
	})
	if err != nil {
		t.Fatalf("SaveSkip() error = %v", err)
	}

	got, err := repo.GetSkip(ctx, "baby-1", domain.CategoryFeeding)
	if err != nil {
		t.Fatalf("GetSkip() error = %v", err)
	}
	if !got.SkippedAt.Equal(skippedAt) || got.UserID != "user-1" || got.IntervalHours != 3 {
		t.Errorf("GetSkip() = %+v", got)
	}

	ttl, err := client.TTL(ctx, "test:skip:baby-1:feeding").Result()
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= 24*time.Hour || ttl > 25*time.Hour {
		t.Errorf("TTL = %v, want within (24h, 25h]", ttl)
	}

	if _, err := repo.GetSkip(ctx, "baby-1", domain.CategorySleep); !errors.Is(err, domain.ErrSkipNotFound) {
		t.Errorf("GetSkip() other category error = %v, want ErrSkipNotFound", err)
	}

	if err := repo.ClearSkip(ctx, "baby-1", domain.CategoryFeeding); err != nil {
		t.Fatalf("ClearSkip() error = %v", err)
	}
	if _, err := repo.GetSkip(ctx, "baby-1", domain.CategoryFeeding); !errors.Is(err, domain.ErrSkipNotFound) {
		t.Errorf("GetSkip() after clear error = %v, want ErrSkipNotFound", err)
	}
}

func TestSaveSkipRejectsInvalidMarker(t *testing.T) {
	repo := NewSkipRepository(nil, "test", 24)

	if err := repo.SaveSkip(context.Background(), nil); !errors.Is(err, ErrInvalidSkipData) {
		t.Errorf("SaveSkip(nil) error = %v, want ErrInvalidSkipData", err)
	}
	if err := repo.SaveSkip(context.Background(), &domain.SkipMarker{}); !errors.Is(err, ErrInvalidSkipData) {
		t.Errorf("SaveSkip(empty) error = %v, want ErrInvalidSkipData", err)
	}
}

func TestSkipTTL(t *testing.T) {
	tests := []struct {
		intervalHours float64
		maxInterval   time.Duration
		want          time.Duration
	}{
		{0, 0, 2 * time.Hour},
		{0.5, 0, 2 * time.Hour},
		{3, 0, 4 * time.Hour},
		{2, 24 * time.Hour, 25 * time.Hour},
		{24, 24 * time.Hour, 25 * time.Hour},
		{30, 24 * time.Hour, 31 * time.Hour},
	}

	for _, tt := range tests {
		if got := skipTTL(tt.intervalHours, tt.maxInterval); got != tt.want {
			t.Errorf("skipTTL(%v, %v) = %v, want %v", tt.intervalHours, tt.maxInterval, got, tt.want)
		}
	}
}

func TestSkipOutlivesGrownInterval(t *testing.T) {
	// Recorded while the interval was 2h; the interval has since grown to 5h.
	skippedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	grown := 5 * time.Hour
	checkAt := skippedAt.Add(grown - time.Minute)

	expiresAt := skippedAt.Add(skipTTL(2, 24*time.Hour))
	if !expiresAt.After(checkAt) {
		t.Errorf("marker expires at %v, before the grown interval elapses at %v", expiresAt, skippedAt.Add(grown))
	}
}

func TestGetSkipCorruptData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	if err := client.Set(ctx, "test:skip:baby-1:sleep", "not json", 0).Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	repo := NewSkipRepository(client, "test", 24)
	if _, err := repo.GetSkip(ctx, "baby-1", domain.CategorySleep); !errors.Is(err, ErrInvalidSkipData) {
		t.Errorf("GetSkip() error = %v, want ErrInvalidSkipData", err)
	}
}
