package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
	"github.com/KasumiMercury/primind-activity-alarm/internal/testutil"
)

func TestDispatchRepositoryMarkAndCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewDispatchRepository(client, "test", 2*time.Hour)
	expected := time.Date(2026, 3, 14, 10, 0, 30, 0, time.UTC)
	record := &domain.DispatchRecord{
		UserID:           "user-1",
		BabyID:           "baby-1",
		Category:         domain.CategoryDiaper,
		NextExpectedTime: expected,
		TaskName:         "tasks/abc",
		DispatchedAt:     expected.Add(2 * time.Hour),
	}

	dispatched, err := repo.IsDispatched(ctx, record.Key())
	if err != nil {
		t.Fatalf("IsDispatched() error = %v", err)
	}
	if dispatched {
		t.Fatal("IsDispatched() = true before marking")
	}

	if err := repo.MarkDispatched(ctx, record); err != nil {
		t.Fatalf("MarkDispatched() error = %v", err)
	}

	dispatched, err = repo.IsDispatched(ctx, "user-1:baby-1:diaper:2026-03-14-10-00")
	if err != nil {
		t.Fatalf("IsDispatched() error = %v", err)
	}
	if !dispatched {
		t.Error("IsDispatched() = false after marking")
	}

	ttl, err := client.TTL(ctx, "test:dispatched:user-1:baby-1:diaper:2026-03-14-10-00").Result()
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= time.Hour || ttl > 2*time.Hour {
		t.Errorf("TTL = %v, want within (1h, 2h]", ttl)
	}

	other, err := repo.IsDispatched(ctx, domain.DispatchKey("user-1", "baby-1", domain.CategoryDiaper, expected.Add(time.Minute)))
	if err != nil {
		t.Fatalf("IsDispatched() error = %v", err)
	}
	if other {
		t.Error("a later expected minute must not be deduplicated")
	}

	coParent, err := repo.IsDispatched(ctx, domain.DispatchKey("user-2", "baby-1", domain.CategoryDiaper, expected))
	if err != nil {
		t.Fatalf("IsDispatched() error = %v", err)
	}
	if coParent {
		t.Error("another family member must not be deduplicated")
	}
}

func TestMarkDispatchedRejectsInvalidRecord(t *testing.T) {
	repo := NewDispatchRepository(nil, "test", 0)

	if err := repo.MarkDispatched(context.Background(), nil); !errors.Is(err, ErrInvalidDispatchData) {
		t.Errorf("MarkDispatched(nil) error = %v, want ErrInvalidDispatchData", err)
	}
}
