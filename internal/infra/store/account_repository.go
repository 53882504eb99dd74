package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user := m.toDomain()
	return &user, nil
}

func (r *accountRepository) ListFamilyIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&FamilyMemberModel{}).
		Where("user_id = ?", userID).
		Order("family_id").
		Pluck("family_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query families: %w", err)
	}
	return ids, nil
}

func (r *accountRepository) ListBabies(ctx context.Context, familyIDs []string) ([]domain.Baby, error) {
	if len(familyIDs) == 0 {
		return nil, nil
	}

	var models []BabyModel
	err := r.db.WithContext(ctx).
		Where("family_id IN ?", familyIDs).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query babies: %w", err)
	}

	babies := make([]domain.Baby, 0, len(models))
	for _, m := range models {
		babies = append(babies, m.toDomain())
	}
	return babies, nil
}

func (r *accountRepository) ListAlarmUsers(ctx context.Context) ([]domain.User, error) {
	var models []UserModel
	err := r.db.WithContext(ctx).
		Where("alarm_feeding_enabled OR alarm_sleep_enabled OR alarm_diaper_enabled OR alarm_pumping_enabled").
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query alarm users: %w", err)
	}

	users := make([]domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, m.toDomain())
	}
	return users, nil
}
