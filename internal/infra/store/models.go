package store

import (
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// UserModel carries only the alarm preference columns of the users table.
type UserModel struct {
	ID string `gorm:"primaryKey;type:varchar(64)"`

	AlarmFeedingEnabled   bool `gorm:"not null;default:false"`
	AlarmFeedingThreshold *int
	AlarmSleepEnabled     bool `gorm:"not null;default:false"`
	AlarmSleepThreshold   *int
	AlarmDiaperEnabled    bool `gorm:"not null;default:false"`
	AlarmDiaperThreshold  *int
	AlarmPumpingEnabled   bool `gorm:"not null;default:false"`
	AlarmPumpingThreshold *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (m UserModel) toDomain() domain.User {
	return domain.User{
		ID: m.ID,
		Alarms: domain.AlarmPreferences{
			Feeding: domain.AlarmSetting{Enabled: m.AlarmFeedingEnabled, ThresholdMinutes: m.AlarmFeedingThreshold},
			Sleep:   domain.AlarmSetting{Enabled: m.AlarmSleepEnabled, ThresholdMinutes: m.AlarmSleepThreshold},
			Diaper:  domain.AlarmSetting{Enabled: m.AlarmDiaperEnabled, ThresholdMinutes: m.AlarmDiaperThreshold},
			Pumping: domain.AlarmSetting{Enabled: m.AlarmPumpingEnabled, ThresholdMinutes: m.AlarmPumpingThreshold},
		},
	}
}

type FamilyMemberModel struct {
	FamilyID  string `gorm:"primaryKey;type:varchar(64)"`
	UserID    string `gorm:"primaryKey;type:varchar(64);index"`
	CreatedAt time.Time
}

func (FamilyMemberModel) TableName() string {
	return "family_members"
}

type BabyModel struct {
	ID                string `gorm:"primaryKey;type:varchar(64)"`
	FamilyID          string `gorm:"type:varchar(64);not null;index"`
	Name              string `gorm:"type:varchar(128);not null;default:''"`
	BirthDate         *time.Time
	FeedIntervalHours *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (BabyModel) TableName() string {
	return "babies"
}

func (m BabyModel) toDomain() domain.Baby {
	return domain.Baby{
		ID:                m.ID,
		FamilyID:          m.FamilyID,
		Name:              m.Name,
		BirthDate:         m.BirthDate,
		FeedIntervalHours: m.FeedIntervalHours,
	}
}

type ActivityModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	BabyID    string    `gorm:"type:varchar(64);not null;index:idx_activities_baby_start,priority:1"`
	Type      string    `gorm:"type:varchar(32);not null"`
	StartTime time.Time `gorm:"not null;index:idx_activities_baby_start,priority:2,sort:desc"`
	EndTime   *time.Time
	Duration  *int
	Amount    *float64
	Details   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ActivityModel) TableName() string {
	return "activities"
}
