package domain

import "time"

type AlarmSetting struct {
	Enabled          bool
	ThresholdMinutes *int
}

// AlarmPreferences are the per-user alarm switches and optional custom thresholds.
type AlarmPreferences struct {
	Feeding AlarmSetting
	Sleep   AlarmSetting
	Diaper  AlarmSetting
	Pumping AlarmSetting
}

func (p AlarmPreferences) Setting(c Category) AlarmSetting {
	switch c {
	case CategoryFeeding:
		return p.Feeding
	case CategorySleep:
		return p.Sleep
	case CategoryDiaper:
		return p.Diaper
	case CategoryPumping:
		return p.Pumping
	default:
		return AlarmSetting{}
	}
}

func (p AlarmPreferences) AnyEnabled() bool {
	return p.Feeding.Enabled || p.Sleep.Enabled || p.Diaper.Enabled || p.Pumping.Enabled
}

// EnabledCategories returns enabled categories in feeding, sleep, diaper, pumping order.
func (p AlarmPreferences) EnabledCategories() []Category {
	var out []Category
	for _, c := range predictedCategories {
		if p.Setting(c).Enabled {
			out = append(out, c)
		}
	}
	return out
}

type User struct {
	ID     string
	Alarms AlarmPreferences
}

// OverdueActivity is one baby x category pair currently past its threshold.
type OverdueActivity struct {
	ActivityType     Category  `json:"activityType"`
	BabyID           string    `json:"babyId"`
	BabyName         string    `json:"babyName"`
	OverdueMinutes   int       `json:"overdueMinutes"`
	NextExpectedTime time.Time `json:"nextExpectedTime"`
}
