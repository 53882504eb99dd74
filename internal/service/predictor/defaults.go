package predictor

import "github.com/KasumiMercury/primind-activity-alarm/internal/domain"

// ageBand is an inclusive upper bound on age in days with the interval used up to it.
type ageBand struct {
	maxAgeDays    int
	intervalHours float64
}

// Bands are ordered by age. The last band covers everything older.
var defaultIntervals = map[domain.Category][]ageBand{
	domain.CategoryFeeding: {
		{maxAgeDays: 30, intervalHours: 3},
		{maxAgeDays: 90, intervalHours: 3.5},
		{maxAgeDays: 180, intervalHours: 4},
		{maxAgeDays: 365, intervalHours: 4.5},
		{maxAgeDays: -1, intervalHours: 5},
	},
	domain.CategorySleep: {
		{maxAgeDays: 90, intervalHours: 2},
		{maxAgeDays: 180, intervalHours: 2.5},
		{maxAgeDays: 365, intervalHours: 3},
		{maxAgeDays: -1, intervalHours: 5},
	},
	domain.CategoryDiaper: {
		{maxAgeDays: 30, intervalHours: 2.5},
		{maxAgeDays: 180, intervalHours: 3},
		{maxAgeDays: 365, intervalHours: 3.5},
		{maxAgeDays: -1, intervalHours: 4},
	},
	domain.CategoryPumping: {
		{maxAgeDays: 90, intervalHours: 3},
		{maxAgeDays: -1, intervalHours: 4},
	},
}

// DefaultIntervalHours returns the age-appropriate interval for a category.
// Without an age the youngest band applies.
func DefaultIntervalHours(category domain.Category, ageDays *int) float64 {
	bands, ok := defaultIntervals[category]
	if !ok || len(bands) == 0 {
		return 3
	}
	if ageDays == nil {
		return bands[0].intervalHours
	}
	for _, b := range bands {
		if b.maxAgeDays < 0 || *ageDays <= b.maxAgeDays {
			return b.intervalHours
		}
	}
	return bands[len(bands)-1].intervalHours
}
