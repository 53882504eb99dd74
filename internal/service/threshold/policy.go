package threshold

import (
	"math"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// UnknownAgeMinutes applies when no birth date is recorded.
const UnknownAgeMinutes = 30

type band struct {
	maxAgeDays int
	minutes    int
}

var ageBands = map[domain.Category][]band{
	domain.CategoryFeeding: {{30, 30}, {90, 45}, {180, 60}, {365, 75}, {-1, 90}},
	domain.CategorySleep:   {{90, 30}, {365, 45}, {-1, 60}},
	domain.CategoryDiaper:  {{30, 30}, {180, 60}, {-1, 90}},
	domain.CategoryPumping: {{90, 30}, {-1, 60}},
}

// Policy maps a category and baby age to a grace period before lateness becomes an alarm.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// DefaultMinutes is the age-derived grace period. Thresholds widen as the baby gets older.
func (p *Policy) DefaultMinutes(category domain.Category, ageDays *int) int {
	if ageDays == nil {
		return UnknownAgeMinutes
	}
	bands, ok := ageBands[category]
	if !ok {
		return UnknownAgeMinutes
	}
	for _, b := range bands {
		if b.maxAgeDays < 0 || *ageDays <= b.maxAgeDays {
			return b.minutes
		}
	}
	return bands[len(bands)-1].minutes
}

// Resolve applies the user override when set. A negative override is treated as zero.
func (p *Policy) Resolve(category domain.Category, ageDays *int, override *int) int {
	if override != nil {
		return max(*override, 0)
	}
	return p.DefaultMinutes(category, ageDays)
}

// Classify fills the overdue fields of a prediction. The prediction is overdue once
// now is more than thresholdMinutes past its next time.
func (p *Policy) Classify(prediction domain.Prediction, thresholdMinutes int, now time.Time) domain.Prediction {
	minutesUntil := prediction.NextTime.Sub(now).Minutes()

	prediction.ThresholdMinutes = thresholdMinutes
	prediction.IsOverdue = minutesUntil < -float64(thresholdMinutes)
	prediction.OverdueMinutes = 0
	if prediction.IsOverdue {
		prediction.OverdueMinutes = int(math.Round(-minutesUntil))
	}
	return prediction
}
