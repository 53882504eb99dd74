package domain

import "time"

// PredictionSource tells where the interval behind a prediction came from.
type PredictionSource string

const (
	SourceHistory    PredictionSource = "history"
	SourceDefault    PredictionSource = "default"
	SourceConfigured PredictionSource = "configured"
)

// Prediction is the engine output for a single category. It is recomputed on every read.
type Prediction struct {
	Category         Category
	NextTime         time.Time
	IntervalHours    float64
	Source           PredictionSource
	LastActivityTime *time.Time
	IsOverdue        bool
	OverdueMinutes   int
	ThresholdMinutes int
	RecentSkipTime   *time.Time
}

func (p Prediction) Interval() time.Duration {
	return time.Duration(p.IntervalHours * float64(time.Hour))
}
