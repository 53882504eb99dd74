package predictor

import (
	"math"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// Feeding predicts the next feeding. A positive configured interval wins over
// both history and age defaults, within the same bounds a derived interval gets.
func (p *Predictor) Feeding(in Input) domain.Prediction {
	override := in.IntervalOverrideHours
	if override == nil || *override <= 0 || math.IsNaN(*override) {
		return p.fromHistory(domain.CategoryFeeding, in)
	}

	records := matching(in.Activities, domain.CategoryFeeding)
	interval := clamp(hoursToDuration(*override), p.minInterval, p.maxInterval)
	return p.anchor(domain.CategoryFeeding, records, interval, domain.SourceConfigured, in.now())
}
