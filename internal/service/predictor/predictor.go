package predictor

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/config"
	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// Input is everything a predictor looks at. Activities are expected newest first
// and already limited to one baby.
type Input struct {
	Activities []domain.Activity
	BirthDate  *time.Time
	// IntervalOverrideHours is honored by the feeding predictor only.
	IntervalOverrideHours *float64
	Now                   time.Time
}

func (in Input) ageDays() *int {
	if in.BirthDate == nil {
		return nil
	}
	return domain.Baby{BirthDate: in.BirthDate}.AgeDaysPtr(in.now())
}

func (in Input) now() time.Time {
	if in.Now.IsZero() {
		return time.Now()
	}
	return in.Now
}

type Predictor struct {
	sampleGaps  int
	minInterval time.Duration
	maxInterval time.Duration
}

func New(cfg *config.PredictionConfig) *Predictor {
	if cfg == nil {
		cfg = config.DefaultPredictionConfig()
	}
	return &Predictor{
		sampleGaps:  cfg.SampleGaps,
		minInterval: time.Duration(cfg.MinIntervalMinutes) * time.Minute,
		maxInterval: hoursToDuration(cfg.MaxIntervalHours),
	}
}

// Predict dispatches to the predictor of the given category.
func (p *Predictor) Predict(category domain.Category, in Input) (domain.Prediction, error) {
	switch category {
	case domain.CategoryFeeding:
		return p.Feeding(in), nil
	case domain.CategorySleep:
		return p.Sleep(in), nil
	case domain.CategoryDiaper:
		return p.Diaper(in), nil
	case domain.CategoryPumping:
		return p.Pumping(in), nil
	default:
		return domain.Prediction{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
}

func (p *Predictor) Sleep(in Input) domain.Prediction {
	return p.fromHistory(domain.CategorySleep, in)
}

func (p *Predictor) Diaper(in Input) domain.Prediction {
	return p.fromHistory(domain.CategoryDiaper, in)
}

func (p *Predictor) Pumping(in Input) domain.Prediction {
	return p.fromHistory(domain.CategoryPumping, in)
}

// fromHistory derives the interval from the median recent gap, falling back to
// the age default when fewer than two usable records exist.
func (p *Predictor) fromHistory(category domain.Category, in Input) domain.Prediction {
	records := matching(in.Activities, category)

	interval := hoursToDuration(DefaultIntervalHours(category, in.ageDays()))
	source := domain.SourceDefault
	if gap, ok := medianGap(records, p.sampleGaps); ok {
		interval = clamp(gap, p.minInterval, p.maxInterval)
		source = domain.SourceHistory
	}

	return p.anchor(category, records, interval, source, in.now())
}

// anchor places the next occurrence one interval after the newest record, or one
// interval from now when there is no record at all.
func (p *Predictor) anchor(category domain.Category, newestFirst []domain.Activity, interval time.Duration, source domain.PredictionSource, now time.Time) domain.Prediction {
	prediction := domain.Prediction{
		Category:      category,
		IntervalHours: interval.Hours(),
		Source:        source,
	}

	if len(newestFirst) == 0 {
		prediction.NextTime = now.Add(interval)
		return prediction
	}

	last := newestFirst[0].StartTime
	prediction.LastActivityTime = &last
	prediction.NextTime = last.Add(interval)
	return prediction
}
