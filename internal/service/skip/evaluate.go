package skip

import (
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// State is the skip-adjusted view of a prediction.
type State struct {
	IsRecentlySkipped  bool
	EffectiveIsOverdue bool
	DisplayNextTime    time.Time
}

// Evaluate applies a recent skip to a prediction. A skip stays valid for one full
// interval from the moment it was recorded and re-anchors the displayed time to it.
func Evaluate(prediction domain.Prediction, now time.Time) State {
	recent := prediction.RecentSkipTime != nil &&
		now.Sub(*prediction.RecentSkipTime) < prediction.Interval()

	state := State{
		IsRecentlySkipped:  recent,
		EffectiveIsOverdue: prediction.IsOverdue && !recent,
		DisplayNextTime:    prediction.NextTime,
	}
	if recent {
		state.DisplayNextTime = prediction.RecentSkipTime.Add(prediction.Interval())
	}
	return state
}
