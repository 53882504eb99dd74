package predictor

import (
	"math"
	"sort"
	"time"

	"github.com/KasumiMercury/primind-activity-alarm/internal/domain"
)

// matching returns the activities of one category, newest first.
func matching(activities []domain.Activity, category domain.Category) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Category() == category {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}

// medianGap is the median of the most recent positive gaps between consecutive
// start times. ok is false when no positive gap exists.
func medianGap(newestFirst []domain.Activity, sampleGaps int) (time.Duration, bool) {
	gaps := make([]time.Duration, 0, len(newestFirst))
	for i := 0; i+1 < len(newestFirst); i++ {
		if sampleGaps > 0 && len(gaps) >= sampleGaps {
			break
		}
		gap := newestFirst[i].StartTime.Sub(newestFirst[i+1].StartTime)
		// identical timestamps come from bulk imports
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, gap)
	}
	if len(gaps) == 0 {
		return 0, false
	}

	sort.Slice(gaps, func(i, j int) bool { return gaps[i] < gaps[j] })
	mid := len(gaps) / 2
	if len(gaps)%2 == 1 {
		return gaps[mid], true
	}
	return (gaps[mid-1] + gaps[mid]) / 2, true
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if hi > 0 && d > hi {
		return hi
	}
	return d
}

// hoursToDuration saturates at the largest representable duration.
func hoursToDuration(h float64) time.Duration {
	if h >= float64(math.MaxInt64)/float64(time.Hour) {
		return math.MaxInt64
	}
	return time.Duration(h * float64(time.Hour))
}
