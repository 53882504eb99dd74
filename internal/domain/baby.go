package domain

import "time"

// Baby carries the profile fields prediction needs.
type Baby struct {
	ID                string
	FamilyID          string
	Name              string
	BirthDate         *time.Time
	FeedIntervalHours *float64
}

// AgeDays returns whole days since birth. ok is false when no birth date is known.
func (b Baby) AgeDays(now time.Time) (days int, ok bool) {
	if b.BirthDate == nil {
		return 0, false
	}
	d := int(now.Sub(*b.BirthDate).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return d, true
}

// AgeDaysPtr is AgeDays in the nullable form used by the threshold policy.
func (b Baby) AgeDaysPtr(now time.Time) *int {
	d, ok := b.AgeDays(now)
	if !ok {
		return nil
	}
	return &d
}
