package domain

import (
	"fmt"
	"strings"
	"time"
)

// ActivityType is the stored kind of a logged activity.
type ActivityType string

const (
	ActivityFeeding      ActivityType = "feeding"
	ActivityBottle       ActivityType = "bottle"
	ActivityNursing      ActivityType = "nursing"
	ActivitySleep        ActivityType = "sleep"
	ActivityDiaper       ActivityType = "diaper"
	ActivityWet          ActivityType = "wet"
	ActivityDirty        ActivityType = "dirty"
	ActivityBoth         ActivityType = "both"
	ActivityPumping      ActivityType = "pumping"
	ActivityBath         ActivityType = "bath"
	ActivitySolids       ActivityType = "solids"
	ActivityMedicine     ActivityType = "medicine"
	ActivityTummyTime    ActivityType = "tummy_time"
	ActivityNailTrimming ActivityType = "nail_trimming"
	ActivityGrowth       ActivityType = "growth"
	ActivityTemperature  ActivityType = "temperature"
	ActivityPotty        ActivityType = "potty"
	ActivityWalk         ActivityType = "walk"
	ActivityPlay         ActivityType = "play"
	ActivityVitamin      ActivityType = "vitamin"
)

var allActivityTypes = []ActivityType{
	ActivityFeeding,
	ActivityBottle,
	ActivityNursing,
	ActivitySleep,
	ActivityDiaper,
	ActivityWet,
	ActivityDirty,
	ActivityBoth,
	ActivityPumping,
	ActivityBath,
	ActivitySolids,
	ActivityMedicine,
	ActivityTummyTime,
	ActivityNailTrimming,
	ActivityGrowth,
	ActivityTemperature,
	ActivityPotty,
	ActivityWalk,
	ActivityPlay,
	ActivityVitamin,
}

// AllActivityTypes returns every stored activity type.
func AllActivityTypes() []ActivityType {
	out := make([]ActivityType, len(allActivityTypes))
	copy(out, allActivityTypes)
	return out
}

func (t ActivityType) String() string {
	return string(t)
}

// ParseActivityType normalizes a stored type string and rejects values outside the closed set.
func ParseActivityType(s string) (ActivityType, error) {
	normalized := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range allActivityTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivityType, s)
}

// Category is the semantic group used for prediction and alarms.
type Category string

const (
	CategoryNone    Category = ""
	CategoryFeeding Category = "feeding"
	CategorySleep   Category = "sleep"
	CategoryDiaper  Category = "diaper"
	CategoryPumping Category = "pumping"
)

var predictedCategories = []Category{
	CategoryFeeding,
	CategorySleep,
	CategoryDiaper,
	CategoryPumping,
}

// PredictedCategories returns the categories that have a predictor, in alarm order.
func PredictedCategories() []Category {
	out := make([]Category, len(predictedCategories))
	copy(out, predictedCategories)
	return out
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsPredicted() bool {
	switch c {
	case CategoryFeeding, CategorySleep, CategoryDiaper, CategoryPumping:
		return true
	default:
		return false
	}
}

// ParseCategory accepts only predicted categories.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsPredicted() {
		return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Classify maps a stored activity type onto its prediction category.
func Classify(t ActivityType) Category {
	switch t {
	case ActivityFeeding, ActivityBottle, ActivityNursing:
		return CategoryFeeding
	case ActivitySleep:
		return CategorySleep
	case ActivityDiaper, ActivityWet, ActivityDirty, ActivityBoth:
		return CategoryDiaper
	case ActivityPumping:
		return CategoryPumping
	case ActivityBath,
		ActivitySolids,
		ActivityMedicine,
		ActivityTummyTime,
		ActivityNailTrimming,
		ActivityGrowth,
		ActivityTemperature,
		ActivityPotty,
		ActivityWalk,
		ActivityPlay,
		ActivityVitamin:
		return CategoryNone
	default:
		return CategoryNone
	}
}

// Activity is a logged event for a baby. It is read-only input to prediction.
type Activity struct {
	ID        string
	BabyID    string
	Type      ActivityType
	StartTime time.Time
	EndTime   *time.Time
	// Duration unit depends on the activity type and is owned by the writer.
	Duration *int
	Amount   *float64
	Details  ActivityDetails
}

func (a Activity) Category() Category {
	return Classify(a.Type)
}
