package domain

import (
	"encoding/json"
	"fmt"
)

// ActivityDetails is the per-type payload attached to an activity.
// Variants are closed to this package.
type ActivityDetails interface {
	detailsKind() string
}

type NoDetails struct{}

func (NoDetails) detailsKind() string { return "none" }

type NailTrimLocation string

const (
	NailTrimHands NailTrimLocation = "hands"
	NailTrimFeet  NailTrimLocation = "feet"
	NailTrimBoth  NailTrimLocation = "both"
)

type NailTrimDetails struct {
	Location NailTrimLocation `json:"location"`
}

func (NailTrimDetails) detailsKind() string { return "nail_trimming" }

type DiaperDetails struct {
	Color       string `json:"color,omitempty"`
	Consistency string `json:"consistency,omitempty"`
}

func (DiaperDetails) detailsKind() string { return "diaper" }

type NursingSide string

const (
	NursingLeft  NursingSide = "left"
	NursingRight NursingSide = "right"
	NursingBoth  NursingSide = "both"
)

type NursingDetails struct {
	Side         NursingSide `json:"side,omitempty"`
	LeftSeconds  int         `json:"leftSeconds,omitempty"`
	RightSeconds int         `json:"rightSeconds,omitempty"`
}

func (NursingDetails) detailsKind() string { return "nursing" }

type MedicineDetails struct {
	Name string `json:"name,omitempty"`
	Dose string `json:"dose,omitempty"`
}

func (MedicineDetails) detailsKind() string { return "medicine" }

// DecodeDetails selects the details variant for an activity type and decodes raw into it.
// Empty payloads decode to the zero value of the variant.
func DecodeDetails(t ActivityType, raw []byte) (ActivityDetails, error) {
	switch t {
	case ActivityNailTrimming:
		var d NailTrimDetails
		if err := decodeInto(raw, &d); err != nil {
			return nil, err
		}
		switch d.Location {
		case "", NailTrimHands, NailTrimFeet, NailTrimBoth:
			return d, nil
		default:
			return nil, fmt.Errorf("%w: nail trimming location %q", ErrInvalidDetails, d.Location)
		}
	case ActivityDiaper, ActivityWet, ActivityDirty, ActivityBoth:
		var d DiaperDetails
		if err := decodeInto(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ActivityNursing:
		var d NursingDetails
		if err := decodeInto(raw, &d); err != nil {
			return nil, err
		}
		switch d.Side {
		case "", NursingLeft, NursingRight, NursingBoth:
		default:
			return nil, fmt.Errorf("%w: nursing side %q", ErrInvalidDetails, d.Side)
		}
		if d.LeftSeconds < 0 || d.RightSeconds < 0 {
			return nil, fmt.Errorf("%w: negative nursing duration", ErrInvalidDetails)
		}
		return d, nil
	case ActivityMedicine:
		var d MedicineDetails
		if err := decodeInto(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ActivityFeeding,
		ActivityBottle,
		ActivitySleep,
		ActivityPumping,
		ActivityBath,
		ActivitySolids,
		ActivityTummyTime,
		ActivityGrowth,
		ActivityTemperature,
		ActivityPotty,
		ActivityWalk,
		ActivityPlay,
		ActivityVitamin:
		return NoDetails{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivityType, t)
	}
}

func decodeInto(raw []byte, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDetails, err)
	}
	return nil
}
