package assessment

import (
	"errors"
	"fmt"
	"strings"
)

// Gender as reported on the physical form
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// LocationType describes where the user lives
type LocationType string

const (
	LocationUrban    LocationType = "Urban"
	LocationRural    LocationType = "Rural"
	LocationCoastal  LocationType = "Coastal"
	LocationMountain LocationType = "Mountain"
)

// DominantHand as reported on the physical form
type DominantHand string

const (
	HandRight        DominantHand = "Right"
	HandLeft         DominantHand = "Left"
	HandAmbidextrous DominantHand = "Ambidextrous"
)

// PhysicalStats is the self-reported physical profile
type PhysicalStats struct {
	Age           int          `json:"age"`
	Gender        Gender       `json:"gender"`
	HeightCm      float64      `json:"height_cm"`
	WeightKg      float64      `json:"weight_kg"`
	DominantHand  DominantHand `json:"dominant_hand,omitempty"`
	LocationType  LocationType `json:"location_type"`
	HasPlayground bool         `json:"has_playground"`
	HasCoaching   bool         `json:"has_coaching"`
}

// DefaultPhysicalStats mirrors the blank physical form
func DefaultPhysicalStats() PhysicalStats {
	return PhysicalStats{
		Age:           15,
		Gender:        GenderMale,
		HeightCm:      160,
		WeightKg:      50,
		DominantHand:  HandRight,
		LocationType:  LocationUrban,
		HasPlayground: true,
	}
}

// ParseGender parses a gender case-insensitively
func ParseGender(s string) (Gender, error) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther} {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender %q (Male, Female, Other)", s)
}

// ParseLocationType parses a location type case-insensitively
func ParseLocationType(s string) (LocationType, error) {
	for _, l := range []LocationType{LocationUrban, LocationRural, LocationCoastal, LocationMountain} {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown location type %q (Urban, Rural, Coastal, Mountain)", s)
}

// Validate checks the enumerations. Numeric fields are not range checked:
// the scorer clamps them.
func (p PhysicalStats) Validate() error {
	var errs []error
	if _, err := ParseGender(string(p.Gender)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLocationType(string(p.LocationType)); err != nil {
		errs = append(errs, err)
	}
	switch p.DominantHand {
	case "", HandRight, HandLeft, HandAmbidextrous:
	default:
		errs = append(errs, fmt.Errorf("unknown dominant hand %q", p.DominantHand))
	}
	return errors.Join(errs...)
}
