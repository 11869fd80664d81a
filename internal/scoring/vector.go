package scoring

import (
	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/catalog"
	"github.com/vijay-prabhu/disha/internal/normalize"
)

// teamInterestThreshold is the Team score above which a user prefers team play
const teamInterestThreshold = 5

// UserVector maps attributes to values in [0,1]
type UserVector map[catalog.Attribute]float64

// Get returns the attribute value clamped to [0,1], 0 when absent
func (v UserVector) Get(a catalog.Attribute) float64 {
	return normalize.Clamp01(v[a])
}

// scoredCategories maps sports score categories to vector attributes
var scoredCategories = []struct {
	category string
	attr     catalog.Attribute
}{
	{assessment.Strength, catalog.AttrStrength},
	{assessment.Speed, catalog.AttrSpeed},
	{assessment.Endurance, catalog.AttrEndurance},
	{assessment.Reflex, catalog.AttrReflex},
	{assessment.Coordination, catalog.AttrCoordination},
	{assessment.Tactical, catalog.AttrTactical},
	{assessment.Flexibility, catalog.AttrFlexibility},
}

// BuildUserVector normalizes physical stats and a sports score map.
// categoryMax is the typical maximum of a category sum; non-positive
// values fall back to the default of 30.
func BuildUserVector(stats assessment.PhysicalStats, scores assessment.RawScoreMap, categoryMax float64) UserVector {
	v := UserVector{
		catalog.AttrHeight: normalize.Height(stats.HeightCm, string(stats.Gender)),
		catalog.AttrBMI:    normalize.BMI(normalize.CalculateBMI(stats.WeightKg, stats.HeightCm)),
	}

	for _, sc := range scoredCategories {
		v[sc.attr] = normalize.Score(float64(scores.Get(sc.category)), categoryMax)
	}

	if scores.Get(assessment.Team) > teamInterestThreshold {
		v[catalog.AttrTeam] = 1
	} else {
		v[catalog.AttrTeam] = 0
	}

	return v
}
