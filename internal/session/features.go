package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/logging"
	"github.com/vijay-prabhu/disha/internal/normalize"
)

// Dimensions of a feature vector, each in [0,1]
type Dimensions struct {
	Logical       float64 `json:"logical"`
	Verbal        float64 `json:"verbal"`
	Numerical     float64 `json:"numerical"`
	Technical     float64 `json:"technical"`
	Creative      float64 `json:"creative"`
	Sports        float64 `json:"sports"`
	EconomicScore float64 `json:"economic_score"`
}

// Raw returns the six model dimensions in fixed order
func (d Dimensions) Raw() []float64 {
	return []float64{d.Logical, d.Verbal, d.Numerical, d.Technical, d.Creative, d.Sports}
}

// FeatureVector is a descriptive snapshot of a profile. It is logged and
// stored for analysis; nothing in this module trains on it.
type FeatureVector struct {
	ID         string     `json:"vector_id"`
	Timestamp  time.Time  `json:"timestamp"`
	Dimensions Dimensions `json:"dimensions"`
	Raw        []float64  `json:"raw_vector"`
}

// Economic placeholders
const (
	economicLow     = 0.2
	economicMid     = 0.5
	economicHigh    = 0.8
	economicUnknown = economicMid
)

// BuildFeatureVector derives a feature vector from the four score maps.
// skillMax is the typical max of a skill sum.
func BuildFeatureVector(in holistic.Inputs, skillMax float64, now time.Time) FeatureVector {
	skill := func(category string) float64 {
		return normalize.Score(float64(in.Skills.Get(category)), skillMax)
	}

	technical := skill(assessment.Technical)
	if technical == 0 {
		technical = skill(assessment.Practical)
	}

	creative, sports := 0.2, 0.1
	if !in.Creative.Empty() {
		creative = 0.8
	}
	if !in.Sports.Empty() {
		sports = 0.9
	}

	d := Dimensions{
		Logical:       skill(assessment.Logical),
		Verbal:        skill(assessment.Verbal),
		Numerical:     skill(assessment.Numerical),
		Technical:     technical,
		Creative:      creative,
		Sports:        sports,
		EconomicScore: economicUnknown,
	}
	return FeatureVector{ID: uuid.New().String(), Timestamp: now, Dimensions: d, Raw: d.Raw()}
}

// LogFeatureVector writes the vector at debug level
func LogFeatureVector(ctx context.Context, logger *logging.Logger, v FeatureVector) {
	logger.FromContext(ctx).Debug("feature vector generated",
		"vector_id", v.ID,
		"raw", v.Raw,
		"economic_score", v.Dimensions.EconomicScore,
	)
}

func economicScore(bracket string) float64 {
	switch strings.ToLower(strings.TrimSpace(bracket)) {
	case "low":
		return economicLow
	case "mid":
		return economicMid
	case "high":
		return economicHigh
	default:
		return economicUnknown
	}
}
