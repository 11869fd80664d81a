// Package scoring ranks catalog profiles against a user vector.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/catalog"
	"github.com/vijay-prabhu/disha/internal/normalize"
)

// Weights are the sub-index shares of the composite score. They are
// normalized to sum to 1.0 before use.
type Weights struct {
	Physical       float64 `json:"physical" toml:"physical"`
	Skill          float64 `json:"skill" toml:"skill"`
	Psychological  float64 `json:"psychological" toml:"psychological"`
	Interest       float64 `json:"interest" toml:"interest"`
	Environment    float64 `json:"environment" toml:"environment"`
	Anthropometric float64 `json:"anthropometric" toml:"anthropometric"`
}

// DefaultWeights returns the reference calibration
func DefaultWeights() Weights {
	return Weights{
		Physical:       0.25,
		Skill:          0.20,
		Psychological:  0.20,
		Interest:       0.15,
		Environment:    0.10,
		Anthropometric: 0.10,
	}
}

// Sum returns the total of all shares
func (w Weights) Sum() float64 {
	return w.Physical + w.Skill + w.Psychological + w.Interest + w.Environment + w.Anthropometric
}

// Normalized rescales the shares to sum to 1.0. Negative shares are
// dropped; an all-zero set falls back to DefaultWeights.
func (w Weights) Normalized() Weights {
	pos := func(x float64) float64 {
		if math.IsNaN(x) || x < 0 {
			return 0
		}
		return x
	}
	w = Weights{
		Physical:       pos(w.Physical),
		Skill:          pos(w.Skill),
		Psychological:  pos(w.Psychological),
		Interest:       pos(w.Interest),
		Environment:    pos(w.Environment),
		Anthropometric: pos(w.Anthropometric),
	}

	sum := w.Sum()
	if sum <= 0 || math.IsInf(sum, 0) {
		return DefaultWeights()
	}
	return Weights{
		Physical:       w.Physical / sum,
		Skill:          w.Skill / sum,
		Psychological:  w.Psychological / sum,
		Interest:       w.Interest / sum,
		Environment:    w.Environment / sum,
		Anthropometric: w.Anthropometric / sum,
	}
}

// Config configures the scorer
type Config struct {
	Weights         Weights
	MaxResults      int     // Cap on ranked results
	GapThreshold    float64 // Absolute deficit that flags an improvement area
	MaxImprovements int     // Cap on improvement areas per result
}

// DefaultConfig returns the reference configuration
func DefaultConfig() Config {
	return Config{
		Weights:         DefaultWeights(),
		MaxResults:      10,
		GapThreshold:    0.2,
		MaxImprovements: 3,
	}
}

// Breakdown holds the sub-indices behind a composite score, each in [0,1]
type Breakdown struct {
	Physical       float64 `json:"physical"`
	Anthropometric float64 `json:"anthropometric"`
	Skill          float64 `json:"skill"`
	Psychological  float64 `json:"psychological"`
	Interest       float64 `json:"interest"`
	Environment    float64 `json:"environment"`
}

// SuitabilityResult is one ranked match
type SuitabilityResult struct {
	Profile          string    `json:"profile"`
	Score            int       `json:"suitability_score"`
	MatchReason      string    `json:"match_reason"`
	DevelopmentPath  []string  `json:"development_path"`
	ImprovementAreas []string  `json:"improvement_areas"`
	Breakdown        Breakdown `json:"breakdown"`
}

// developmentPath is the generic progression shown with every match
var developmentPath = []string{"Join Academy", "District Trials", "State Championship"}

// Scorer computes weighted suitability between users and catalog profiles
type Scorer struct {
	config  Config
	weights Weights
}

// NewScorer creates a Scorer. Zero caps and thresholds take reference values.
func NewScorer(config Config) *Scorer {
	def := DefaultConfig()
	if config.MaxResults <= 0 {
		config.MaxResults = def.MaxResults
	}
	if config.GapThreshold <= 0 {
		config.GapThreshold = def.GapThreshold
	}
	if config.MaxImprovements <= 0 {
		config.MaxImprovements = def.MaxImprovements
	}
	return &Scorer{
		config:  config,
		weights: config.Weights.Normalized(),
	}
}

// Weights returns the normalized weights in use
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Evaluate computes the composite in [0,1] and its breakdown for one profile
func (s *Scorer) Evaluate(v UserVector, stats assessment.PhysicalStats, p catalog.ProfileEntry) (float64, Breakdown) {
	sim := func(a catalog.Attribute) float64 {
		return normalize.Similarity(v.Get(a), p.Ideal(a))
	}

	b := Breakdown{
		Physical:       (sim(catalog.AttrStrength) + sim(catalog.AttrSpeed) + sim(catalog.AttrEndurance)) / 3,
		Anthropometric: (sim(catalog.AttrHeight) + sim(catalog.AttrBMI)) / 2,
		Skill:          (sim(catalog.AttrReflex) + sim(catalog.AttrCoordination)) / 2,
		Psychological:  sim(catalog.AttrTactical),
		Interest:       sim(catalog.AttrTeam),
		Environment:    EnvironmentFit(stats, p),
	}

	w := s.weights
	composite := w.Physical*b.Physical +
		w.Skill*b.Skill +
		w.Psychological*b.Psychological +
		w.Interest*b.Interest +
		w.Environment*b.Environment +
		w.Anthropometric*b.Anthropometric

	return normalize.Clamp01(composite), b
}

// Rank scores every profile in the catalog, sorts descending with
// declaration order breaking ties, and caps the list to MaxResults.
func (s *Scorer) Rank(v UserVector, stats assessment.PhysicalStats, c *catalog.Catalog) []SuitabilityResult {
	results := make([]SuitabilityResult, 0, c.Len())

	c.Each(func(_ int, p catalog.ProfileEntry) {
		composite, breakdown := s.Evaluate(v, stats, p)

		path := make([]string, len(developmentPath))
		copy(path, developmentPath)

		results = append(results, SuitabilityResult{
			Profile:          p.Name,
			Score:            int(math.Round(composite * 100)),
			MatchReason:      MatchReason(v, p),
			DevelopmentPath:  path,
			ImprovementAreas: AnalyzeGaps(v, p, s.config.GapThreshold, s.config.MaxImprovements),
			Breakdown:        breakdown,
		})
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.config.MaxResults {
		results = results[:s.config.MaxResults]
	}
	return results
}

// EnvironmentFit returns the contextual bonus for a profile. The first
// matching rule wins; the order is part of the contract.
func EnvironmentFit(stats assessment.PhysicalStats, p catalog.ProfileEntry) float64 {
	switch {
	case stats.LocationType == assessment.LocationCoastal && p.Prefers(catalog.EnvWater):
		return 1.0
	case stats.LocationType == assessment.LocationMountain && strings.Contains(p.Name, "Running"):
		return 1.0
	case stats.LocationType == assessment.LocationUrban && p.Prefers(catalog.EnvIndoor):
		return 0.8
	case stats.HasPlayground && p.Prefers(catalog.EnvOutdoor):
		return 0.9
	case !stats.HasPlayground && p.Prefers(catalog.EnvOutdoor):
		return 0.2
	default:
		return 0.5
	}
}
