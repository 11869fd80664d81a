// Package holistic merges the independent assessment sessions into
// cross-domain rankings: academic streams, career domains, sports clusters
// and creative fields.
package holistic

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/normalize"
	"github.com/vijay-prabhu/disha/internal/store"
)

// Config holds the per-map typical maxima and list caps
type Config struct {
	SkillMax             float64 // Typical max of a skill category sum
	PersonalityMax       float64 // Typical max of a personality category sum
	PersonalityThreshold float64 // Index a trait must exceed to name the type
	TopSports            int
	TopCreative          int
}

// DefaultConfig returns the reference configuration. Skills and personality
// use different maxima because their questions score on different scales.
func DefaultConfig() Config {
	return Config{
		SkillMax:             30,
		PersonalityMax:       20,
		PersonalityThreshold: 70,
		TopSports:            3,
		TopCreative:          3,
	}
}

// Indices are the headline numbers of a profile
type Indices struct {
	Cognitive       int    `json:"cognitive"`
	PersonalityType string `json:"personality_type"`
	SportsAptitude  int    `json:"sports_aptitude"`
	CreativeIndex   int    `json:"creative_index"`
}

// Stream is a ranked academic stream
type Stream struct {
	Stream string  `json:"stream"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Career is a ranked career domain
type Career struct {
	Domain string   `json:"domain"`
	Score  float64  `json:"score"`
	Reason string   `json:"reason"`
	Steps  []string `json:"steps"`
}

// Ranked is a scored entry in the sports and creative lists
type Ranked struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

// Profile is the aggregate view across every assessment
type Profile struct {
	Indices  Indices  `json:"intelligence_index"`
	Academic []Stream `json:"academic"`
	Careers  []Career `json:"careers"`
	Sports   []Ranked `json:"sports"`
	Creative []Ranked `json:"creative"`
}

// Inputs are the four raw score maps. Nil maps are treated as empty.
type Inputs struct {
	Skills      assessment.RawScoreMap
	Personality assessment.RawScoreMap
	Sports      assessment.RawScoreMap
	Creative    assessment.RawScoreMap
}

// Empty reports whether there is no evidence at all
func (in Inputs) Empty() bool {
	return in.Skills.Empty() && in.Personality.Empty() && in.Sports.Empty() && in.Creative.Empty()
}

// Aggregator builds holistic profiles
type Aggregator struct {
	config Config
}

// New creates an Aggregator. Non-positive fields take reference values.
func New(config Config) *Aggregator {
	def := DefaultConfig()
	if config.SkillMax <= 0 {
		config.SkillMax = def.SkillMax
	}
	if config.PersonalityMax <= 0 {
		config.PersonalityMax = def.PersonalityMax
	}
	if config.PersonalityThreshold <= 0 {
		config.PersonalityThreshold = def.PersonalityThreshold
	}
	if config.TopSports <= 0 {
		config.TopSports = def.TopSports
	}
	if config.TopCreative <= 0 {
		config.TopCreative = def.TopCreative
	}
	return &Aggregator{config: config}
}

// Load reads the four maps from a store. Missing keys come back empty;
// only store failures return an error.
func Load(ctx context.Context, s store.ScoreStore) (Inputs, error) {
	var in Inputs
	targets := map[assessment.Kind]*assessment.RawScoreMap{
		assessment.KindSkills:      &in.Skills,
		assessment.KindPersonality: &in.Personality,
		assessment.KindSports:      &in.Sports,
		assessment.KindCreative:    &in.Creative,
	}
	for _, kind := range assessment.Kinds {
		m, err := s.Get(ctx, kind.StoreKey())
		if err != nil {
			return Inputs{}, fmt.Errorf("failed to load %s scores: %w", kind, err)
		}
		*targets[kind] = m
	}
	return in, nil
}

// FromStore loads the inputs and builds the profile
func (a *Aggregator) FromStore(ctx context.Context, s store.ScoreStore) (*Profile, error) {
	in, err := Load(ctx, s)
	if err != nil {
		return nil, err
	}
	return a.Build(in), nil
}

// Build returns the holistic profile, or nil when all four maps are empty
func (a *Aggregator) Build(in Inputs) *Profile {
	if in.Empty() {
		return nil
	}

	f := a.extract(in)

	return &Profile{
		Indices: Indices{
			Cognitive:       roundIndex((f.logical + f.numerical + f.verbal + f.spatial) / 4),
			PersonalityType: a.personalityType(f),
			SportsAptitude:  roundIndex(float64(in.Sports.Total()) / 2),
			CreativeIndex:   roundIndex(float64(in.Creative.Total()) / 1.5),
		},
		Academic: rankStreams(f),
		Careers:  rankCareers(f),
		Sports:   top(rankClusters(in.Sports, sportsClusters, 3), a.config.TopSports),
		Creative: top(rankClusters(in.Creative, creativeFields, 8), a.config.TopCreative),
	}
}

// factors are the normalized 0-100 inputs the formulas combine
type factors struct {
	logical, numerical, verbal, spatial, practical float64
	hasBiology                                     bool

	leadership, risk, stability, eq, innovation float64

	creativeTotal int
}

func (a *Aggregator) extract(in Inputs) factors {
	skill := func(category string) float64 {
		return normalize.Percent(float64(in.Skills.Get(category)), a.config.SkillMax)
	}
	psych := func(category string) float64 {
		return normalize.Percent(float64(in.Personality.Get(category)), a.config.PersonalityMax)
	}

	practical := skill(assessment.Practical)
	if practical == 0 {
		practical = skill(assessment.Technical)
	}

	return factors{
		logical:    skill(assessment.Logical),
		numerical:  skill(assessment.Numerical),
		verbal:     skill(assessment.Verbal),
		spatial:    skill(assessment.Spatial),
		practical:  practical,
		hasBiology: in.Skills.Get(assessment.Biology) != 0,

		leadership: psych(assessment.Extraversion),
		risk:       psych(assessment.RiskTaking),
		stability:  psych(assessment.Conscientiousness) + psych(assessment.Stability),
		eq:         psych(assessment.Agreeableness) + psych(assessment.Empathy),
		innovation: psych(assessment.Openness),

		creativeTotal: in.Creative.Total(),
	}
}

// personalityType names the dominant trait. Ties at the top, or a top
// value not above the threshold, yield "Analyst".
func (a *Aggregator) personalityType(f factors) string {
	candidates := []struct {
		label string
		value float64
	}{
		{"Commander", f.leadership},
		{"Empath", f.eq},
		{"Innovator", f.innovation},
	}

	best := -1
	tied := false
	for i, c := range candidates {
		switch {
		case best < 0 || c.value > candidates[best].value:
			best = i
			tied = false
		case c.value == candidates[best].value:
			tied = true
		}
	}

	if tied || candidates[best].value <= a.config.PersonalityThreshold {
		return "Analyst"
	}
	return candidates[best].label
}

func roundIndex(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

func top(list []Ranked, n int) []Ranked {
	if len(list) > n {
		return list[:n]
	}
	return list
}

type cluster struct {
	name     string
	category string
	reason   string
}

var sportsClusters = []cluster{
	{"Strategic (Chess/Cricket Capt)", assessment.Tactical, "Reads the game and plans ahead."},
	{"Power (Wrestling/Throws)", assessment.Strength, "Raw strength and explosive power."},
	{"Reflex (Badminton/TT)", assessment.Reflex, "Fast reactions and hand-eye speed."},
	{"Endurance (Running/Football)", assessment.Endurance, "Sustained stamina over long efforts."},
}

var creativeFields = []cluster{
	{"Music & Sound", assessment.Music, "Pitch, rhythm and musical memory."},
	{"Visual Arts & Design", assessment.VisualArts, "Visual imagination and composition."},
	{"Performing Arts", assessment.PerformingArts, "Expression and stage presence."},
	{"Creative Business", assessment.Creative, "Turns ideas into ventures."},
}

// rankClusters scales each cluster's raw score by multiplier, clamps to 100
// and sorts descending with declaration order breaking ties.
func rankClusters(scores assessment.RawScoreMap, clusters []cluster, multiplier float64) []Ranked {
	out := make([]Ranked, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, Ranked{
			Name:   c.name,
			Score:  math.Min(100, math.Max(0, float64(scores.Get(c.category))*multiplier)),
			Reason: c.reason,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
