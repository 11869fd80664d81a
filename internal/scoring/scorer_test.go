package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/catalog"
)

func uniformVector(value float64) UserVector {
	v := UserVector{}
	for _, a := range catalog.Attributes {
		v[a] = value
	}
	return v
}

func uniformProfile(name string, value float64, envs ...catalog.Environment) catalog.ProfileEntry {
	p := catalog.ProfileEntry{Name: name, Ideals: map[catalog.Attribute]float64{}, Environments: envs}
	for _, a := range catalog.Attributes {
		p.Ideals[a] = value
	}
	return p
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 1e-9)

	w := Weights{Physical: 2, Skill: 2}.Normalized()
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	assert.InDelta(t, 0.5, w.Physical, 1e-9)

	assert.Equal(t, DefaultWeights(), Weights{}.Normalized())
}

func TestRank_PerfectMatchScoresHundred(t *testing.T) {
	v := uniformVector(0.3)
	v[catalog.AttrStrength] = 1.0

	p := uniformProfile("Powerlifting", 0.3, catalog.EnvWater)
	p.Ideals[catalog.AttrStrength] = 1.0
	c := catalog.MustNew(p)

	stats := assessment.DefaultPhysicalStats()
	stats.LocationType = assessment.LocationCoastal

	results := NewScorer(DefaultConfig()).Rank(v, stats, c)
	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, "Matches your high strength profile.", results[0].MatchReason)
	assert.Empty(t, results[0].ImprovementAreas)
}

func TestRank_AllZeroVectorStillRanks(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	results := scorer.Rank(uniformVector(0), assessment.DefaultPhysicalStats(), catalog.Sports())

	require.Len(t, results, 10)
	for i, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
		assert.LessOrEqual(t, len(r.ImprovementAreas), 3)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	stats := assessment.DefaultPhysicalStats()
	scores := assessment.RawScoreMap{assessment.Strength: 20, assessment.Reflex: 30, assessment.Team: 10}
	v := BuildUserVector(stats, scores, 30)
	scorer := NewScorer(DefaultConfig())

	first := scorer.Rank(v, stats, catalog.Sports())
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, scorer.Rank(v, stats, catalog.Sports()))
	}
}

func TestRank_TiesKeepDeclarationOrder(t *testing.T) {
	c := catalog.MustNew(
		uniformProfile("Zeta", 0.5, catalog.EnvIndoor),
		uniformProfile("Alpha", 0.5, catalog.EnvIndoor),
		uniformProfile("Mu", 0.5, catalog.EnvIndoor),
	)

	results := NewScorer(DefaultConfig()).Rank(uniformVector(0.5), assessment.DefaultPhysicalStats(), c)
	require.Len(t, results, 3)
	assert.Equal(t, "Zeta", results[0].Profile)
	assert.Equal(t, "Alpha", results[1].Profile)
	assert.Equal(t, "Mu", results[2].Profile)
}

func TestRank_RespectsCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = 4
	results := NewScorer(cfg).Rank(uniformVector(0.5), assessment.DefaultPhysicalStats(), catalog.Sports())
	assert.Len(t, results, 4)
}

func TestBuildUserVector(t *testing.T) {
	stats := assessment.PhysicalStats{Gender: assessment.GenderFemale, HeightCm: 165, WeightKg: 55}
	scores := assessment.RawScoreMap{
		assessment.Strength:  30,
		assessment.Speed:     15,
		assessment.Endurance: 90,
		assessment.Team:      10,
	}

	v := BuildUserVector(stats, scores, 30)
	assert.InDelta(t, 0.5, v[catalog.AttrHeight], 1e-9)
	assert.InDelta(t, 0.26, v[catalog.AttrBMI], 1e-9)
	assert.Equal(t, 1.0, v[catalog.AttrStrength])
	assert.Equal(t, 0.5, v[catalog.AttrSpeed])
	assert.Equal(t, 1.0, v[catalog.AttrEndurance])
	assert.Equal(t, 0.0, v[catalog.AttrReflex])
	assert.Equal(t, 1.0, v[catalog.AttrTeam])

	scores[assessment.Team] = 5
	assert.Equal(t, 0.0, BuildUserVector(stats, scores, 30)[catalog.AttrTeam])

	for _, value := range BuildUserVector(assessment.PhysicalStats{HeightCm: -10, WeightKg: 1e6}, assessment.RawScoreMap{assessment.Speed: -40}, 0) {
		assert.False(t, math.IsNaN(value))
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 1.0)
	}
}

func TestEnvironmentFit(t *testing.T) {
	sports := catalog.Sports()
	find := func(name string) catalog.ProfileEntry {
		p, ok := sports.Find(name)
		require.True(t, ok, name)
		return p
	}
	trail := catalog.ProfileEntry{Name: "Trail Running", Environments: []catalog.Environment{catalog.EnvOutdoor}}
	beach := catalog.ProfileEntry{Name: "Beach Swim", Environments: []catalog.Environment{catalog.EnvOutdoor, catalog.EnvWater}}

	tests := []struct {
		name       string
		location   assessment.LocationType
		playground bool
		profile    catalog.ProfileEntry
		expected   float64
	}{
		{"coastal water", assessment.LocationCoastal, false, find("Swimming"), 1.0},
		{"coastal water beats playground outdoor", assessment.LocationCoastal, true, beach, 1.0},
		{"mountain running", assessment.LocationMountain, false, trail, 1.0},
		{"urban indoor", assessment.LocationUrban, false, find("Badminton"), 0.8},
		{"urban indoor wins over outdoor", assessment.LocationUrban, true, find("Basketball"), 0.8},
		{"playground outdoor", assessment.LocationRural, true, find("Football (Soccer)"), 0.9},
		{"no playground outdoor", assessment.LocationRural, false, find("Football (Soccer)"), 0.2},
		{"neutral", assessment.LocationRural, true, find("Chess"), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := assessment.PhysicalStats{LocationType: tt.location, HasPlayground: tt.playground}
			assert.Equal(t, tt.expected, EnvironmentFit(stats, tt.profile))
		})
	}
}

func TestMatchReason(t *testing.T) {
	sports := catalog.Sports()
	find := func(name string) catalog.ProfileEntry {
		p, _ := sports.Find(name)
		return p
	}

	strong := uniformVector(0)
	strong[catalog.AttrStrength] = 0.8
	assert.Equal(t, "Matches your high strength profile.", MatchReason(strong, find("Weightlifting")))

	quick := uniformVector(0)
	quick[catalog.AttrReflex] = 0.8
	assert.Equal(t, "Leverages your quick reflexes.", MatchReason(quick, find("Badminton")))

	social := uniformVector(0)
	social[catalog.AttrTeam] = 1
	assert.Equal(t, "Aligned with your team spirit.", MatchReason(social, find("Basketball")))
	partial := catalog.ProfileEntry{Name: "Doubles", Ideals: map[catalog.Attribute]float64{catalog.AttrTeam: 0.9}}
	assert.Equal(t, DefaultReason, MatchReason(social, partial))

	tall := uniformVector(0)
	tall[catalog.AttrHeight] = 0.9
	assert.Equal(t, "Your height is a significant advantage.", MatchReason(tall, find("Basketball")))

	assert.Equal(t, DefaultReason, MatchReason(uniformVector(0), find("Chess")))
}
