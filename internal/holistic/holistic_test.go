package holistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/store"
)

func TestBuild_NoEvidenceReturnsNil(t *testing.T) {
	a := New(DefaultConfig())
	assert.Nil(t, a.Build(Inputs{}))
	assert.Nil(t, a.Build(Inputs{
		Skills:      assessment.RawScoreMap{},
		Personality: assessment.RawScoreMap{},
		Sports:      assessment.RawScoreMap{},
		Creative:    assessment.RawScoreMap{},
	}))
}

func TestBuild_SingleMapIsEnough(t *testing.T) {
	p := New(DefaultConfig()).Build(Inputs{Creative: assessment.RawScoreMap{assessment.Music: 20}})
	require.NotNil(t, p)

	assert.Equal(t, 0, p.Indices.Cognitive)
	assert.Equal(t, "Analyst", p.Indices.PersonalityType)
	assert.Equal(t, 13, p.Indices.CreativeIndex)

	require.Len(t, p.Creative, 3)
	assert.Equal(t, "Music & Sound", p.Creative[0].Name)
	assert.Equal(t, 100.0, p.Creative[0].Score)

	assert.Len(t, p.Academic, 5)
	assert.Len(t, p.Careers, 5)
}

func TestBuild_ListCaps(t *testing.T) {
	in := Inputs{
		Sports: assessment.RawScoreMap{
			assessment.Tactical:  10,
			assessment.Strength:  40,
			assessment.Reflex:    20,
			assessment.Endurance: 5,
		},
		Creative: assessment.RawScoreMap{
			assessment.Music:          1,
			assessment.VisualArts:     2,
			assessment.PerformingArts: 3,
			assessment.Creative:       4,
		},
	}

	p := New(DefaultConfig()).Build(in)
	require.NotNil(t, p)

	require.Len(t, p.Sports, 3)
	assert.Equal(t, "Power (Wrestling/Throws)", p.Sports[0].Name)
	assert.Equal(t, 100.0, p.Sports[0].Score)
	assert.Equal(t, "Reflex (Badminton/TT)", p.Sports[1].Name)
	assert.Equal(t, "Strategic (Chess/Cricket Capt)", p.Sports[2].Name)
	assert.Equal(t, 38, p.Indices.SportsAptitude)

	require.Len(t, p.Creative, 3)
	assert.Equal(t, "Creative Business", p.Creative[0].Name)
	assert.Equal(t, 32.0, p.Creative[0].Score)
}

func TestBuild_Streams(t *testing.T) {
	tests := []struct {
		name     string
		skills   assessment.RawScoreMap
		expected string
		score    float64
	}{
		{
			name: "engineering",
			skills: assessment.RawScoreMap{
				assessment.Numerical: 30,
				assessment.Logical:   30,
				assessment.Spatial:   30,
			},
			expected: "PCM (Engineering / Phy-Math)",
			score:    100,
		},
		{
			name:     "biology signal",
			skills:   assessment.RawScoreMap{assessment.Biology: 1},
			expected: "PCB (Medical / Bio)",
			score:    40,
		},
		{
			name:     "practical falls back to technical",
			skills:   assessment.RawScoreMap{assessment.Technical: 30},
			expected: "Vocational / Technical",
			score:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(DefaultConfig()).Build(Inputs{Skills: tt.skills})
			require.NotNil(t, p)
			assert.Equal(t, tt.expected, p.Academic[0].Stream)
			assert.InDelta(t, tt.score, p.Academic[0].Score, 1e-9)
		})
	}
}

func TestBuild_AbsentCategoriesPenalizeButKeepEntries(t *testing.T) {
	p := New(DefaultConfig()).Build(Inputs{Sports: assessment.RawScoreMap{assessment.Strength: 1}})
	require.NotNil(t, p)

	require.Len(t, p.Academic, 5)
	// Without a biology signal PCB still carries its baseline
	assert.Equal(t, "PCB (Medical / Bio)", p.Academic[0].Stream)
	assert.InDelta(t, 20, p.Academic[0].Score, 1e-9)
	for _, s := range p.Academic[1:] {
		assert.Equal(t, 0.0, s.Score)
	}
}

func TestBuild_CreativeBonusLiftsDesign(t *testing.T) {
	p := New(DefaultConfig()).Build(Inputs{
		Creative: assessment.RawScoreMap{assessment.Music: 30, assessment.Dance: 30},
	})
	require.NotNil(t, p)
	assert.Equal(t, "Design & Architecture", p.Careers[0].Domain)
	assert.InDelta(t, 20, p.Careers[0].Score, 1e-9)
	assert.Equal(t, []string{"Sketch Daily", "Learn CAD", "Study Design History"}, p.Careers[0].Steps)

	p = New(DefaultConfig()).Build(Inputs{
		Creative: assessment.RawScoreMap{assessment.Music: 25, assessment.Dance: 25},
	})
	require.NotNil(t, p)
	for _, c := range p.Careers {
		assert.Equal(t, 0.0, c.Score, c.Domain)
	}
	assert.Equal(t, "AI, Tech & Data Science", p.Careers[0].Domain, "ties keep declaration order")
}

func TestPersonalityType(t *testing.T) {
	tests := []struct {
		name     string
		psych    assessment.RawScoreMap
		expected string
	}{
		{"leadership", assessment.RawScoreMap{assessment.Extraversion: 20}, "Commander"},
		{"empathy", assessment.RawScoreMap{assessment.Agreeableness: 8, assessment.Empathy: 8}, "Empath"},
		{"openness", assessment.RawScoreMap{assessment.Openness: 15}, "Innovator"},
		{"at threshold", assessment.RawScoreMap{assessment.Openness: 14}, "Analyst"},
		{"tie at top", assessment.RawScoreMap{
			assessment.Extraversion:  20,
			assessment.Agreeableness: 10,
			assessment.Empathy:       10,
		}, "Analyst"},
		{"unrelated traits", assessment.RawScoreMap{assessment.RiskTaking: 20}, "Analyst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(DefaultConfig()).Build(Inputs{Personality: tt.psych})
			require.NotNil(t, p)
			assert.Equal(t, tt.expected, p.Indices.PersonalityType)
		})
	}
}

func TestBuild_IndicesClamp(t *testing.T) {
	p := New(DefaultConfig()).Build(Inputs{
		Skills:   assessment.RawScoreMap{assessment.Logical: 300, assessment.Verbal: -50},
		Sports:   assessment.RawScoreMap{assessment.Strength: 1000},
		Creative: assessment.RawScoreMap{assessment.Music: -90},
	})
	require.NotNil(t, p)
	assert.Equal(t, 25, p.Indices.Cognitive)
	assert.Equal(t, 100, p.Indices.SportsAptitude)
	assert.Equal(t, 0, p.Indices.CreativeIndex)
	for _, r := range append(p.Sports, p.Creative...) {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	a := New(Config{})
	assert.Equal(t, DefaultConfig(), a.config)
}

func TestFromStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	a := New(DefaultConfig())

	p, err := a.FromStore(ctx, s)
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, s.Put(ctx, assessment.KindSkills.StoreKey(), assessment.RawScoreMap{assessment.Numerical: 30}))
	p, err = a.FromStore(ctx, s)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 25, p.Indices.Cognitive)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (assessment.RawScoreMap, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Put(context.Context, string, assessment.RawScoreMap) error {
	return errors.New("disk on fire")
}

func TestFromStore_PropagatesStoreErrors(t *testing.T) {
	_, err := New(DefaultConfig()).FromStore(context.Background(), failingStore{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
