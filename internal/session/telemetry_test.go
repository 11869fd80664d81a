package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/holistic"
)

func TestTelemetry_RequiresConsent(t *testing.T) {
	sink := &MemorySink{}
	tel := NewTelemetry(sink, TelemetryOptions{Consent: false})

	ok, err := tel.Log(context.Background(), ActionViewResults, "", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, sink.Interactions())
}

func TestTelemetry_TrimsToMax(t *testing.T) {
	sink := &MemorySink{}
	s := New(assessment.KindSkills, Options{ID: "abc", Consent: true})
	tel := s.Telemetry(sink, 5)

	for i := 0; i < 8; i++ {
		ok, err := tel.Log(context.Background(), ActionClickCareer, fmt.Sprintf("career-%d", i), nil)
		require.NoError(t, err)
		require.True(t, ok)
	}

	logs := sink.Interactions()
	require.Len(t, logs, 5)
	assert.Equal(t, "career-3", logs[0].TargetID)
	assert.Equal(t, "career-7", logs[4].TargetID)
	assert.Equal(t, "abc", logs[0].SessionID)
}

func TestNewTelemetry_Defaults(t *testing.T) {
	tel := NewTelemetry(&MemorySink{}, TelemetryOptions{})
	assert.Equal(t, DefaultMaxLogs, tel.maxLogs)
	assert.NotEmpty(t, tel.sessionID)
	assert.False(t, tel.Enabled())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("click_career")
	require.NoError(t, err)
	assert.Equal(t, ActionClickCareer, a)

	_, err = ParseAction("SCROLL")
	assert.Error(t, err)
}

func TestIngestProfessional(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sink := &MemorySink{}
	tel := NewTelemetry(sink, TelemetryOptions{Consent: true, Now: func() time.Time { return now }})

	insight := ProfessionalInsight{
		ID:            "p1",
		CurrentJob:    "Backend Engineer",
		Sector:        "Tech",
		SocioEconomic: "Low",
		Skills:        SelfRatings{Logical: 5, Communication: 3, Numerical: 1, Creative: 2, Physical: 9},
		Satisfaction:  4,
		Consent:       true,
	}

	v, err := tel.IngestProfessional(context.Background(), insight)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "prof_p1", v.ID)
	assert.Equal(t, []float64{1, 0.5, 0, 0.9, 0.25, 1}, v.Raw)
	assert.Equal(t, 0.2, v.Dimensions.EconomicScore)

	logs := sink.Interactions()
	require.Len(t, logs, 1)
	assert.Equal(t, ActionSubmitProfession, logs[0].Action)
	assert.Equal(t, "Backend Engineer", logs[0].Metadata["job"])

	insight.Consent = false
	v, err = tel.IngestProfessional(context.Background(), insight)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Len(t, sink.Interactions(), 1)
}

func TestBuildFeatureVector(t *testing.T) {
	now := time.Now()
	v := BuildFeatureVector(holistic.Inputs{
		Skills: assessment.RawScoreMap{assessment.Logical: 15, assessment.Practical: 30},
		Sports: assessment.RawScoreMap{assessment.Speed: 1},
	}, 30, now)

	assert.Equal(t, []float64{0.5, 0, 0, 1, 0.2, 0.9}, v.Raw)
	assert.Equal(t, 0.5, v.Dimensions.EconomicScore)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, now, v.Timestamp)
}

func TestAuditRecommendations(t *testing.T) {
	flagged := AuditRecommendations("A career in the performing arts suits you.", []string{"Logical reasoning"})
	assert.True(t, flagged.Flagged)
	assert.NotEmpty(t, flagged.Reason)

	assert.False(t, AuditRecommendations("Consider engineering or design.", []string{"Math"}).Flagged)
	assert.False(t, AuditRecommendations("Arts and humanities.", []string{"Empathy"}).Flagged)
}

func TestStrengths(t *testing.T) {
	skills := assessment.RawScoreMap{
		assessment.Logical:   24,
		assessment.Numerical: 18,
		assessment.Technical: 30,
	}
	assert.Equal(t, []string{"Logic", "Tech"}, Strengths(skills, 30))
	assert.Empty(t, Strengths(nil, 30))
}

func TestAuditProfile(t *testing.T) {
	skills := assessment.RawScoreMap{assessment.Logical: 30}

	arts := &holistic.Profile{
		Academic: []holistic.Stream{{Stream: "Arts & Humanities"}},
		Careers:  []holistic.Career{{Domain: "Healthcare & Social Impact"}},
	}
	assert.True(t, AuditProfile(arts, skills, 30).Flagged)

	tech := &holistic.Profile{
		Academic: []holistic.Stream{{Stream: "Arts & Humanities"}},
		Careers:  []holistic.Career{{Domain: "AI, Tech & Data Science"}},
	}
	assert.False(t, AuditProfile(tech, skills, 30).Flagged)

	assert.False(t, AuditProfile(nil, skills, 30).Flagged)
}
