package session

import (
	"context"
	"strings"

	"github.com/vijay-prabhu/disha/internal/normalize"
)

// SelfRatings are 1-5 self-assessments by a working professional
type SelfRatings struct {
	Logical       int `json:"logical"`
	Communication int `json:"communication"`
	Numerical     int `json:"numerical"`
	Creative      int `json:"creative"`
	Physical      int `json:"physical"`
}

// ProfessionalInsight is a working professional's self-report
type ProfessionalInsight struct {
	ID            string      `json:"id"`
	CurrentJob    string      `json:"current_job"`
	Sector        string      `json:"sector"`
	SocioEconomic string      `json:"socio_economic,omitempty"` // low, mid, high
	Skills        SelfRatings `json:"skills"`
	Satisfaction  int         `json:"satisfaction"` // 1-5
	Consent       bool        `json:"consent"`
}

// IngestProfessional turns an insight into a feature vector and logs a
// SUBMIT_PROFESSIONAL_DATA event. Without the professional's consent it
// returns nil and records nothing.
func (t *Telemetry) IngestProfessional(ctx context.Context, in ProfessionalInsight) (*FeatureVector, error) {
	if !in.Consent {
		return nil, nil
	}

	technical := 0.5
	if strings.Contains(in.Sector, "Tech") || strings.Contains(in.Sector, "Engineer") {
		technical = 0.9
	}

	d := Dimensions{
		Logical:       normalize.Likert(float64(in.Skills.Logical)),
		Verbal:        normalize.Likert(float64(in.Skills.Communication)),
		Numerical:     normalize.Likert(float64(in.Skills.Numerical)),
		Technical:     technical,
		Creative:      normalize.Likert(float64(in.Skills.Creative)),
		Sports:        normalize.Likert(float64(in.Skills.Physical)),
		EconomicScore: economicScore(in.SocioEconomic),
	}
	v := &FeatureVector{ID: "prof_" + in.ID, Timestamp: t.now(), Dimensions: d, Raw: d.Raw()}

	outcome := "churning"
	if in.Satisfaction > 3 {
		outcome = "successful"
	}
	if _, err := t.Log(ctx, ActionSubmitProfession, in.ID, map[string]any{
		"job":          in.CurrentJob,
		"satisfaction": in.Satisfaction,
	}); err != nil {
		return v, err
	}

	t.logger.FromContext(ctx).Debug("professional vector ingested", "job", in.CurrentJob, "raw", v.Raw, "outcome", outcome)
	return v, nil
}
