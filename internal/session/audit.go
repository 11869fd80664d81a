package session

import (
	"strings"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/normalize"
)

// AuditResult reports whether recommendations look biased
type AuditResult struct {
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason,omitempty"`
}

// AuditRecommendations flags under-matching: technical strengths paired
// with a summary that never mentions technical options.
func AuditRecommendations(summary string, strengths []string) AuditResult {
	hasTech := false
	for _, s := range strengths {
		if strings.Contains(s, "Logic") || strings.Contains(s, "Math") || strings.Contains(s, "Tech") {
			hasTech = true
			break
		}
	}

	lower := strings.ToLower(summary)
	if hasTech && !strings.Contains(lower, "tech") && !strings.Contains(lower, "engineer") {
		return AuditResult{
			Flagged: true,
			Reason:  "Potential under-matching: technical strengths but recommendations lack technical options.",
		}
	}
	return AuditResult{}
}

const strengthPercent = 70.0

var strengthLabels = []struct {
	category string
	label    string
}{
	{assessment.Logical, "Logic"},
	{assessment.Numerical, "Math"},
	{assessment.Technical, "Tech"},
	{assessment.Verbal, "Verbal"},
	{assessment.Spatial, "Spatial"},
}

// Strengths names the skill categories at or above 70% of skillMax
func Strengths(skills assessment.RawScoreMap, skillMax float64) []string {
	var out []string
	for _, s := range strengthLabels {
		if normalize.Percent(float64(skills.Get(s.category)), skillMax) >= strengthPercent {
			out = append(out, s.label)
		}
	}
	return out
}

// AuditProfile audits the top three streams and careers of a profile
// against the user's skill strengths. A nil profile is never flagged.
func AuditProfile(p *holistic.Profile, skills assessment.RawScoreMap, skillMax float64) AuditResult {
	if p == nil {
		return AuditResult{}
	}
	var names []string
	for i, s := range p.Academic {
		if i == 3 {
			break
		}
		names = append(names, s.Stream)
	}
	for i, c := range p.Careers {
		if i == 3 {
			break
		}
		names = append(names, c.Domain)
	}
	return AuditRecommendations(strings.Join(names, "; "), Strengths(skills, skillMax))
}
