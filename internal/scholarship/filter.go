package scholarship

import (
	"fmt"
	"slices"
	"strings"
)

// IncomeBracket is the family income range a user reports
type IncomeBracket string

const (
	IncomeAll  IncomeBracket = "all"
	IncomeLow  IncomeBracket = "low"  // up to 2.5 lakhs
	IncomeMid  IncomeBracket = "mid"  // up to 8 lakhs
	IncomeHigh IncomeBracket = "high" // above 8 lakhs
)

// ParseIncomeBracket parses a bracket name; empty means all
func ParseIncomeBracket(s string) (IncomeBracket, error) {
	switch b := IncomeBracket(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return IncomeAll, nil
	case IncomeAll, IncomeLow, IncomeMid, IncomeHigh:
		return b, nil
	default:
		return "", fmt.Errorf("unknown income bracket %q (all, low, mid, high)", s)
	}
}

// ceiling returns the bracket's income ceiling in lakhs
func (b IncomeBracket) ceiling() float64 {
	switch b {
	case IncomeLow:
		return 2.5
	case IncomeMid:
		return 8
	default:
		return 100
	}
}

// Criteria narrow a scholarship list. Empty fields do not filter.
type Criteria struct {
	Query         string        `json:"query,omitempty"`
	SocialGroups  []string      `json:"social_groups,omitempty"`
	CareerGoals   []string      `json:"career_goals,omitempty"`
	Levels        []string      `json:"levels,omitempty"`
	ProviderTypes []string      `json:"provider_types,omitempty"`
	ArtFields     []string      `json:"art_fields,omitempty"`
	Income        IncomeBracket `json:"income,omitempty"`
}

// Matches reports whether r satisfies every criterion
func (c Criteria) Matches(r Record) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		if !strings.Contains(strings.ToLower(r.Name), q) && !strings.Contains(strings.ToLower(r.Provider), q) {
			return false
		}
	}

	if len(c.SocialGroups) > 0 && !slices.Contains(r.SocialGroups, GroupAll) && !anyIn(r.SocialGroups, c.SocialGroups) {
		return false
	}

	if len(c.CareerGoals) > 0 && !anyIn(r.CareerGoals, c.CareerGoals) {
		return false
	}

	// Records that do not state a level or provider type are kept
	if len(c.Levels) > 0 && r.Level != "" && !containsFold(c.Levels, r.Level) {
		return false
	}
	if len(c.ProviderTypes) > 0 && r.ProviderType != "" && !containsFold(c.ProviderTypes, r.ProviderType) {
		return false
	}

	// An art filter hides every non-arts record
	if len(c.ArtFields) > 0 {
		if r.Category != CategoryArts || r.ArtField == "" || !containsFold(c.ArtFields, r.ArtField) {
			return false
		}
	}

	if c.Income != "" && c.Income != IncomeAll && r.IncomeLimit > 0 {
		if c.Income == IncomeLow && r.IncomeLimit > IncomeLow.ceiling() {
			return false
		}
		if c.Income.ceiling() > r.IncomeLimit {
			return false
		}
	}

	return true
}

// Filter returns the records matching c, keeping input order
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func anyIn(have, want []string) bool {
	for _, h := range have {
		if containsFold(want, h) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
