package scoring

import "github.com/vijay-prabhu/disha/internal/catalog"

// DefaultReason is used when no rule matches
const DefaultReason = "Balanced fit for your physical profile."

type reasonRule struct {
	attr      catalog.Attribute
	idealOver float64
	userOver  float64
	team      bool // team profile and a user who prefers team play
	message   string
}

// reasonRules are checked in order; the first match wins
var reasonRules = []reasonRule{
	{attr: catalog.AttrStrength, idealOver: 0.8, userOver: 0.7, message: "Matches your high strength profile."},
	{attr: catalog.AttrReflex, idealOver: 0.8, userOver: 0.7, message: "Leverages your quick reflexes."},
	{attr: catalog.AttrEndurance, idealOver: 0.8, userOver: 0.7, message: "Good fit for your stamina."},
	{attr: catalog.AttrTactical, idealOver: 0.8, userOver: 0.7, message: "Suits your strategic thinking."},
	{attr: catalog.AttrTeam, team: true, message: "Aligned with your team spirit."},
	{attr: catalog.AttrHeight, idealOver: 0.8, userOver: 0.7, message: "Your height is a significant advantage."},
}

// MatchReason selects the explanation for a match
func MatchReason(v UserVector, p catalog.ProfileEntry) string {
	for _, r := range reasonRules {
		user := v.Get(r.attr)
		if r.team {
			if p.IsTeam() && user == 1 {
				return r.message
			}
			continue
		}
		if ideal := p.Ideal(r.attr); ideal > r.idealOver && user > r.userOver {
			return r.message
		}
	}
	return DefaultReason
}
