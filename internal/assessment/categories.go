package assessment

// Sports categories
const (
	Strength     = "Strength"
	Speed        = "Speed"
	Endurance    = "Endurance"
	Reflex       = "Reflex"
	Coordination = "Coordination"
	Tactical     = "Tactical"
	Flexibility  = "Flexibility"
	Team         = "Team"
)

// Skill categories
const (
	Logical   = "Logical"
	Numerical = "Numerical"
	Verbal    = "Verbal"
	Spatial   = "Spatial"
	Practical = "Practical"
	Technical = "Technical"
	Biology   = "Biology"
)

// Personality categories
const (
	Extraversion       = "Extraversion"
	RiskTaking         = "RiskTaking"
	Conscientiousness  = "Conscientiousness"
	Stability          = "Stability"
	EmotionalStability = "EmotionalStability"
	Agreeableness      = "Agreeableness"
	Empathy            = "Empathy"
	Openness           = "Openness"
)

// Creative fields
const (
	Music          = "Music"
	Dance          = "Dance"
	VisualArts     = "Visual Arts"
	PerformingArts = "Performing Arts"
	Creative       = "Creative"
)

// validCategories is the closed set of categories each kind accepts.
// Scorers only read a subset; the rest are kept for downstream consumers.
var validCategories = map[Kind][]string{
	KindSports: {
		Strength, Speed, Endurance, Reflex, Coordination, Tactical, Flexibility, Team,
		"Agility", "Stamina",
	},
	KindSkills: {
		Logical, Numerical, Verbal, Spatial, Practical, Technical, Biology,
		"Math", "Science", "Arts", "Commerce", "Business", "Law", "Linguistics",
		"Psychology", "PolSci", "Education", "Environment", "Ethics", "Architecture",
		"Field", "Theory", "Social", "Grit", "Leadership",
		Strength, Reflex, Coordination, Tactical, "Agility", "Stamina",
	},
	KindPersonality: {
		Extraversion, RiskTaking, Conscientiousness, Stability, EmotionalStability,
		Agreeableness, Empathy, Openness,
		"Analytical", "ConflictRes", "Consensus", "Creativity", "DataDriven",
		"Entrepreneurship", "Fame", "HandsOn", "Independent", "Intuitive", "Money",
		"SelfControl", "SocialImpact", "Solo", "Structure", Team,
	},
	KindCreative: {
		Music, Dance, VisualArts, PerformingArts, Creative,
	},
}

// Categories returns the documented categories for a kind
func Categories(k Kind) []string {
	out := make([]string, len(validCategories[k]))
	copy(out, validCategories[k])
	return out
}

// ValidCategory reports whether category belongs to the kind's closed set
func ValidCategory(k Kind, category string) bool {
	for _, c := range validCategories[k] {
		if c == category {
			return true
		}
	}
	return false
}
