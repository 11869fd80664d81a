package holistic

import "sort"

// Bonuses applied on top of the linear formulas
const (
	biologyBonus      = 40.0 // PCB when a biology signal exists
	biologyBaseline   = 20.0 // PCB otherwise
	creativeThreshold = 50   // creative total above which design gets a bonus
	creativeBonus     = 20.0
)

type streamFormula struct {
	name   string
	reason string
	score  func(f factors) float64
}

var streamFormulas = []streamFormula{
	{
		name:   "PCM (Engineering / Phy-Math)",
		reason: "High affinity for logic, numbers, and spatial reasoning.",
		score: func(f factors) float64 {
			return f.numerical*0.4 + f.logical*0.3 + f.spatial*0.3
		},
	},
	{
		name:   "PCB (Medical / Bio)",
		reason: "Balanced analytical skills with potential interest in life sciences.",
		score: func(f factors) float64 {
			bonus := biologyBaseline
			if f.hasBiology {
				bonus = biologyBonus
			}
			return f.verbal*0.3 + f.logical*0.3 + bonus
		},
	},
	{
		name:   "Commerce & Finance",
		reason: "Strong numerical ability combined with a structured mindset.",
		score: func(f factors) float64 {
			return f.numerical*0.5 + f.verbal*0.2 + f.stability*0.3
		},
	},
	{
		name:   "Arts & Humanities",
		reason: "Excellent verbal skills and high emotional intelligence.",
		score: func(f factors) float64 {
			return f.verbal*0.5 + f.eq*0.3 + f.innovation*0.2
		},
	},
	{
		name:   "Vocational / Technical",
		reason: "Preference for hands-on, practical application of skills.",
		score: func(f factors) float64 {
			return f.practical*0.5 + f.spatial*0.3 + f.stability*0.2
		},
	},
}

type careerFormula struct {
	name   string
	reason string
	steps  []string
	score  func(f factors) float64
}

var careerFormulas = []careerFormula{
	{
		name:   "AI, Tech & Data Science",
		reason: "Requires abstract logic and ability to innovate.",
		steps:  []string{"Learn Python", "Master Statistics", "Build ML Projects"},
		score: func(f factors) float64 {
			return f.logical*0.4 + f.numerical*0.3 + f.innovation*0.3
		},
	},
	{
		name:   "Entrepreneurship & Business",
		reason: "Matches high leadership drive and risk appetite.",
		steps:  []string{"Start a small project", "Learn Sales", "Network"},
		score: func(f factors) float64 {
			return f.leadership*0.4 + f.risk*0.4 + f.logical*0.2
		},
	},
	{
		name:   "Civil Services & Governance",
		reason: "Ideal for those valuing stability, structure, and verbal command.",
		steps:  []string{"Read Newspapers Daily", "Understand Constitution", "Mock Debates"},
		score: func(f factors) float64 {
			return f.verbal*0.3 + f.stability*0.4 + f.logical*0.3
		},
	},
	{
		name:   "Healthcare & Social Impact",
		reason: "Driven by empathy and ability to understand others.",
		steps:  []string{"Volunteer", "Study Biology/Psychology", "Soft Skills Training"},
		score: func(f factors) float64 {
			return f.eq*0.5 + f.verbal*0.3 + f.logical*0.2
		},
	},
	{
		name:   "Design & Architecture",
		reason: "Strong spatial visualization mixed with creativity.",
		steps:  []string{"Sketch Daily", "Learn CAD", "Study Design History"},
		score: func(f factors) float64 {
			bonus := 0.0
			if f.creativeTotal > creativeThreshold {
				bonus = creativeBonus
			}
			return f.spatial*0.5 + f.innovation*0.3 + bonus
		},
	},
}

func rankStreams(f factors) []Stream {
	out := make([]Stream, 0, len(streamFormulas))
	for _, s := range streamFormulas {
		out = append(out, Stream{Stream: s.name, Score: s.score(f), Reason: s.reason})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func rankCareers(f factors) []Career {
	out := make([]Career, 0, len(careerFormulas))
	for _, c := range careerFormulas {
		steps := make([]string, len(c.steps))
		copy(steps, c.steps)
		out = append(out, Career{Domain: c.name, Score: c.score(f), Reason: c.reason, Steps: steps})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
