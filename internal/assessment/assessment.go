// Package assessment defines the raw inputs the engine consumes: per-session
// category score maps and self-reported physical attributes.
package assessment

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the independent assessment sessions
type Kind string

const (
	KindSkills      Kind = "skills"
	KindPersonality Kind = "personality"
	KindSports      Kind = "sports"
	KindCreative    Kind = "creative"
)

// Kinds lists every assessment kind in aggregation order
var Kinds = []Kind{KindSkills, KindPersonality, KindSports, KindCreative}

// StoreKey returns the key the kind's score map is persisted under
func (k Kind) StoreKey() string {
	switch k {
	case KindSkills:
		return "skill_scores"
	case KindPersonality:
		return "psych_scores"
	case KindSports:
		return "sports_scores"
	case KindCreative:
		return "creative_scores"
	default:
		return string(k) + "_scores"
	}
}

// ParseKind parses a kind name, accepting a few common aliases
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skills", "skill", "cognitive":
		return KindSkills, nil
	case "personality", "psych", "psychometric":
		return KindPersonality, nil
	case "sports", "sport", "physical":
		return KindSports, nil
	case "creative", "arts":
		return KindCreative, nil
	default:
		return "", fmt.Errorf("unknown assessment kind %q (skills, personality, sports, creative)", s)
	}
}

// RawScoreMap accumulates points per category label.
// Categories never touched are absent and read as 0.
type RawScoreMap map[string]int

// Get returns the score for a category, 0 when absent
func (m RawScoreMap) Get(category string) int {
	if m == nil {
		return 0
	}
	return m[category]
}

// Has reports whether the category was recorded at all
func (m RawScoreMap) Has(category string) bool {
	if m == nil {
		return false
	}
	_, ok := m[category]
	return ok
}

// Add accumulates value into category
func (m RawScoreMap) Add(category string, value int) {
	m[category] += value
}

// Total returns the sum of every category
func (m RawScoreMap) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// Empty reports whether the map holds no categories
func (m RawScoreMap) Empty() bool {
	return len(m) == 0
}

// Clone returns an independent copy; a nil map clones to an empty map
func (m RawScoreMap) Clone() RawScoreMap {
	out := make(RawScoreMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Categories returns the recorded category labels in sorted order
func (m RawScoreMap) Categories() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
