// Package scholarship tracks scholarship records, projects recurring
// deadlines into the current cycle and filters records by eligibility.
package scholarship

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category of a scholarship
type Category string

const (
	CategoryMerit      Category = "Merit"
	CategoryMeans      Category = "Means"
	CategorySports     Category = "Sports"
	CategoryResearch   Category = "Research"
	CategoryMinority   Category = "Minority"
	CategoryVocational Category = "Vocational"
	CategoryArts       Category = "Arts"
)

// Categories lists every valid category
var Categories = []Category{
	CategoryMerit, CategoryMeans, CategorySports, CategoryResearch,
	CategoryMinority, CategoryVocational, CategoryArts,
}

// ParseCategory parses a category case-insensitively
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// GroupAll in SocialGroups makes a record open to every group
const GroupAll = "All"

// Record is a scholarship as stored. Dates are YYYY-MM-DD strings so
// malformed input survives storage and degrades at analysis time.
type Record struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	Category     Category `json:"category"`
	ProviderType string   `json:"provider_type,omitempty"`
	Level        string   `json:"level,omitempty"`
	ArtField     string   `json:"art_field,omitempty"`
	IncomeLimit  float64  `json:"income_limit,omitempty"` // lakhs per annum, 0 means no limit
	SocialGroups []string `json:"social_groups"`
	CareerGoals  []string `json:"career_goals"`
	Benefits     string   `json:"benefits,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	Deadline     string   `json:"deadline"`
	IsRecurring  bool     `json:"is_recurring"`
	LastVerified string   `json:"last_verified,omitempty"`
	ApplyLink    string   `json:"apply_link,omitempty"`
}

// Validate checks the fields a user must supply when adding a record.
// Deadlines are optional; an absent deadline means "to be announced".
func (r Record) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if strings.TrimSpace(r.Provider) == "" {
		errs = append(errs, errors.New("provider is required"))
	}
	if _, err := ParseCategory(string(r.Category)); err != nil {
		errs = append(errs, err)
	}
	if r.IncomeLimit < 0 {
		errs = append(errs, fmt.Errorf("income limit must be non-negative, got %v", r.IncomeLimit))
	}
	for _, d := range []struct{ field, value string }{
		{"deadline", r.Deadline},
		{"start date", r.StartDate},
	} {
		if d.value == "" {
			continue
		}
		if _, ok := ParseDate(d.value, time.UTC); !ok {
			errs = append(errs, fmt.Errorf("%s %q is not YYYY-MM-DD or RFC 3339", d.field, d.value))
		}
	}
	return errors.Join(errs...)
}

// Verify returns a copy of r stamped as checked at now
func Verify(r Record, now time.Time) Record {
	r.LastVerified = now.UTC().Format(time.RFC3339)
	return r
}

// ParseDate accepts YYYY-MM-DD (midnight in loc) or RFC 3339
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
