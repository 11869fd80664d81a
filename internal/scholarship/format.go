package scholarship

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en-IN"

// monthFirstRegions write the month before the day
var monthFirstRegions = map[string]bool{
	"US": true,
	"CA": true,
	"PH": true,
}

// Formatter renders effective deadlines for a locale.
//
// The locale only picks day-first or month-first order from its region.
// Month names are always English, so "hi-IN" still renders "10 Jan 2026".
type Formatter struct {
	tag        language.Tag
	monthFirst bool
}

// NewFormatter parses a BCP 47 locale such as "en-IN"
func NewFormatter(locale string) (Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	region, _ := tag.Region()
	return Formatter{tag: tag, monthFirst: monthFirstRegions[region.String()]}, nil
}

// Tag returns the parsed locale
func (f Formatter) Tag() language.Tag {
	return f.tag
}

// Long formats a full date, "10 Jan 2026" or "Jan 10, 2026"
func (f Formatter) Long(t time.Time) string {
	if f.monthFirst {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("2 Jan 2006")
}

// Short formats day and month, "10 Jan" or "Jan 10"
func (f Formatter) Short(t time.Time) string {
	if f.monthFirst {
		return t.Format("Jan 2")
	}
	return t.Format("2 Jan")
}
