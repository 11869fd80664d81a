package scholarship

import (
	"fmt"
	"math"
	"sort"
	"time"
	_ "time/tzdata" // resolve configured zones on hosts without zoneinfo
)

// State of a scholarship relative to now. Recomputed on every query.
type State string

const (
	StateOpen        State = "OPEN"
	StateClosingSoon State = "CLOSING_SOON"
	StateClosed      State = "CLOSED"
	StateOpeningSoon State = "OPENING_SOON"
	StateAnnounced   State = "ANNOUNCED"
)

// Status describes a record at a point in time
type Status struct {
	State             State  `json:"status"`
	Label             string `json:"label"`
	EffectiveDeadline string `json:"effective_deadline"`
	DaysLeft          *int   `json:"days_left"`
	IsAutoRenewed     bool   `json:"is_auto_renewed"`
}

// DefaultClosingSoonDays is the window in which an open record is closing soon
const DefaultClosingSoonDays = 7

// Options configure an Engine
type Options struct {
	Timezone        string
	Locale          string
	ClosingSoonDays int
}

// Engine computes statuses. It holds no mutable state.
type Engine struct {
	location        *time.Location
	format          Formatter
	closingSoonDays int
}

// NewEngine resolves the timezone and locale
func NewEngine(opts Options) (*Engine, error) {
	loc := time.UTC
	if opts.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(opts.Timezone)
		if err != nil {
			return nil, fmt.Errorf("failed to load timezone: %w", err)
		}
	}

	format, err := NewFormatter(opts.Locale)
	if err != nil {
		return nil, err
	}

	days := opts.ClosingSoonDays
	if days <= 0 {
		days = DefaultClosingSoonDays
	}

	return &Engine{location: loc, format: format, closingSoonDays: days}, nil
}

// Location returns the zone date-only values are interpreted in
func (e *Engine) Location() *time.Location {
	return e.location
}

// Analyze computes the status of r at now. r is never modified.
func (e *Engine) Analyze(r Record, now time.Time) Status {
	end, ok := ParseDate(r.Deadline, e.location)
	if !ok {
		return Status{State: StateAnnounced, Label: "To Be Announced"}
	}
	start, hasStart := ParseDate(r.StartDate, e.location)

	renewed := false
	if r.IsRecurring && end.Before(now) {
		renewed = true
		year := now.In(e.location).Year()
		end = withYear(end, year)
		start = withYear(start, year)
		if end.Before(now) {
			end = withYear(end, year+1)
			start = withYear(start, year+1)
		}
	}

	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	status := Status{
		EffectiveDeadline: e.format.Long(end),
		DaysLeft:          &days,
		IsAutoRenewed:     renewed,
	}

	switch {
	case days < 0:
		status.State, status.Label = StateClosed, "Deadline Passed"
	case hasStart && now.Before(start):
		status.State, status.Label = StateOpeningSoon, "Opens "+e.format.Short(start)
	case days <= e.closingSoonDays:
		status.State, status.Label = StateClosingSoon, fmt.Sprintf("Closing in %d days", days)
	default:
		status.State, status.Label = StateOpen, "Applications Open"
	}
	return status
}

// withYear moves t to year keeping month, day and clock.
// Feb 29 rolls over to Mar 1 in non-leap years.
func withYear(t time.Time, year int) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Entry pairs a record with its computed status
type Entry struct {
	Record Record `json:"scholarship"`
	Status Status `json:"status"`
}

// Annotate analyzes every record at now, keeping input order
func (e *Engine) Annotate(records []Record, now time.Time) []Entry {
	out := make([]Entry, 0, len(records))
	for _, r := range records {
		out = append(out, Entry{Record: r, Status: e.Analyze(r, now)})
	}
	return out
}

// Open returns the entries accepting applications now or soon, soonest
// deadline first. Records without a deadline sort last.
func (e *Engine) Open(records []Record, now time.Time) []Entry {
	var out []Entry
	for _, entry := range e.Annotate(records, now) {
		if entry.Status.State != StateClosed {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Status.DaysLeft, out[j].Status.DaysLeft
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out
}
