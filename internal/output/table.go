package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/database"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/scoring"
	"github.com/vijay-prabhu/disha/internal/session"
)

// Table writes data as a formatted table to stdout
func Table(data any) error {
	return NewPrinter("table").Print(data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data any) error {
	return (&Printer{W: w, Format: "table"}).Print(data)
}

func (p *Printer) table(data any) error {
	switch v := data.(type) {
	case []scoring.SuitabilityResult:
		return suitabilityTable(p.W, v)
	case *holistic.Profile:
		return profileDetail(p.W, v)
	case []scholarship.Entry:
		return p.scholarshipsTable(v)
	case scholarship.Entry:
		return p.scholarshipDetail(v)
	case []database.ScoreEntry:
		return scoresTable(p.W, v)
	case *assessment.PhysicalStats:
		return statsDetail(p.W, v)
	case []session.Interaction:
		return interactionsTable(p.W, v)
	case *database.Summary:
		return summaryDetail(p.W, v)
	case *session.FeatureVector:
		return featureDetail(p.W, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func suitabilityTable(w io.Writer, results []scoring.SuitabilityResult) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No sports ranked.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Sport", "Score", "Why", "Work On")
	for i, r := range results {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			r.Profile,
			strconv.Itoa(r.Score),
			r.MatchReason,
			strings.Join(r.ImprovementAreas, ", "),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func profileDetail(w io.Writer, p *holistic.Profile) error {
	if p == nil {
		fmt.Fprintln(w, "No assessment results yet. Record scores with 'disha scores add'.")
		return nil
	}

	fmt.Fprintf(w, "Cognitive index:   %d\n", p.Indices.Cognitive)
	fmt.Fprintf(w, "Personality type:  %s\n", p.Indices.PersonalityType)
	fmt.Fprintf(w, "Sports aptitude:   %d\n", p.Indices.SportsAptitude)
	fmt.Fprintf(w, "Creative index:    %d\n", p.Indices.CreativeIndex)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Academic streams")
	streams := tablewriter.NewWriter(w)
	streams.Header("Stream", "Score", "Reason")
	for _, s := range p.Academic {
		if err := streams.Append([]string{s.Stream, formatScore(s.Score), s.Reason}); err != nil {
			return err
		}
	}
	if err := streams.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Career domains")
	careers := tablewriter.NewWriter(w)
	careers.Header("Domain", "Score", "Next Steps")
	for _, c := range p.Careers {
		if err := careers.Append([]string{c.Domain, formatScore(c.Score), strings.Join(c.Steps, " > ")}); err != nil {
			return err
		}
	}
	if err := careers.Render(); err != nil {
		return err
	}

	for _, section := range []struct {
		title string
		list  []holistic.Ranked
	}{
		{"Sports clusters", p.Sports},
		{"Creative fields", p.Creative},
	} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, section.title)
		for i, r := range section.list {
			fmt.Fprintf(w, "  %d. %-32s %s\n", i+1, r.Name, formatScore(r.Score))
		}
	}
	return nil
}

func (p *Printer) badge(s scholarship.Status) string {
	if p.Badge == nil {
		return s.Label
	}
	return p.Badge(s.State, s.Label)
}

func (p *Printer) scholarshipsTable(entries []scholarship.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(p.W, "No scholarships found.")
		return nil
	}

	table := tablewriter.NewWriter(p.W)
	table.Header("ID", "Name", "Provider", "Status", "Deadline", "Days")
	for _, e := range entries {
		deadline := e.Status.EffectiveDeadline
		if e.Status.IsAutoRenewed {
			deadline += " (renewed)"
		}
		if err := table.Append([]string{
			shortID(e.Record.ID),
			truncate(e.Record.Name, 40),
			truncate(e.Record.Provider, 25),
			p.badge(e.Status),
			deadline,
			formatDays(e.Status.DaysLeft),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func (p *Printer) scholarshipDetail(e scholarship.Entry) error {
	w, r := p.W, e.Record
	fmt.Fprintf(w, "Name:        %s\n", r.Name)
	fmt.Fprintf(w, "Provider:    %s\n", r.Provider)
	fmt.Fprintf(w, "Category:    %s\n", r.Category)
	fmt.Fprintf(w, "Status:      %s\n", p.badge(e.Status))
	if e.Status.EffectiveDeadline != "" {
		fmt.Fprintf(w, "Deadline:    %s", e.Status.EffectiveDeadline)
		if e.Status.IsAutoRenewed {
			fmt.Fprint(w, " (projected from "+r.Deadline+")")
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Days left:   %s\n", formatDays(e.Status.DaysLeft))
	}
	if r.IncomeLimit > 0 {
		fmt.Fprintf(w, "Income cap:  %.1f lakhs\n", r.IncomeLimit)
	}
	if r.Benefits != "" {
		fmt.Fprintf(w, "Benefits:    %s\n", r.Benefits)
	}
	if r.ApplyLink != "" {
		fmt.Fprintf(w, "Apply:       %s\n", r.ApplyLink)
	}
	if r.LastVerified != "" {
		fmt.Fprintf(w, "Verified:    %s\n", r.LastVerified)
	}
	return nil
}

func scoresTable(w io.Writer, entries []database.ScoreEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No scores recorded.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Map", "Category", "Points")
	for _, e := range entries {
		if err := table.Append([]string{e.Key, e.Category, strconv.Itoa(e.Value)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func statsDetail(w io.Writer, s *assessment.PhysicalStats) error {
	if s == nil {
		fmt.Fprintln(w, "No physical stats recorded. Save them with 'disha stats set'.")
		return nil
	}
	fmt.Fprintf(w, "Age:          %d\n", s.Age)
	fmt.Fprintf(w, "Gender:       %s\n", s.Gender)
	fmt.Fprintf(w, "Height:       %.1f cm\n", s.HeightCm)
	fmt.Fprintf(w, "Weight:       %.1f kg\n", s.WeightKg)
	if s.DominantHand != "" {
		fmt.Fprintf(w, "Hand:         %s\n", s.DominantHand)
	}
	fmt.Fprintf(w, "Location:     %s\n", s.LocationType)
	fmt.Fprintf(w, "Playground:   %s\n", yesNo(s.HasPlayground))
	fmt.Fprintf(w, "Coaching:     %s\n", yesNo(s.HasCoaching))
	return nil
}

func interactionsTable(w io.Writer, logs []session.Interaction) error {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No interactions logged.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("When", "Session", "Action", "Target")
	for _, in := range logs {
		if err := table.Append([]string{
			in.Timestamp.Format("Jan 02 15:04"),
			shortID(in.SessionID),
			string(in.Action),
			in.TargetID,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func summaryDetail(w io.Writer, s *database.Summary) error {
	fmt.Fprintln(w, "Stored data")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Score maps:        %d\n", s.ScoreKeys)
	fmt.Fprintf(w, "Score categories:  %d\n", s.ScoreEntries)
	fmt.Fprintf(w, "Physical stats:    %s\n", yesNo(s.HasStats))
	fmt.Fprintf(w, "Scholarships:      %d\n", s.Scholarships)
	fmt.Fprintf(w, "Interactions:      %d\n", s.Interactions)
	return nil
}

func featureDetail(w io.Writer, v *session.FeatureVector) error {
	d := v.Dimensions
	fmt.Fprintf(w, "Vector:     %s\n", v.ID)
	fmt.Fprintf(w, "Logical:    %.2f\n", d.Logical)
	fmt.Fprintf(w, "Verbal:     %.2f\n", d.Verbal)
	fmt.Fprintf(w, "Numerical:  %.2f\n", d.Numerical)
	fmt.Fprintf(w, "Technical:  %.2f\n", d.Technical)
	fmt.Fprintf(w, "Creative:   %.2f\n", d.Creative)
	fmt.Fprintf(w, "Sports:     %.2f\n", d.Sports)
	fmt.Fprintf(w, "Economic:   %.2f\n", d.EconomicScore)
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatDays(days *int) string {
	if days == nil {
		return "-"
	}
	return strconv.Itoa(*days)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
