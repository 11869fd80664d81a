package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/output"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/scoring"
	"github.com/vijay-prabhu/disha/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reports and scholarships",
}

var exportReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the full guidance report as JSON",
	Long: `Export physical stats, the holistic profile and the sports ranking
as one JSON document. The download is recorded as an interaction when
consent has been granted.

Examples:
  disha export report > report.json`,
	RunE: runExportReport,
}

var exportScholarshipsCmd = &cobra.Command{
	Use:   "scholarships",
	Short: "Export scholarships with their status to CSV or JSON",
	Long: `Export every scholarship with its current deadline status.

Examples:
  disha export scholarships --format=csv > scholarships.csv
  disha export scholarships --format=json > scholarships.json`,
	RunE: runExportScholarships,
}

var exportFormat string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportReportCmd)
	exportCmd.AddCommand(exportScholarshipsCmd)

	exportScholarshipsCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
}

// Report is the exported guidance document
type Report struct {
	GeneratedAt   string                      `json:"generated_at"`
	PhysicalStats *assessment.PhysicalStats   `json:"physical_stats"`
	Profile       *holistic.Profile           `json:"profile"`
	Sports        []scoring.SuitabilityResult `json:"sports"`
}

func runExportReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	c, err := a.catalog()
	if err != nil {
		return err
	}

	profile, err := a.aggregator().FromStore(ctx, a.db)
	if err != nil {
		return err
	}

	stored, err := a.db.GetPhysicalStats(ctx)
	if err != nil {
		return err
	}
	sportsScores, err := a.db.Get(ctx, assessment.KindSports.StoreKey())
	if err != nil {
		return err
	}

	// Sports are only ranked once there is something to rank on
	var sports []scoring.SuitabilityResult
	if stored != nil || !sportsScores.Empty() {
		stats := assessment.DefaultPhysicalStats()
		if stored != nil {
			stats = *stored
		}
		v := scoring.BuildUserVector(stats, sportsScores, a.cfg.Scoring.CategoryMax)
		sports = scoring.NewScorer(a.cfg.Scoring.Scorer()).Rank(v, stats, c)
	}

	now := time.Now()
	report := Report{
		GeneratedAt:   now.Format(time.RFC3339),
		PhysicalStats: stored,
		Profile:       profile,
		Sports:        sports,
	}

	tel, err := a.telemetry(ctx)
	if err != nil {
		return err
	}
	if _, err := tel.Log(ctx, session.ActionDownloadReport, "report", map[string]any{
		"has_profile": profile != nil,
		"sports":      len(sports),
	}); err != nil {
		a.logger.Warn("failed to record interaction", "error", err)
	}

	return output.JSONTo(cmd.OutOrStdout(), report)
}

func runExportScholarships(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	engine, err := a.engine()
	if err != nil {
		return err
	}
	records, err := a.db.ListScholarships(ctx)
	if err != nil {
		return fmt.Errorf("failed to list scholarships: %w", err)
	}
	entries := engine.Annotate(records, time.Now())

	if exportFormat == "json" {
		return output.JSONTo(cmd.OutOrStdout(), entries)
	}
	return exportCSV(cmd.OutOrStdout(), entries)
}

func exportCSV(out io.Writer, entries []scholarship.Entry) error {
	w := csv.NewWriter(out)

	// Write header
	header := []string{
		"id", "name", "provider", "category", "provider_type", "level",
		"income_limit", "social_groups", "career_goals", "start_date",
		"deadline", "recurring", "status", "label", "effective_deadline",
		"days_left", "last_verified", "apply_link",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write rows
	for _, e := range entries {
		r, s := e.Record, e.Status
		days := ""
		if s.DaysLeft != nil {
			days = strconv.Itoa(*s.DaysLeft)
		}
		income := ""
		if r.IncomeLimit > 0 {
			income = strconv.FormatFloat(r.IncomeLimit, 'f', -1, 64)
		}
		record := []string{
			r.ID,
			r.Name,
			r.Provider,
			string(r.Category),
			r.ProviderType,
			r.Level,
			income,
			strings.Join(r.SocialGroups, ";"),
			strings.Join(r.CareerGoals, ";"),
			r.StartDate,
			r.Deadline,
			strconv.FormatBool(r.IsRecurring),
			string(s.State),
			s.Label,
			s.EffectiveDeadline,
			days,
			r.LastVerified,
			r.ApplyLink,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
