package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/scholarship"
)

var scholarshipCmd = &cobra.Command{
	Use:     "scholarship",
	Aliases: []string{"sch"},
	Short:   "Track scholarships and their deadlines",
}

var scholarshipAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a scholarship",
	Long: `Add a scholarship record. Dates are YYYY-MM-DD. A recurring
scholarship whose deadline has passed is projected into the next
yearly cycle when its status is computed.

Example:
  disha scholarship add --name "Merit Award" --provider "State Board" \
    --category Merit --deadline 2026-08-31 --recurring \
    --groups SC,ST --goals Engineering --income-limit 2.5`,
	RunE: runScholarshipAdd,
}

var scholarshipListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scholarships with their status",
	Long: `List scholarships with their live deadline status.

Examples:
  disha scholarship list
  disha scholarship list --open
  disha scholarship list --group SC --income low
  disha scholarship list --query merit`,
	RunE: runScholarshipList,
}

var scholarshipStatusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Show one scholarship and its status",
	Args:  cobra.ExactArgs(1),
	RunE:  runScholarshipStatus,
}

var scholarshipVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Mark a scholarship's details as verified now",
	Args:  cobra.ExactArgs(1),
	RunE:  runScholarshipVerify,
}

var scholarshipRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a scholarship",
	Args:  cobra.ExactArgs(1),
	RunE:  runScholarshipRemove,
}

var (
	schRecord   scholarship.Record
	schCategory string

	schCriteria scholarship.Criteria
	schIncome   string
	schOpen     bool
)

func init() {
	rootCmd.AddCommand(scholarshipCmd)
	scholarshipCmd.AddCommand(scholarshipAddCmd)
	scholarshipCmd.AddCommand(scholarshipListCmd)
	scholarshipCmd.AddCommand(scholarshipStatusCmd)
	scholarshipCmd.AddCommand(scholarshipVerifyCmd)
	scholarshipCmd.AddCommand(scholarshipRemoveCmd)

	f := scholarshipAddCmd.Flags()
	f.StringVar(&schRecord.Name, "name", "", "Scholarship name")
	f.StringVar(&schRecord.Provider, "provider", "", "Provider")
	f.StringVar(&schCategory, "category", "", "Category (Merit, Means, Sports, Research, Minority, Vocational, Arts)")
	f.StringVar(&schRecord.ProviderType, "provider-type", "", "Provider type (e.g. govt, private)")
	f.StringVar(&schRecord.Level, "level", "", "Level (e.g. national, state)")
	f.StringVar(&schRecord.ArtField, "art-field", "", "Art field for Arts scholarships")
	f.Float64Var(&schRecord.IncomeLimit, "income-limit", 0, "Family income limit in lakhs per annum (0 = none)")
	f.StringSliceVar(&schRecord.SocialGroups, "groups", []string{scholarship.GroupAll}, "Eligible social groups")
	f.StringSliceVar(&schRecord.CareerGoals, "goals", nil, "Career goals the scholarship supports")
	f.StringVar(&schRecord.Benefits, "benefits", "", "Benefits")
	f.StringVar(&schRecord.StartDate, "start", "", "Applications open (YYYY-MM-DD)")
	f.StringVar(&schRecord.Deadline, "deadline", "", "Deadline (YYYY-MM-DD, empty = to be announced)")
	f.BoolVar(&schRecord.IsRecurring, "recurring", false, "Repeats every year")
	f.StringVar(&schRecord.ApplyLink, "link", "", "Application link")
	_ = scholarshipAddCmd.MarkFlagRequired("name")

	lf := scholarshipListCmd.Flags()
	lf.StringVarP(&schCriteria.Query, "query", "q", "", "Match name or provider")
	lf.StringSliceVar(&schCriteria.SocialGroups, "group", nil, "Social groups")
	lf.StringSliceVar(&schCriteria.CareerGoals, "goal", nil, "Career goals")
	lf.StringSliceVar(&schCriteria.Levels, "level", nil, "Levels")
	lf.StringSliceVar(&schCriteria.ProviderTypes, "provider-type", nil, "Provider types")
	lf.StringSliceVar(&schCriteria.ArtFields, "art-field", nil, "Art fields")
	lf.StringVar(&schIncome, "income", "all", "Income bracket (all, low, mid, high)")
	lf.BoolVar(&schOpen, "open", false, "Only scholarships not yet closed, soonest deadline first")
}

func runScholarshipAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	r := schRecord
	r.ID = uuid.New().String()
	if schCategory != "" {
		c, err := scholarship.ParseCategory(schCategory)
		if err != nil {
			return err
		}
		r.Category = c
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid scholarship: %w", err)
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
	if err := a.db.CreateScholarship(ctx, &r); err != nil {
		return err
	}
	a.logger.Info("scholarship added", "id", r.ID, "name", r.Name)

	return a.printer.Print(scholarship.Entry{Record: r, Status: engine.Analyze(r, time.Now())})
}

func runScholarshipList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	income, err := scholarship.ParseIncomeBracket(schIncome)
	if err != nil {
		return err
	}
	criteria := schCriteria
	criteria.Income = income

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
		return err
	}
	records = scholarship.Filter(records, criteria)

	now := time.Now()
	var entries []scholarship.Entry
	if schOpen {
		entries = engine.Open(records, now)
	} else {
		entries = engine.Annotate(records, now)
	}

	if len(entries) == 0 && outputFmt != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), "No scholarships found.")
		return nil
	}
	return a.printer.Print(entries)
}

func runScholarshipStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	engine, err := a.engine()
	if err != nil {
		return err
	}

	r, err := a.db.GetScholarship(ctx, args[0])
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("scholarship not found: %s", args[0])
	}

	return a.printer.Print(scholarship.Entry{Record: *r, Status: engine.Analyze(*r, time.Now())})
}

func runScholarshipVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := a.db.MarkVerified(ctx, args[0], time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Verified '%s' at %s.\n", r.Name, r.LastVerified)
	return nil
}

func runScholarshipRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.db.DeleteScholarship(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed scholarship %s.\n", args[0])
	return nil
}
