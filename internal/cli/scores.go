package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/database"
	"github.com/vijay-prabhu/disha/internal/session"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Manage assessment score maps",
	Long: `Record and inspect the raw score maps of the four assessments.

Kinds: skills, personality, sports, creative.
Categories are the fixed names of each assessment, e.g. Logical,
Openness, Strength or "Visual Arts".`,
}

var scoresSetCmd = &cobra.Command{
	Use:   "set <kind> <category=value>...",
	Short: "Record a completed assessment",
	Long: `Record the result of a completed assessment session.

Skills, personality and sports results replace the stored map.
Creative results are per-field percentages (0-100) and merge into
the stored creative map.

Examples:
  disha scores set skills Logical=24 Numerical=18 Verbal=12
  disha scores set sports Strength=20 Reflex=25 --team
  disha scores set creative Music=60 "Visual Arts"=45`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScoresSet,
}

var scoresAddCmd = &cobra.Command{
	Use:   "add <kind> <category=value>...",
	Short: "Add points to stored categories",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runScoresAdd,
}

var scoresShowCmd = &cobra.Command{
	Use:   "show [kind]",
	Short: "Show stored scores",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScoresShow,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear [kind]",
	Short: "Delete stored scores (all kinds when none is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScoresClear,
}

var scoresTeam bool

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresSetCmd)
	scoresCmd.AddCommand(scoresAddCmd)
	scoresCmd.AddCommand(scoresShowCmd)
	scoresCmd.AddCommand(scoresClearCmd)

	scoresSetCmd.Flags().BoolVar(&scoresTeam, "team", false, "Prefer team sports (sports only)")
}

func runScoresSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := assessment.ParseKind(args[0])
	if err != nil {
		return err
	}
	impacts, err := parseImpacts(args[1:])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	consent, err := a.db.Consent(ctx)
	if err != nil {
		return err
	}

	s := session.New(kind, session.Options{Consent: consent, Logger: a.logger})
	ctx = s.Context(ctx)

	switch kind {
	case assessment.KindCreative:
		for _, im := range impacts {
			if err := s.RecordCategoryScore(im.Category, im.Value); err != nil {
				return err
			}
		}
	default:
		if err := s.Answer(impacts...); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("team") {
		if err := s.SetTeamPreference(scoresTeam); err != nil {
			return err
		}
	}

	stored, err := s.Finish(ctx, a.db)
	if err != nil {
		return err
	}

	if outputFmt == "json" {
		return a.printer.Print(stored)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s scores (%d categories).\n", kind, len(stored))
	return nil
}

func runScoresAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := assessment.ParseKind(args[0])
	if err != nil {
		return err
	}
	impacts, err := parseImpacts(args[1:])
	if err != nil {
		return err
	}

	delta := assessment.RawScoreMap{}
	for _, im := range impacts {
		if !assessment.ValidCategory(kind, im.Category) {
			return fmt.Errorf("unknown %s category %q", kind, im.Category)
		}
		delta.Add(im.Category, im.Value)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.db.AddScores(ctx, kind.StoreKey(), delta); err != nil {
		return err
	}
	a.logger.Info("scores added", "kind", string(kind), "categories", len(delta))

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d categories to %s.\n", len(delta), kind)
	return nil
}

func runScoresShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	key := ""
	if len(args) == 1 {
		kind, err := assessment.ParseKind(args[0])
		if err != nil {
			return err
		}
		key = kind.StoreKey()
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.db.ListScoreEntries(ctx)
	if err != nil {
		return err
	}

	if key != "" {
		filtered := make([]database.ScoreEntry, 0, len(entries))
		for _, e := range entries {
			if e.Key == key {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 && outputFmt != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), "No scores recorded.")
		return nil
	}
	return a.printer.Print(entries)
}

func runScoresClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	key := ""
	if len(args) == 1 {
		kind, err := assessment.ParseKind(args[0])
		if err != nil {
			return err
		}
		key = kind.StoreKey()
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.db.ClearScores(ctx, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d score entries.\n", n)
	return nil
}

// parseImpacts reads category=value pairs. Values may be negative.
func parseImpacts(args []string) ([]session.Impact, error) {
	impacts := make([]session.Impact, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid score %q (expected category=value)", arg)
		}
		value, err := strconv.Atoi(strings.TrimSpace(arg[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", arg, err)
		}
		impacts = append(impacts, session.Impact{Category: strings.TrimSpace(arg[:i]), Value: value})
	}
	return impacts, nil
}
