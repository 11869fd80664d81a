package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/scoring"
)

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "Rank sports by suitability",
	Long: `Rank the sports catalog against the stored physical stats and
sports scores.

Examples:
  disha sports
  disha sports --limit 3
  disha sports -o json`,
	RunE: runSports,
}

var sportsLimit int

func init() {
	rootCmd.AddCommand(sportsCmd)
	sportsCmd.Flags().IntVarP(&sportsLimit, "limit", "n", 0, "Maximum results (default from config)")
}

func runSports(cmd *cobra.Command, args []string) error {
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

	stats := assessment.DefaultPhysicalStats()
	stored, err := a.db.GetPhysicalStats(ctx)
	if err != nil {
		return err
	}
	if stored != nil {
		stats = *stored
	} else {
		a.logger.Warn("no physical stats recorded, using defaults")
	}

	scores, err := a.db.Get(ctx, assessment.KindSports.StoreKey())
	if err != nil {
		return err
	}

	sc := a.cfg.Scoring.Scorer()
	if sportsLimit > 0 {
		sc.MaxResults = sportsLimit
	}

	v := scoring.BuildUserVector(stats, scores, a.cfg.Scoring.CategoryMax)
	results := scoring.NewScorer(sc).Rank(v, stats, c)
	a.logger.Debug("sports ranked", "profiles", c.Len(), "results", len(results))

	if len(results) == 0 && outputFmt != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), "No sports in catalog.")
		return nil
	}
	return a.printer.Print(results)
}
