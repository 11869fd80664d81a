package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/assessment"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Manage physical stats",
}

var statsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record physical stats",
	Long: `Record the physical form used by sports ranking.

Only the flags given are changed; the rest keep their stored value
(or the blank-form default on first use).

Examples:
  disha stats set --height 172 --weight 60 --gender Female
  disha stats set --location Coastal --playground=false`,
	RunE: runStatsSet,
}

var statsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show physical stats",
	RunE:  runStatsShow,
}

var (
	statsAge        int
	statsGender     string
	statsHeight     float64
	statsWeight     float64
	statsHand       string
	statsLocation   string
	statsPlayground bool
	statsCoaching   bool
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsSetCmd)
	statsCmd.AddCommand(statsShowCmd)

	f := statsSetCmd.Flags()
	f.IntVar(&statsAge, "age", 0, "Age in years")
	f.StringVar(&statsGender, "gender", "", "Gender (Male, Female, Other)")
	f.Float64Var(&statsHeight, "height", 0, "Height in cm")
	f.Float64Var(&statsWeight, "weight", 0, "Weight in kg")
	f.StringVar(&statsHand, "hand", "", "Dominant hand (Right, Left, Ambidextrous)")
	f.StringVar(&statsLocation, "location", "", "Location type (Urban, Rural, Coastal, Mountain)")
	f.BoolVar(&statsPlayground, "playground", true, "Has access to a playground")
	f.BoolVar(&statsCoaching, "coaching", false, "Has access to coaching")
}

func runStatsSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	stats := assessment.DefaultPhysicalStats()
	stored, err := a.db.GetPhysicalStats(ctx)
	if err != nil {
		return err
	}
	if stored != nil {
		stats = *stored
	}

	f := cmd.Flags()
	if f.Changed("age") {
		stats.Age = statsAge
	}
	if f.Changed("gender") {
		g, err := assessment.ParseGender(statsGender)
		if err != nil {
			return err
		}
		stats.Gender = g
	}
	if f.Changed("height") {
		stats.HeightCm = statsHeight
	}
	if f.Changed("weight") {
		stats.WeightKg = statsWeight
	}
	if f.Changed("hand") {
		stats.DominantHand = assessment.DominantHand(statsHand)
	}
	if f.Changed("location") {
		l, err := assessment.ParseLocationType(statsLocation)
		if err != nil {
			return err
		}
		stats.LocationType = l
	}
	if f.Changed("playground") {
		stats.HasPlayground = statsPlayground
	}
	if f.Changed("coaching") {
		stats.HasCoaching = statsCoaching
	}

	if err := stats.Validate(); err != nil {
		return fmt.Errorf("invalid physical stats: %w", err)
	}
	if err := a.db.SavePhysicalStats(ctx, stats); err != nil {
		return err
	}

	return a.printer.Print(&stats)
}

func runStatsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.db.GetPhysicalStats(ctx)
	if err != nil {
		return err
	}
	if stats == nil {
		if outputFmt == "json" {
			return a.printer.Print(nil)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No physical stats recorded. Run 'disha stats set'.")
		return nil
	}
	return a.printer.Print(stats)
}
