package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/session"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Submit a working professional's self-report",
	Long: `Submit a working professional's job, sector and 1-5 self-ratings.
The report is turned into a feature vector and recorded as an
interaction. Nothing is stored unless --consent is given and
telemetry consent has been granted.

Example:
  disha insight --job "Data Analyst" --sector "Tech" --logical 5 \
    --communication 3 --numerical 4 --creative 2 --physical 2 \
    --satisfaction 4 --consent`,
	RunE: runInsight,
}

var (
	insightJob          string
	insightSector       string
	insightIncome       string
	insightRatings      session.SelfRatings
	insightSatisfaction int
	insightConsent      bool
)

func init() {
	rootCmd.AddCommand(insightCmd)

	f := insightCmd.Flags()
	f.StringVar(&insightJob, "job", "", "Current job title")
	f.StringVar(&insightSector, "sector", "", "Industry sector")
	f.StringVar(&insightIncome, "income", "", "Socio-economic bracket (low, mid, high)")
	f.IntVar(&insightRatings.Logical, "logical", 3, "Logical self-rating (1-5)")
	f.IntVar(&insightRatings.Communication, "communication", 3, "Communication self-rating (1-5)")
	f.IntVar(&insightRatings.Numerical, "numerical", 3, "Numerical self-rating (1-5)")
	f.IntVar(&insightRatings.Creative, "creative", 3, "Creative self-rating (1-5)")
	f.IntVar(&insightRatings.Physical, "physical", 3, "Physical self-rating (1-5)")
	f.IntVar(&insightSatisfaction, "satisfaction", 3, "Job satisfaction (1-5)")
	f.BoolVar(&insightConsent, "consent", false, "The professional consents to data use")
	_ = insightCmd.MarkFlagRequired("job")
}

func runInsight(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tel, err := a.telemetry(ctx)
	if err != nil {
		return err
	}

	v, err := tel.IngestProfessional(ctx, session.ProfessionalInsight{
		ID:            uuid.New().String(),
		CurrentJob:    insightJob,
		Sector:        insightSector,
		SocioEconomic: insightIncome,
		Skills:        insightRatings,
		Satisfaction:  insightSatisfaction,
		Consent:       insightConsent,
	})
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Insight discarded: the professional did not consent (--consent).")
		return nil
	}
	if !tel.Enabled() {
		a.logger.Warn("telemetry consent not granted, insight not recorded")
	}
	return a.printer.Print(v)
}
