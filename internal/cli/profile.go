package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/session"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the holistic profile",
	Long: `Combine every completed assessment into one profile: headline
indices, academic streams, career domains, sports clusters and
creative fields.

Viewing the profile is recorded as an interaction when consent has
been granted.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	in, err := holistic.Load(ctx, a.db)
	if err != nil {
		return err
	}
	profile := a.aggregator().Build(in)

	if profile == nil {
		if outputFmt == "json" {
			return a.printer.Print(nil)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No assessments completed yet. Record one with 'disha scores set'.")
		return nil
	}

	tel, err := a.telemetry(ctx)
	if err != nil {
		return err
	}
	if _, err := tel.Log(ctx, session.ActionViewResults, "holistic_profile", map[string]any{
		"top_stream": profile.Academic[0].Stream,
		"top_career": profile.Careers[0].Domain,
	}); err != nil {
		a.logger.Warn("failed to record interaction", "error", err)
	}
	if tel.Enabled() {
		session.LogFeatureVector(ctx, a.logger, session.BuildFeatureVector(in, a.cfg.Holistic.SkillMax, time.Now()))
	}

	audit := session.AuditProfile(profile, in.Skills, a.cfg.Holistic.SkillMax)
	if audit.Flagged {
		a.logger.Warn("recommendation audit flagged", "reason", audit.Reason)
	}

	if err := a.printer.Print(profile); err != nil {
		return err
	}
	if audit.Flagged && outputFmt != "json" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nNote: %s\n", audit.Reason)
	}
	return nil
}
