package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Manage telemetry consent",
	Long: `Interactions (viewing results, feedback, explored careers) are only
recorded after consent is granted. At most telemetry.max_logs
interactions are kept; older ones are discarded.`,
}

var consentGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Allow interactions to be recorded",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConsent(cmd, true)
	},
}

var consentRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Stop recording interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConsent(cmd, false)
	},
}

var consentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show consent and what is stored",
	RunE:  runConsentShow,
}

var (
	consentPurge bool
	consentLogs  int
)

func init() {
	rootCmd.AddCommand(consentCmd)
	consentCmd.AddCommand(consentGrantCmd)
	consentCmd.AddCommand(consentRevokeCmd)
	consentCmd.AddCommand(consentShowCmd)

	consentRevokeCmd.Flags().BoolVar(&consentPurge, "purge", false, "Also delete recorded interactions")
	consentShowCmd.Flags().IntVar(&consentLogs, "logs", 0, "List the most recent N interactions")
}

func setConsent(cmd *cobra.Command, granted bool) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.db.SetConsent(ctx, granted); err != nil {
		return err
	}
	a.logger.Info("consent updated", "granted", granted)

	out := cmd.OutOrStdout()
	if granted {
		fmt.Fprintln(out, "Consent granted. Interactions will be recorded.")
		return nil
	}

	fmt.Fprintln(out, "Consent revoked. No further interactions will be recorded.")
	if consentPurge {
		if err := a.db.ClearInteractions(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Recorded interactions deleted.")
	}
	return nil
}

func runConsentShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	granted, err := a.db.Consent(ctx)
	if err != nil {
		return err
	}

	if consentLogs > 0 {
		logs, err := a.db.ListInteractions(ctx, consentLogs)
		if err != nil {
			return err
		}
		if len(logs) == 0 && outputFmt != "json" {
			fmt.Fprintln(cmd.OutOrStdout(), "No interactions recorded.")
			return nil
		}
		return a.printer.Print(logs)
	}

	summary, err := a.db.GetSummary(ctx)
	if err != nil {
		return err
	}

	if outputFmt == "json" {
		return a.printer.Print(map[string]any{
			"consent": granted,
			"stored":  summary,
		})
	}

	status := "not granted"
	if granted {
		status = "granted"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Consent: %s\n\n", status)
	return a.printer.Print(summary)
}
