package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/session"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record feedback on recommendations",
	Long: `Record how a recommendation landed. Feedback is only stored when
consent has been granted ('disha consent grant').`,
}

var feedbackUpCmd = &cobra.Command{
	Use:   "up <recommendation>",
	Short: "Mark a recommendation as helpful",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return recordFeedback(cmd, session.ActionThumbsUp, args[0])
	},
}

var feedbackDownCmd = &cobra.Command{
	Use:   "down <recommendation>",
	Short: "Mark a recommendation as unhelpful",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return recordFeedback(cmd, session.ActionThumbsDown, args[0])
	},
}

var feedbackExploreCmd = &cobra.Command{
	Use:   "explore <career>",
	Short: "Record that a career domain was explored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return recordFeedback(cmd, session.ActionClickCareer, args[0])
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackUpCmd)
	feedbackCmd.AddCommand(feedbackDownCmd)
	feedbackCmd.AddCommand(feedbackExploreCmd)
}

func recordFeedback(cmd *cobra.Command, action session.Action, target string) error {
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

	recorded, err := tel.Log(ctx, action, target, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !recorded {
		fmt.Fprintln(out, "Feedback not recorded: consent has not been granted.")
		fmt.Fprintln(out, "Run 'disha consent grant' to opt in.")
		return nil
	}
	fmt.Fprintf(out, "Recorded %s for '%s'.\n", action, target)
	return nil
}
