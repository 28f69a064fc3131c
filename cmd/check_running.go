package cmd

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/logging"
	"github.com/spf13/cobra"
)

var checkRunningCmd = &cobra.Command{
	Use:   "check_running",
	Short: "Print RUNNING or NOT_RUNNING",
	Long: `Look for the editor window once and print RUNNING or NOT_RUNNING. The
exit code is 0 either way, including when no window backend is available;
the attempt trail is logged at debug level.`,
	Args: cobra.NoArgs,
	RunE: runCheckRunning,
}

func init() {
	rootCmd.AddCommand(checkRunningCmd)
}

func runCheckRunning(cmd *cobra.Command, args []string) error {
	log := logging.New("check_running")
	orch, err := newOrchestrator()
	if err != nil {
		// No window system means the editor cannot be running.
		log.Warn("window backend unavailable", "error", err)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), automation.TokenNotRunning)
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	running, res := orch.CheckRunning(ctx)
	for _, a := range res.Attempts {
		log.Debug("attempt", "stage", a.Stage, "method", a.Method, "outcome", a.Outcome, "message", a.Message)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), automation.RunningToken(running))
	return err
}
